package util

import (
	"fmt"
	"time"
)

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func Now() time.Time {
	return time.Now().In(saoPauloLocation)
}

// FormatLongDate renders t in São Paulo time as "19 de outubro de 2026".
func FormatLongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	local := t.In(saoPauloLocation)
	return fmt.Sprintf("%d de %s de %d", local.Day(), monthNames[local.Month()-1], local.Year())
}
