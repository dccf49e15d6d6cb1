package export

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	util "github.com/saulo-duarte/oficina-poemas/internal/utils"
)

type Renderer interface {
	Render(req ExportRequest, style Style, createdAt time.Time) ([]byte, error)
}

const (
	pageMargin   = 25.0
	borderInset  = 10.0
	titleSize    = 24.0
	bodySize     = 13.0
	lineHeight   = 7.0
	footerSize   = 9.0
	wavePeriod   = 12.0
	waveHeight   = 3.0
	starSpacing  = 18.0
	starOuter    = 2.6
	starInner    = 1.1
	creatorLabel = "Oficina de Poemas"
)

type pdfRenderer struct{}

func NewPDFRenderer() Renderer {
	return &pdfRenderer{}
}

func (r *pdfRenderer) Render(req ExportRequest, style Style, createdAt time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(req.Title, true)
	pdf.SetAuthor(req.Author, true)
	pdf.SetSubject(req.Theme, true)
	pdf.SetCreator(creatorLabel, true)
	if !createdAt.IsZero() {
		pdf.SetCreationDate(createdAt)
		pdf.SetModificationDate(createdAt)
	}

	pdf.SetMargins(pageMargin, pageMargin+5, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin+5)
	pdf.SetHeaderFunc(func() {
		decoratePage(pdf, style)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin + 3)
		pdf.SetFont(style.Font, "I", footerSize)
		pdf.SetTextColor(RGB(style.TextColor))
		footer := creatorLabel
		if date := util.FormatLongDate(createdAt); date != "" {
			footer = fmt.Sprintf("%s - %s", creatorLabel, date)
		}
		pdf.CellFormat(0, 5, tr(footer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont(style.Font, "B", titleSize)
	pdf.SetTextColor(RGB(style.TitleColor))
	pdf.MultiCell(0, 11, tr(req.Title), "", "C", false)
	pdf.Ln(1)

	pdf.SetFont(style.Font, "I", bodySize-1)
	pdf.SetTextColor(RGB(style.TextColor))
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("por %s", req.Author)), "", "C", false)
	pdf.Ln(lineHeight)

	pdf.SetFont(style.Font, "", bodySize)
	for _, line := range strings.Split(req.Text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			pdf.Ln(lineHeight)
			continue
		}
		pdf.MultiCell(0, lineHeight, tr(line), "", "C", false)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("%w: %w", ErrRender, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// decoratePage paints the background and the border on the current page.
func decoratePage(pdf *fpdf.Fpdf, style Style) {
	w, h := pdf.GetPageSize()

	pdf.SetFillColor(RGB(style.BackgroundColor))
	pdf.Rect(0, 0, w, h, "F")

	pdf.SetDrawColor(RGB(style.BorderColor))
	pdf.SetFillColor(RGB(style.BorderColor))

	x0, y0 := borderInset, borderInset
	x1, y1 := w-borderInset, h-borderInset

	switch style.BorderStyle {
	case BorderWaves:
		pdf.SetLineWidth(0.6)
		drawWaves(pdf, x0, y0, x1, y1)
	case BorderStars:
		pdf.SetLineWidth(0.3)
		pdf.Rect(x0+4, y0+4, x1-x0-8, y1-y0-8, "D")
		drawStars(pdf, x0, y0, x1, y1)
	case BorderDouble:
		pdf.SetLineWidth(1.0)
		pdf.Rect(x0, y0, x1-x0, y1-y0, "D")
		pdf.SetLineWidth(0.3)
		pdf.Rect(x0+3, y0+3, x1-x0-6, y1-y0-6, "D")
	default:
		pdf.SetLineWidth(0.5)
		pdf.Rect(x0, y0, x1-x0, y1-y0, "D")
	}
	pdf.SetLineWidth(0.2)
}

func drawWaves(pdf *fpdf.Fpdf, x0, y0, x1, y1 float64) {
	// horizontal edges
	for i, x := 0, x0; x+wavePeriod <= x1+0.01; i, x = i+1, x+wavePeriod {
		dy := waveHeight
		if i%2 == 1 {
			dy = -dy
		}
		pdf.Curve(x, y0, x+wavePeriod/2, y0+dy, x+wavePeriod, y0, "D")
		pdf.Curve(x, y1, x+wavePeriod/2, y1-dy, x+wavePeriod, y1, "D")
	}
	// vertical edges
	for i, y := 0, y0; y+wavePeriod <= y1+0.01; i, y = i+1, y+wavePeriod {
		dx := waveHeight
		if i%2 == 1 {
			dx = -dx
		}
		pdf.Curve(x0, y, x0+dx, y+wavePeriod/2, x0, y+wavePeriod, "D")
		pdf.Curve(x1, y, x1-dx, y+wavePeriod/2, x1, y+wavePeriod, "D")
	}
}

func drawStars(pdf *fpdf.Fpdf, x0, y0, x1, y1 float64) {
	for x := x0; x <= x1+0.01; x += starSpacing {
		pdf.Polygon(StarPoints(x, y0, starOuter, starInner), "F")
		pdf.Polygon(StarPoints(x, y1, starOuter, starInner), "F")
	}
	for y := y0 + starSpacing; y < y1-starSpacing/2; y += starSpacing {
		pdf.Polygon(StarPoints(x0, y, starOuter, starInner), "F")
		pdf.Polygon(StarPoints(x1, y, starOuter, starInner), "F")
	}
}

// StarPoints returns the ten vertices of a five-pointed star centered at (cx, cy)
// with its first tip pointing up.
func StarPoints(cx, cy, outer, inner float64) []fpdf.PointType {
	points := make([]fpdf.PointType, 0, 10)
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		points = append(points, fpdf.PointType{
			X: cx + radius*math.Cos(angle),
			Y: cy + radius*math.Sin(angle),
		})
	}
	return points
}
