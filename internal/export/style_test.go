package export_test

import (
	"testing"

	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/stretchr/testify/assert"
)

func TestStyleValidate(t *testing.T) {
	assert.NoError(t, export.DefaultStyle.Validate())

	bad := export.DefaultStyle
	bad.TitleColor = "azul"
	assert.ErrorIs(t, bad.Validate(), export.ErrInvalidStyle)

	bad = export.DefaultStyle
	bad.BorderStyle = "zigue-zague"
	assert.ErrorIs(t, bad.Validate(), export.ErrInvalidStyle)

	bad = export.DefaultStyle
	bad.Font = "Comic Sans"
	assert.ErrorIs(t, bad.Validate(), export.ErrInvalidStyle)
}

func TestRGB(t *testing.T) {
	r, g, b := export.RGB("#2E4A7D")
	assert.Equal(t, []int{0x2E, 0x4A, 0x7D}, []int{r, g, b})

	r, g, b = export.RGB("#abc")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestStarPoints(t *testing.T) {
	points := export.StarPoints(10, 10, 2, 1)

	assert.Len(t, points, 10)
	assert.InDelta(t, 10.0, points[0].X, 1e-9)
	assert.InDelta(t, 8.0, points[0].Y, 1e-9)
}
