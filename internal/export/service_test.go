package export

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway/gatewaytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	req   ExportRequest
	style Style
	calls int
}

func (r *recordingRenderer) Render(req ExportRequest, style Style, createdAt time.Time) ([]byte, error) {
	r.req, r.style = req, style
	r.calls++
	return []byte("%PDF-fake"), nil
}

var noite = ExportRequest{
	Title:  "Noite",
	Author: "Ana",
	Text:   "O campo dorme\nem silêncio\n\nas estrelas acordam",
	Theme:  "O silêncio do campo à noite",
}

const validStyle = `{"background_color":"#FFFFFF","title_color":"#112233","text_color":"#000000",
	"border_color":"#445566","border_style":"estrelas","font":"Helvetica"}`

func newTestService(gw gateway.Gateway, r Renderer) *service {
	return &service{
		gateway:  gw,
		renderer: r,
		now:      func() time.Time { return time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC) },
	}
}

func TestExport_UsesModelStyle(t *testing.T) {
	renderer := &recordingRenderer{}
	svc := newTestService(&gatewaytest.Fake{Reply: validStyle}, renderer)

	doc, err := svc.Export(context.Background(), noite)

	require.NoError(t, err)
	assert.Equal(t, "noite.pdf", doc.Filename)
	assert.Equal(t, ContentTypePDF, doc.ContentType)
	assert.Equal(t, BorderStars, renderer.style.BorderStyle)
	assert.Equal(t, "Helvetica", renderer.style.Font)
}

func TestExport_StyleFallback(t *testing.T) {
	cases := []struct {
		name string
		gw   *gatewaytest.Fake
	}{
		{"gateway_down", &gatewaytest.Fake{Err: gateway.ErrUnavailable}},
		{"malformed", &gatewaytest.Fake{Reply: `{"background_color": `}},
		{"invalid_values", &gatewaytest.Fake{Reply: `{"background_color":"branco","title_color":"#112233","text_color":"#000000","border_color":"#445566","border_style":"ondas","font":"Times"}`}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			renderer := &recordingRenderer{}
			svc := newTestService(tc.gw, renderer)

			doc, err := svc.Export(context.Background(), noite)

			require.NoError(t, err)
			assert.NotEmpty(t, doc.Content)
			assert.Equal(t, DefaultStyle, renderer.style)
		})
	}
}

func TestExport_Validation(t *testing.T) {
	cases := map[string]ExportRequest{
		"no_title":  {Title: "  ", Author: "Ana", Text: "poema", Theme: "t"},
		"no_author": {Title: "Noite", Author: "", Text: "poema", Theme: "t"},
		"no_text":   {Title: "Noite", Author: "Ana", Text: "\n \n", Theme: "t"},
		"no_theme":  {Title: "Noite", Author: "Ana", Text: "poema", Theme: " "},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			gw := &gatewaytest.Fake{Reply: validStyle}
			renderer := &recordingRenderer{}

			_, err := newTestService(gw, renderer).Export(context.Background(), req)

			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, gw.Calls())
			assert.Zero(t, renderer.calls)
		})
	}
}

func TestPDFRenderer_AllBorders(t *testing.T) {
	for _, border := range AllBorderStyles {
		t.Run(string(border), func(t *testing.T) {
			style := DefaultStyle
			style.BorderStyle = border

			out, err := NewPDFRenderer().Render(noite, style, time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC))

			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
		})
	}
}

func TestPDFRenderer_LongPoem(t *testing.T) {
	long := noite
	long.Text = strings.Repeat("um verso comprido sobre a noite no campo\n", 120)

	out, err := NewPDFRenderer().Render(long, DefaultStyle, time.Time{})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestHandler_Export(t *testing.T) {
	h := NewHandler(newTestService(&gatewaytest.Fake{Err: gateway.ErrUnavailable}, NewPDFRenderer()))

	t.Run("Attachment", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"title":"Meu Poema!!","author":"Ana","text":"O campo dorme\nem silêncio","theme":"noite"}`

		Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ContentTypePDF, rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="meu_poema.pdf"`, rec.Header().Get("Content-Disposition"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	})

	t.Run("MissingAuthor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"title":"Noite","author":" ","text":"O campo dorme","theme":"noite"}`

		Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"error"`)
	})
}
