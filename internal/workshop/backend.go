package workshop

import (
	"context"

	"github.com/saulo-duarte/oficina-poemas/internal/export"
	"github.com/saulo-duarte/oficina-poemas/internal/rhyme"
	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
)

// Backend is the set of AI-backed operations a Session depends on.
type Backend interface {
	GenerateThemes(ctx context.Context, interest string) ([]string, error)
	GenerateIdeas(ctx context.Context, theme string) ([]string, error)
	FindRhymes(ctx context.Context, word, theme string) ([]rhyme.Rhyme, error)
	CheckSpelling(ctx context.Context, text string) ([]spelling.Correction, error)
	Export(ctx context.Context, req export.ExportRequest) (*export.Document, error)
}
