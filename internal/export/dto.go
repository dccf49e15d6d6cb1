package export

import "strings"

type ExportRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Text   string `json:"text" validate:"required"`
	Theme  string `json:"theme" validate:"required"`
}

// Normalize trims the one-line fields and the outer blank lines of the poem,
// keeping its inner layout.
func (r *ExportRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	r.Theme = strings.TrimSpace(r.Theme)
	r.Text = strings.Trim(strings.ReplaceAll(r.Text, "\r\n", "\n"), "\n")
	if strings.TrimSpace(r.Text) == "" {
		r.Text = ""
	}
}
