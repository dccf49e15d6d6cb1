package theme

import "strings"

type ThemeRequest struct {
	Interest string `json:"interest" validate:"required"`
}

func (r *ThemeRequest) Normalize() {
	r.Interest = strings.TrimSpace(r.Interest)
}

type ThemeResponse struct {
	Themes []string `json:"themes"`
}
