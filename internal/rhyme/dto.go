package rhyme

import "strings"

type RhymeRequest struct {
	Word  string `json:"word" validate:"required"`
	Theme string `json:"theme"`
}

func (r *RhymeRequest) Normalize() {
	r.Word = strings.TrimSpace(r.Word)
	r.Theme = strings.TrimSpace(r.Theme)
}

type RhymeResponse struct {
	Rhymes []Rhyme `json:"rhymes"`
}
