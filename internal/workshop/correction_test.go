package workshop_test

import (
	"testing"

	"github.com/saulo-duarte/oficina-poemas/internal/spelling"
	"github.com/saulo-duarte/oficina-poemas/internal/workshop"
	"github.com/stretchr/testify/assert"
)

func TestApplyCorrection(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		correction spelling.Correction
		suggestion string
		want       string
		applied    bool
	}{
		{
			name:       "first_occurrence_only",
			text:       "A caza e a caza",
			correction: spelling.Correction{Original: "caza", VerseNumber: 1},
			suggestion: "casa",
			want:       "A casa e a caza",
			applied:    true,
		},
		{
			name:       "word_missing",
			text:       "casa bonita",
			correction: spelling.Correction{Original: "caza", VerseNumber: 1},
			suggestion: "casa",
			want:       "casa bonita",
		},
		{
			name:       "only_target_verse",
			text:       "a caza velha\nminha caza",
			correction: spelling.Correction{Original: "caza", VerseNumber: 2},
			suggestion: "casa",
			want:       "a caza velha\nminha casa",
			applied:    true,
		},
		{
			name:       "case_insensitive",
			text:       "Caza amarela",
			correction: spelling.Correction{Original: "caza", VerseNumber: 1},
			suggestion: "Casa",
			want:       "Casa amarela",
			applied:    true,
		},
		{
			name:       "accented_case_folding",
			text:       "o ÓRFAO do mar",
			correction: spelling.Correction{Original: "órfao", VerseNumber: 1},
			suggestion: "órfão",
			want:       "o órfão do mar",
			applied:    true,
		},
		{
			name:       "no_match_inside_accented_word",
			text:       "no verão",
			correction: spelling.Correction{Original: "ão", VerseNumber: 1},
			suggestion: "ao",
			want:       "no verão",
		},
		{
			name:       "punctuation_is_a_boundary",
			text:       "Que noite, caza!",
			correction: spelling.Correction{Original: "caza", VerseNumber: 1},
			suggestion: "casa",
			want:       "Que noite, casa!",
			applied:    true,
		},
		{
			name:       "suggestion_with_line_break",
			text:       "A caza\nsob o ceu",
			correction: spelling.Correction{Original: "caza", VerseNumber: 1},
			suggestion: "ca\nsa",
			want:       "A caza\nsob o ceu",
		},
		{
			name:       "suggestion_with_carriage_return",
			text:       "A caza\nsob o ceu",
			correction: spelling.Correction{Original: "caza", VerseNumber: 1},
			suggestion: "ca\rsa",
			want:       "A caza\nsob o ceu",
		},
		{
			name:       "verse_out_of_range",
			text:       "caza",
			correction: spelling.Correction{Original: "caza", VerseNumber: 3},
			suggestion: "casa",
			want:       "caza",
		},
		{
			name:       "regexp_characters_are_literal",
			text:       "a.b ab",
			correction: spelling.Correction{Original: "a.b", VerseNumber: 1},
			suggestion: "x",
			want:       "x ab",
			applied:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, applied := workshop.ApplyCorrection(tc.text, tc.correction, tc.suggestion)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.applied, applied)
		})
	}
}
