package idea_test

import (
	"context"
	"testing"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"github.com/saulo-duarte/oficina-poemas/internal/gateway/gatewaytest"
	"github.com/saulo-duarte/oficina-poemas/internal/idea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIdeas_AlwaysFive(t *testing.T) {
	cases := []struct {
		name  string
		reply string
		err   error
	}{
		{"exact", `["1","2","3","4","5"]`, nil},
		{"too_many", `["1","2","3","4","5","6","7"]`, nil},
		{"too_few", `["1","2"]`, nil},
		{"blank_entries", `["1"," ","",  "2"]`, nil},
		{"malformed", `não é json`, nil},
		{"gateway_down", ``, gateway.ErrUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := idea.NewService(&gatewaytest.Fake{Reply: tc.reply, Err: tc.err})

			ideas, err := svc.GenerateIdeas(context.Background(), "O silêncio do campo à noite")

			require.NoError(t, err)
			assert.Len(t, ideas, idea.Count)
			for _, i := range ideas {
				assert.NotEmpty(t, i)
			}
		})
	}
}

func TestGenerateIdeas_EmptyTheme(t *testing.T) {
	gw := &gatewaytest.Fake{Reply: `["1"]`}

	_, err := idea.NewService(gw).GenerateIdeas(context.Background(), " ")

	assert.ErrorIs(t, err, idea.ErrEmptyTheme)
	assert.Zero(t, gw.Calls())
}

func TestComplete(t *testing.T) {
	t.Run("KeepsModelOrderThenPads", func(t *testing.T) {
		out := idea.Complete("mar", []string{"onda?", "sal?"})

		require.Len(t, out, idea.Count)
		assert.Equal(t, "onda?", out[0])
		assert.Equal(t, "sal?", out[1])
		assert.Equal(t, idea.Fallback("mar", idea.Count)[2:], out[2:])
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, idea.Complete("mar", nil), idea.Complete("mar", nil))
		assert.Contains(t, idea.Complete("mar", nil)[0], "mar")
	})

	t.Run("Truncates", func(t *testing.T) {
		out := idea.Complete("mar", []string{"1", "2", "3", "4", "5", "6"})
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, out)
	})
}
