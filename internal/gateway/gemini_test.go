package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	calls     []string
	responses map[string]string
	errs      map[string]error
	lastCfg   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, model)
	f.lastCfg = cfg
	if err, ok := f.errs[model]; ok {
		return nil, err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: f.responses[model]}}},
		}},
	}, nil
}

func TestGeminiGateway_Generate(t *testing.T) {
	models := &fakeModels{responses: map[string]string{"principal": "olá"}}
	g := newGeminiGateway(models, "principal", "reserva")

	out, err := g.Generate(context.Background(), "diga olá")

	require.NoError(t, err)
	assert.Equal(t, "olá", out)
	assert.Equal(t, []string{"principal"}, models.calls)
	assert.Nil(t, models.lastCfg)
}

func TestGeminiGateway_FallbackOnNotFound(t *testing.T) {
	models := &fakeModels{
		responses: map[string]string{"reserva": `["a"]`},
		errs:      map[string]error{"principal": genai.APIError{Code: 404, Message: "model not found"}},
	}
	g := newGeminiGateway(models, "principal", "reserva")

	out, err := g.GenerateStructured(context.Background(), "temas", StringList())

	require.NoError(t, err)
	assert.Equal(t, `["a"]`, out)
	assert.Equal(t, []string{"principal", "reserva"}, models.calls)
	require.NotNil(t, models.lastCfg)
	assert.Equal(t, "application/json", models.lastCfg.ResponseMIMEType)
}

func TestGeminiGateway_NoFallbackOnOtherErrors(t *testing.T) {
	models := &fakeModels{
		errs: map[string]error{"principal": genai.APIError{Code: 500, Message: "boom"}},
	}
	g := newGeminiGateway(models, "principal", "reserva")

	_, err := g.Generate(context.Background(), "x")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrModelNotFound)
	assert.Equal(t, []string{"principal"}, models.calls)
}

func TestGeminiGateway_NetworkError(t *testing.T) {
	models := &fakeModels{errs: map[string]error{"principal": errors.New("dial tcp: timeout")}}
	g := newGeminiGateway(models, "principal", "")

	_, err := g.Generate(context.Background(), "x")

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGeminiGateway_EmptyText(t *testing.T) {
	models := &fakeModels{responses: map[string]string{"principal": ""}}
	g := newGeminiGateway(models, "principal", "")

	_, err := g.Generate(context.Background(), "x")

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestUnavailable(t *testing.T) {
	g := Unavailable(errors.New("sem credenciais"))

	_, err := g.Generate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = g.GenerateStructured(context.Background(), "x", StringList())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestDecode(t *testing.T) {
	t.Run("FencedJSON", func(t *testing.T) {
		var out []string
		require.NoError(t, Decode("```json\n[\"lua\", \"mar\"]\n```", &out))
		assert.Equal(t, []string{"lua", "mar"}, out)
	})

	t.Run("Malformed", func(t *testing.T) {
		var out []string
		assert.ErrorIs(t, Decode("['lua', 'mar']", &out), ErrMalformed)
	})

	t.Run("Empty", func(t *testing.T) {
		var out []string
		assert.ErrorIs(t, Decode("  ```  ", &out), ErrEmptyResponse)
	})
}

func TestObjectSchema(t *testing.T) {
	s := Object(
		Property{Name: "palavra", Schema: String()},
		Property{Name: "verse_number", Schema: Integer()},
	)

	assert.Equal(t, genai.TypeObject, s.Type)
	assert.Equal(t, []string{"palavra", "verse_number"}, s.Required)
	assert.Equal(t, genai.TypeInteger, s.Properties["verse_number"].Type)
}
