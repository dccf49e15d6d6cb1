package rhyme

import (
	"fmt"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"google.golang.org/genai"
)

const MinRhymes = 8

const systemPrompt = `
Você é um dicionário de rimas da língua portuguesa para estudantes do ensino fundamental.

Regras:
1. Liste palavras que rimam com a palavra pedida (rima pelo som final).
2. Prefira palavras conhecidas por crianças e adolescentes.
3. Para cada palavra, dê uma definição curta (até 12 palavras).
4. Nunca inclua a própria palavra pedida.

Formato JSON esperado:
[
  {"palavra": "<rima>", "definicao": "<definição curta>"}
]
Gere sempre JSON puro e válido, sem texto fora do JSON.
`

func BuildUserPrompt(word, theme string) string {
	contexto := ""
	if theme != "" {
		contexto = fmt.Sprintf(" Sempre que possível, escolha rimas que combinem com o tema \"%s\".", theme)
	}
	return fmt.Sprintf("Liste pelo menos %d rimas para a palavra \"%s\".%s", MinRhymes, word, contexto)
}

func responseSchema() *genai.Schema {
	return gateway.ArrayOf(gateway.Object(
		gateway.Property{Name: "palavra", Schema: gateway.String()},
		gateway.Property{Name: "definicao", Schema: gateway.String()},
	))
}
