package spelling

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"google.golang.org/genai"
)

const systemPrompt = `
Você é um revisor ortográfico gentil para poemas escritos por estudantes do ensino fundamental.

Regras:
1. Aponte apenas erros de ortografia e acentuação; não corrija estilo, rima ou licenças poéticas.
2. Para cada erro, informe a palavra exatamente como foi escrita, de 1 a 3 sugestões,
   um motivo curto e amigável e o número do verso (começando em 1).
3. Se não houver erros, responda com um array vazio.

Formato JSON esperado:
[
  {"original": "<palavra>", "suggestions": ["<sugestão>"], "reason": "<motivo>", "verse_number": 1}
]
Gere sempre JSON puro e válido, sem texto fora do JSON.
`

// BuildUserPrompt numbers every line so the model can refer to verses by index.
func BuildUserPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Revise o poema abaixo. Cada verso está numerado.\n\n")
	for i, line := range strings.Split(text, "\n") {
		fmt.Fprintf(&b, "%d: %s\n", i+1, strings.TrimRight(line, "\r"))
	}
	return b.String()
}

func responseSchema() *genai.Schema {
	return gateway.ArrayOf(gateway.Object(
		gateway.Property{Name: "original", Schema: gateway.String()},
		gateway.Property{Name: "suggestions", Schema: gateway.StringList()},
		gateway.Property{Name: "reason", Schema: gateway.String()},
		gateway.Property{Name: "verse_number", Schema: gateway.Integer()},
	))
}
