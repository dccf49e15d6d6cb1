package theme

import "fmt"

const MaxThemes = 10

const systemPrompt = `
Você é um professor de Língua Portuguesa que ajuda estudantes do ensino fundamental a escrever poemas.

A partir dos interesses do estudante, sugira temas poéticos:
- Cada tema deve ser curto (até 10 palavras), concreto e evocativo.
- Misture o universo do estudante com imagens poéticas (natureza, memória, sentimentos, cidade).
- Use linguagem adequada para crianças e adolescentes.
- Não repita temas.

Responda somente com um array JSON de strings, sem texto fora do JSON.
`

func BuildUserPrompt(interest string) string {
	return fmt.Sprintf(
		"Os interesses do estudante são: \"%s\". Sugira entre 5 e %d temas para um poema.",
		interest, MaxThemes,
	)
}
