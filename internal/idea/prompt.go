package idea

import "fmt"

const Count = 5

const systemPrompt = `
Você é um mediador de oficinas de escrita criativa para estudantes do ensino fundamental.

Seu papel é provocar a imaginação com perguntas e pequenas propostas de escrita:
- Cada ideia é uma frase curta, de preferência uma pergunta.
- Explore os sentidos (visão, audição, tato, olfato, paladar), memórias e sentimentos.
- Nunca escreva versos prontos: o poema é do estudante.

Responda somente com um array JSON de strings, sem texto fora do JSON.
`

func BuildUserPrompt(theme string) string {
	return fmt.Sprintf("Crie exatamente %d ideias de escrita para um poema sobre o tema \"%s\".", Count, theme)
}

var fallbackTemplates = [...]string{
	"Que cores você enxerga quando pensa em \"%s\"?",
	"Que sons combinam com \"%s\"? Descreva-os como se fossem música.",
	"Se \"%s\" tivesse um cheiro, qual seria?",
	"Que lembrança sua está ligada a \"%s\"?",
	"Como \"%s\" seria ao toque das suas mãos: macio, áspero, frio ou quente?",
	"O que \"%s\" diria se pudesse falar com você?",
	"Como \"%s\" muda da manhã para a noite?",
}

// Fallback returns deterministic sensory questions about theme.
func Fallback(theme string, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf(fallbackTemplates[i%len(fallbackTemplates)], theme))
	}
	return out
}
