package export

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/saulo-duarte/oficina-poemas/internal/gateway"
	"google.golang.org/genai"
)

const stylePrompt = `
Você é um designer gráfico que cria folhas de poesia para estudantes do ensino fundamental.

Escolha um estilo visual que combine com o poema abaixo:
- Cores em hexadecimal no formato #RRGGBB, com bom contraste entre texto e fundo.
- Fundo claro.
- border_style: "ondas" (mar, vento, movimento), "estrelas" (noite, sonhos, céu),
  "dupla" (temas clássicos ou sérios) ou "simples".
- font: "Times", "Helvetica" ou "Courier".

Responda somente com JSON puro e válido.
`

func buildStylePrompt(req ExportRequest) string {
	excerpt := []rune(req.Text)
	if len(excerpt) > 600 {
		excerpt = excerpt[:600]
	}
	return fmt.Sprintf("%s\nTítulo: %s\nTema: %s\nPoema:\n%s", stylePrompt, req.Title, req.Theme, string(excerpt))
}

func styleSchema() *genai.Schema {
	borders := make([]string, 0, len(AllBorderStyles))
	for _, b := range AllBorderStyles {
		borders = append(borders, string(b))
	}
	return gateway.Object(
		gateway.Property{Name: "background_color", Schema: gateway.String()},
		gateway.Property{Name: "title_color", Schema: gateway.String()},
		gateway.Property{Name: "text_color", Schema: gateway.String()},
		gateway.Property{Name: "border_color", Schema: gateway.String()},
		gateway.Property{Name: "border_style", Schema: gateway.Enum(borders...)},
		gateway.Property{Name: "font", Schema: gateway.Enum(AllFonts...)},
	)
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func (s Style) Validate() error {
	for name, c := range map[string]string{
		"background_color": s.BackgroundColor,
		"title_color":      s.TitleColor,
		"text_color":       s.TextColor,
		"border_color":     s.BorderColor,
	} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidStyle, name, c)
		}
	}
	if !s.BorderStyle.IsValid() {
		return fmt.Errorf("%w: border_style=%q", ErrInvalidStyle, s.BorderStyle)
	}
	for _, f := range AllFonts {
		if s.Font == f {
			return nil
		}
	}
	return fmt.Errorf("%w: font=%q", ErrInvalidStyle, s.Font)
}

// RGB converts a validated #RRGGBB color.
func RGB(hex string) (int, int, int) {
	if !hexColor.MatchString(hex) {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
