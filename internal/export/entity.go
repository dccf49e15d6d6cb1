package export

type BorderStyle string

const (
	BorderWaves  BorderStyle = "ondas"
	BorderStars  BorderStyle = "estrelas"
	BorderDouble BorderStyle = "dupla"
	BorderSimple BorderStyle = "simples"
)

var AllBorderStyles = []BorderStyle{BorderWaves, BorderStars, BorderDouble, BorderSimple}

func (b BorderStyle) IsValid() bool {
	for _, v := range AllBorderStyles {
		if b == v {
			return true
		}
	}
	return false
}

var AllFonts = []string{"Times", "Helvetica", "Courier"}

type Style struct {
	BackgroundColor string      `json:"background_color"`
	TitleColor      string      `json:"title_color"`
	TextColor       string      `json:"text_color"`
	BorderColor     string      `json:"border_color"`
	BorderStyle     BorderStyle `json:"border_style"`
	Font            string      `json:"font"`
}

var DefaultStyle = Style{
	BackgroundColor: "#FFFDF5",
	TitleColor:      "#2E4A7D",
	TextColor:       "#333333",
	BorderColor:     "#7BA7D9",
	BorderStyle:     BorderDouble,
	Font:            "Times",
}

type Document struct {
	Filename    string
	ContentType string
	Content     []byte
}
