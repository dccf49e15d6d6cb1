package spelling

type SpellingRequest struct {
	Text string `json:"text"`
}

type SpellingResponse struct {
	Errors []Correction `json:"errors"`
}
