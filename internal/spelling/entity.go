package spelling

type Correction struct {
	Original    string   `json:"original"`
	Suggestions []string `json:"suggestions"`
	Reason      string   `json:"reason"`
	VerseNumber int      `json:"verse_number"`
}

const MaxSuggestions = 3
