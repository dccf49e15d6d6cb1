package rhyme

type Rhyme struct {
	Palavra   string `json:"palavra"`
	Definicao string `json:"definicao"`
}

// NotFound is the single row returned when no usable rhyme is left.
var NotFound = Rhyme{
	Palavra:   "Nenhuma rima encontrada",
	Definicao: "Tente outra palavra ou pense em rimas com o som final dela.",
}
