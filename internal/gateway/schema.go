package gateway

import "google.golang.org/genai"

type Property struct {
	Name   string
	Schema *genai.Schema
}

func String() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func Integer() *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger}
}

func Enum(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Format: "enum", Enum: values}
}

func ArrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

func StringList() *genai.Schema {
	return ArrayOf(String())
}

// Object builds an object schema where every property is required and keeps
// the declared order.
func Object(props ...Property) *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(props)),
	}
	for _, p := range props {
		schema.Properties[p.Name] = p.Schema
		schema.Required = append(schema.Required, p.Name)
		schema.PropertyOrdering = append(schema.PropertyOrdering, p.Name)
	}
	return schema
}
