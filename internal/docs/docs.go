// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/themes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "Sugere temas a partir dos interesses do estudante",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/theme.ThemeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/theme.ThemeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/ideas": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Gera exatamente cinco ideias de escrita para um tema",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/idea.IdeaRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/idea.IdeaResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/rhymes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rhymes"],
                "summary": "Busca rimas para uma palavra",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/rhyme.RhymeRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rhyme.RhymeResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/spelling": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["spelling"],
                "summary": "Aponta erros de ortografia por verso",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/spelling.SpellingRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/spelling.SpellingResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        },
        "/api/export": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/pdf"],
                "tags": ["export"],
                "summary": "Exporta o poema em PDF",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/export.ExportRequest"}}],
                "responses": {
                    "200": {"description": "PDF", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/config.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/config.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}}},
        "theme.ThemeRequest": {"type": "object", "required": ["interest"], "properties": {"interest": {"type": "string"}}},
        "theme.ThemeResponse": {"type": "object", "properties": {"themes": {"type": "array", "items": {"type": "string"}}}},
        "idea.IdeaRequest": {"type": "object", "required": ["theme"], "properties": {"theme": {"type": "string"}}},
        "idea.IdeaResponse": {"type": "object", "properties": {"ideas": {"type": "array", "items": {"type": "string"}}}},
        "rhyme.RhymeRequest": {"type": "object", "required": ["word"], "properties": {"word": {"type": "string"}, "theme": {"type": "string"}}},
        "rhyme.Rhyme": {"type": "object", "properties": {"palavra": {"type": "string"}, "definicao": {"type": "string"}}},
        "rhyme.RhymeResponse": {"type": "object", "properties": {"rhymes": {"type": "array", "items": {"$ref": "#/definitions/rhyme.Rhyme"}}}},
        "spelling.SpellingRequest": {"type": "object", "properties": {"text": {"type": "string"}}},
        "spelling.Correction": {"type": "object", "properties": {
            "original": {"type": "string"},
            "suggestions": {"type": "array", "items": {"type": "string"}},
            "reason": {"type": "string"},
            "verse_number": {"type": "integer"}
        }},
        "spelling.SpellingResponse": {"type": "object", "properties": {"errors": {"type": "array", "items": {"$ref": "#/definitions/spelling.Correction"}}}},
        "export.ExportRequest": {"type": "object", "required": ["title", "author", "text", "theme"], "properties": {
            "title": {"type": "string"},
            "author": {"type": "string"},
            "text": {"type": "string"},
            "theme": {"type": "string"}
        }}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Oficina de Poemas API",
	Description:      "Apoio com IA para estudantes escreverem poemas: temas, ideias, rimas, ortografia e PDF.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
