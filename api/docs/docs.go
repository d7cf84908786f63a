// Package docs holds the OpenAPI description of the HTTP API, registered with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/generate": {
            "post": {
                "description": "Draws num_digits integers from [min_value, max_value], with or without duplicates",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Generate a random number sequence",
                "parameters": [
                    {
                        "description": "Generation parameters",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/generate.Request"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generate.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Service health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/health.Response"}}
                }
            }
        }
    },
    "definitions": {
        "errors.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "string"}
            }
        },
        "generate.Request": {
            "type": "object",
            "properties": {
                "num_digits": {"type": "string", "example": "6"},
                "min_value": {"type": "string", "example": "0"},
                "max_value": {"type": "string", "example": "9"},
                "duplicate_option": {"type": "string", "enum": ["allow_duplicates", "unique_numbers"], "example": "allow_duplicates"},
                "allow_duplicates": {"type": "boolean"}
            }
        },
        "generate.Response": {
            "type": "object",
            "properties": {
                "generated_output": {"type": "string", "example": "042719"},
                "values": {"type": "array", "items": {"type": "integer"}},
                "count": {"type": "integer"},
                "min": {"type": "integer"},
                "max": {"type": "integer"},
                "duplicate_option": {"type": "string"}
            }
        },
        "health.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"},
                "rate_store": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Random Sequence API",
	Description:      "Generates random integer sequences within an inclusive range, with or without duplicates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
