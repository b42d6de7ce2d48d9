// Package docs registers the Swagger document served at /swagger/doc.json.
// It is kept by hand in step with the swag annotations on the handlers.
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
        "/api/v1/commands/examples": {
            "get": {
                "description": "Runs a fixed set of English and Greek phrases through the parser.",
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "Parse the canned example phrases",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.examplesResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/commands/process": {
            "post": {
                "description": "Extracts intent, title, entities, priority and dates from a free-text command.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "Parse one command",
                "parameters": [
                    {"description": "Command text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.processReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.processResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/commands/process/batch": {
            "post": {
                "description": "Parses every item against the same clock reading and returns results in input order.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Commands"],
                "summary": "Parse a batch of commands",
                "parameters": [
                    {"description": "Commands", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.batchReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.batchResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check that the parser classifies a known command",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "Parser is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Parser is not ready", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "command.EntityRecord": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "marker": {"type": "string"},
                "span": {"type": "array", "items": {"type": "integer"}},
                "value": {"type": "string"}
            }
        },
        "command.ExampleSummary": {
            "type": "object",
            "properties": {
                "confidence": {"type": "number"},
                "entities": {"type": "integer"},
                "input": {"type": "string"},
                "intent": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "http.batchReq": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/http.processReq"}}
            }
        },
        "http.batchResp": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/http.processResp"}}
            }
        },
        "http.examplesResp": {
            "type": "object",
            "properties": {
                "examples": {"type": "array", "items": {"$ref": "#/definitions/command.ExampleSummary"}}
            }
        },
        "http.processReq": {
            "type": "object",
            "properties": {
                "original_text": {"type": "string"},
                "parsed_text": {"type": "string"},
                "tenant_id": {"type": "string"},
                "text": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "http.processResp": {
            "type": "object",
            "properties": {
                "assignees": {"type": "array", "items": {"type": "string"}},
                "client": {"type": "string"},
                "confidence": {"type": "number"},
                "description": {"type": "string"},
                "due_date": {"type": "string"},
                "entities": {"type": "array", "items": {"$ref": "#/definitions/command.EntityRecord"}},
                "estimated_hours": {"type": "number"},
                "intent": {"type": "string"},
                "original_text": {"type": "string"},
                "priority": {"type": "string"},
                "project": {"type": "string"},
                "start_date": {"type": "string"},
                "success": {"type": "boolean"},
                "tenant_id": {"type": "string"},
                "title": {"type": "string"},
                "user_id": {"type": "string"},
                "work_order": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Task Command Parser API",
	Description:      "Turns English and Greek free-text commands into structured task operations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
