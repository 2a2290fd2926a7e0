// Package docs holds the OpenAPI description served on /swagger.
// Regenerate with: swag init -g cmd/trip-desk/main.go
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
        "/api/v1/trips": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "List trips",
                "parameters": [
                    {"type": "string", "description": "Filter by status", "name": "status", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Limit", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TripListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/trips/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Get a trip",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TripResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/trips/{id}/draft": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Get the current draft",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DraftResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Open a draft",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.DraftResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Edit the draft",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true},
                    {"description": "Edits", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["drafts"],
                "summary": "Discard the draft",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/trips/{id}/draft/items": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Add a record to a collection",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true},
                    {"description": "Collection and kind", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AddItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AddItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Remove a record from a collection",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true},
                    {"description": "Collection and index", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RemoveItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DraftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/trips/{id}/draft/cost": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Cost summary of the draft",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cost.Summary"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/v1/trips/{id}/draft/save": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["drafts"],
                "summary": "Save the draft",
                "parameters": [
                    {"type": "string", "description": "Trip ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DraftResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "cost.Summary": {
            "type": "object",
            "properties": {
                "accommodationCash": {"type": "number"},
                "accommodationPoints": {"type": "number"},
                "transportationCash": {"type": "number"},
                "transportationPoints": {"type": "number"},
                "grandTotalCash": {"type": "number"},
                "grandTotalPoints": {"type": "number"}
            }
        },
        "dto.EditRequest": {
            "type": "object",
            "properties": {
                "path": {"type": "string", "example": "destinations[0].accommodationOptions[0].hotel.pricePerNight"},
                "value": {"type": "object"}
            }
        },
        "dto.UpdateDraftRequest": {
            "type": "object",
            "properties": {
                "edits": {"type": "array", "items": {"$ref": "#/definitions/dto.EditRequest"}}
            }
        },
        "dto.AddItemRequest": {
            "type": "object",
            "properties": {
                "collection": {"type": "string", "example": "destinations[0].accommodationOptions"},
                "kind": {"type": "string", "example": "accommodation"}
            }
        },
        "dto.RemoveItemRequest": {
            "type": "object",
            "properties": {
                "collection": {"type": "string", "example": "destinations[0].accommodationOptions"},
                "index": {"type": "integer"}
            }
        },
        "dto.DraftResponse": {
            "type": "object",
            "properties": {
                "tripId": {"type": "string"},
                "revision": {"type": "integer"},
                "document": {"type": "object"},
                "cost": {"$ref": "#/definitions/cost.Summary"},
                "openedAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "savedAt": {"type": "string"}
            }
        },
        "dto.AddItemResponse": {
            "allOf": [
                {"$ref": "#/definitions/dto.DraftResponse"},
                {"type": "object", "properties": {"index": {"type": "integer"}}}
            ]
        },
        "dto.TripSummaryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "ownerId": {"type": "string"},
                "status": {"type": "string"},
                "hasRecommendation": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "dto.TripListResponse": {
            "type": "object",
            "properties": {
                "trips": {"type": "array", "items": {"$ref": "#/definitions/dto.TripSummaryResponse"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "dto.TripResponse": {
            "allOf": [
                {"$ref": "#/definitions/dto.TripSummaryResponse"},
                {"type": "object", "properties": {
                    "intake": {"type": "object"},
                    "destinationRecommendation": {"type": "object"}
                }}
            ]
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Operator token: Bearer <jwt>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Trip Desk API",
	Description:      "Operator API for editing trip recommendations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
