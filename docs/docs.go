// Package docs registers the OpenAPI description served at /api/swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@connectgrower.dev"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "User signup",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.SignupInput"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/service.AuthResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.LoginInput"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AuthResult"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {"tags": ["auth"], "summary": "Logout", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/auth/me": {
            "get": {
                "tags": ["auth"], "summary": "Current identity", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}
            }
        },
        "/auth/locale": {
            "put": {
                "tags": ["auth"], "summary": "Store the preferred display language", "security": [{"BearerAuth": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}
            }
        },
        "/auth/verify": {
            "post": {"tags": ["auth"], "summary": "Confirm an email address", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}}}
        },
        "/auth/google/url": {
            "get": {"tags": ["auth"], "summary": "Google sign-in URL", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/google/callback": {
            "post": {"tags": ["auth"], "summary": "Complete Google sign-in", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.AuthResult"}}}}
        },
        "/posts": {
            "get": {
                "tags": ["posts"], "summary": "List posts, newest first",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "before", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}}}
            },
            "post": {
                "tags": ["posts"], "summary": "Create a post", "security": [{"BearerAuth": []}],
                "consumes": ["application/json", "multipart/form-data"],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Post"}}}
            }
        },
        "/posts/{id}": {
            "get": {
                "tags": ["posts"], "summary": "Get a post",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}}
            }
        },
        "/posts/{id}/like": {
            "post": {"tags": ["posts"], "summary": "Like a post", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["posts"], "summary": "Remove a like", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/posts/{id}/comments": {
            "get": {"tags": ["posts"], "summary": "List comments", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["posts"], "summary": "Append a comment", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/posts/{id}/translation": {
            "get": {
                "tags": ["posts"], "summary": "Translate a post for a reader",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "lang", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/messages": {
            "get": {"tags": ["messages"], "summary": "List chat messages, oldest first", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["messages"], "summary": "Send a chat message", "security": [{"BearerAuth": []}], "consumes": ["application/json", "multipart/form-data"], "responses": {"201": {"description": "Created"}}}
        },
        "/messages/{id}/like": {
            "post": {"tags": ["messages"], "summary": "Like a message", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["messages"], "summary": "Remove a like", "security": [{"BearerAuth": []}], "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/profile/me": {
            "get": {"tags": ["profile"], "summary": "Get the caller's profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserProfile"}}}},
            "put": {"tags": ["profile"], "summary": "Save the caller's profile (merge)", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserProfile"}}}}
        },
        "/profile/me/posts": {
            "get": {"tags": ["profile"], "summary": "The caller's posts", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/users/{id}/profile": {
            "get": {"tags": ["profile"], "summary": "A grower's public profile", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/translate": {
            "post": {"tags": ["translation"], "summary": "Translate forum text (fail-open)", "responses": {"200": {"description": "OK"}}}
        },
        "/feature-flags": {
            "get": {"tags": ["config"], "summary": "Feature flag states", "responses": {"200": {"description": "OK"}}}
        },
        "/i18n": {
            "get": {"tags": ["i18n"], "summary": "UI strings for the request locale", "responses": {"200": {"description": "OK"}}}
        },
        "/i18n/{locale}": {
            "get": {"tags": ["i18n"], "summary": "UI strings for one locale", "parameters": [{"type": "string", "name": "locale", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/ws/ticket": {
            "post": {"tags": ["live"], "summary": "Issue a websocket ticket", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/ws/live": {
            "get": {
                "tags": ["live"], "summary": "Live collection subscription",
                "parameters": [
                    {"type": "string", "name": "collection", "in": "query", "required": true},
                    {"type": "string", "name": "ticket", "in": "query", "required": true}
                ],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "code": {"type": "string"}, "details": {"type": "string"}}
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "email": {"type": "string"}, "display_name": {"type": "string"},
                "email_verified": {"type": "boolean"}, "locale": {"type": "string"}
            }
        },
        "models.Comment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "text": {"type": "string"}, "author_id": {"type": "integer"},
                "author_name": {"type": "string"}, "created_at": {"type": "string"}, "received_at": {"type": "string"}
            }
        },
        "models.Post": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"}, "title": {"type": "string"}, "content": {"type": "string"},
                "image_url": {"type": "string"}, "preview_url": {"type": "string"},
                "author_id": {"type": "integer"}, "author_name": {"type": "string"},
                "likes": {"type": "array", "items": {"type": "integer"}},
                "comments": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}},
                "created_at": {"type": "string"}
            }
        },
        "models.UserProfile": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"}, "display_name": {"type": "string"}, "bio": {"type": "string"},
                "location": {"type": "string"}, "farm_name": {"type": "string"}, "country_code": {"type": "string"},
                "email": {"type": "string"}, "updated_at": {"type": "string"}
            }
        },
        "service.SignupInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"}, "password": {"type": "string"}, "confirm_password": {"type": "string"},
                "display_name": {"type": "string"}, "locale": {"type": "string"}
            }
        },
        "service.LoginInput": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "service.AuthResult": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8375",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "ConnectGrower API",
	Description:      "Growers community API: posts, likes, comments, translated chat, profiles and live collections.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
