// Package docs holds the OpenAPI document served under /swagger.
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
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Store unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/tasks/today": {"get": {"tags": ["Tasks"], "summary": "Today's tasks", "parameters": [{"$ref": "#/parameters/UserID"}], "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/v1/tasks/inbox": {"get": {"tags": ["Tasks"], "summary": "Inbox tasks", "parameters": [{"$ref": "#/parameters/UserID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks/upcoming": {"get": {"tags": ["Tasks"], "summary": "Upcoming tasks", "parameters": [{"$ref": "#/parameters/UserID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks/completed": {"get": {"tags": ["Tasks"], "summary": "Completed tasks", "parameters": [{"$ref": "#/parameters/UserID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks/counts": {"get": {"tags": ["Tasks"], "summary": "Navigation counters", "parameters": [{"$ref": "#/parameters/UserID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/tasks/action": {"post": {"tags": ["Tasks"], "summary": "Mutate a task", "parameters": [{"$ref": "#/parameters/UserID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Missing required fields"}, "404": {"description": "Unknown task"}, "405": {"description": "Unsupported action"}}}},
        "/api/v1/tasks/{id}": {"get": {"tags": ["Tasks"], "summary": "Task detail", "parameters": [{"$ref": "#/parameters/UserID"}, {"$ref": "#/parameters/ID"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/tasks/{id}/toggle": {"patch": {"tags": ["Tasks"], "summary": "Toggle completion", "parameters": [{"$ref": "#/parameters/UserID"}, {"$ref": "#/parameters/ID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Unknown task"}}}},
        "/api/v1/projects": {"get": {"tags": ["Projects"], "summary": "List projects", "parameters": [{"$ref": "#/parameters/UserID"}, {"in": "query", "name": "search", "type": "string"}, {"in": "query", "name": "limit", "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/projects/action": {"post": {"tags": ["Projects"], "summary": "Mutate a project", "parameters": [{"$ref": "#/parameters/UserID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid name or color"}, "404": {"description": "Unknown project"}, "405": {"description": "Unsupported action"}}}},
        "/api/v1/projects/{id}": {"get": {"tags": ["Projects"], "summary": "Project detail", "parameters": [{"$ref": "#/parameters/UserID"}, {"$ref": "#/parameters/ID"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/projects/{id}/tasks": {"get": {"tags": ["Projects"], "summary": "Project tasks", "parameters": [{"$ref": "#/parameters/UserID"}, {"$ref": "#/parameters/ID"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/api/v1/projects/{id}/tasks/generate": {"post": {"tags": ["Projects"], "summary": "Generate project tasks", "parameters": [{"$ref": "#/parameters/UserID"}, {"$ref": "#/parameters/ID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown project"}, "422": {"description": "Nothing generated"}, "429": {"description": "Too Many Requests"}}}}
    },
    "parameters": {
        "UserID": {"in": "header", "name": "X-User-ID", "type": "string", "required": true, "description": "Owner id"},
        "ID": {"in": "path", "name": "id", "type": "string", "required": true}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Personal Task Management API",
	Description:      "Task scheduling and mutation engine for a personal task manager.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
