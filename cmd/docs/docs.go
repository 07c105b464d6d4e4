// Package docs holds the Swagger document served under /swagger.
// It is maintained by hand and lists every /api/v1 route with its status codes.
// Request and response schemas live in the handler annotations.
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
        "/": {"get": {"tags": ["root"], "summary": "Show the status of server.", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/categories": {"get": {"tags": ["categories"], "summary": "List categories", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/transactions": {"get": {"tags": ["transactions"], "summary": "List transactions", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "500": {"description": "Failed to list transactions"}}}},
        "/transactions/demo": {"post": {"tags": ["transactions"], "summary": "Load demo data", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/transactions/upload": {"post": {"tags": ["transactions"], "summary": "Upload a statement", "consumes": ["multipart/form-data"], "produces": ["application/json"], "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Missing file"}}}},
        "/transactions/{transactionID}": {"get": {"tags": ["transactions"], "summary": "Get a transaction", "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Transaction not found"}}}},
        "/transactions/{transactionID}/category": {"patch": {"tags": ["transactions"], "summary": "Recategorize a transaction", "consumes": ["application/json"], "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}, "404": {"description": "Transaction not found"}}}},
        "/transactions/{transactionID}/history": {"get": {"tags": ["transactions"], "summary": "Get category history", "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Transaction not found"}}}},
        "/transactions/{transactionID}/suggestion": {"get": {"tags": ["transactions"], "summary": "Suggest a category", "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Transaction not found"}}}},
        "/transactions/{transactionID}/suggestion/apply": {"post": {"tags": ["transactions"], "summary": "Apply the category suggestion", "parameters": [{"type": "string", "name": "transactionID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Transaction or suggestion not found"}}}},
        "/audit-log": {"get": {"tags": ["audit"], "summary": "List the audit log", "parameters": [{"type": "integer", "name": "limit", "in": "query"}, {"type": "string", "name": "nextToken", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query parameters"}}}},
        "/dashboard/summary": {"get": {"tags": ["dashboard"], "summary": "Dashboard summary", "responses": {"200": {"description": "OK"}}}},
        "/table": {"get": {"tags": ["table"], "summary": "Get the table view", "responses": {"200": {"description": "OK"}}}},
        "/table/search": {"put": {"tags": ["table"], "summary": "Set the search term", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}},
        "/table/sort": {"post": {"tags": ["table"], "summary": "Sort by a column", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}},
        "/table/filters": {
            "put": {"tags": ["table"], "summary": "Replace the filters", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}},
            "delete": {"tags": ["table"], "summary": "Clear filters and search", "responses": {"200": {"description": "OK"}}}
        },
        "/table/filters/category": {"post": {"tags": ["table"], "summary": "Toggle a category filter", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}}}},
        "/table/selection/toggle": {"post": {"tags": ["table"], "summary": "Toggle a row selection", "responses": {"200": {"description": "OK"}, "404": {"description": "Row not visible"}}}},
        "/table/selection/all": {"post": {"tags": ["table"], "summary": "Toggle select all", "responses": {"200": {"description": "OK"}}}},
        "/table/bulk/category": {"post": {"tags": ["table"], "summary": "Recategorize selected rows", "responses": {"200": {"description": "OK"}, "409": {"description": "No transactions selected"}}}},
        "/table/bulk/flag": {"post": {"tags": ["table"], "summary": "Toggle the flag of selected rows", "responses": {"200": {"description": "OK"}, "409": {"description": "No transactions selected"}}}},
        "/insights": {"get": {"tags": ["insights"], "summary": "Generate insights", "responses": {"200": {"description": "OK"}, "429": {"description": "Rate limit exceeded"}}}},
        "/chat": {
            "get": {"tags": ["insights"], "summary": "Chat transcript", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["insights"], "summary": "Chat with the assistant", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid input"}, "429": {"description": "Rate limit exceeded"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "FinSight Dashboard API",
	Description:      "Personal finance dashboard: metrics, transactions table, audit trail and AI insights.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
