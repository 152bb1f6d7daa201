// Package docs registers the OpenAPI document served under /swagger.
// Regenerate the template from the handler annotations with:
//
//	swag init -g cmd/server/main.go -o docs --v3.1
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "servers": [
        {
            "url": "{{.BasePath}}"
        }
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "description": "Authenticate with username and password. The token is returned and also set as an HttpOnly cookie.",
                "tags": [
                    "auth"
                ],
                "summary": "User login",
                "requestBody": {
                    "description": "Login credentials",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.LoginRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.LoginResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "description": "Revoke the current token and clear the session cookie",
                "tags": [
                    "auth"
                ],
                "summary": "User logout",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/me": {
            "get": {
                "description": "Return the authenticated user as currently stored",
                "tags": [
                    "auth"
                ],
                "summary": "Current user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.UserResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/bootstrap": {
            "get": {
                "description": "Report whether the initial administrator can still be created",
                "tags": [
                    "auth"
                ],
                "summary": "Bootstrap status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.BootstrapResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/auth/init-admin": {
            "post": {
                "description": "Create the first administrator account. Only possible once for the lifetime of the system.",
                "tags": [
                    "auth"
                ],
                "summary": "Create the initial administrator",
                "requestBody": {
                    "description": "Administrator credentials",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.InitAdminRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.UserResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/users/check": {
            "get": {
                "description": "Report whether any user account exists",
                "tags": [
                    "users"
                ],
                "summary": "Check for users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.HasUsersResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/clients": {
            "get": {
                "description": "List the customers and suppliers the caller may see",
                "tags": [
                    "clients"
                ],
                "summary": "List clients",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search name, contact, phone or email",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "clientType",
                        "in": "query",
                        "required": false,
                        "description": "CUSTOMER or SUPPLIER",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "type": "array",
                                                    "items": {
                                                        "$ref": "#/components/schemas/handler.ClientResponse"
                                                    }
                                                },
                                                "meta": {
                                                    "$ref": "#/components/schemas/dto.Meta"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "clients"
                ],
                "summary": "Create client",
                "requestBody": {
                    "description": "Client",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.ClientRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ClientResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/clients/{id}": {
            "get": {
                "tags": [
                    "clients"
                ],
                "summary": "Get client",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Client ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ClientResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "description": "Replace every editable field of a client",
                "tags": [
                    "clients"
                ],
                "summary": "Update client",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Client ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "description": "Client",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.ClientRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ClientResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "clients"
                ],
                "summary": "Delete client",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Client ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/contracts": {
            "get": {
                "description": "List contracts visible to the caller. forInvoices and forPayments drop fully settled contracts and attach balances over all records; withSettlement attaches balances over finalized records.",
                "tags": [
                    "contracts"
                ],
                "summary": "List contracts",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search number, title, client or project name",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "UNSIGNED or SIGNED",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "contractType",
                        "in": "query",
                        "required": false,
                        "description": "SALES or PURCHASE",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "clientId",
                        "in": "query",
                        "required": false,
                        "description": "Client ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "projectId",
                        "in": "query",
                        "required": false,
                        "description": "Project ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "startDate",
                        "in": "query",
                        "required": false,
                        "description": "Start date lower bound (YYYY-MM-DD)",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "endDate",
                        "in": "query",
                        "required": false,
                        "description": "Start date upper bound (YYYY-MM-DD)",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "startDateFrom",
                        "in": "query",
                        "required": false,
                        "description": "Alias of startDate",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "startDateTo",
                        "in": "query",
                        "required": false,
                        "description": "Alias of endDate",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "forInvoices",
                        "in": "query",
                        "required": false,
                        "description": "Only contracts not fully invoiced",
                        "schema": {
                            "type": "boolean"
                        }
                    },
                    {
                        "name": "forPayments",
                        "in": "query",
                        "required": false,
                        "description": "Only contracts not fully paid",
                        "schema": {
                            "type": "boolean"
                        }
                    },
                    {
                        "name": "withSettlement",
                        "in": "query",
                        "required": false,
                        "description": "Attach finalized balances",
                        "schema": {
                            "type": "boolean"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "type": "array",
                                                    "items": {
                                                        "$ref": "#/components/schemas/handler.ContractResponse"
                                                    }
                                                },
                                                "meta": {
                                                    "$ref": "#/components/schemas/dto.Meta"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "contracts"
                ],
                "summary": "Create contract",
                "requestBody": {
                    "description": "Contract",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.ContractRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ContractResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/contracts/{id}": {
            "get": {
                "description": "Contract with client, project, invoices, payments and finalized balances",
                "tags": [
                    "contracts"
                ],
                "summary": "Get contract",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Contract ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ContractDetailResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "contracts"
                ],
                "summary": "Update contract",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Contract ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "description": "Contract",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.ContractRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ContractResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "contracts"
                ],
                "summary": "Delete contract",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Contract ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/invoices": {
            "get": {
                "description": "List the invoice kinds the caller may see",
                "tags": [
                    "invoices"
                ],
                "summary": "List invoices",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search number, client, contract or project",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "UNISSUED or ISSUED",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "invoiceType",
                        "in": "query",
                        "required": false,
                        "description": "ISSUED or RECEIVED",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "clientId",
                        "in": "query",
                        "required": false,
                        "description": "Client ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "contractId",
                        "in": "query",
                        "required": false,
                        "description": "Contract ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "startDate",
                        "in": "query",
                        "required": false,
                        "description": "Invoice date lower bound (YYYY-MM-DD)",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "endDate",
                        "in": "query",
                        "required": false,
                        "description": "Invoice date upper bound (YYYY-MM-DD)",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "invoiceDateFrom",
                        "in": "query",
                        "required": false,
                        "description": "Alias of startDate",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "invoiceDateTo",
                        "in": "query",
                        "required": false,
                        "description": "Alias of endDate",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "type": "array",
                                                    "items": {
                                                        "$ref": "#/components/schemas/handler.InvoiceResponse"
                                                    }
                                                },
                                                "meta": {
                                                    "$ref": "#/components/schemas/dto.Meta"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "invoices"
                ],
                "summary": "Create invoice",
                "requestBody": {
                    "description": "Invoice",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.InvoiceRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.InvoiceResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/invoices/{id}": {
            "get": {
                "tags": [
                    "invoices"
                ],
                "summary": "Get invoice",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.InvoiceResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "invoices"
                ],
                "summary": "Update invoice",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "description": "Invoice",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.InvoiceRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.InvoiceResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "invoices"
                ],
                "summary": "Delete invoice",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/invoices/next-number": {
            "get": {
                "description": "The number is not reserved; a concurrent create may take it",
                "tags": [
                    "invoices"
                ],
                "summary": "Preview next invoice number",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.NextNumberResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/navigation": {
            "get": {
                "description": "The menu entries and home-page sections the caller may open",
                "tags": [
                    "navigation"
                ],
                "summary": "Navigation for the caller",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.NavigationResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/payments": {
            "get": {
                "description": "List the payment kinds the caller may see, newest payment date first",
                "tags": [
                    "payments"
                ],
                "summary": "List payments",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search number, reference, client or contract",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "UNPAID or PAID",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "paymentType",
                        "in": "query",
                        "required": false,
                        "description": "RECEIPT or EXPENSE",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "clientId",
                        "in": "query",
                        "required": false,
                        "description": "Client ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "contractId",
                        "in": "query",
                        "required": false,
                        "description": "Contract ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "invoiceId",
                        "in": "query",
                        "required": false,
                        "description": "Invoice ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    },
                    {
                        "name": "startDate",
                        "in": "query",
                        "required": false,
                        "description": "Payment date lower bound (YYYY-MM-DD)",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "endDate",
                        "in": "query",
                        "required": false,
                        "description": "Payment date upper bound (YYYY-MM-DD)",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "paymentDateFrom",
                        "in": "query",
                        "required": false,
                        "description": "Alias of startDate",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "paymentDateTo",
                        "in": "query",
                        "required": false,
                        "description": "Alias of endDate",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "type": "array",
                                                    "items": {
                                                        "$ref": "#/components/schemas/handler.PaymentResponse"
                                                    }
                                                },
                                                "meta": {
                                                    "$ref": "#/components/schemas/dto.Meta"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "payments"
                ],
                "summary": "Create payment",
                "requestBody": {
                    "description": "Payment",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.PaymentRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.PaymentResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/payments/{id}": {
            "get": {
                "tags": [
                    "payments"
                ],
                "summary": "Get payment",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Payment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.PaymentResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "payments"
                ],
                "summary": "Update payment",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Payment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "description": "Payment",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.PaymentRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.PaymentResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "payments"
                ],
                "summary": "Delete payment",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Payment ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/payments/next-number": {
            "get": {
                "description": "The number is not reserved; a concurrent create may take it",
                "tags": [
                    "payments"
                ],
                "summary": "Preview next payment number",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.NextNumberResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/projects": {
            "get": {
                "tags": [
                    "projects"
                ],
                "summary": "List projects",
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Search name or description",
                        "schema": {
                            "type": "string"
                        }
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Project status",
                        "schema": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "type": "array",
                                                    "items": {
                                                        "$ref": "#/components/schemas/handler.ProjectResponse"
                                                    }
                                                },
                                                "meta": {
                                                    "$ref": "#/components/schemas/dto.Meta"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "tags": [
                    "projects"
                ],
                "summary": "Create project",
                "requestBody": {
                    "description": "Project",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.ProjectRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ProjectResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/projects/{id}": {
            "get": {
                "description": "Project with its contracts and gross margin",
                "tags": [
                    "projects"
                ],
                "summary": "Get project",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ProjectDetailResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "projects"
                ],
                "summary": "Update project",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "description": "Project",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.ProjectRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.ProjectResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Delete a project. Its contracts are kept and detached.",
                "tags": [
                    "projects"
                ],
                "summary": "Delete project",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Project ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/system-settings": {
            "get": {
                "description": "Company name and logo. The record is created with defaults on first read.",
                "tags": [
                    "system-settings"
                ],
                "summary": "Get system settings",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.SettingsResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "tags": [
                    "system-settings"
                ],
                "summary": "Update system settings",
                "requestBody": {
                    "description": "Settings",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.UpdateSettingsRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.SettingsResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/system-settings/logo": {
            "post": {
                "description": "Accepts JPEG, PNG, GIF or WebP images. The type is detected from the file content.",
                "tags": [
                    "system-settings"
                ],
                "summary": "Upload company logo",
                "requestBody": {
                    "required": true,
                    "content": {
                        "multipart/form-data": {
                            "schema": {
                                "type": "object",
                                "required": [
                                    "file"
                                ],
                                "properties": {
                                    "file": {
                                        "type": "string",
                                        "format": "binary",
                                        "description": "Logo image"
                                    }
                                }
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.SettingsResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "system-settings"
                ],
                "summary": "Remove company logo",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.SettingsResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "description": "Reports healthy when the database answers a ping",
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.HealthResponse"
                                }
                            }
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/handler.HealthResponse"
                                }
                            }
                        }
                    }
                }
            }
        },
        "/system/info": {
            "get": {
                "description": "Returns the service name, version and uptime",
                "tags": [
                    "system"
                ],
                "summary": "Get system information",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.SystemInfoResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                }
            }
        },
        "/users": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "type": "array",
                                                    "items": {
                                                        "$ref": "#/components/schemas/handler.UserResponse"
                                                    }
                                                },
                                                "meta": {
                                                    "$ref": "#/components/schemas/dto.Meta"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "post": {
                "description": "Create a user account. Only administrators may create administrators.",
                "tags": [
                    "users"
                ],
                "summary": "Create user",
                "requestBody": {
                    "description": "User",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.CreateUserRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "201": {
                        "description": "Created",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.UserResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users/{id}": {
            "get": {
                "tags": [
                    "users"
                ],
                "summary": "Get user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.UserResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "description": "Update the supplied fields of a user. Changing credentials or permissions revokes the user's tokens.",
                "tags": [
                    "users"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "requestBody": {
                    "description": "Fields to change",
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/handler.UpdateUserRequest"
                            }
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "data": {
                                                    "$ref": "#/components/schemas/handler.UserResponse"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "description": "Delete a user. The last remaining user cannot be deleted.",
                "tags": [
                    "users"
                ],
                "summary": "Delete user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "User ID",
                        "schema": {
                            "type": "string",
                            "format": "uuid"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/dto.Response"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "allOf": [
                                        {
                                            "$ref": "#/components/schemas/dto.Response"
                                        },
                                        {
                                            "type": "object",
                                            "properties": {
                                                "error": {
                                                    "$ref": "#/components/schemas/dto.ErrorInfo"
                                                }
                                            }
                                        }
                                    ]
                                }
                            }
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "components": {
        "securitySchemes": {
            "BearerAuth": {
                "type": "apiKey",
                "in": "header",
                "name": "Authorization",
                "description": "Bearer token issued by /auth/login"
            }
        },
        "schemas": {
            "dto.ErrorInfo": {
                "type": "object",
                "properties": {
                    "code": {
                        "type": "string"
                    },
                    "message": {
                        "type": "string"
                    },
                    "request_id": {
                        "type": "string"
                    },
                    "details": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/dto.ValidationDetail"
                        }
                    }
                }
            },
            "dto.Meta": {
                "type": "object",
                "properties": {
                    "total": {
                        "type": "integer",
                        "format": "int64"
                    }
                }
            },
            "dto.Response": {
                "type": "object",
                "properties": {
                    "success": {
                        "type": "boolean"
                    },
                    "data": {},
                    "message": {
                        "type": "string"
                    },
                    "error": {
                        "$ref": "#/components/schemas/dto.ErrorInfo"
                    },
                    "meta": {
                        "$ref": "#/components/schemas/dto.Meta"
                    }
                }
            },
            "dto.ValidationDetail": {
                "type": "object",
                "properties": {
                    "field": {
                        "type": "string"
                    },
                    "message": {
                        "type": "string"
                    }
                }
            },
            "handler.BalanceResponse": {
                "type": "object",
                "properties": {
                    "contractAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "settled": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "remaining": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "isCompleted": {
                        "type": "boolean"
                    },
                    "counted": {
                        "type": "integer"
                    },
                    "excluded": {
                        "type": "integer"
                    },
                    "policy": {
                        "type": "string"
                    }
                }
            },
            "handler.BootstrapResponse": {
                "type": "object",
                "properties": {
                    "hasUsers": {
                        "type": "boolean"
                    },
                    "initialized": {
                        "type": "boolean"
                    },
                    "state": {
                        "type": "string"
                    }
                }
            },
            "handler.ClientRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "contactName": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "phone": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "email": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "address": {
                        "type": "string",
                        "maxLength": 500
                    },
                    "clientType": {
                        "type": "string",
                        "enum": [
                            "CUSTOMER",
                            "SUPPLIER"
                        ]
                    }
                },
                "required": [
                    "name"
                ]
            },
            "handler.ClientResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    },
                    "contactName": {
                        "type": "string"
                    },
                    "phone": {
                        "type": "string"
                    },
                    "email": {
                        "type": "string"
                    },
                    "address": {
                        "type": "string"
                    },
                    "clientType": {
                        "type": "string"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.ContractClientResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    },
                    "contactName": {
                        "type": "string"
                    },
                    "phone": {
                        "type": "string"
                    },
                    "email": {
                        "type": "string"
                    },
                    "clientType": {
                        "type": "string"
                    }
                }
            },
            "handler.ContractDetailResponse": {
                "type": "object",
                "properties": {
                    "client": {
                        "$ref": "#/components/schemas/handler.ContractClientResponse"
                    },
                    "project": {
                        "$ref": "#/components/schemas/handler.ContractProjectResponse"
                    },
                    "invoices": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/handler.ContractInvoiceResponse"
                        }
                    },
                    "payments": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/handler.ContractPaymentResponse"
                        }
                    }
                }
            },
            "handler.ContractInvoiceResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoiceNumber": {
                        "type": "string"
                    },
                    "invoiceType": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "taxAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "totalAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "invoiceDate": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.ContractPaymentResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "paymentNumber": {
                        "type": "string"
                    },
                    "paymentType": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "paymentMethod": {
                        "type": "string"
                    },
                    "paymentDate": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.ContractProjectResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    }
                }
            },
            "handler.ContractRequest": {
                "type": "object",
                "properties": {
                    "contractNumber": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "title": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "contractType": {
                        "type": "string",
                        "enum": [
                            "SALES",
                            "PURCHASE"
                        ]
                    },
                    "status": {
                        "type": "string",
                        "enum": [
                            "UNSIGNED",
                            "SIGNED"
                        ]
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "startDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "endDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "description": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "projectId": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "required": [
                    "contractNumber",
                    "title",
                    "clientId"
                ]
            },
            "handler.ContractResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "contractNumber": {
                        "type": "string"
                    },
                    "title": {
                        "type": "string"
                    },
                    "contractType": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "startDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "endDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "description": {
                        "type": "string"
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "clientName": {
                        "type": "string"
                    },
                    "projectId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "projectName": {
                        "type": "string"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "invoicing": {
                        "$ref": "#/components/schemas/handler.BalanceResponse"
                    },
                    "payment": {
                        "$ref": "#/components/schemas/handler.BalanceResponse"
                    }
                }
            },
            "handler.CreateUserRequest": {
                "type": "object",
                "properties": {
                    "username": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "password": {
                        "type": "string",
                        "minLength": 6,
                        "maxLength": 128
                    },
                    "permissions": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    },
                    "isAdmin": {
                        "type": "boolean"
                    }
                },
                "required": [
                    "username",
                    "password"
                ]
            },
            "handler.HasUsersResponse": {
                "type": "object",
                "properties": {
                    "hasUsers": {
                        "type": "boolean"
                    }
                }
            },
            "handler.HealthResponse": {
                "type": "object",
                "properties": {
                    "status": {
                        "type": "string",
                        "example": "healthy"
                    },
                    "time": {
                        "type": "string",
                        "example": "2026-01-23T12:00:00Z"
                    },
                    "database": {
                        "type": "string",
                        "example": "ok"
                    }
                }
            },
            "handler.InitAdminRequest": {
                "type": "object",
                "properties": {
                    "username": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "password": {
                        "type": "string",
                        "minLength": 6,
                        "maxLength": 128
                    }
                },
                "required": [
                    "username",
                    "password"
                ]
            },
            "handler.InvoiceRequest": {
                "type": "object",
                "properties": {
                    "invoiceNumber": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "invoiceType": {
                        "type": "string",
                        "enum": [
                            "ISSUED",
                            "RECEIVED"
                        ]
                    },
                    "status": {
                        "type": "string",
                        "enum": [
                            "UNISSUED",
                            "ISSUED"
                        ]
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "taxAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "taxRate": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "totalAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "invoiceDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "dueDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "description": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "contractId": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "required": [
                    "clientId"
                ]
            },
            "handler.InvoiceResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoiceNumber": {
                        "type": "string"
                    },
                    "invoiceType": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "taxAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "totalAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "invoiceDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "dueDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "description": {
                        "type": "string"
                    },
                    "notes": {
                        "type": "string"
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "clientName": {
                        "type": "string"
                    },
                    "contractId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "contractNumber": {
                        "type": "string"
                    },
                    "contractTitle": {
                        "type": "string"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.LoginRequest": {
                "type": "object",
                "properties": {
                    "username": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "password": {
                        "type": "string",
                        "maxLength": 128
                    }
                },
                "required": [
                    "username",
                    "password"
                ]
            },
            "handler.LoginResponse": {
                "type": "object",
                "properties": {
                    "token": {
                        "type": "string"
                    },
                    "expiresAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "user": {
                        "$ref": "#/components/schemas/handler.UserResponse"
                    }
                }
            },
            "handler.MarginResponse": {
                "type": "object",
                "properties": {
                    "salesCount": {
                        "type": "integer"
                    },
                    "purchaseCount": {
                        "type": "integer"
                    },
                    "salesAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "purchaseAmount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "grossProfit": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "profitRate": {
                        "type": "string",
                        "format": "decimal"
                    }
                }
            },
            "handler.MenuItemResponse": {
                "type": "object",
                "properties": {
                    "key": {
                        "type": "string"
                    },
                    "label": {
                        "type": "string"
                    },
                    "path": {
                        "type": "string"
                    },
                    "children": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/handler.MenuItemResponse"
                        }
                    }
                }
            },
            "handler.NavigationResponse": {
                "type": "object",
                "properties": {
                    "menu": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/handler.MenuItemResponse"
                        }
                    },
                    "sections": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                }
            },
            "handler.NextNumberResponse": {
                "type": "object",
                "properties": {
                    "number": {
                        "type": "string"
                    }
                }
            },
            "handler.PaymentRequest": {
                "type": "object",
                "properties": {
                    "paymentNumber": {
                        "type": "string",
                        "maxLength": 50
                    },
                    "paymentType": {
                        "type": "string",
                        "enum": [
                            "RECEIPT",
                            "EXPENSE"
                        ]
                    },
                    "status": {
                        "type": "string",
                        "enum": [
                            "UNPAID",
                            "PAID"
                        ]
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "paymentMethod": {
                        "type": "string",
                        "enum": [
                            "CASH",
                            "BANK_TRANSFER",
                            "CHECK",
                            "ALIPAY",
                            "WECHAT_PAY",
                            "OTHER"
                        ]
                    },
                    "paymentDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "bankAccount": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "referenceNumber": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "notes": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "contractId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoiceId": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "required": [
                    "clientId"
                ]
            },
            "handler.PaymentResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "paymentNumber": {
                        "type": "string"
                    },
                    "paymentType": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "paymentMethod": {
                        "type": "string"
                    },
                    "paymentDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "bankAccount": {
                        "type": "string"
                    },
                    "referenceNumber": {
                        "type": "string"
                    },
                    "notes": {
                        "type": "string"
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "clientName": {
                        "type": "string"
                    },
                    "contractId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "contractNumber": {
                        "type": "string"
                    },
                    "contractTitle": {
                        "type": "string"
                    },
                    "invoiceId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "invoiceNumber": {
                        "type": "string"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.ProjectContractResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "contractNumber": {
                        "type": "string"
                    },
                    "title": {
                        "type": "string"
                    },
                    "contractType": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "amount": {
                        "type": "string",
                        "format": "decimal"
                    },
                    "startDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "endDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "clientId": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "clientName": {
                        "type": "string"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.ProjectDetailResponse": {
                "type": "object",
                "properties": {
                    "contracts": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/handler.ProjectContractResponse"
                        }
                    },
                    "margin": {
                        "$ref": "#/components/schemas/handler.MarginResponse"
                    }
                }
            },
            "handler.ProjectRequest": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "maxLength": 200
                    },
                    "description": {
                        "type": "string",
                        "maxLength": 2000
                    },
                    "status": {
                        "type": "string",
                        "enum": [
                            "PLANNING",
                            "IN_PROGRESS",
                            "PAUSED",
                            "COMPLETED",
                            "CANCELLED"
                        ]
                    },
                    "startDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "endDate": {
                        "type": "string",
                        "format": "date-time"
                    }
                },
                "required": [
                    "name"
                ]
            },
            "handler.ProjectResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "name": {
                        "type": "string"
                    },
                    "description": {
                        "type": "string"
                    },
                    "status": {
                        "type": "string"
                    },
                    "startDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "endDate": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "contractCount": {
                        "type": "integer",
                        "format": "int64"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.SettingsResponse": {
                "type": "object",
                "properties": {
                    "companyName": {
                        "type": "string"
                    },
                    "logoUrl": {
                        "type": "string"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            },
            "handler.SystemInfoResponse": {
                "type": "object",
                "properties": {
                    "name": {
                        "type": "string",
                        "example": "erp-system"
                    },
                    "version": {
                        "type": "string",
                        "example": "1.0.0"
                    },
                    "goVersion": {
                        "type": "string",
                        "example": "go1.25.5"
                    },
                    "uptime": {
                        "type": "string",
                        "example": "1h30m45s"
                    }
                }
            },
            "handler.UpdateSettingsRequest": {
                "type": "object",
                "properties": {
                    "companyName": {
                        "type": "string",
                        "maxLength": 200
                    }
                },
                "required": [
                    "companyName"
                ]
            },
            "handler.UpdateUserRequest": {
                "type": "object",
                "properties": {
                    "username": {
                        "type": "string",
                        "maxLength": 100
                    },
                    "password": {
                        "type": "string",
                        "maxLength": 128
                    },
                    "permissions": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    },
                    "isAdmin": {
                        "type": "boolean"
                    }
                }
            },
            "handler.UserResponse": {
                "type": "object",
                "properties": {
                    "id": {
                        "type": "string",
                        "format": "uuid"
                    },
                    "username": {
                        "type": "string"
                    },
                    "permissions": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    },
                    "isAdmin": {
                        "type": "boolean"
                    },
                    "lastLoginAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "createdAt": {
                        "type": "string",
                        "format": "date-time"
                    },
                    "updatedAt": {
                        "type": "string",
                        "format": "date-time"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ERP System API",
	Description:      "合同、发票、收付款与项目管理系统 API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
