// Package docs registers the generated Swagger specification.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
            "email": "support@tracerstudy.app"
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
        "/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log in with email and password",
                "parameters": [
                    {
                        "description": "Login credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Session issued"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    },
                    "403": {
                        "description": "Email not verified"
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Log out and clear the session cookie",
                "responses": {
                    "200": {
                        "description": "Session cleared"
                    }
                }
            }
        },
        "/auth/forgot-password": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Request a password reset link",
                "parameters": [
                    {
                        "description": "Account email",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Reset email sent"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "404": {
                        "description": "User not found"
                    }
                }
            }
        },
        "/auth/reset-password/{token}": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Reset the password with a token",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Password reset token",
                        "name": "token",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "New password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Password updated"
                    },
                    "400": {
                        "description": "Invalid or expired token"
                    }
                }
            }
        },
        "/auth/check-auth": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Return the current session user",
                "responses": {
                    "200": {
                        "description": "User retrieved"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/users/verify-email": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Verify an email with a 6-digit code",
                "parameters": [
                    {
                        "description": "Verification code",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Email verified"
                    },
                    "400": {
                        "description": "Invalid or expired code"
                    },
                    "409": {
                        "description": "Email already verified"
                    }
                }
            }
        },
        "/users/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Create a user account",
                "parameters": [
                    {
                        "description": "User information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "User created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "409": {
                        "description": "Email already exists"
                    }
                }
            }
        },
        "/users": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Role filter",
                        "name": "role_as",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Fakultas filter",
                        "name": "fakultas_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Program studi filter",
                        "name": "program_studi_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Name or email search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Users retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/users/profile": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get the current user's profile",
                "responses": {
                    "200": {
                        "description": "Profile retrieved"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Update the current user's profile",
                "parameters": [
                    {
                        "description": "Updated fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Profile updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/users/detail": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get the current user's profile",
                "responses": {
                    "200": {
                        "description": "Profile retrieved"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/users/detail/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get a user by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "User retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "User not found"
                    }
                }
            }
        },
        "/users/password": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Change the current user's password",
                "parameters": [
                    {
                        "description": "Old and new password",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Password updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "401": {
                        "description": "Wrong old password"
                    }
                }
            }
        },
        "/users/update-users/{id}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Update a user as admin",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Updated fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "User updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "User not found"
                    }
                }
            }
        },
        "/users/resend-verification": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Resend the verification email",
                "responses": {
                    "200": {
                        "description": "Verification email sent"
                    },
                    "401": {
                        "description": "Unauthorized"
                    },
                    "409": {
                        "description": "Email already verified"
                    }
                }
            }
        },
        "/biodata/create": {
            "post": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "biodata"
                ],
                "summary": "Create the caller's biodata",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Profile photo",
                        "name": "image",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Biodata created"
                    },
                    "400": {
                        "description": "Invalid data or biodata already exists"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/biodata/update": {
            "patch": {
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "biodata"
                ],
                "summary": "Update the caller's biodata",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Replacement photo",
                        "name": "image",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Biodata updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "404": {
                        "description": "Biodata not found"
                    }
                }
            }
        },
        "/biodata/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "biodata"
                ],
                "summary": "Get the caller's biodata",
                "responses": {
                    "200": {
                        "description": "Biodata retrieved"
                    },
                    "404": {
                        "description": "Biodata not found"
                    }
                }
            }
        },
        "/biodata": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "biodata"
                ],
                "summary": "List biodata",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Fakultas filter",
                        "name": "fakultasId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Program studi filter",
                        "name": "programStudiId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Gender filter",
                        "name": "jenisKelamin",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Name search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Biodata retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/biodata/detail/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "biodata"
                ],
                "summary": "Get biodata by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Biodata ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Biodata retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Biodata not found"
                    }
                }
            }
        },
        "/biodata/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "biodata"
                ],
                "summary": "Delete biodata and its photo",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Biodata ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Biodata deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Biodata not found"
                    }
                }
            }
        },
        "/fakultas/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fakultas"
                ],
                "summary": "Create a fakultas",
                "parameters": [
                    {
                        "description": "New fakultas",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "409": {
                        "description": "Name already exists"
                    }
                }
            }
        },
        "/fakultas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fakultas"
                ],
                "summary": "List fakultas",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Name search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/fakultas/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fakultas"
                ],
                "summary": "Get a fakultas by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Retrieved"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fakultas"
                ],
                "summary": "Update a fakultas",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Updated fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fakultas"
                ],
                "summary": "Delete a fakultas",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "409": {
                        "description": "Has associated data"
                    }
                }
            }
        },
        "/program-studi/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "program-studi"
                ],
                "summary": "Create a program studi",
                "parameters": [
                    {
                        "description": "New program studi",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "409": {
                        "description": "Name already exists"
                    }
                }
            }
        },
        "/program-studi": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "program-studi"
                ],
                "summary": "List program studi",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Name search",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Fakultas filter",
                        "name": "fakultasId",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/program-studi/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "program-studi"
                ],
                "summary": "Get a program studi by ID",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Retrieved"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "program-studi"
                ],
                "summary": "Update a program studi",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Updated fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "program-studi"
                ],
                "summary": "Delete a program studi",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "409": {
                        "description": "Has associated data"
                    }
                }
            }
        },
        "/pertanyaan/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "Create a survey question",
                "parameters": [
                    {
                        "description": "Question information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Question created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/pertanyaan": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "List survey questions",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Academic year filter",
                        "name": "tahun_akademik",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Status filter",
                        "name": "status",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Question text search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Questions retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/pertanyaan/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "Get a question with its choices",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Question retrieved"
                    },
                    "404": {
                        "description": "Question not found"
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "Update a question",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Updated fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Question updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Question not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "Delete a question and its choices",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Question deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Question not found"
                    }
                }
            }
        },
        "/pertanyaan/copy": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "Copy questions between academic years",
                "parameters": [
                    {
                        "description": "Source and target academic years",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Questions copied"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Source year has no questions"
                    }
                }
            }
        },
        "/pertanyaan/update-status": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pertanyaan"
                ],
                "summary": "Toggle every question of an academic year",
                "parameters": [
                    {
                        "description": "Academic year and target status",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Status updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Year has no questions"
                    }
                }
            }
        },
        "/pilihan-jawaban/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pilihan-jawaban"
                ],
                "summary": "Create an answer choice",
                "parameters": [
                    {
                        "description": "Choice information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Choice created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Pertanyaan not found"
                    }
                }
            }
        },
        "/pilihan-jawaban": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pilihan-jawaban"
                ],
                "summary": "List the choices of a question",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "pertanyaan_id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Choices retrieved"
                    },
                    "400": {
                        "description": "Missing or invalid pertanyaan_id"
                    }
                }
            }
        },
        "/pilihan-jawaban/{id}": {
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pilihan-jawaban"
                ],
                "summary": "Update an answer choice",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pilihan jawaban ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Updated choice name",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Choice updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Choice not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pilihan-jawaban"
                ],
                "summary": "Delete an answer choice",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pilihan jawaban ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Choice deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Choice not found"
                    }
                }
            }
        },
        "/kuesioner/{pertanyaanId}/jawaban": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "kuesioner"
                ],
                "summary": "Answer a survey question",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "pertanyaanId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Choice ID or free text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Answer recorded"
                    },
                    "400": {
                        "description": "Invalid data, inactive question or duplicate answer"
                    },
                    "404": {
                        "description": "Question not found"
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "kuesioner"
                ],
                "summary": "Get the caller's answer to a question",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "pertanyaanId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Answer retrieved"
                    },
                    "404": {
                        "description": "No answer yet"
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "kuesioner"
                ],
                "summary": "Update the caller's answer",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Pertanyaan ID",
                        "name": "pertanyaanId",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Choice ID or free text",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Answer updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "404": {
                        "description": "No answer yet"
                    }
                }
            }
        },
        "/jawaban-kuesioner": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jawaban-kuesioner"
                ],
                "summary": "List survey answers",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Academic year filter",
                        "name": "tahun_akademik",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Question filter",
                        "name": "pertanyaan_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Alumni name search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Answers retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/jawaban-kuesioner/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jawaban-kuesioner"
                ],
                "summary": "List the caller's answers",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Answers retrieved"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/jawaban-kuesioner/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "jawaban-kuesioner"
                ],
                "summary": "Delete an answer",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Jawaban ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Answer deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Answer not found"
                    }
                }
            }
        },
        "/jawaban-kuesioner/pdf/{tahun_akademik}": {
            "get": {
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "jawaban-kuesioner"
                ],
                "summary": "Export an academic year's answers as PDF",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Academic year with dash, e.g. 2023-2024",
                        "name": "tahun_akademik",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PDF document"
                    },
                    "400": {
                        "description": "Invalid academic year"
                    },
                    "404": {
                        "description": "Year has no responses"
                    }
                }
            }
        },
        "/provinsi/create": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "provinsi"
                ],
                "summary": "Import provinces from the regional dataset",
                "responses": {
                    "200": {
                        "description": "Provinces imported"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "500": {
                        "description": "Import failed"
                    }
                }
            }
        },
        "/provinsi": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "provinsi"
                ],
                "summary": "List provinces",
                "responses": {
                    "200": {
                        "description": "Provinces retrieved"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/kota/create": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "kota"
                ],
                "summary": "Import regencies from the regional dataset",
                "responses": {
                    "200": {
                        "description": "Regencies imported"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "500": {
                        "description": "Import failed"
                    }
                }
            }
        },
        "/kota": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "kota"
                ],
                "summary": "List the regencies of a province",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Provinsi ID",
                        "name": "provinsi_id",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Regencies retrieved"
                    },
                    "400": {
                        "description": "Missing or invalid provinsi_id"
                    }
                }
            }
        },
        "/lokasi-pekerjaan/create": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "Report a work location",
                "parameters": [
                    {
                        "description": "Location information",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Location created"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "404": {
                        "description": "Provinsi or kota not found"
                    }
                }
            }
        },
        "/lokasi-pekerjaan/me": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "List own work locations",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Locations retrieved"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        },
        "/lokasi-pekerjaan": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "List work locations",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Fakultas filter",
                        "name": "fakultasId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Program studi filter",
                        "name": "programStudiId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Provinsi filter",
                        "name": "provinsiId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Kota filter",
                        "name": "kotaId",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Alumni or company search",
                        "name": "search",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Locations retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/lokasi-pekerjaan/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "Get work location details",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lokasi pekerjaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Location retrieved"
                    },
                    "403": {
                        "description": "Not the owner"
                    },
                    "404": {
                        "description": "Location not found"
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "Update a work location",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lokasi pekerjaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Updated fields",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Location updated"
                    },
                    "400": {
                        "description": "Invalid request data"
                    },
                    "403": {
                        "description": "Not the owner"
                    },
                    "404": {
                        "description": "Location not found"
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "Delete an own work location",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lokasi pekerjaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Location deleted"
                    },
                    "403": {
                        "description": "Not the owner"
                    },
                    "404": {
                        "description": "Location not found"
                    }
                }
            }
        },
        "/lokasi-pekerjaan/admin/{id}": {
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "lokasi-pekerjaan"
                ],
                "summary": "Delete a work location as admin",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Lokasi pekerjaan ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Location deleted"
                    },
                    "403": {
                        "description": "Forbidden"
                    },
                    "404": {
                        "description": "Location not found"
                    }
                }
            }
        },
        "/master-data/tahun-akademik": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "master-data"
                ],
                "summary": "List academic years",
                "responses": {
                    "200": {
                        "description": "Years retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/master-data/pertanyaan": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "master-data"
                ],
                "summary": "Get a year's questionnaire with choices",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Academic year",
                        "name": "tahun_akademik",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "description": "Include inactive questions",
                        "name": "all",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Questionnaire retrieved"
                    },
                    "400": {
                        "description": "Invalid academic year"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/master-data/pertanyaan-active": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "master-data"
                ],
                "summary": "List active questions",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Page number",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Items per page",
                        "name": "perPage",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Questions retrieved"
                    },
                    "403": {
                        "description": "Forbidden"
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Service is up"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Tracer Study API",
	Description:      "API for the university alumni tracer study portal",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
