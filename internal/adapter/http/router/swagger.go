package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Transfer Service API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Transfer Service API",
    "version": "1.0.0"
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {"type": "http", "scheme": "basic"}
    }
  },
  "paths": {
    "/accounts": {
      "post": {
        "summary": "Register account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["agency", "number", "email", "cpf", "holderName"],
                "properties": {
                  "agency": {"type": "string", "pattern": "^[0-9]{4}$"},
                  "number": {"type": "string", "pattern": "^[0-9]{6}$"},
                  "email": {"type": "string", "format": "email"},
                  "cpf": {"type": "string", "pattern": "^[0-9]{3}\\.[0-9]{3}\\.[0-9]{3}-[0-9]{2}$"},
                  "holderName": {"type": "string", "maxLength": 120}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "422": {"description": "Duplicate email or CPF"}
        }
      }
    },
    "/accounts/{id}": {
      "get": {
        "summary": "Get account balance",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "integer", "format": "int64"}}
        ],
        "responses": {
          "200": {"description": "Balance"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/accounts/{id}/transfers": {
      "get": {
        "summary": "List transfers for account",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "integer", "format": "int64"}},
          {"name": "page", "in": "query", "schema": {"type": "integer", "default": 0}},
          {"name": "size", "in": "query", "schema": {"type": "integer", "default": 2}},
          {"name": "sort", "in": "query", "schema": {"type": "string", "enum": ["id", "amount", "created_at"], "default": "id"}},
          {"name": "direction", "in": "query", "schema": {"type": "string", "enum": ["ASC", "DESC"], "default": "ASC"}}
        ],
        "responses": {
          "200": {"description": "Page of transfers"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/transfers": {
      "post": {
        "summary": "Transfer funds between accounts",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["sourceAccountId", "destinationAccountId", "amount"],
                "properties": {
                  "sourceAccountId": {"type": "integer", "format": "int64"},
                  "destinationAccountId": {"type": "integer", "format": "int64"},
                  "amount": {"type": "string", "example": "60.00"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "404": {"description": "Source or destination account not found"},
          "409": {"description": "Concurrent modification, resubmit"},
          "422": {"description": "Same account or insufficient balance"}
        }
      }
    }
  }
}`
