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
  <title>Bankist Ledger API Docs</title>
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
    "title": "Bankist Ledger API",
    "description": "In-memory demo bank: login, transfers, loans, account closure and movement summaries over a fixed set of seeded accounts.",
    "version": "1.0.0"
  },
  "security": [{"channelAuth": []}],
  "paths": {
    "/login": {
      "post": {
        "summary": "Authenticate a seeded account and open the session",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "username": {"type": "string", "example": "js"},
                  "pin": {"type": "string", "example": "1111"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Session token and account snapshot"},
          "400": {"description": "Validation failed"},
          "401": {"description": "Authentication failed"}
        }
      }
    },
    "/account": {
      "get": {
        "summary": "Current account snapshot under the active sort toggle",
        "parameters": [{"$ref": "#/components/parameters/sessionToken"}],
        "responses": {
          "200": {"description": "Account snapshot"},
          "401": {"description": "No active session"}
        }
      }
    },
    "/transfer-funds": {
      "post": {
        "summary": "Transfer an amount to another account",
        "parameters": [{"$ref": "#/components/parameters/sessionToken"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "toUsername": {"type": "string", "example": "jd"},
                  "amount": {"type": "string", "example": "250"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Updated sender snapshot"},
          "400": {"description": "Invalid amount or self transfer"},
          "404": {"description": "Recipient not found"},
          "422": {"description": "Insufficient funds"}
        }
      }
    },
    "/request-loan": {
      "post": {
        "summary": "Request a loan against the movement history",
        "parameters": [{"$ref": "#/components/parameters/sessionToken"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "amount": {"type": "string", "example": "1000"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Updated snapshot including the disbursement"},
          "400": {"description": "Invalid amount"},
          "422": {"description": "No qualifying movement"}
        }
      }
    },
    "/close-account": {
      "post": {
        "summary": "Close the current account and end the session",
        "parameters": [{"$ref": "#/components/parameters/sessionToken"}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "username": {"type": "string", "example": "js"},
                  "pin": {"type": "string", "example": "1111"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Account removed"},
          "404": {"description": "Credentials do not match the current account"}
        }
      }
    },
    "/toggle-sort": {
      "post": {
        "summary": "Flip the movement display ordering",
        "parameters": [{"$ref": "#/components/parameters/sessionToken"}],
        "responses": {
          "200": {"description": "Snapshot under the flipped ordering"}
        }
      }
    }
  },
  "components": {
    "parameters": {
      "sessionToken": {
        "name": "X-Session-Token",
        "in": "header",
        "required": true,
        "schema": {"type": "string"}
      }
    },
    "securitySchemes": {
      "channelAuth": {"type": "http", "scheme": "basic"}
    }
  }
}`
