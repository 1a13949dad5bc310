// Package swaggerkit serves the swagger UI and the OpenAPI document behind it
package swaggerkit

import (
	"net/http"

	"answerlog/internal/core/version"
	phttp "answerlog/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const docPath = "/api/docs/doc.json"

// Mount serves the UI under /api/docs when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get(docPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		phttp.WriteJSON(w, http.StatusOK, document())
	})
	r.Handle("/api/docs/*", httpSwagger.Handler(httpSwagger.URL(docPath)))
}

type object = map[string]any

// document is the OpenAPI root; endpoints are described on the handlers
// and only the shared envelope is spelled out here
func document() object {
	str := object{"type": "string"}
	return object{
		"openapi": "3.0.3",
		"info": object{
			"title":       "answerlog API",
			"description": "Answer log and population selection endpoints",
			"version":     version.Info().Version,
		},
		"servers": []object{{"url": "/api/v1"}},
		"paths":   object{},
		"components": object{"schemas": object{
			"Envelope": object{
				"type":     "object",
				"required": []string{"status_code", "status"},
				"properties": object{
					"status_code": object{"type": "integer"},
					"status":      str,
					"code":        object{"type": "integer"},
					"error":       str,
					"field":       str,
					"op":          str,
					"request_id":  str,
					"data":        object{},
				},
			},
		}},
	}
}
