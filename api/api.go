// Package api embeds the OpenAPI document of the dispatch HTTP API.
package api

import _ "embed"

// OpenAPI is served at /api/openapi.json after being loaded and validated.
//
//go:embed openapi.yaml
var OpenAPI []byte
