package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// tmplAPIDocs embeds ReDoc against the served OpenAPI document.
const tmplAPIDocs = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Bill Tracker API Docs</title>
<style>body{margin:0;padding:0}</style>
</head>
<body>
<div id="docs"></div>
<script src="https://cdn.jsdelivr.net/npm/redoc/bundles/redoc.standalone.js"></script>
<script>Redoc.init('/api/openapi.yaml', {}, document.getElementById('docs'))</script>
</body>
</html>`

// registerDocs serves the OpenAPI spec and a browsable reference for it.
func registerDocs(e *echo.Echo) {
	e.File("/api/openapi.yaml", "docs/openapi.yaml")
	e.GET("/api/docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, tmplAPIDocs)
	})
}
