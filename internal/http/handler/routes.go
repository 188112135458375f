package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"studentdocs/internal/identity"
	"studentdocs/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers
// stay thin; all contracts live in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, resolver identity.Resolver, issuer service.Issuer, lc service.Lifecycle, defaultTTLSec int) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Signed URL issuance accepts GET and POST, mirroring the consumed
	// contract of browser callers.
	app.Get("/documents/signed-url", IssueSignedURL(issuer, defaultTTLSec))
	app.Post("/documents/signed-url", IssueSignedURL(issuer, defaultTTLSec))

	app.Post("/students/:id/documents", UploadStudentDocument(resolver, lc))
	app.Get("/students/:id/documents", ListStudentDocuments(resolver, lc))

	app.Delete("/documents/:id", DeleteDocument(resolver, lc))
	app.Patch("/documents/:id", UpdateDocumentDescription(resolver, lc))
}
