package handler

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"docqa/internal/service"
	"docqa/internal/users"
)

// HealthCheck reports readiness: both local directories the ingestion
// flow depends on must exist.
func HealthCheck(uploadDir, outputDir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, dir := range []string{uploadDir, outputDir} {
			if st, err := os.Stat(dir); err != nil || !st.IsDir() {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService, userSvc users.Service, uploadDir, outputDir string) {
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

	app.Get("/health", HealthCheck(uploadDir, outputDir))
	app.Get("/healthz", LivenessProbe())

	// Document lifecycle and query orchestration
	app.Post("/upload", UploadDocument(docSvc))
	app.Post("/ask", AskQuestion(docSvc))
	app.Get("/documents", ListDocuments(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))

	// Boundary delegation to the external user-management collaborator
	app.Post("/signup", Signup(userSvc))
}
