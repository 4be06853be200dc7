package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s - Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
    SwaggerUIBundle({url: "/swagger/doc.yaml", dom_id: "#swagger-ui", layout: "BaseLayout"});
    </script>
</body>
</html>`

// RegisterSwagger serves the OpenAPI document and a Swagger UI page under
// /swagger. Nothing is mounted when the document is missing.
func RegisterSwagger(app fiber.Router, title string, yamlContent []byte) {
	if len(yamlContent) == 0 {
		return
	}
	page := fmt.Sprintf(swaggerUIPage, title)

	app.Get("/swagger/doc.yaml", func(c fiber.Ctx) error {
		c.Set("Content-Type", "application/yaml")
		return c.Send(yamlContent)
	})

	app.Get("/swagger/*", func(c fiber.Ctx) error {
		c.Set("Content-Type", "text/html")
		return c.SendString(page)
	})
}
