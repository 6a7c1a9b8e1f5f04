package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the catalog's read and write verbs from cfg.CORSOrigins.
// Credentials stay off while any origin is a wildcard.
func CORS(cfg *config.Config) fiber.Handler {
	origins := strings.ReplaceAll(cfg.CORSOrigins, " ", "")
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodOptions}, ","),
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		ExposeHeaders:    fiber.HeaderXRequestID,
		AllowCredentials: origins != "" && !strings.Contains(origins, "*"),
		MaxAge:           600,
	})
}
