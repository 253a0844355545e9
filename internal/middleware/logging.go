package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequestID tags every request with an X-Request-ID header, reusing the client's if present.
func RequestID() fiber.Handler {
	return requestid.New()
}

// Logging middleware that logs request ID, route, status code and response time.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} | ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%6.1fms", latency)
			},
		},
	})
}

// CORS allows browser clients from the given comma-separated origins.
func CORS(origins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.ReplaceAll(origins, " ", ""),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Token",
		AllowMethods: "GET, POST, OPTIONS",
	})
}
