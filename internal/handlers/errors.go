package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/apierr"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every failure that reaches the top of the stack.
// Client failures keep their message; anything else becomes an opaque 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if e, ok := apierr.As(err); ok {
		return c.Status(e.Status).JSON(e.Body)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(apierr.Message{Message: fe.Message})
	}

	attrs := []any{"method", c.Method(), "path", c.Path(), "error", err.Error()}
	if rid, ok := c.Locals("requestid").(string); ok {
		attrs = append(attrs, "request_id", rid)
	}
	slog.ErrorContext(c.UserContext(), "unhandled server error", attrs...)

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	} else {
		sentry.CaptureException(err)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(apierr.Message{Message: apierr.MsgInternalServerError})
}
