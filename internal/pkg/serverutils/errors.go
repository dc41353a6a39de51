package serverutils

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrBadRequest = errors.New("bad request")
)

// AppError is an error with an HTTP status and a message safe to show to clients.
type AppError struct {
	Code    int
	Message string
	kind    error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match the sentinel kind (ErrNotFound, ErrConflict, ...).
func (e *AppError) Unwrap() error {
	return e.kind
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: fmt.Sprintf(format, args...), kind: ErrNotFound}
}

func Conflict(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: fmt.Sprintf(format, args...), kind: ErrConflict}
}

func BadRequest(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...), kind: ErrBadRequest}
}

// ErrorHandlerMiddleware turns handler errors into the JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err)
	}
}

func WriteError(ctx *fiber.Ctx, err error) error {
	code, message := classify(err)
	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", ctx.Method(), ctx.Path(), err)
	}
	return ctx.Status(code).JSON(ErrorResponse(code, message))
}

func classify(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Message
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return fiber.StatusBadRequest, strings.Join(fields, ", ")
	}

	return fiber.StatusInternalServerError, "Internal server error"
}
