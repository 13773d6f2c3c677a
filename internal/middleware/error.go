package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"lumina/internal/domain"
	"lumina/internal/logger"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// statusByCode lists the domain codes that are not server failures.
var statusByCode = map[domain.ErrorCode]int{
	domain.CodeNotFound:       http.StatusNotFound,
	domain.CodeCourseNotFound: http.StatusNotFound,
	domain.CodeLessonNotFound: http.StatusNotFound,
	domain.CodeInvalidInput:   http.StatusBadRequest,
	domain.CodeValidation:     http.StatusBadRequest,
	domain.CodeMissingField:   http.StatusBadRequest,
	domain.CodeInvalidFormat:  http.StatusBadRequest,
	domain.CodeOutOfRange:     http.StatusBadRequest,
	domain.CodeUnauthorized:   http.StatusUnauthorized,
}

// ErrorHandler renders every error returned by a handler as an ErrorResponse.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := toResponse(err)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("code", resp.Code),
			zap.Int("status", resp.Status),
			zap.Error(err),
		}
		if resp.Status >= http.StatusInternalServerError {
			logger.Get().Error(resp.Message, fields...)
		} else {
			logger.Get().Info(resp.Message, fields...)
		}
		return c.Status(resp.Status).JSON(resp)
	}
}

func toResponse(err error) ErrorResponse {
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrorResponse{
			Code:    string(domain.CodeValidation),
			Message: "Request validation failed",
			Status:  http.StatusBadRequest,
			Details: map[string]interface{}{"errors": []domain.ValidationError(verrs)},
		}
	}

	var derr *domain.DomainError
	if errors.As(err, &derr) {
		status, ok := statusByCode[derr.Code]
		if !ok {
			status = http.StatusInternalServerError
		}
		resp := ErrorResponse{Code: string(derr.Code), Message: derr.Message, Status: status}
		if len(derr.Context) > 0 {
			resp.Details = derr.Context
		}
		return resp
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ErrorResponse{Code: "HTTP_ERROR", Message: ferr.Message, Status: ferr.Code}
	}

	return ErrorResponse{
		Code:    string(domain.CodeInternal),
		Message: "Internal server error",
		Status:  http.StatusInternalServerError,
	}
}
