package response

import (
	"errors"
	"net/http"

	"github.com/transwerk/personal-backend-go/internal/domain/auth"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
	"github.com/transwerk/personal-backend-go/internal/domain/leave"
	"github.com/transwerk/personal-backend-go/internal/domain/payment"
	"github.com/transwerk/personal-backend-go/internal/domain/payroll"
	"github.com/transwerk/personal-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payment domain errors
	case errors.Is(err, payment.ErrPaymentNotFound):
		NotFound(w, "Payment not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, err.Error(), nil)

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrNoFileAttached):
		NotFound(w, "Document has no file attached")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
