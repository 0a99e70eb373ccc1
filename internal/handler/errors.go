package handler

import (
	"errors"
	"net/http"

	"checkout/internal/payment"
	"checkout/internal/service"
	"checkout/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy onto HTTP: request-data problems are 422,
// payment-execution problems are 400 and everything else is a server fault.
func statusFor(err error) int {
	var (
		unknownProcessor *payment.UnknownProcessorError
		paymentFailed    *payment.PaymentFailedError
		invalidPurchase  *service.InvalidPurchaseError
	)
	switch {
	case service.IsClientError(err):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unknownProcessor), errors.As(err, &paymentFailed), errors.As(err, &invalidPurchase):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	c.AbortWithStatusJSON(status, response.Error(status, message))
}
