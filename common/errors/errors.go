package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error represents an application error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// JSON returns the error as a JSON string
func (e *Error) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Authentication errors
var (
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid email or password", nil)
	ErrMissingToken       = New(http.StatusUnauthorized, "Missing token", nil)
	ErrInvalidToken       = New(http.StatusUnauthorized, "Invalid token", nil)
	ErrAccessDenied       = New(http.StatusForbidden, "Access denied", nil)
)

// Catalog and cart errors
var (
	ErrProductNotFound = New(http.StatusNotFound, "Product not found", nil)
	ErrItemNotInCart   = New(http.StatusNotFound, "Item not in cart", nil)
)

// Checkout and order errors
var (
	ErrCheckoutForbidden = New(http.StatusForbidden, "Please log in as a customer to access checkout", nil)
	ErrEmptyCart         = New(http.StatusBadRequest, "Your cart is empty", nil)
	ErrReceiptRequired   = New(http.StatusBadRequest, "Please upload your transfer receipt", nil)
	ErrInvalidStatus     = New(http.StatusBadRequest, "Invalid order status", nil)
	ErrOrderNotFound     = New(http.StatusNotFound, "Order not found", nil)
)

// ErrInternalServer is the fallback for errors with no code of their own.
var ErrInternalServer = New(http.StatusInternalServerError, "Internal server error", nil)

// ErrorMiddleware translates errors attached to the gin context into a JSON
// response. Binding failures become 400s with the validator's detail; other
// errors use the Error code when they carry one.
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		if last.IsType(gin.ErrorTypeBind) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": last.Err.Error()})
			return
		}

		appErr := ErrInternalServer
		if e, ok := last.Err.(*Error); ok {
			appErr = e
		}
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	}
}
