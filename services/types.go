package services

import (
	apperrors "github.com/hikegear/storefront/common/errors"
)

// ServiceError carries an HTTP status alongside a user-facing message.
// Controllers translate it directly into the response.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// fromAppError converts a shared application error into a ServiceError.
func fromAppError(e *apperrors.Error) *ServiceError {
	return &ServiceError{StatusCode: e.Code, Message: e.Message}
}
