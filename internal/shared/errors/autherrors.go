package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorTypeInvalidCredentials marks a failed login. Token failures use
// ErrorTypeUnauthorized and differ only in their message.
const ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"

// Messages returned to clients for authentication failures.
const (
	MsgInvalidCredentials = "Incorrect username or password"
	MsgNotLoggedIn        = "You must be logged in"
	MsgInvalidToken       = "Invalid token"
)

// AuthError represents authentication-specific errors with security context
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures that would only add noise
	ShouldLog bool
	// SecurityEvent marks failures worth tracking for brute force or tampering
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the embedded AppError
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for a failed login.
// The same error is returned for an unknown username and a wrong password.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: MsgInvalidCredentials,
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewMissingTokenError creates an error for requests that carry no bearer token
func NewMissingTokenError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: MsgNotLoggedIn,
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewTokenInvalidError creates an error for tokens that failed verification.
// Expired, forged and malformed tokens are deliberately indistinguishable.
func NewTokenInvalidError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthorized,
			Message: MsgInvalidToken,
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func getAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError returns true if the authentication error should be logged
func ShouldLogAuthError(err error) bool {
	if authErr := getAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}

// IsSecurityEvent returns true if the error should be tracked as a security event
func IsSecurityEvent(err error) bool {
	if authErr := getAuthError(err); authErr != nil {
		return authErr.SecurityEvent
	}
	return false
}
