package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a missing, invalid or expired credential
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated caller acting outside its own team
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictReason identifies which selection invariant a conflict protects
type ConflictReason string

const (
	ReasonAlreadySelected  ConflictReason = "already_selected"
	ReasonCapacityExceeded ConflictReason = "capacity_exceeded"
)

// ConflictError is a business-rule rejection of a selection. Pre-check and
// commit-time (race) variants carry the same reason and message.
type ConflictError struct {
	Reason  ConflictReason
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is matches conflicts with the same reason
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

// TransientStoreError wraps a store failure that is safe to retry (deadlock,
// serialization failure, lock or statement timeout). No effect was committed.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("transient store error during %s: %v", e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrProblemNotFound = &NotFoundError{Entity: "problem"}
)

// Selection Conflict Errors
var (
	ErrAlreadySelected  = &ConflictError{Reason: ReasonAlreadySelected, Message: "team has already selected a problem statement"}
	ErrCapacityExceeded = &ConflictError{Reason: ReasonCapacityExceeded, Message: "this problem statement is no longer available"}
)

// Authentication Errors
var (
	ErrMissingCredentials = &AuthenticationError{Message: "not authorized, no token"}
	ErrInvalidToken       = &AuthenticationError{Message: "not authorized, token failed"}
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid team ID or password"}
	ErrTeamNotRegistered  = &AuthenticationError{Message: "team not found"}
)

// Authorization Errors
var (
	ErrIdentityMismatch = &AuthorizationError{Message: "unauthorized action"}
	ErrAccessDenied     = &AuthorizationError{Message: "access denied"}
	ErrTeamInactive     = &AuthorizationError{Message: "team account is inactive"}
)

// Business Logic Errors
var (
	ErrTooManyAttempts = errors.New("too many attempts, try again later")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsTransient checks if an error is a TransientStoreError
func IsTransient(err error) bool {
	var transientErr *TransientStoreError
	return errors.As(err, &transientErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// ConflictReasonOf returns the reason of a ConflictError in the chain, or ""
func ConflictReasonOf(err error) ConflictReason {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Reason
	}
	return ""
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewTransientStoreError wraps err as retryable
func NewTransientStoreError(op string, err error) error {
	return &TransientStoreError{Op: op, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
