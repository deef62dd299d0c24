// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoLegs              = errors.New("order has no legs")
	ErrConfigInvalid       = errors.New("invalid configuration")
	ErrDatabaseError       = errors.New("database error")
	ErrMalformedState      = errors.New("malformed persisted state")
)

// OrderError represents an error related to order operations.
type OrderError struct {
	OrderID  string
	Strategy string
	Action   string
	Reason   string
	Err      error
}

func (e *OrderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order error [%s] %s %s: %s: %v", e.OrderID, e.Action, e.Strategy, e.Reason, e.Err)
	}
	return fmt.Sprintf("order error [%s] %s %s: %s", e.OrderID, e.Action, e.Strategy, e.Reason)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

// NewOrderError creates a new OrderError.
func NewOrderError(orderID, strategy, action, reason string, err error) *OrderError {
	return &OrderError{
		OrderID:  orderID,
		Strategy: strategy,
		Action:   action,
		Reason:   reason,
		Err:      err,
	}
}

// StorageError represents an error from the persistence layer.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("storage error [%s] %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("storage error [%s] %s", e.Op, e.Path)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError creates a new StorageError.
func NewStorageError(op, path string, err error) *StorageError {
	return &StorageError{
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
