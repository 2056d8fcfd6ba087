// Package mollie holds the resource shapes relayed by the gateway and the
// envelope every gateway operation returns.
package mollie

import "fmt"

// ErrorBody describes a failed operation.
type ErrorBody struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

func (e *ErrorBody) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Title)
}

// Envelope is the uniform result of a gateway operation. Data is set only
// when Success is true and Error only when it is false.
type Envelope[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

// Empty is a successful envelope without data, used for deletions.
func Empty[T any]() Envelope[T] {
	return Envelope[T]{Success: true}
}

// Fail builds a failed envelope.
func Fail[T any](status int, title, detail string) Envelope[T] {
	return Envelope[T]{
		Success: false,
		Error:   &ErrorBody{Status: status, Title: title, Detail: detail},
	}
}

// Err returns the envelope's error, or nil on success.
func (e Envelope[T]) Err() error {
	if e.Success || e.Error == nil {
		return nil
	}
	return e.Error
}

// Status is the HTTP status an envelope is served with.
func (e Envelope[T]) Status() int {
	if e.Success || e.Error == nil {
		return 200
	}
	return e.Error.Status
}

// Value returns the data, or the zero value when there is none.
func (e Envelope[T]) Value() T {
	var zero T
	if e.Data == nil {
		return zero
	}
	return *e.Data
}
