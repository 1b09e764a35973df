package domain

import "time"

// ErrorLog is an append-only diagnostic record of an unhandled failure.
type ErrorLog struct {
	ID        string
	Message   string
	Stack     string
	Route     string
	Method    string
	CreatedAt time.Time
}
