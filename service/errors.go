package service

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when OPENAI_API_KEY is empty.
var ErrMissingAPIKey = errors.New("API key not found in environment variables")

// ConfigurationError signals a setup problem that no retry can fix.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// TransportError wraps a failure talking to the launch feed or the chat service.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const (
	opFetchLaunches  = "fetch launch data"
	opChatCompletion = "chat completion"
)
