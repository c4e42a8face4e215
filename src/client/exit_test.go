package client

import (
	"testing"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		expected int
		actual   int
	}{
		{"ExitSuccess", 0, ExitSuccess},
		{"ExitGeneralError", 1, ExitGeneralError},
		{"ExitUsageError", 2, ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.actual != tt.expected {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.expected, tt.actual)
			}
		})
	}
}

func TestExitErrorError(t *testing.T) {
	err := &ExitError{
		Message: "test error",
		Code:    ExitGeneralError,
	}

	if err.Error() != "test error" {
		t.Errorf("Expected error message 'test error', got '%s'", err.Error())
	}
}

func TestNewExitError(t *testing.T) {
	err := NewExitError("custom error", 99)

	if err.Message != "custom error" {
		t.Errorf("Expected message 'custom error', got '%s'", err.Message)
	}

	if err.Code != 99 {
		t.Errorf("Expected code 99, got %d", err.Code)
	}
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError("connection refused")

	if err.Code != ExitGeneralError {
		t.Errorf("Expected code %d, got %d", ExitGeneralError, err.Code)
	}

	if err.Error() != "connection refused" {
		t.Errorf("Expected error string 'connection refused', got '%s'", err.Error())
	}
}

func TestNewUsageError(t *testing.T) {
	err := NewUsageError("unknown command: foo")

	if err.Code != ExitUsageError {
		t.Errorf("Expected code %d, got %d", ExitUsageError, err.Code)
	}
}
