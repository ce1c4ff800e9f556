package database

import (
	"testing"
)

func TestNewConnection_InvalidParameters(t *testing.T) {
	_, err := NewConnection("invalid", "invalid", "invalid", "invalid", "invalid")
	if err == nil {
		t.Error("Expected error for invalid connection parameters")
	}

	// A valid connection requires a running database and is covered by
	// integration tests run against a real instance.
}
