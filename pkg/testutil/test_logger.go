package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a debug level logger that writes to the test log of
// the provided testing.T
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
