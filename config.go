package httpcore

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var nop = zerolog.Nop()
var logger = &nop
var maxLineLength = 16 * 1024

// SetupLogger installs the logger used for parse diagnostics.
func SetupLogger(l *zerolog.Logger) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger = l
}

// SetupHTTPCore installs the logger and the header-line length cap in one call.
func SetupHTTPCore(l *zerolog.Logger, mll int) {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	logger = l
	maxLineLength = mll
}

func GetLogger() *zerolog.Logger {
	return logger
}

// GetMaxLineLength returns the current header-line length cap in bytes.
// Zero means no cap.
func GetMaxLineLength() int {
	return maxLineLength
}

// ChangeMaxLineLength sets the header-line length cap. Lines longer than the
// cap are rejected by ParseHeader before any grammar check runs.
func ChangeMaxLineLength(n int) {
	maxLineLength = n
}
