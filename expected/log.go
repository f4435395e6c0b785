package expected

import (
	"io"

	"github.com/rs/zerolog"
)

var logger = zerolog.Nop()

// SetLogger routes the package's diagnostics (misuse signals, raises, teardown failures)
// to l. The default logger discards everything. Call it before any holder is used.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// closeLive tears down a payload that is dropped without being consumed.
func closeLive(holder string, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	if err := c.Close(); err != nil {
		logger.Error().Err(err).Str("holder", holder).Msg("closing dropped payload")
	}
}
