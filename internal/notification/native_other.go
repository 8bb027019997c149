//go:build !linux

package notification

const nativeSupported = false

// There is no native sink outside Linux; selection falls back to logging.
func newNativeSink() Sink {
	return nil
}
