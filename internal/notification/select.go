package notification

import (
	"log"
	"strings"
)

// Backend names accepted in settings.
const (
	BackendAuto  = "auto"
	BackendDBus  = "dbus"
	BackendBeeep = "beeep"
	BackendLog   = "log"
)

// NativeSupported reports whether this build has a native sink.
func NativeSupported() bool {
	return nativeSupported
}

// NewSink returns the sink for a configured backend. "auto" (and any unknown
// name) picks the native sink where one exists and logging elsewhere.
// logger is used by the logging sink.
func NewSink(backend string, logger *log.Logger) Sink {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendLog:
		return NewLoggingSink(logger)
	case BackendBeeep:
		return NewBeeepSink()
	case BackendDBus:
		if !nativeSupported {
			log.Printf("[notify] D-Bus backend requested but not supported on this platform, logging instead")
			return NewLoggingSink(logger)
		}
		return newNativeSink()
	case BackendAuto, "":
	default:
		log.Printf("[notify] Unknown notification backend %q, using %s", backend, BackendAuto)
	}

	if nativeSupported {
		return newNativeSink()
	}
	return NewLoggingSink(logger)
}
