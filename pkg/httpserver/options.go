package httpserver

import (
	"net"
	"time"

	"github.com/studentportal/portal/pkg/logger"
)

// Option configures the portal's HTTP server.
type Option func(*Server)

// Port binds the portal to host:port. An empty host listens on every
// interface.
func Port(host, port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// TLS serves the portal over HTTPS. Both PEM files are required when enable
// is set, otherwise Notify reports ErrTLSFilesRequired.
func TLS(enable bool, certFile, keyFile string) Option {
	return func(s *Server) {
		s.useTLS = enable
		s.certFile = certFile
		s.keyFile = keyFile
	}
}

// Listener injects a pre-bound listener so tests avoid fixed ports.
func Listener(l net.Listener) Option {
	return func(s *Server) {
		s.listener = l
	}
}

// ReadTimeout bounds reading a request. Portal requests carry only cookies,
// so this stays short.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = timeout
	}
}

// WriteTimeout bounds a whole response, including the upstream fetch behind
// it. It must exceed the slowest endpoint's retry ceiling.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.WriteTimeout = timeout
	}
}

// ShutdownTimeout is how long in-flight notes and image requests get to
// finish once a stop signal arrives.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// Logger receives the listening address once serving starts.
func Logger(l logger.Interface) Option {
	return func(s *Server) {
		s.log = l
	}
}
