// Package server exposes the command service to the front end and the CLI.
// Native gRPC, gRPC-Web, the invoke endpoint and /metrics share one port.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"

	"github.com/overlearn/overlearn/internal/api"
	"github.com/overlearn/overlearn/internal/telemetry"
)

// Options configures a Server.
type Options struct {
	// Port to listen on. 0 picks a free port.
	Port           int
	AllowedOrigins []string
	Commands       api.CommandServiceServer
	Metrics        *Metrics
	Telemetry      telemetry.Client
}

// Server is the daemon's command server.
type Server struct {
	grpcServer *grpc.Server
	httpServer *http.Server
	listener   net.Listener
	port       int
	metrics    *Metrics
	telemetry  telemetry.Client
}

// New creates a server listening on 127.0.0.1 at opts.Port.
func New(opts Options) (*Server, error) {
	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf("127.0.0.1:%d", opts.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	srv := newServer(opts)
	srv.listener = listener
	srv.port = listener.Addr().(*net.TCPAddr).Port
	srv.httpServer = &http.Server{
		Handler:           srv.Handler(opts.AllowedOrigins, opts.Commands),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

func newServer(opts Options) *Server {
	s := &Server{
		metrics:   opts.Metrics,
		telemetry: opts.Telemetry,
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	if s.telemetry == nil {
		s.telemetry = telemetry.Noop()
	}

	s.grpcServer = grpc.NewServer(grpc.UnaryInterceptor(s.metricsInterceptor))
	api.RegisterCommandServiceServer(s.grpcServer, opts.Commands)
	return s
}

// Handler builds the HTTP handler serving every protocol on the port.
func (s *Server) Handler(allowedOrigins []string, commands api.CommandServiceServer) http.Handler {
	originAllowed := originChecker(allowedOrigins)

	web := grpcweb.WrapServer(s.grpcServer,
		grpcweb.WithOriginFunc(originAllowed),
	)

	invoke := cors.New(cors.Options{
		AllowOriginFunc: originAllowed,
		AllowedMethods:  []string{http.MethodPost},
		AllowedHeaders:  []string{"Content-Type"},
	}).Handler(newInvokeHandler(commands, s.metricsInterceptor, originAllowed))

	mux := http.NewServeMux()
	mux.Handle(InvokePrefix, invoke)
	mux.Handle("/metrics", s.metrics.Handler())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case web.IsGrpcWebRequest(r) || web.IsAcceptableGrpcCorsRequest(r):
			web.ServeHTTP(w, r)
		case r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc"):
			s.grpcServer.ServeHTTP(w, r)
		default:
			mux.ServeHTTP(w, r)
		}
	})

	return h2c.NewHandler(handler, &http2.Server{})
}

// originChecker allows the configured origins. An empty list allows any
// origin; "*" in the list does the same.
func originChecker(allowed []string) func(string) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(o, "/")] = true
	}
	return func(origin string) bool {
		if len(set) == 0 || set["*"] {
			return true
		}
		return set[strings.TrimRight(origin, "/")]
	}
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	log.Printf("[server] Listening on 127.0.0.1:%d", s.port)
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("[server] Shutdown: %v", err)
	}
	s.grpcServer.Stop()
}

// RequestShutdown sends SIGINT to the current process to trigger a graceful
// shutdown.
func RequestShutdown() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	_ = p.Signal(syscall.SIGINT)
}
