package server

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/overlearn/overlearn/internal/api"
)

// InvokePrefix is the path prefix of the Tauri-style invoke endpoint.
const InvokePrefix = "/invoke/"

const maxInvokeBody = 1 << 20

// commandMethods maps the front end's command names to service methods.
var commandMethods = map[string]string{
	"greet":                       api.MethodGreet,
	"show_notification":           api.MethodShowNotification,
	"show_native_notification":    api.MethodShowNativeNotification,
	"notify_pomodoro_complete":    api.MethodNotifyPomodoroComplete,
	"notify_study_goal_milestone": api.MethodNotifyStudyGoalMilestone,
	"get_app_version":             api.MethodGetAppVersion,
	"show_window":                 api.MethodShowWindow,
	"hide_window":                 api.MethodHideWindow,
	"get_status":                  api.MethodGetStatus,
	"shutdown":                    api.MethodShutdown,
}

// commandName returns the front end command name for a gRPC full method.
func commandName(fullMethod string) string {
	method := fullMethod[strings.LastIndex(fullMethod, "/")+1:]
	for cmd, m := range commandMethods {
		if m == method {
			return cmd
		}
	}
	return method
}

type invokeResponse struct {
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// invokeHandler runs commands through the same method handlers and
// interceptor as the gRPC server.
type invokeHandler struct {
	srv         api.CommandServiceServer
	methods     map[string]func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)
	interceptor grpc.UnaryServerInterceptor
	allowOrigin func(string) bool
}

func newInvokeHandler(srv api.CommandServiceServer, interceptor grpc.UnaryServerInterceptor, allowOrigin func(string) bool) *invokeHandler {
	methods := make(map[string]func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error), len(api.CommandServiceDesc.Methods))
	for _, md := range api.CommandServiceDesc.Methods {
		methods[md.MethodName] = md.Handler
	}
	return &invokeHandler{srv: srv, methods: methods, interceptor: interceptor, allowOrigin: allowOrigin}
}

func (h *invokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeInvoke(w, http.StatusMethodNotAllowed, invokeResponse{Error: "method not allowed"})
		return
	}

	// cors only withholds headers; a simple cross-site POST still reaches here.
	if origin := r.Header.Get("Origin"); origin != "" && !h.allowOrigin(origin) {
		writeInvoke(w, http.StatusForbidden, invokeResponse{Error: "origin not allowed: " + origin})
		return
	}
	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "application/json" {
		writeInvoke(w, http.StatusUnsupportedMediaType, invokeResponse{Error: "content type must be application/json"})
		return
	}

	command := strings.TrimPrefix(r.URL.Path, InvokePrefix)
	method, ok := commandMethods[command]
	if !ok {
		writeInvoke(w, http.StatusNotFound, invokeResponse{Error: "unknown command: " + command})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxInvokeBody))
	if err != nil {
		writeInvoke(w, http.StatusBadRequest, invokeResponse{Error: err.Error()})
		return
	}

	var decodeErr error
	dec := func(v any) error {
		if len(strings.TrimSpace(string(body))) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, v); err != nil {
			decodeErr = err
			return err
		}
		return nil
	}

	resp, err := h.methods[method](h.srv, r.Context(), dec, h.interceptor)
	if decodeErr != nil {
		writeInvoke(w, http.StatusBadRequest, invokeResponse{Error: "invalid arguments: " + decodeErr.Error()})
		return
	}
	if err != nil {
		writeInvoke(w, invokeStatus(err), invokeResponse{Error: api.ErrorMessage(err)})
		return
	}

	writeInvoke(w, http.StatusOK, invokeResponse{Result: invokeResult(resp)})
}

// invokeResult unwraps single-value responses so the front end gets the
// same bare values the desktop commands returned.
func invokeResult(resp any) any {
	switch v := resp.(type) {
	case *emptypb.Empty:
		return nil
	case *api.GreetResponse:
		return v.Message
	case *api.AppVersion:
		return v.Version
	default:
		return resp
	}
}

func invokeStatus(err error) int {
	switch status.Code(err) {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func writeInvoke(w http.ResponseWriter, code int, resp invokeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[server] Failed to write invoke response: %v", err)
	}
}

// metricsInterceptor records every command in metrics and telemetry.
func (s *Server) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)

	command := commandName(info.FullMethod)
	result := ResultOK
	if err != nil {
		result = ResultError
		log.Printf("[server] %s failed: %s", command, api.ErrorMessage(err))
	}
	s.metrics.ObserveCommand(command, result)
	s.telemetry.CommandInvoked(command, result)
	return resp, err
}
