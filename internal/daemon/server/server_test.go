package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	"github.com/overlearn/overlearn/internal/api"
	"github.com/overlearn/overlearn/internal/buildinfo"
	"github.com/overlearn/overlearn/internal/daemon/command"
	"github.com/overlearn/overlearn/internal/notification"
)

type fakeSink struct {
	requests []notification.Request
	err      error
}

func (s *fakeSink) Name() string { return "fake" }

func (s *fakeSink) Deliver(_ context.Context, req notification.Request) error {
	s.requests = append(s.requests, req)
	return s.err
}

type recordingTelemetry struct {
	events []string
}

func (r *recordingTelemetry) CommandInvoked(command, result string) {
	r.events = append(r.events, command+"/"+result)
}

func (r *recordingTelemetry) Close() error { return nil }

type fixture struct {
	server    *Server
	sink      *fakeSink
	metrics   *Metrics
	telemetry *recordingTelemetry
	http      *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		sink:      &fakeSink{},
		metrics:   NewMetrics(),
		telemetry: &recordingTelemetry{},
	}
	d := notification.NewDispatcher(f.sink, notification.WithObserver(f.metrics.ObserveNotification))
	commands := command.New(command.Options{Dispatcher: d})

	f.server = newServer(Options{
		Commands:  commands,
		Metrics:   f.metrics,
		Telemetry: f.telemetry,
	})
	f.http = httptest.NewServer(f.server.Handler([]string{"http://localhost:3000"}, commands))
	t.Cleanup(f.http.Close)
	return f
}

func (f *fixture) invoke(t *testing.T, command, body string) (int, invokeResponse) {
	t.Helper()
	resp, err := http.Post(f.http.URL+InvokePrefix+command, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var out invokeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, out
}

func TestInvokeShowNotification(t *testing.T) {
	f := newFixture(t)

	code, out := f.invoke(t, "show_notification", `{"title":"Hi","body":"There"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, out.Error)
	}
	if out.Result != nil {
		t.Errorf("result = %v, want null", out.Result)
	}
	if len(f.sink.requests) != 1 || f.sink.requests[0].Title != "Hi" || f.sink.requests[0].Body != "There" {
		t.Errorf("sink requests = %+v", f.sink.requests)
	}
}

func TestInvokePomodoroPayload(t *testing.T) {
	f := newFixture(t)

	code, out := f.invoke(t, "notify_pomodoro_complete", `{"sessionType":"work","duration":25,"taskTitle":"Read"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d, error = %q", code, out.Error)
	}
	req := f.sink.requests[0]
	if req.Title != "🎯 Work Session Complete!" {
		t.Errorf("Title = %q", req.Title)
	}
	if req.Fields["task"] != "Read" {
		t.Errorf("Fields = %v", req.Fields)
	}
}

func TestInvokeGreetResult(t *testing.T) {
	f := newFixture(t)

	code, out := f.invoke(t, "greet", `{"name":"Ada"}`)
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if out.Result != "Hello, Ada! Welcome to OverLearn." {
		t.Errorf("result = %v, want bare greeting string", out.Result)
	}
}

func TestInvokeAppVersionResult(t *testing.T) {
	f := newFixture(t)

	code, out := f.invoke(t, "get_app_version", "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if out.Result != buildinfo.Version {
		t.Errorf("result = %v, want %q", out.Result, buildinfo.Version)
	}
}

func TestInvokeErrors(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		body     string
		sinkErr  error
		wantCode int
		wantErr  string
	}{
		{
			name:     "unknown command",
			command:  "open_dev_tools",
			body:     `{}`,
			wantCode: http.StatusNotFound,
			wantErr:  "unknown command: open_dev_tools",
		},
		{
			name:     "bad payload",
			command:  "show_notification",
			body:     `{"title": 5}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "delivery failure",
			command:  "show_native_notification",
			body:     `{"title":"t","message":"m","urgency":"low"}`,
			sinkErr:  errors.New("no session bus"),
			wantCode: http.StatusInternalServerError,
			wantErr:  "notification delivery failed: no session bus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.sink.err = tt.sinkErr

			code, out := f.invoke(t, tt.command, tt.body)
			if code != tt.wantCode {
				t.Errorf("status = %d, want %d", code, tt.wantCode)
			}
			if out.Error == "" {
				t.Error("error field is empty")
			}
			if tt.wantErr != "" && out.Error != tt.wantErr {
				t.Errorf("error = %q, want %q", out.Error, tt.wantErr)
			}
		})
	}
}

func TestInvokeRejectsGet(t *testing.T) {
	f := newFixture(t)
	resp, err := http.Get(f.http.URL + InvokePrefix + "greet")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestInvokeChecksOriginAndContentType(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		contentType string
		wantCode    int
		wantSent    bool
	}{
		{"foreign origin simple request", "http://evil.example", "text/plain", http.StatusForbidden, false},
		{"foreign origin json", "http://evil.example", "application/json", http.StatusForbidden, false},
		{"allowed origin", "http://localhost:3000", "application/json; charset=utf-8", http.StatusOK, true},
		{"no origin", "", "application/json", http.StatusOK, true},
		{"no origin form body", "", "text/plain", http.StatusUnsupportedMediaType, false},
		{"missing content type", "", "", http.StatusUnsupportedMediaType, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			req, err := http.NewRequest(http.MethodPost, f.http.URL+InvokePrefix+"show_notification",
				strings.NewReader(`{"title":"pwned","body":"from elsewhere"}`))
			if err != nil {
				t.Fatal(err)
			}
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if sent := len(f.sink.requests) > 0; sent != tt.wantSent {
				t.Errorf("delivered = %v, want %v (requests %+v)", sent, tt.wantSent, f.sink.requests)
			}
		})
	}
}

func TestMetricsAndTelemetry(t *testing.T) {
	f := newFixture(t)

	f.invoke(t, "show_notification", `{"title":"a","body":"b"}`)
	f.sink.err = errors.New("boom")
	f.invoke(t, "notify_study_goal_milestone", `{"goalTitle":"Go","milestone":50}`)

	if got := testutil.ToFloat64(f.metrics.commands.WithLabelValues("show_notification", ResultOK)); got != 1 {
		t.Errorf("show_notification ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(f.metrics.commands.WithLabelValues("notify_study_goal_milestone", ResultError)); got != 1 {
		t.Errorf("milestone error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(f.metrics.notifications.WithLabelValues("milestone", notification.OutcomeFailed)); got != 1 {
		t.Errorf("milestone failed = %v, want 1", got)
	}

	want := []string{"show_notification/ok", "notify_study_goal_milestone/error"}
	if strings.Join(f.telemetry.events, ",") != strings.Join(want, ",") {
		t.Errorf("telemetry = %v, want %v", f.telemetry.events, want)
	}

	resp, err := http.Get(f.http.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("/metrics status = %d", resp.StatusCode)
	}
}

func TestGRPCClient(t *testing.T) {
	f := newFixture(t)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = f.server.grpcServer.Serve(lis) }()
	t.Cleanup(f.server.grpcServer.Stop)

	opts := append(api.DialOptions(), grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}))
	conn, err := grpc.NewClient("passthrough:///bufnet", opts...)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	client := api.NewClient(conn)

	msg, err := client.Greet(context.Background(), "Ada")
	if err != nil || msg != "Hello, Ada! Welcome to OverLearn." {
		t.Fatalf("Greet() = %q, %v", msg, err)
	}

	f.sink.err = errors.New("no session bus")
	err = client.ShowNotification(context.Background(), "t", "b")
	if got := api.ErrorMessage(err); got != "notification delivery failed: no session bus" {
		t.Errorf("ErrorMessage = %q", got)
	}
}

func TestOriginChecker(t *testing.T) {
	tests := []struct {
		allowed []string
		origin  string
		want    bool
	}{
		{[]string{"http://localhost:3000"}, "http://localhost:3000", true},
		{[]string{"http://localhost:3000/"}, "http://localhost:3000", true},
		{[]string{"http://localhost:3000"}, "http://evil.example", false},
		{[]string{"*"}, "http://evil.example", true},
		{nil, "tauri://localhost", true},
	}
	for _, tt := range tests {
		if got := originChecker(tt.allowed)(tt.origin); got != tt.want {
			t.Errorf("originChecker(%v)(%q) = %v, want %v", tt.allowed, tt.origin, got, tt.want)
		}
	}
}

func TestCommandName(t *testing.T) {
	if got := commandName(api.FullMethod(api.MethodNotifyPomodoroComplete)); got != "notify_pomodoro_complete" {
		t.Errorf("commandName = %q", got)
	}
}
