// Package command implements the commands the front end invokes on the
// daemon.
package command

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/overlearn/overlearn/internal/api"
	"github.com/overlearn/overlearn/internal/buildinfo"
	"github.com/overlearn/overlearn/internal/config"
	"github.com/overlearn/overlearn/internal/notification"
)

// Window is the front end window as seen by the commands.
type Window interface {
	Show() error
	Hide() error
	Toggle() error
	Visible() bool
	URL() string
}

// Options wires a Service to the rest of the daemon.
type Options struct {
	Dispatcher *notification.Dispatcher
	Window     Window

	// Reminders reports the number of scheduled reminders. Optional.
	Reminders    func() int
	// NextReminder reports the earliest upcoming reminder. Optional.
	NextReminder func() (time.Time, bool)

	// Shutdown is called asynchronously by the Shutdown command.
	Shutdown func()
}

// Service implements api.CommandServiceServer.
type Service struct {
	dispatcher *notification.Dispatcher
	window     Window
	reminders  func() int
	nextRun    func() (time.Time, bool)
	shutdown   func()
}

// New creates a command service.
func New(opts Options) *Service {
	return &Service{
		dispatcher: opts.Dispatcher,
		window:     opts.Window,
		reminders:  opts.Reminders,
		nextRun:    opts.NextReminder,
		shutdown:   opts.Shutdown,
	}
}

var _ api.CommandServiceServer = (*Service)(nil)

// Greet returns a welcome message.
func (s *Service) Greet(_ context.Context, req *api.GreetRequest) (*api.GreetResponse, error) {
	return &api.GreetResponse{
		Message: fmt.Sprintf("Hello, %s! Welcome to %s.", req.Name, buildinfo.AppName),
	}, nil
}

// ShowNotification shows a plain notification at normal urgency.
func (s *Service) ShowNotification(ctx context.Context, req *api.ShowNotificationRequest) (*emptypb.Empty, error) {
	err := s.dispatcher.Notify(ctx, req.Title, req.Body, notification.UrgencyNormal.String())
	return deliveryResult(err)
}

// ShowNativeNotification shows a notification with a caller-chosen urgency.
func (s *Service) ShowNativeNotification(ctx context.Context, req *api.ShowNativeNotificationRequest) (*emptypb.Empty, error) {
	err := s.dispatcher.Notify(ctx, req.Title, req.Message, req.Urgency)
	return deliveryResult(err)
}

// NotifyPomodoroComplete announces the end of a Pomodoro session.
func (s *Service) NotifyPomodoroComplete(ctx context.Context, req *api.NotifyPomodoroCompleteRequest) (*emptypb.Empty, error) {
	err := s.dispatcher.NotifyPomodoro(ctx, req.SessionType, int(req.Duration), req.TaskTitle)
	return deliveryResult(err)
}

// NotifyStudyGoalMilestone announces study goal progress.
func (s *Service) NotifyStudyGoalMilestone(ctx context.Context, req *api.NotifyStudyGoalMilestoneRequest) (*emptypb.Empty, error) {
	err := s.dispatcher.NotifyMilestone(ctx, req.GoalTitle, int(req.Milestone))
	return deliveryResult(err)
}

// GetAppVersion returns build information.
func (s *Service) GetAppVersion(context.Context, *emptypb.Empty) (*api.AppVersion, error) {
	return &api.AppVersion{
		Version:    buildinfo.Version,
		Codename:   buildinfo.Codename,
		CommitHash: buildinfo.CommitHash,
		BuildDate:  buildinfo.BuildDate,
	}, nil
}

// ShowWindow shows the front end window.
func (s *Service) ShowWindow(context.Context, *emptypb.Empty) (*api.WindowState, error) {
	if s.window == nil {
		return nil, status.Error(codes.Unimplemented, "no window available")
	}
	if err := s.window.Show(); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.WindowState{Visible: s.window.Visible()}, nil
}

// HideWindow hides the front end window.
func (s *Service) HideWindow(context.Context, *emptypb.Empty) (*api.WindowState, error) {
	if s.window == nil {
		return nil, status.Error(codes.Unimplemented, "no window available")
	}
	if err := s.window.Hide(); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &api.WindowState{Visible: s.window.Visible()}, nil
}

// GetStatus reports where the daemon runs and how it delivers notifications.
func (s *Service) GetStatus(context.Context, *emptypb.Empty) (*api.DaemonStatus, error) {
	st := &api.DaemonStatus{
		Pid:     int32(os.Getpid()),
		Backend: s.dispatcher.SinkName(),
	}

	info, err := config.LoadDaemonInfo()
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if info != nil {
		st.Host = info.Host
		st.Port = int32(info.Port)
		st.StartedAt = timestamppb.New(info.StartedAt)
	}
	if s.window != nil {
		st.WindowVisible = s.window.Visible()
		st.FrontendUrl = s.window.URL()
	}
	if s.reminders != nil {
		st.Reminders = int32(s.reminders())
	}
	if s.nextRun != nil {
		if next, ok := s.nextRun(); ok {
			st.NextReminder = timestamppb.New(next)
		}
	}
	return st, nil
}

// Shutdown asks the daemon to exit after the response has been sent.
func (s *Service) Shutdown(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	if s.shutdown == nil {
		return nil, status.Error(codes.Unimplemented, "shutdown not available")
	}
	go func() {
		time.Sleep(100 * time.Millisecond)
		log.Println("[command] Shutdown requested")
		s.shutdown()
	}()
	return &emptypb.Empty{}, nil
}

// deliveryResult converts a dispatcher error into a status carrying only the
// rendered message.
func deliveryResult(err error) (*emptypb.Empty, error) {
	if err == nil {
		return &emptypb.Empty{}, nil
	}
	var de *notification.DeliveryError
	if errors.As(err, &de) {
		return nil, status.Error(codes.Unavailable, de.Error())
	}
	return nil, status.Error(codes.Internal, err.Error())
}
