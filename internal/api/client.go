package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// DialOptions returns the options needed to talk to the command service.
func DialOptions() []grpc.DialOption {
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(CodecName)),
	}
}

// Client is a typed client for CommandService.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, in, out any) error {
	return c.cc.Invoke(ctx, FullMethod(method), in, out)
}

// Greet calls the greet command.
func (c *Client) Greet(ctx context.Context, name string) (string, error) {
	out := new(GreetResponse)
	if err := c.invoke(ctx, MethodGreet, &GreetRequest{Name: name}, out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// ShowNotification calls show_notification.
func (c *Client) ShowNotification(ctx context.Context, title, body string) error {
	return c.invoke(ctx, MethodShowNotification, &ShowNotificationRequest{Title: title, Body: body}, new(emptypb.Empty))
}

// ShowNativeNotification calls show_native_notification.
func (c *Client) ShowNativeNotification(ctx context.Context, title, message, urgency string) error {
	req := &ShowNativeNotificationRequest{Title: title, Message: message, Urgency: urgency}
	return c.invoke(ctx, MethodShowNativeNotification, req, new(emptypb.Empty))
}

// NotifyPomodoroComplete calls notify_pomodoro_complete.
func (c *Client) NotifyPomodoroComplete(ctx context.Context, sessionType string, duration int, taskTitle *string) error {
	req := &NotifyPomodoroCompleteRequest{SessionType: sessionType, Duration: int32(duration), TaskTitle: taskTitle}
	return c.invoke(ctx, MethodNotifyPomodoroComplete, req, new(emptypb.Empty))
}

// NotifyStudyGoalMilestone calls notify_study_goal_milestone.
func (c *Client) NotifyStudyGoalMilestone(ctx context.Context, goalTitle string, milestone int) error {
	req := &NotifyStudyGoalMilestoneRequest{GoalTitle: goalTitle, Milestone: int32(milestone)}
	return c.invoke(ctx, MethodNotifyStudyGoalMilestone, req, new(emptypb.Empty))
}

// GetAppVersion returns the daemon's build information.
func (c *Client) GetAppVersion(ctx context.Context) (*AppVersion, error) {
	out := new(AppVersion)
	if err := c.invoke(ctx, MethodGetAppVersion, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ShowWindow asks the daemon to show the front end.
func (c *Client) ShowWindow(ctx context.Context) (*WindowState, error) {
	out := new(WindowState)
	if err := c.invoke(ctx, MethodShowWindow, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// HideWindow asks the daemon to hide the front end.
func (c *Client) HideWindow(ctx context.Context) (*WindowState, error) {
	out := new(WindowState)
	if err := c.invoke(ctx, MethodHideWindow, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStatus returns the daemon status.
func (c *Client) GetStatus(ctx context.Context) (*DaemonStatus, error) {
	out := new(DaemonStatus)
	if err := c.invoke(ctx, MethodGetStatus, &emptypb.Empty{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Shutdown asks the daemon to exit.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.invoke(ctx, MethodShutdown, &emptypb.Empty{}, new(emptypb.Empty))
}

// ErrorMessage returns the plain message carried by a command error, without
// the gRPC status prefix.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if s, ok := status.FromError(err); ok {
		return s.Message()
	}
	return err.Error()
}
