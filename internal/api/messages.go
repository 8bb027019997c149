package api

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// RequestMeta contains metadata about the client making a request.
type RequestMeta struct {
	Origin   string `json:"origin,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Version  string `json:"version,omitempty"`
}

// GreetRequest is the payload of the greet command.
type GreetRequest struct {
	Meta *RequestMeta `json:"meta,omitempty"`
	Name string       `json:"name"`
}

// GreetResponse carries the greeting text.
type GreetResponse struct {
	Message string `json:"message"`
}

// ShowNotificationRequest is the payload of show_notification.
type ShowNotificationRequest struct {
	Meta  *RequestMeta `json:"meta,omitempty"`
	Title string       `json:"title"`
	Body  string       `json:"body"`
}

// ShowNativeNotificationRequest is the payload of show_native_notification.
type ShowNativeNotificationRequest struct {
	Meta    *RequestMeta `json:"meta,omitempty"`
	Title   string       `json:"title"`
	Message string       `json:"message"`
	Urgency string       `json:"urgency"` // "low" | "normal" | "critical"
}

// NotifyPomodoroCompleteRequest is the payload of notify_pomodoro_complete.
type NotifyPomodoroCompleteRequest struct {
	Meta        *RequestMeta `json:"meta,omitempty"`
	SessionType string       `json:"sessionType"` // "work" | "break" | other
	Duration    int32        `json:"duration"`    // minutes
	TaskTitle   *string      `json:"taskTitle,omitempty"`
}

// NotifyStudyGoalMilestoneRequest is the payload of notify_study_goal_milestone.
type NotifyStudyGoalMilestoneRequest struct {
	Meta      *RequestMeta `json:"meta,omitempty"`
	GoalTitle string       `json:"goalTitle"`
	Milestone int32        `json:"milestone"` // percent
}

// AppVersion describes the running daemon build.
type AppVersion struct {
	Version    string `json:"version"`
	Codename   string `json:"codename"`
	CommitHash string `json:"commitHash"`
	BuildDate  string `json:"buildDate"`
}

// WindowState reports whether the front end window is shown.
type WindowState struct {
	Visible bool `json:"visible"`
}

// DaemonStatus represents the current status of the daemon.
type DaemonStatus struct {
	Host          string                 `json:"host"`
	Port          int32                  `json:"port"`
	Pid           int32                  `json:"pid"`
	StartedAt     *timestamppb.Timestamp `json:"startedAt,omitempty"`
	Backend       string                 `json:"backend"`
	WindowVisible bool                   `json:"windowVisible"`
	Reminders     int32                  `json:"reminders"`
	NextReminder  *timestamppb.Timestamp `json:"nextReminder,omitempty"`
	FrontendUrl   string                 `json:"frontendUrl,omitempty"`
}
