package notification

import "fmt"

// Request kinds, used for preference gating, metrics and log lines.
const (
	KindGeneric   = "generic"
	KindPomodoro  = "pomodoro"
	KindMilestone = "milestone"
)

// Request is a single notification ready for delivery. It is built by one of
// the Map functions and consumed by a Sink; nothing retains it afterwards.
type Request struct {
	Kind    string
	Title   string
	Body    string
	Urgency Urgency

	// Fields carries optional context that logging sinks print and native
	// sinks ignore.
	Fields map[string]string
}

// MapGeneric builds a request from caller-supplied text. The urgency tag is
// parsed with ParseUrgency, so unknown tags fall back to normal.
func MapGeneric(title, body, urgencyTag string) Request {
	return Request{
		Kind:    KindGeneric,
		Title:   title,
		Body:    body,
		Urgency: ParseUrgency(urgencyTag),
	}
}

// MapPomodoro builds the notification for a finished Pomodoro timer.
// The break text ignores the duration.
func MapPomodoro(sessionType string, durationMinutes int) Request {
	req := Request{Kind: KindPomodoro, Urgency: UrgencyNormal}

	switch sessionType {
	case "work":
		req.Title = "🎯 Work Session Complete!"
		req.Body = fmt.Sprintf("You completed a %d-minute work session! Time to take a break. ☕", durationMinutes)
	case "break":
		req.Title = "⏰ Break Complete!"
		req.Body = "Break's over! Ready to focus again? Let's get back to work! 💪"
	default:
		req.Title = "⏱️ Timer Complete"
		req.Body = fmt.Sprintf("Your %d-minute session is complete!", durationMinutes)
	}

	return req
}

// MapMilestone builds the notification for a study goal milestone. The goal
// title is interpolated verbatim.
func MapMilestone(goalTitle string, milestonePercent int) Request {
	emoji, message := milestonePhrase(goalTitle, milestonePercent)
	return Request{
		Kind:    KindMilestone,
		Title:   fmt.Sprintf("%s Study Goal Milestone: %d%%", emoji, milestonePercent),
		Body:    message,
		Urgency: UrgencyNormal,
	}
}

func milestonePhrase(goalTitle string, percent int) (string, string) {
	switch percent {
	case 25:
		return "🌱", fmt.Sprintf("You're 25%% through \"%s\"! Keep going!", goalTitle)
	case 50:
		return "🚀", fmt.Sprintf("Halfway there on \"%s\"!", goalTitle)
	case 75:
		return "⭐", fmt.Sprintf("Almost done with \"%s\"!", goalTitle)
	case 100:
		return "🎉", fmt.Sprintf("Congratulations! You completed \"%s\"!", goalTitle)
	default:
		return "📊", fmt.Sprintf("You're %d%% through \"%s\"!", percent, goalTitle)
	}
}
