// Package notification maps OverLearn events to desktop notifications and
// hands them to a platform sink.
package notification

import "strings"

// Urgency is a notification priority level. The values match the
// freedesktop notification "urgency" hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// ParseUrgency converts a urgency tag ("low", "normal", "critical") to an
// Urgency. Matching is case-insensitive. Any other tag yields UrgencyNormal.
func ParseUrgency(tag string) Urgency {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "low":
		return UrgencyLow
	case "critical":
		return UrgencyCritical
	default:
		return UrgencyNormal
	}
}

// String returns the lowercase tag for the urgency.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyCritical:
		return "critical"
	default:
		return "normal"
	}
}
