package models

// ServerConfig holds settings for the daemon's command server.
type ServerConfig struct {
	Port           int      `yaml:"port"` // 0 = dynamic allocation
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// FrontendConfig describes where the web front end is served.
type FrontendConfig struct {
	URL string `yaml:"url"`
}

// QuietHoursConfig suppresses notifications inside a daily HH:MM window.
// The window may span midnight (start > end).
type QuietHoursConfig struct {
	Enabled bool   `yaml:"enabled"`
	Start   string `yaml:"start"`
	End     string `yaml:"end"`
}

// NotificationsConfig holds desktop notification preferences.
type NotificationsConfig struct {
	Enabled           bool             `yaml:"enabled"`
	Backend           string           `yaml:"backend"` // "auto" | "dbus" | "beeep" | "log"
	PomodoroEnabled   bool             `yaml:"pomodoro_enabled"`
	StudyGoalsEnabled bool             `yaml:"study_goals_enabled"`
	QuietHours        QuietHoursConfig `yaml:"quiet_hours"`
}

// TrayConfig holds system tray settings.
type TrayConfig struct {
	IconPath string `yaml:"icon_path"`
}

// Reminder is a cron-scheduled generic notification.
type Reminder struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"` // standard 5-field cron expression
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	Urgency  string `yaml:"urgency"`
}

// TelemetryConfig holds opt-in usage analytics settings.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint,omitempty"`
}

// Settings represents global application settings.
// This corresponds to ~/.overlearn/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	InstallID     string              `yaml:"install_id"`
	Server        ServerConfig        `yaml:"server"`
	Frontend      FrontendConfig      `yaml:"frontend"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Tray          TrayConfig          `yaml:"tray"`
	Reminders     []Reminder          `yaml:"reminders"`
	Telemetry     TelemetryConfig     `yaml:"telemetry"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Server: ServerConfig{
			Port: 0,
			AllowedOrigins: []string{
				"http://localhost:3000",
				"tauri://localhost",
			},
		},
		Frontend: FrontendConfig{
			URL: "http://localhost:3000",
		},
		Notifications: NotificationsConfig{
			Enabled:           true,
			Backend:           "auto",
			PomodoroEnabled:   true,
			StudyGoalsEnabled: true,
			QuietHours: QuietHoursConfig{
				Enabled: false,
				Start:   "22:00",
				End:     "07:00",
			},
		},
		Tray: TrayConfig{
			IconPath: "icons/icon.png",
		},
		Reminders: nil,
		Telemetry: TelemetryConfig{
			Enabled: false,
		},
	}
}
