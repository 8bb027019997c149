package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/overlearn/overlearn/internal/config"
	"github.com/overlearn/overlearn/internal/daemon/command"
	"github.com/overlearn/overlearn/internal/daemon/reminder"
	"github.com/overlearn/overlearn/internal/daemon/server"
	"github.com/overlearn/overlearn/internal/daemon/tray"
	"github.com/overlearn/overlearn/internal/daemon/watcher"
	"github.com/overlearn/overlearn/internal/daemon/window"
	"github.com/overlearn/overlearn/internal/models"
	"github.com/overlearn/overlearn/internal/notification"
	"github.com/overlearn/overlearn/internal/telemetry"
)

const listenHost = "127.0.0.1"

// daemon holds every long-lived component of overlearnd.
type daemon struct {
	settings   *models.Settings
	metrics    *server.Metrics
	dispatcher *notification.Dispatcher
	window     *window.Launcher
	reminders  *reminder.Scheduler
	telemetry  telemetry.Client
	watcher    *watcher.Watcher
	srv        *server.Server

	// onDelivered is told the title of every delivered notification.
	onDelivered func(title string)
}

func newDaemon(settings *models.Settings) *daemon {
	d := &daemon{
		settings: settings,
		metrics:  server.NewMetrics(),
		window:   window.New(settings.Frontend.URL),
	}
	d.dispatcher = notification.NewDispatcher(
		notification.NewSink(settings.Notifications.Backend, log.Default()),
		notification.WithObserver(d.observeNotification),
	)
	d.reminders = reminder.New(d.dispatcher)
	return d
}

func nativeLabel() string {
	if notification.NativeSupported() {
		return "freedesktop (D-Bus)"
	}
	return "unavailable"
}

func (d *daemon) observeNotification(req notification.Request, outcome string) {
	d.metrics.ObserveNotification(req, outcome)
	if outcome == notification.OutcomeDelivered && d.onDelivered != nil {
		d.onDelivered(req.Title)
	}
}

// applySettings pushes notification settings and reminders into the
// running components.
func (d *daemon) applySettings(settings *models.Settings) {
	d.dispatcher.SetSink(notification.NewSink(settings.Notifications.Backend, log.Default()))

	prefs, err := notification.PreferencesFromSettings(settings.Notifications)
	if err != nil {
		log.Printf("[notify] Ignoring quiet hours: %v", err)
	}
	d.dispatcher.SetPreferences(prefs)

	d.reminders.Reload(settings.Reminders)
	d.settings = settings
	log.Printf("[notify] Using %s sink", d.dispatcher.SinkName())
}

// start brings up every component and records daemon.yaml.
func (d *daemon) start() error {
	tc, err := telemetry.New(d.settings.Telemetry, d.settings.InstallID)
	if err != nil {
		log.Printf("[telemetry] Disabled: %v", err)
		tc = telemetry.Noop()
	}
	d.telemetry = tc

	d.applySettings(d.settings)
	d.reminders.Start()

	commands := command.New(command.Options{
		Dispatcher:   d.dispatcher,
		Window:       d.window,
		Reminders:    d.reminders.Count,
		NextReminder: d.reminders.Next,
		Shutdown:     server.RequestShutdown,
	})

	d.srv, err = server.New(server.Options{
		Port:           d.settings.Server.Port,
		AllowedOrigins: d.settings.Server.AllowedOrigins,
		Commands:       commands,
		Metrics:        d.metrics,
		Telemetry:      d.telemetry,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	info := models.NewDaemonInfo(listenHost, d.srv.Port(), os.Getpid(), d.dispatcher.SinkName())
	if err := config.SaveDaemonInfo(info); err != nil {
		return fmt.Errorf("failed to write daemon info: %w", err)
	}

	if err := d.startWatcher(); err != nil {
		log.Printf("[watcher] Settings hot reload disabled: %v", err)
	}

	log.Printf("Daemon started on port %d (PID %d)", d.srv.Port(), os.Getpid())
	return nil
}

func (d *daemon) startWatcher() error {
	dir, err := config.GlobalDir()
	if err != nil {
		return err
	}
	w, err := watcher.New(dir)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		w.Stop()
		return err
	}
	d.watcher = w

	go func() {
		for event := range w.Events() {
			if event.Type != watcher.EventSettingsChanged {
				continue
			}
			settings, err := config.LoadSettings()
			if err != nil {
				log.Printf("[watcher] Failed to reload settings: %v", err)
				continue
			}
			log.Println("[watcher] Settings changed, reloading")
			d.applySettings(settings)
		}
	}()
	return nil
}

// stop tears components down in reverse order and removes daemon.yaml.
func (d *daemon) stop() {
	if d.srv != nil {
		d.srv.Stop()
	}
	if d.watcher != nil {
		d.watcher.Stop()
	}
	d.reminders.Stop()
	if d.telemetry != nil {
		if err := d.telemetry.Close(); err != nil {
			log.Printf("[telemetry] Close: %v", err)
		}
	}
	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}
	fmt.Println("Daemon stopped")
}

// runForeground runs the daemon without a system tray, blocking on signals.
func (d *daemon) runForeground() error {
	if err := d.start(); err != nil {
		d.stop()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- d.srv.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	d.stop()
	return nil
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func (d *daemon) runWithTray() {
	t := tray.New(server.NewTrayState(d.window), d.settings.Tray.IconPath)
	d.onDelivered = t.SetLastNotification

	onStart := func() {
		if err := d.start(); err != nil {
			log.Printf("Failed to start daemon: %v", err)
			t.Quit()
			return
		}

		go func() {
			if err := d.srv.Serve(); err != nil {
				log.Printf("Server error: %v", err)
				t.Quit()
			}
		}()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			log.Printf("Received signal %v, shutting down...", sig)
			t.Quit()
		}()
	}

	t.Run(onStart, d.stop)
}
