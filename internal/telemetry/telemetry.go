// Package telemetry sends opt-in usage events. Only command names and
// results are recorded; notification titles and bodies never leave the
// machine.
package telemetry

import (
	"fmt"
	"log"
	"runtime"

	"github.com/posthog/posthog-go"

	"github.com/overlearn/overlearn/internal/buildinfo"
	"github.com/overlearn/overlearn/internal/models"
)

// EventCommandInvoked is captured once per handled command.
const EventCommandInvoked = "command_invoked"

// Client records usage events.
type Client interface {
	CommandInvoked(command, result string)
	Close() error
}

type noop struct{}

func (noop) CommandInvoked(string, string) {}
func (noop) Close() error                  { return nil }

// Noop returns a client that records nothing.
func Noop() Client {
	return noop{}
}

// enqueuer is the part of posthog.Client used here.
type enqueuer interface {
	Enqueue(posthog.Message) error
	Close() error
}

type posthogClient struct {
	client     enqueuer
	distinctID string
}

// New returns a PostHog-backed client when telemetry is enabled with an API
// key, and a no-op client otherwise.
func New(cfg models.TelemetryConfig, installID string) (Client, error) {
	if !cfg.Enabled || cfg.APIKey == "" {
		return Noop(), nil
	}

	phCfg := posthog.Config{}
	if cfg.Endpoint != "" {
		phCfg.Endpoint = cfg.Endpoint
	}
	c, err := posthog.NewWithConfig(cfg.APIKey, phCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry client: %w", err)
	}
	log.Printf("[telemetry] Enabled (install %s)", installID)
	return newPosthogClient(c, installID), nil
}

func newPosthogClient(c enqueuer, installID string) *posthogClient {
	return &posthogClient{client: c, distinctID: installID}
}

func (p *posthogClient) CommandInvoked(command, result string) {
	err := p.client.Enqueue(posthog.Capture{
		DistinctId: p.distinctID,
		Event:      EventCommandInvoked,
		Properties: posthog.NewProperties().
			Set("command", command).
			Set("result", result).
			Set("version", buildinfo.Version).
			Set("os", runtime.GOOS),
	})
	if err != nil {
		log.Printf("[telemetry] Failed to enqueue event: %v", err)
	}
}

func (p *posthogClient) Close() error {
	return p.client.Close()
}
