package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/overlearn/overlearn/internal/config"
)

func newStartedWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Stop)
	return w, dir
}

func TestSettingsWritesAreDebounced(t *testing.T) {
	w, dir := newStartedWatcher(t)
	path := filepath.Join(dir, config.SettingsFileName)

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case e := <-w.Events():
		if e.Type != EventSettingsChanged || e.Path != path {
			t.Errorf("event = %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no settings event")
	}

	select {
	case e := <-w.Events():
		t.Errorf("unexpected second event %+v", e)
	case <-time.After(3 * DebounceDelay):
	}
}

func TestOtherFilesIgnored(t *testing.T) {
	w, dir := newStartedWatcher(t)

	if err := os.WriteFile(filepath.Join(dir, config.DaemonFileName), []byte("port: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case e := <-w.Events():
		t.Errorf("unexpected event %+v", e)
	case <-time.After(3 * DebounceDelay):
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w, _ := newStartedWatcher(t)
	w.Stop()
	w.Stop()
}

func TestStopEndsEventRange(t *testing.T) {
	w, dir := newStartedWatcher(t)

	exited := make(chan struct{})
	go func() {
		for range w.Events() {
		}
		close(exited)
	}()

	// A pending debounced event must not send on the closed channel.
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFileName), []byte("version: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w.Stop()

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("range over Events() did not end after Stop")
	}
	time.Sleep(3 * DebounceDelay)
}
