// Package notify tells the user about exported frames with desktop
// notifications. Each event is off unless enabled.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/mandelview/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires after a frame is written to disk.
	EventSave Event = "save"
	// EventCopy fires after a frame is placed on the clipboard.
	EventCopy Event = "copy"
)

var templates = map[Event]string{
	EventSave: "Saved %s",
	EventCopy: "Copied %s to clipboard",
}

// send is replaced in tests.
var send = platform.Notify

// Notifier sends OS-level notifications for the enabled events.
type Notifier struct {
	title   string
	enabled map[Event]bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithTitle overrides the notification title.
func WithTitle(title string) Option {
	return func(n *Notifier) { n.title = title }
}

// WithEvent turns notifications for event on or off.
func WithEvent(event Event, enabled bool) Option {
	return func(n *Notifier) { n.enabled[event] = enabled }
}

// New creates a Notifier with every event disabled unless opts enable it.
func New(opts ...Option) *Notifier {
	n := &Notifier{title: platform.AppName, enabled: make(map[Event]bool)}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Save sends a save notification, using the written file as the icon.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	detail := strings.TrimSpace(path)
	opts := platform.Options{}
	if abs, err := filepath.Abs(detail); err == nil {
		detail = abs
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventSave, detail, opts)
}

// Copy sends a clipboard notification.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "frame"
	}
	n.dispatch(EventCopy, detail, platform.Options{})
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	body := strings.TrimSpace(fmt.Sprintf(templates[event], strings.TrimSpace(detail)))
	if err := send(n.title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
