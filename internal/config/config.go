package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewport"
)

// Default window and loop settings.
const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultPollRate = 30
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Width    int
	Height   int
	Depth    viewport.Depth
	Workers  int // 0 uses GOMAXPROCS
	PollRate int
	Trigger  viewport.Trigger
	Delivery render.Delivery
	HUD      bool
	SaveDir  string
	Notify   Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Depth:    viewport.DefaultDepth,
		PollRate: DefaultPollRate,
		Trigger:  viewport.TriggerLevel,
		Delivery: render.DeliveryBlit,
	}
}

// Validate reports every setting the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Depth < viewport.MinDepth || c.Depth%viewport.DepthStep != 0 {
		errs = append(errs, fmt.Errorf("depth %d must be a multiple of %d and at least %d", c.Depth, viewport.DepthStep, viewport.MinDepth))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d must not be negative", c.Workers))
	}
	if c.PollRate <= 0 {
		errs = append(errs, fmt.Errorf("poll_rate %d must be positive", c.PollRate))
	}
	return errors.Join(errs...)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	fmt.Fprintf(&sb, "depth = %d\n", c.Depth)
	fmt.Fprintf(&sb, "workers = %d\n", c.Workers)
	fmt.Fprintf(&sb, "poll_rate = %d\n", c.PollRate)
	fmt.Fprintf(&sb, "trigger = %s\n", c.Trigger)
	fmt.Fprintf(&sb, "delivery = %s\n", c.Delivery)
	fmt.Fprintf(&sb, "hud = %v\n", c.HUD)
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	return sb.String()
}
