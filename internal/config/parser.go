package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewport"
)

// Parse reads configuration from an io.Reader. Keys missing from the input
// keep their defaults and unknown keys are ignored.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch section {
		case "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		case "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("line %d: section [notify]: %w", lineNo, err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	var err error
	switch key {
	case "width":
		cfg.Width, err = parseInt(key, value)
	case "height":
		cfg.Height, err = parseInt(key, value)
	case "depth":
		var n int
		n, err = parseInt(key, value)
		cfg.Depth = viewport.Depth(n)
	case "workers":
		cfg.Workers, err = parseInt(key, value)
	case "poll_rate":
		cfg.PollRate, err = parseInt(key, value)
	case "trigger":
		cfg.Trigger, err = viewport.ParseTrigger(value)
	case "delivery":
		cfg.Delivery, err = render.ParseDelivery(value)
	case "hud":
		cfg.HUD, err = parseBool(key, value)
	case "save_dir":
		cfg.SaveDir = value
	}
	return err
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch key {
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for key %s: %w", key, err)
	}
	return n, nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	return b, nil
}
