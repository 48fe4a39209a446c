// Package snapshot writes rendered frames to disk as PNG files.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Name returns the file name used for a frame saved at t.
func Name(t time.Time) string {
	return "mandelbrot-" + t.Format("20060102-150405") + ".png"
}

// Save encodes img as PNG into dir, creating dir when needed, and returns
// the absolute path written. An empty dir means the working directory.
func Save(dir string, img image.Image, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir %q: %w", dir, err)
	}
	f, path, err := create(dir, Name(now))
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		if cerr := f.Close(); cerr != nil {
			log.Printf("close %s: %v", path, cerr)
		}
		return "", fmt.Errorf("write PNG to %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %q: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

// maxSuffix bounds the attempts for saves landing in the same second.
const maxSuffix = 1000

// create opens a new file named name in dir without replacing an existing
// one. Later saves within the same second get a -1, -2, ... suffix.
func create(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]
	for i := 0; i < maxSuffix; i++ {
		path := filepath.Join(dir, name)
		if i > 0 {
			path = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, ext))
		}
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", fmt.Errorf("create snapshot %q: %w", path, err)
		}
	}
	return nil, "", fmt.Errorf("create snapshot %q: too many snapshots in one second", filepath.Join(dir, name))
}
