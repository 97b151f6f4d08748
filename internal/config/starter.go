package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Starter is the commented config written by "todo init-config".
const Starter = `{
  // Heading shown above the list.
  "title": "To-Do App",

  // Filter selected at startup: all, done or notdone.
  "filter": "all",

  // Front-end: "tui" (full screen) or "plain" (line prompt).
  "mode": "tui",

  // Debug log for the full-screen UI. Relative paths resolve against the
  // working directory. Empty disables logging.
  // "log_file": "todo-debug.log",

  "theme": {
    "accent": "#1976D2",
    "done_background": "#D3D3D3",
    "muted": "#8A8A8A",
  },

  // Rebind any action. Each action takes a list of key names as Bubble Tea
  // reports them ("enter", "ctrl+s", "alt+1", " " for space).
  "keys": {
    // "toggle": [" ", "x"],
    // "delete": ["d", "delete"],
  },
}
`

// WriteStarter writes [Starter] to path atomically, creating parent
// directories. An existing file is only replaced when force is set.
func WriteStarter(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader([]byte(Starter))); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}
