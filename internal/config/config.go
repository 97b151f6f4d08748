// Package config loads todo's JSONC configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/calvinalkan/agent-todo/internal/todo"
)

// Front-end modes.
const (
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Key actions that can be rebound under "keys".
const (
	KeySubmit        = "submit"
	KeyFocus         = "focus"
	KeyUp            = "up"
	KeyDown          = "down"
	KeyToggle        = "toggle"
	KeyEdit          = "edit"
	KeyDelete        = "delete"
	KeyFilterAll     = "filter_all"
	KeyFilterDone    = "filter_done"
	KeyFilterNotDone = "filter_notdone"
	KeyHelp          = "help"
	KeyQuit          = "quit"
)

// KeyActions lists every bindable action.
var KeyActions = []string{
	KeySubmit, KeyFocus, KeyUp, KeyDown, KeyToggle, KeyEdit, KeyDelete,
	KeyFilterAll, KeyFilterDone, KeyFilterNotDone, KeyHelp, KeyQuit,
}

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Title   string              `json:"title,omitempty"    yaml:"title,omitempty"`
	Filter  string              `json:"filter,omitempty"   yaml:"filter,omitempty"`
	Mode    string              `json:"mode,omitempty"     yaml:"mode,omitempty"`
	LogFile string              `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	Theme   Theme               `json:"theme"              yaml:"theme"`
	Keys    map[string][]string `json:"keys,omitempty"     yaml:"keys,omitempty"`

	// Resolved values (computed, not serialized)
	EffectiveCwd string      `json:"-" yaml:"-"`
	LogFileAbs   string      `json:"-" yaml:"-"`
	StartFilter  todo.Filter `json:"-" yaml:"-"`

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-" yaml:"-"`
}

// Theme holds the colours the terminal UI uses. Values are anything Lip
// Gloss accepts as a colour (hex "#7D56F4" or ANSI "63").
type Theme struct {
	Accent         string `json:"accent,omitempty"          yaml:"accent,omitempty"`
	DoneBackground string `json:"done_background,omitempty" yaml:"done_background,omitempty"`
	Muted          string `json:"muted,omitempty"           yaml:"muted,omitempty"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Title:  "To-Do App",
		Filter: todo.FilterAll.String(),
		Mode:   ModeTUI,
		Theme: Theme{
			Accent:         "#1976D2",
			DoneBackground: "#D3D3D3",
			Muted:          "#8A8A8A",
		},
		Keys: DefaultKeys(),
	}
}

// DefaultKeys returns the default key bindings per action.
func DefaultKeys() map[string][]string {
	return map[string][]string{
		KeySubmit:        {"enter"},
		KeyFocus:         {"tab", "shift+tab"},
		KeyUp:            {"up", "k"},
		KeyDown:          {"down", "j"},
		KeyToggle:        {" ", "x"},
		KeyEdit:          {"e"},
		KeyDelete:        {"d", "delete"},
		KeyFilterAll:     {"alt+1"},
		KeyFilterDone:    {"alt+2"},
		KeyFilterNotDone: {"alt+3"},
		KeyHelp:          {"?"},
		KeyQuit:          {"ctrl+c"},
	}
}

// FileName is the project config file name.
const FileName = ".todo.json"

// GlobalPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/todo/config.json if set, otherwise ~/.config/todo/config.json.
// Returns empty string if home directory cannot be determined.
func GlobalPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "todo", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "todo", "config.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Overrides       Config            // CLI flag values; empty fields mean no override
	Env             map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/todo/config.json or $XDG_CONFIG_HOME/todo/config.json)
// 3. Project config file at default location (.todo.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty, replaces 3)
// 5. CLI overrides.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()

	globalCfg, globalPath, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = merge(cfg, globalCfg)

	projectCfg, projectPath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = merge(cfg, projectCfg)

	cfg = merge(cfg, input.Overrides)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir
	cfg.StartFilter, _ = todo.ParseFilter(cfg.Filter)

	if cfg.LogFile != "" {
		cfg.LogFileAbs = cfg.LogFile
		if !filepath.IsAbs(cfg.LogFileAbs) {
			cfg.LogFileAbs = filepath.Join(workDir, cfg.LogFileAbs)
		}
	}

	return cfg, nil
}

func loadGlobal(env map[string]string) (Config, string, error) {
	path := GlobalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads .todo.json from workDir, or the explicit config file
// instead when configPath is set.
func loadProject(workDir, configPath string) (Config, string, error) {
	path := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		path = configPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		mustExist = true

		if _, statErr := os.Stat(path); statErr != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile loads a config file. If mustExist is false, missing files return
// a zero config and loaded=false.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

// Parse decodes a JSONC document. Unknown fields are rejected so typos in
// a config file do not go unnoticed.
func Parse(data []byte) (Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	dec := json.NewDecoder(strings.NewReader(string(standardized)))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if cfg.Title == "" && hasExplicitEmpty(standardized, "title") {
		return Config{}, ErrTitleEmpty
	}

	return cfg, nil
}

func hasExplicitEmpty(standardized []byte, field string) bool {
	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	str, ok := raw[field].(string)

	return ok && str == ""
}

// merge overlays every non-empty field of overlay onto base. Key bindings
// merge per action.
func merge(base, overlay Config) Config {
	if overlay.Title != "" {
		base.Title = overlay.Title
	}

	if overlay.Filter != "" {
		base.Filter = overlay.Filter
	}

	if overlay.Mode != "" {
		base.Mode = overlay.Mode
	}

	if overlay.LogFile != "" {
		base.LogFile = overlay.LogFile
	}

	if overlay.Theme.Accent != "" {
		base.Theme.Accent = overlay.Theme.Accent
	}

	if overlay.Theme.DoneBackground != "" {
		base.Theme.DoneBackground = overlay.Theme.DoneBackground
	}

	if overlay.Theme.Muted != "" {
		base.Theme.Muted = overlay.Theme.Muted
	}

	if len(overlay.Keys) > 0 {
		keys := maps.Clone(base.Keys)
		if keys == nil {
			keys = map[string][]string{}
		}

		maps.Copy(keys, overlay.Keys)
		base.Keys = keys
	}

	return base
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.Title) == "" {
		return ErrTitleEmpty
	}

	if _, ok := todo.ParseFilter(cfg.Filter); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFilter, cfg.Filter)
	}

	if cfg.Mode != ModeTUI && cfg.Mode != ModePlain {
		return fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}

	for _, action := range slices.Sorted(maps.Keys(cfg.Keys)) {
		if !slices.Contains(KeyActions, action) {
			return fmt.Errorf("%w: %q", ErrUnknownKeyAction, action)
		}

		if len(cfg.Keys[action]) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyKeyBinding, action)
		}
	}

	return nil
}

// Format renders the serializable part of cfg as indented JSON, or YAML
// when asYAML is set.
func Format(cfg Config, asYAML bool) (string, error) {
	if asYAML {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return "", fmt.Errorf("encoding yaml: %w", err)
		}

		return strings.TrimRight(string(out), "\n"), nil
	}

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding json: %w", err)
	}

	return string(out), nil
}
