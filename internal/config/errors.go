package config

import "errors"

// Error variables for configuration loading.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrConfigExists       = errors.New("config file already exists (use --force to overwrite)")
	ErrNoConfigHome       = errors.New("cannot determine config directory (set $XDG_CONFIG_HOME or $HOME)")
	ErrInvalidFilter      = errors.New("invalid filter (must be all, done or notdone)")
	ErrInvalidMode        = errors.New("invalid mode (must be tui or plain)")
	ErrTitleEmpty         = errors.New("title cannot be empty")
	ErrUnknownKeyAction   = errors.New("unknown key action")
	ErrEmptyKeyBinding    = errors.New("key binding needs at least one key")
)
