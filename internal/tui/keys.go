package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/calvinalkan/agent-todo/internal/config"
)

// KeyMap holds every binding the UI reacts to.
type KeyMap struct {
	Submit        key.Binding
	Focus         key.Binding
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	Edit          key.Binding
	Delete        key.Binding
	FilterAll     key.Binding
	FilterDone    key.Binding
	FilterNotDone key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// NewKeyMap builds bindings from the per-action key lists in cfg.Keys,
// falling back to config.DefaultKeys for actions it does not mention.
func NewKeyMap(keys map[string][]string) KeyMap {
	defaults := config.DefaultKeys()

	bind := func(action, desc string) key.Binding {
		ks, ok := keys[action]
		if !ok || len(ks) == 0 {
			ks = defaults[action]
		}

		return key.NewBinding(key.WithKeys(ks...), key.WithHelp(helpKeys(ks), desc))
	}

	return KeyMap{
		Submit:        bind(config.KeySubmit, "add / update"),
		Focus:         bind(config.KeyFocus, "switch focus"),
		Up:            bind(config.KeyUp, "up"),
		Down:          bind(config.KeyDown, "down"),
		Toggle:        bind(config.KeyToggle, "toggle done"),
		Edit:          bind(config.KeyEdit, "edit"),
		Delete:        bind(config.KeyDelete, "delete"),
		FilterAll:     bind(config.KeyFilterAll, "show all"),
		FilterDone:    bind(config.KeyFilterDone, "show done"),
		FilterNotDone: bind(config.KeyFilterNotDone, "show not done"),
		Help:          bind(config.KeyHelp, "more keys"),
		Quit:          bind(config.KeyQuit, "quit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Focus, k.Toggle, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Focus, k.Quit},
		{k.Up, k.Down, k.Toggle, k.Edit, k.Delete},
		{k.FilterAll, k.FilterDone, k.FilterNotDone, k.Help},
	}
}

func helpKeys(ks []string) string {
	names := make([]string, 0, len(ks))

	for _, k := range ks {
		if k == " " {
			k = "space"
		}

		names = append(names, k)
	}

	return strings.Join(names, "/")
}
