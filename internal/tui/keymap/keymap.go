// Package keymap provides the dashboard key bindings and maps key presses
// to named commands, so the model's Update method stays declarative.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command represents a named action that can be triggered by a key binding.
type Command string

const (
	CmdNone       Command = ""
	CmdRetry      Command = "retry"
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Keymap holds the dashboard bindings. It implements help.KeyMap.
type Keymap struct {
	Retry key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// Default returns the default dashboard bindings.
func Default() Keymap {
	return Keymap{
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry failed"),
			// Enabled only while a slice is Failed; see SetRetryEnabled.
			key.WithDisabled(),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetRetryEnabled enables or disables the retry binding.
func (k *Keymap) SetRetryEnabled(enabled bool) {
	k.Retry.SetEnabled(enabled)
}

// Lookup returns the command bound to msg, or CmdNone.
// Disabled bindings never match.
func (k Keymap) Lookup(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, k.Quit):
		return CmdQuit
	case key.Matches(msg, k.Retry):
		return CmdRetry
	case key.Matches(msg, k.Help):
		return CmdToggleHelp
	default:
		return CmdNone
	}
}

// ShortHelp returns the bindings shown in the collapsed help bar.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Help, k.Quit}
}

// FullHelp returns the bindings shown in the expanded help view.
func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Retry},
		{k.Help, k.Quit},
	}
}
