package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the main view. It satisfies help.KeyMap.
type KeyMap struct {
	Data     key.Binding
	Comic    key.Binding
	Web3     key.Binding
	Collapse key.Binding
	Commit   key.Binding
	Sound    key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the stock binding set.
var DefaultKeyMap = KeyMap{
	Data:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "architect")),
	Comic:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "anomaly")),
	Web3:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "mirror")),
	Collapse: key.NewBinding(key.WithKeys("0", "backspace"), key.WithHelp("0", "singularity")),
	Commit:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "commit")),
	Sound:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sound")),
	Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "lean left")),
	Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "lean right")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "lean up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "lean down")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Sound, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Data, k.Comic, k.Web3, k.Collapse},
		{k.Left, k.Right, k.Up, k.Down},
		{k.Commit, k.Sound, k.Help, k.Quit},
	}
}
