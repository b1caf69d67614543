package tui

import "github.com/charmbracelet/bubbles/key"

// boardKeys are the bindings of the interactive board
type boardKeys struct {
	Left, Right, Up, Down key.Binding
	Back, Forward         key.Binding
	Mode, Filter, Sort    key.Binding
	Board, Dash, Gantt    key.Binding
	Search, Select, Clear key.Binding
	Help, Quit            key.Binding
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "card")),
		Back:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "previous status")),
		Forward: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next status")),
		Mode:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "client/project")),
		Filter:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next filter")),
		Sort:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Board:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "board")),
		Dash:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dashboard")),
		Gantt:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "gantt")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "ai search")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open card")),
		Clear:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Board, k.Dash, k.Gantt, k.Search, k.Help, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Back, k.Forward, k.Select, k.Clear},
		{k.Mode, k.Filter, k.Sort},
		{k.Board, k.Dash, k.Gantt, k.Search},
		{k.Help, k.Quit},
	}
}
