package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// idleKeyMap applies while no block has edit focus
type idleKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Add    key.Binding
	Copy   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func (k idleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Add, k.Copy, k.Delete, k.Quit}
}

func (k idleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editKeyMap applies while a block is being edited
type editKeyMap struct {
	Split     key.Binding
	LineBreak key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Escape    key.Binding
	Blur      key.Binding
}

func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Split, k.LineBreak, k.Escape, k.Blur}
}

func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Split, k.LineBreak, k.Backspace},
		{k.Left, k.Right, k.Home, k.End},
		{k.Escape, k.Blur},
	}
}

// menuKeyMap applies while the slash menu is open
type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

func (k menuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}

func (k menuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type keyMap struct {
	Idle idleKeyMap
	Edit editKeyMap
	Menu menuKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Idle: idleKeyMap{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Edit:   key.NewBinding(key.WithKeys("enter", "i"), key.WithHelp("enter/i", "edit")),
			Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add block")),
			Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
			Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		Edit: editKeyMap{
			Split:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new block")),
			LineBreak: key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "line break")),
			Backspace: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete char")),
			Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
			Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
			Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
			End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
			Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "discard")),
			Blur:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "done")),
		},
		Menu: menuKeyMap{
			Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
			Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
			Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		},
	}
}
