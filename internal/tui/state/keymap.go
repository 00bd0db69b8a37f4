package state

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the list page. Modal and dialog keys are
// fixed and handled where the modal is.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	More     key.Binding
	Delete   key.Binding
	CopyLink key.Binding
	Filter   key.Binding
	Search   key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default Vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
		Edit:     key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		More:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "more")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		CopyLink: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Filter:   key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "status filter")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		PrevPage: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.More, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Add, k.Edit, k.More, k.Delete, k.CopyLink},
		{k.Filter, k.Search, k.Refresh, k.Help, k.Quit},
	}
}

// HelpItems returns key and description pairs for the help overlay. An entry
// with an empty description is a section header.
func (k KeyMap) HelpItems() [][]string {
	return [][]string{
		{"Navigation", ""},
		{"j/k", "Move down/up"},
		{"[/]", "Previous/next page"},
		{"", ""},
		{"Task Actions", ""},
		{"a", "Add task"},
		{"e/enter", "Edit task"},
		{"m", "More actions"},
		{"d", "Delete task"},
		{"y", "Copy task link"},
		{"", ""},
		{"Form", ""},
		{"tab/shift+tab", "Next/previous field"},
		{"←/→", "Change owner"},
		{"ctrl+s", "Save"},
		{"esc", "Cancel"},
		{"", ""},
		{"General", ""},
		{"1/2/3", "All / In progress / Waiting"},
		{"/", "Search"},
		{"r", "Reload"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
}
