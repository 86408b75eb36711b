package keymap

// Binding describes the keys bound to a single action.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "list", "add"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "quit", "global"},

	// Reminder list
	{[]string{"a"}, ActionAdd, "add", "list"},
	{[]string{"d", "delete"}, ActionDelete, "delete", "list"},
	{[]string{"s"}, ActionToggleAutostart, "start with system", "list"},
	{[]string{"j", "down"}, ActionMoveDown, "move down", "list"},
	{[]string{"k", "up"}, ActionMoveUp, "move up", "list"},

	// Add form
	{[]string{"tab"}, ActionNextField, "switch field", "add"},
	{[]string{"+", "right"}, ActionDayPlus, "+1 day", "add"},
	{[]string{"-", "left"}, ActionDayMinus, "-1 day", "add"},
	{[]string{"pgdown"}, ActionMonthPlus, "+1 month", "add"},
	{[]string{"pgup"}, ActionMonthMinus, "-1 month", "add"},
	{[]string{"enter"}, ActionSave, "save", "add"},
	{[]string{"esc"}, ActionCancel, "cancel", "add"},
}

// ByContext returns the bindings declared for a context, in order.
func ByContext(context string) []Binding {
	var out []Binding
	for _, b := range All {
		if b.Context == context {
			out = append(out, b)
		}
	}
	return out
}
