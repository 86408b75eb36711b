// Package icons provides configurable icon sets for the UI.
package icons

// Style represents an icon style preference.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the symbols for one style.
type Icons struct {
	Calendar string // planned section header
	Settings string // settings section header
	Bell     string // marker for reminders due within a day
	CheckOn  string
	CheckOff string
}

var (
	nerdIcons = Icons{
		Calendar: " ",
		Settings: " ",
		Bell:     " ",
		CheckOn:  "",
		CheckOff: "",
	}

	unicodeIcons = Icons{
		Calendar: "📅 ",
		Settings: "⚙ ",
		Bell:     "🔔 ",
		CheckOn:  "☑",
		CheckOff: "☐",
	}

	noneIcons = Icons{
		Calendar: "",
		Settings: "",
		Bell:     "! ",
		CheckOn:  "[x]",
		CheckOff: "[ ]",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Calendar returns the planned section marker.
func Calendar() string {
	return current.Calendar
}

// Settings returns the settings section marker.
func Settings() string {
	return current.Settings
}

// Bell returns the marker for reminders due within a day.
func Bell() string {
	return current.Bell
}

// Checkbox returns the checkbox symbol for a toggle state.
func Checkbox(checked bool) string {
	if checked {
		return current.CheckOn
	}
	return current.CheckOff
}
