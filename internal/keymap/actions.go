// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"

	// Reminder list actions
	ActionAdd             Action = "add"
	ActionDelete          Action = "delete"
	ActionToggleAutostart Action = "toggle_autostart"
	ActionMoveUp          Action = "move_up"
	ActionMoveDown        Action = "move_down"

	// Add form actions
	ActionNextField  Action = "next_field"
	ActionDayPlus    Action = "day_plus"
	ActionDayMinus   Action = "day_minus"
	ActionMonthPlus  Action = "month_plus"
	ActionMonthMinus Action = "month_minus"
	ActionSave       Action = "save"
	ActionCancel     Action = "cancel"
)
