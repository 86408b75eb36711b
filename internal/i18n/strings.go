package i18n

import (
	"fmt"

	"github.com/ferrade/loom/internal/urgency"
)

// AppTitle is the product name and is not translated.
func AppTitle(_ Language) string {
	return "Loom"
}

func Settings(lang Language) string {
	if lang == Polish {
		return "Ustawienia"
	}
	return "Settings"
}

func StartWithSystem(lang Language) string {
	if lang == Polish {
		return "Włącz podczas włączania systemu"
	}
	return "Start with system"
}

func Add(lang Language) string {
	if lang == Polish {
		return "Dodaj"
	}
	return "Add"
}

func NoteHint(lang Language) string {
	if lang == Polish {
		return "Notatka..."
	}
	return "Note..."
}

func Planned(lang Language) string {
	if lang == Polish {
		return "Zaplanowane"
	}
	return "Planned"
}

func NoDB(lang Language) string {
	if lang == Polish {
		return "Brak bazy danych"
	}
	return "Database unavailable"
}

func Empty(lang Language) string {
	if lang == Polish {
		return "(pusto)"
	}
	return "(empty)"
}

func DBReadError(lang Language) string {
	if lang == Polish {
		return "Błąd odczytu bazy"
	}
	return "Failed to read database"
}

func ConfirmDelete(lang Language) string {
	if lang == Polish {
		return "Usunąć przypomnienie?"
	}
	return "Delete reminder?"
}

// NotifPrefix names the urgency window an alert announces.
func NotifPrefix(lang Language, level urgency.Level) string {
	if lang == Polish {
		switch level {
		case urgency.WithinWeek:
			return "≤ 7 dni"
		case urgency.WithinThreeDays:
			return "≤ 3 dni"
		default:
			return "≤ 1 dzień"
		}
	}
	switch level {
	case urgency.WithinWeek:
		return "≤ 7 days"
	case urgency.WithinThreeDays:
		return "≤ 3 days"
	default:
		return "≤ 1 day"
	}
}

// NotifTitle is the summary line of a desktop notification.
func NotifTitle(lang Language, level urgency.Level) string {
	if lang == Polish {
		return fmt.Sprintf("Przypomnienie (%s)", NotifPrefix(lang, level))
	}
	return fmt.Sprintf("Reminder (%s)", NotifPrefix(lang, level))
}

// DateLabel prefixes the due date in notification bodies and forms.
func DateLabel(lang Language) string {
	if lang == Polish {
		return "Data"
	}
	return "Date"
}
