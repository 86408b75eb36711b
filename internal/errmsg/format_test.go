package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		err  error
		want string
	}{
		{"nil error returns empty", OpReminderLoad, nil, ""},
		{"formats op and error", OpReminderAdd, errors.New("database is locked"), "Failed to add reminder: database is locked"},
		{"delete op", OpReminderDelete, errors.New("reminder not found"), "Failed to delete reminder: reminder not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	err := errors.New("permission denied")

	got := FormatWith(OpAutostartUpdate, "loom.desktop", err)
	want := "Failed to update autostart 'loom.desktop': permission denied"
	if got != want {
		t.Errorf("FormatWith = %q, want %q", got, want)
	}

	// Empty context falls back to plain Format.
	if got := FormatWith(OpAutostartUpdate, "", err); got != Format(OpAutostartUpdate, err) {
		t.Errorf("FormatWith with empty context = %q, want %q", got, Format(OpAutostartUpdate, err))
	}

	if got := FormatWith(OpAutostartUpdate, "loom.desktop", nil); got != "" {
		t.Errorf("FormatWith with nil error = %q, want empty", got)
	}
}
