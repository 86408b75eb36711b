//go:build linux

// Package autostart manages the login entry that starts loom in the
// background when the desktop session begins. The entry itself is the
// setting: no separate flag is stored anywhere else.
package autostart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const entryName = "loom.desktop"

const desktopEntry = `[Desktop Entry]
Type=Application
Name=Loom
Comment=Reminder notifications
Exec="%s" --autostart
Terminal=false
X-GNOME-Autostart-enabled=true
`

func entryPath() string {
	return filepath.Join(xdg.ConfigHome, "autostart", entryName)
}

// Enabled reports whether the autostart entry is present.
func Enabled() bool {
	_, err := os.Stat(entryPath())
	return err == nil
}

// SetEnabled writes or removes the autostart entry. Removing an entry
// that does not exist is not an error.
func SetEnabled(enabled bool) error {
	path := entryPath()

	if !enabled {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove autostart entry: %w", err)
		}
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart directory: %w", err)
	}

	// The exe path is quoted so spaces survive Exec parsing.
	entry := fmt.Sprintf(desktopEntry, exe)
	if err := os.WriteFile(path, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("write autostart entry: %w", err)
	}
	return nil
}
