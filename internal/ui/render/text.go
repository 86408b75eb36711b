// Package render provides text shaping helpers for terminal output.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (except tab) and invalid UTF-8
// bytes so stored note text cannot garble the terminal. Non-breaking
// spaces become regular spaces.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			i++
			continue
		}
		if r != '\t' && unicode.IsControl(r) {
			i += size
			continue
		}
		if r == ' ' {
			b.WriteByte(' ')
			i += size
			continue
		}
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// needsSanitize reports whether Sanitize would change the string, so
// clean text skips the rebuild.
func needsSanitize(s string) bool {
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' { // ASCII control chars
			return true
		}
		if b >= 0x80 && b <= 0x9f { // C1 controls / invalid lead bytes
			return true
		}
		if b == 0xc2 { // lead byte of U+00A0 (NBSP)
			if i+1 < len(s) && s[i+1] == 0xa0 {
				return true
			}
		}
	}
	return false
}

// Truncate shortens s to maxWidth terminal cells, ending with … when it
// had to cut. Wide characters count by display width. The input is
// sanitized first.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad extends s with trailing spaces to exactly width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Row lays out left and right on one line of the given width with right
// flush against the edge. Styled text is measured without its escape
// codes. The gap never shrinks below one space.
func Row(left, right string, width int) string {
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := max(width-leftWidth-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}
