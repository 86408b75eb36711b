package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 1},
		{"list context", "list", 5},
		{"add context", "add", 6},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d bindings, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAllBindingsComplete(t *testing.T) {
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		if b.Context == "" {
			t.Errorf("binding %q has no context", b.Action)
		}
	}
}

func TestNoDuplicateKeysWithinContext(t *testing.T) {
	// A key bound twice in one context would make dispatch ambiguous.
	// Global keys dispatch alongside the list context, so they count
	// against it too; the add form takes printable keys as text and
	// only sees its own bindings.
	byContext := make(map[string]map[string]Action)
	for _, b := range All {
		contexts := []string{b.Context}
		if b.Context == "global" {
			contexts = []string{"global", "list"}
		}
		for _, ctx := range contexts {
			if byContext[ctx] == nil {
				byContext[ctx] = make(map[string]Action)
			}
			for _, key := range b.Keys {
				if prev, ok := byContext[ctx][key]; ok {
					t.Errorf("key %q bound to both %q and %q in context %q", key, prev, b.Action, ctx)
				}
				byContext[ctx][key] = b.Action
			}
		}
	}
}
