package extract

import (
	"strings"
	"testing"
)

func TestFindBalancedBlock(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		from      int
		wantBlock string
		wantOK    bool
	}{
		{
			name:      "simple block",
			text:      "abc {inner} def",
			from:      0,
			wantBlock: "{inner}",
			wantOK:    true,
		},
		{
			name:      "nested blocks",
			text:      "{a {b {c} d} e} tail",
			from:      0,
			wantBlock: "{a {b {c} d} e}",
			wantOK:    true,
		},
		{
			name:      "search start skips earlier block",
			text:      "{first} {second}",
			from:      7,
			wantBlock: "{second}",
			wantOK:    true,
		},
		{
			name:   "no opening brace",
			text:   "no braces here",
			from:   0,
			wantOK: false,
		},
		{
			name:   "unbalanced input",
			text:   "{a {b}",
			from:   0,
			wantOK: false,
		},
		{
			name:   "start beyond text",
			text:   "{x}",
			from:   10,
			wantOK: false,
		},
		{
			name:      "empty block",
			text:      "{}",
			from:      0,
			wantBlock: "{}",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := FindBalancedBlock(tt.text, tt.from)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			block := tt.text[start:end]
			if block != tt.wantBlock {
				t.Errorf("expected block %q, got %q", tt.wantBlock, block)
			}
			if strings.Count(block, "{") != strings.Count(block, "}") {
				t.Errorf("block %q has unequal brace counts", block)
			}
		})
	}
}

// The scanner counts braces without tracking quotes. A literal brace inside
// a string shifts the detected boundary; this pins the documented limitation
// so it cannot change silently.
func TestFindBalancedBlock_BraceInsideStringMiscounts(t *testing.T) {
	text := `{name: "open {"} tail}`
	start, end, ok := FindBalancedBlock(text, 0)
	if !ok {
		t.Fatal("expected a block")
	}
	got := text[start:end]
	want := `{name: "open {"} tail}`
	if got != want {
		t.Errorf("expected the quoted brace to extend the span to %q, got %q", want, got)
	}
}

func TestFindBalancedBlock_MinimalSpan(t *testing.T) {
	text := "{a}{b}{c}"
	start, end, ok := FindBalancedBlock(text, 0)
	if !ok || text[start:end] != "{a}" {
		t.Fatalf("expected minimal first span {a}, got %q (ok=%v)", text[start:end], ok)
	}

	start, end, ok = FindBalancedBlock(text, end)
	if !ok || text[start:end] != "{b}" {
		t.Fatalf("expected sibling span {b}, got %q (ok=%v)", text[start:end], ok)
	}
}
