package render

import (
	"strings"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Width != 80 {
		t.Errorf("expected Width=80, got %d", opts.Width)
	}
	if opts.Style != "dark" {
		t.Errorf("expected Style='dark', got %s", opts.Style)
	}
	if !opts.PreserveNewLines {
		t.Error("expected PreserveNewLines=true")
	}
	if !opts.TableWrap {
		t.Error("expected TableWrap=true")
	}
}

func TestOptionsChaining(t *testing.T) {
	opts := DefaultOptions().WithWidth(120).WithStyle("light")

	if opts.Width != 120 {
		t.Errorf("expected Width=120, got %d", opts.Width)
	}
	if opts.Style != "light" {
		t.Errorf("expected Style='light', got %s", opts.Style)
	}
	if !opts.PreserveNewLines {
		t.Error("chaining should preserve other options")
	}
}

func TestMarkdown(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "heading",
			input:    "# Shipment Summary",
			contains: "Shipment",
		},
		{
			name:     "bold",
			input:    "Total: **12345** shipments",
			contains: "12345",
		},
		{
			name: "table",
			input: "| Carrier | Count |\n|---------|-------|\n| DHL | 42 |",
			contains: "DHL",
		},
		{
			name:     "multiline",
			input:    "Line 1\n\nLine 2",
			contains: "Line",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Markdown(tc.input, DefaultOptions())
			if err != nil {
				t.Fatalf("Markdown failed: %v", err)
			}
			if !strings.Contains(out, tc.contains) {
				t.Errorf("output missing %q:\n%s", tc.contains, out)
			}
		})
	}
}

func TestMarkdownWithWidth(t *testing.T) {
	out, err := MarkdownWithWidth("plain answer text", 60)
	if err != nil {
		t.Fatalf("MarkdownWithWidth failed: %v", err)
	}
	if !strings.Contains(out, "plain answer text") {
		t.Errorf("output missing content:\n%s", out)
	}
}

func TestMarkdown_LightStyle(t *testing.T) {
	out, err := Markdown("**light**", DefaultOptions().WithStyle("light"))
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(out, "light") {
		t.Errorf("output missing content:\n%s", out)
	}
}

func TestMarkdown_UnknownStyleFallsBack(t *testing.T) {
	out, err := Markdown("hello", DefaultOptions().WithStyle("neon"))
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("output missing content:\n%s", out)
	}
}
