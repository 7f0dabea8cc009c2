package reply

import (
	"bytes"
	"errors"
	"testing"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"status", OKValue(), "OK\n"},
		{"line", LineValue("https://ex.com/a"), "https://ex.com/a\n"},
		{"error", ErrorValue(errors.New("boom")), "error: boom\n"},
		{"empty list", ListValue(), ""},
		{"list", ListValue(LineValue("a"), StatusValue("b")), "a\nb\n"},
		{"numbered", NumberedListValue([]string{"x", "y"}), "1\tx\n2\ty\n"},
		{"nested", ListValue(StatusValue("moved"), ListValue(LineValue("z"))), "moved\nz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewSerializer(&buf).Serialize(tt.value); err != nil {
				t.Fatalf("Serialize failed: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestSerializeInvalidType(t *testing.T) {
	var buf bytes.Buffer
	err := NewSerializer(&buf).Serialize(Value{Type: '?'})
	if !errors.Is(err, ErrInvalidType) {
		t.Errorf("Expected ErrInvalidType, got %v", err)
	}
}

func TestValueErrors(t *testing.T) {
	inner := errors.New("inner")
	v := ListValue(LineValue("a"), Value{Type: Line, Str: "b", Err: inner}, ErrorValue(errors.New("outer")))

	errs := v.Errors()
	if len(errs) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(errs))
	}
	if errs[0] != inner {
		t.Errorf("Expected inner error first, got %v", errs[0])
	}
	if !v.Array[2].IsError() || v.Array[0].IsError() {
		t.Error("IsError mismatch")
	}
}
