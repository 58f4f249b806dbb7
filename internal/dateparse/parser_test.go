package dateparse

import (
	"errors"
	"testing"
	"time"
)

func fixedNow(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}
}

func TestParser_SingleYear(t *testing.T) {
	p := NewDefaultParser()

	parsed, err := p.Parse("1914")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.SingleYear {
		t.Errorf("expected SingleYear")
	}
	if parsed.Interval.Start != 1914 || parsed.Interval.End != 1914 {
		t.Errorf("unexpected interval: %v", parsed.Interval)
	}
	if parsed.Midpoint() != 1914 {
		t.Errorf("midpoint = %d, want 1914", parsed.Midpoint())
	}
}

func TestParser_RangeForms(t *testing.T) {
	p := NewDefaultParser()

	inputs := []string{
		"1918-1939",
		"1918 - 1939",
		"1918 to 1939",
		"1918 through 1939",
		"1918–1939", // en dash
		"1918 TO 1939",
	}

	for _, input := range inputs {
		parsed, err := p.Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", input, err)
			continue
		}
		if parsed.SingleYear {
			t.Errorf("Parse(%q): unexpected SingleYear", input)
		}
		if parsed.Interval.Start != 1918 || parsed.Interval.End != 1939 {
			t.Errorf("Parse(%q) = %v, want 1918-1939", input, parsed.Interval)
		}
	}
}

func TestParser_WhitespaceNormalization(t *testing.T) {
	p := NewDefaultParser()

	parsed, err := p.Parse("  1914  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Interval.Start != 1914 {
		t.Errorf("unexpected interval: %v", parsed.Interval)
	}
	if parsed.Original != "  1914  " {
		t.Errorf("original input not preserved: %q", parsed.Original)
	}
}

func TestParser_Errors(t *testing.T) {
	p := NewDefaultParser()
	p.now = fixedNow(2026)

	cases := []struct {
		input string
		kind  ErrorKind
	}{
		{"", ErrFormat},
		{"no year here", ErrFormat},
		{"194", ErrFormat},
		{"1939-1918", ErrOrder},
		{"1400", ErrBelowMin},
		{"2050-2150", ErrAboveMax},
		{"2095", ErrFuture},
	}

	for _, tc := range cases {
		_, err := p.Parse(tc.input)
		if err == nil {
			t.Errorf("Parse(%q): expected error", tc.input)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Parse(%q): error is not *ParseError: %v", tc.input, err)
			continue
		}
		if parseErr.Kind != tc.kind {
			t.Errorf("Parse(%q): kind = %q, want %q", tc.input, parseErr.Kind, tc.kind)
		}
		if parseErr.Input != tc.input {
			t.Errorf("Parse(%q): input = %q", tc.input, parseErr.Input)
		}
	}
}

func TestParser_AllowFuture(t *testing.T) {
	p := NewParser(DefaultMinYear, DefaultMaxYear, true)
	p.now = fixedNow(2026)

	if _, err := p.Parse("2095"); err != nil {
		t.Errorf("expected future year to parse with allowFuture: %v", err)
	}
}

func TestParser_SuggestCorrection(t *testing.T) {
	p := NewDefaultParser()

	cases := map[string]string{
		"around 1915 maybe": "1915",
		"1939-1918":         "1918-1939",
		"1918 till 1939":    "1918-1939",
		"no digits":         "",
	}

	for input, want := range cases {
		if got := p.SuggestCorrection(input); got != want {
			t.Errorf("SuggestCorrection(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestParser_ErrorCarriesSuggestion(t *testing.T) {
	p := NewDefaultParser()

	_, err := p.Parse("1939-1918")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Suggestion != "1918-1939" {
		t.Errorf("suggestion = %q, want %q", parseErr.Suggestion, "1918-1939")
	}
}

func TestParser_IsValid(t *testing.T) {
	p := NewDefaultParser()

	if !p.IsValid("1914") {
		t.Errorf("1914 should be valid")
	}
	if p.IsValid("nope") {
		t.Errorf("junk should be invalid")
	}
}
