package model

import "testing"

func TestNewYearInterval_Order(t *testing.T) {
	if _, err := NewYearInterval(1939, 1918); err == nil {
		t.Errorf("expected error for reversed interval")
	}

	interval, err := NewYearInterval(1918, 1939)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if interval.Start != 1918 || interval.End != 1939 {
		t.Errorf("unexpected interval: %+v", interval)
	}
}

func TestYearInterval_Overlaps(t *testing.T) {
	a := YearInterval{Start: 1914, End: 1918}

	cases := []struct {
		name string
		b    YearInterval
		want bool
	}{
		{"identical", YearInterval{Start: 1914, End: 1918}, true},
		{"touching end", YearInterval{Start: 1918, End: 1939}, true},
		{"inside", YearInterval{Start: 1915, End: 1916}, true},
		{"before", YearInterval{Start: 1900, End: 1913}, false},
		{"after", YearInterval{Start: 1919, End: 1939}, false},
	}

	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps(%v) = %v, want %v", tc.name, tc.b, got, tc.want)
		}
	}
}

func TestYearInterval_Intersect(t *testing.T) {
	a := YearInterval{Start: 1918, End: 1939}

	got, ok := a.Intersect(YearInterval{Start: 1922, End: 1991})
	if !ok {
		t.Fatalf("expected intersection")
	}
	if got.Start != 1922 || got.End != 1939 {
		t.Errorf("unexpected intersection: %v", got)
	}

	if _, ok := a.Intersect(YearInterval{Start: 1940, End: 1950}); ok {
		t.Errorf("expected no intersection")
	}
}

func TestYearInterval_SpanAndMidpoint(t *testing.T) {
	single := YearInterval{Start: 1914, End: 1914}
	if single.Span() != 1 {
		t.Errorf("single year span = %d, want 1", single.Span())
	}
	if single.Midpoint() != 1914 {
		t.Errorf("single year midpoint = %d, want 1914", single.Midpoint())
	}

	interwar := YearInterval{Start: 1918, End: 1939}
	if interwar.Span() != 22 {
		t.Errorf("span = %d, want 22", interwar.Span())
	}
	if interwar.Midpoint() != 1928 {
		t.Errorf("midpoint = %d, want 1928", interwar.Midpoint())
	}
}

func TestYearInterval_String(t *testing.T) {
	if got := (YearInterval{Start: 1914, End: 1914}).String(); got != "1914" {
		t.Errorf("single year string = %q", got)
	}
	if got := (YearInterval{Start: 1918, End: 1939}).String(); got != "1918-1939" {
		t.Errorf("range string = %q", got)
	}
}

func TestYearInterval_Contains(t *testing.T) {
	interval := YearInterval{Start: 1918, End: 1939}
	for year, want := range map[int]bool{1918: true, 1939: true, 1928: true, 1917: false, 1940: false} {
		if got := interval.Contains(year); got != want {
			t.Errorf("Contains(%d) = %v, want %v", year, got, want)
		}
	}
}
