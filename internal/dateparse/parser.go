// Package dateparse turns free-form date text into a canonical,
// validated year interval. Range patterns are tried before the
// single-year pattern so "1918 to 1939" never parses as two
// independent years.
package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ppiankov/chronomap/internal/model"
)

// Default bounds for map generation. Below 1500 border data is too
// unreliable to draw; past 2100 is speculative.
const (
	DefaultMinYear = 1500
	DefaultMaxYear = 2100
)

// ErrorKind classifies parse failures so callers can react differently
// to bad syntax versus out-of-bounds years.
type ErrorKind string

const (
	ErrFormat   ErrorKind = "format"
	ErrOrder    ErrorKind = "order"
	ErrBelowMin ErrorKind = "below_min"
	ErrAboveMax ErrorKind = "above_max"
	ErrFuture   ErrorKind = "future"
)

// ParseError is an input error: the only failure class the pipeline
// surfaces to the caller directly. Suggestion is advisory and never
// applied silently.
type ParseError struct {
	Kind       ErrorKind
	Input      string
	Message    string
	Suggestion string
}

func (e *ParseError) Error() string { return e.Message }

// ParsedRange is a validated interval plus how it was written.
type ParsedRange struct {
	Interval   model.YearInterval
	Original   string
	SingleYear bool
}

// Midpoint is the representative "as-of" year for a multi-year range.
func (p ParsedRange) Midpoint() int { return p.Interval.Midpoint() }

// Span is the number of years in the range, inclusive.
func (p ParsedRange) Span() int { return p.Interval.Span() }

var rangePatterns = []*regexp.Regexp{
	// 1918-1939, 1918–1939, 1918—1939, with optional spaces
	regexp.MustCompile(`^(\d{4})\s*[-–—]\s*(\d{4})$`),
	// 1918 to 1939
	regexp.MustCompile(`(?i)^(\d{4})\s+to\s+(\d{4})$`),
	// 1918 through 1939
	regexp.MustCompile(`(?i)^(\d{4})\s+through\s+(\d{4})$`),
}

var (
	singleYearPattern = regexp.MustCompile(`^(\d{4})$`)
	yearDigits        = regexp.MustCompile(`\d{4}`)
)

// Parser validates user date input against configured bounds.
type Parser struct {
	minYear     int
	maxYear     int
	allowFuture bool
	now         func() time.Time
}

// NewParser creates a parser with the given bounds. allowFuture permits
// start years beyond the current calendar year.
func NewParser(minYear, maxYear int, allowFuture bool) *Parser {
	return &Parser{
		minYear:     minYear,
		maxYear:     maxYear,
		allowFuture: allowFuture,
		now:         time.Now,
	}
}

// NewDefaultParser creates a parser with the default bounds and future
// dates disallowed.
func NewDefaultParser() *Parser {
	return NewParser(DefaultMinYear, DefaultMaxYear, false)
}

// Parse parses a date string into a validated ParsedRange. Failures are
// always a *ParseError.
func (p *Parser) Parse(input string) (*ParsedRange, error) {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return nil, p.fail(ErrFormat, input, "date input must be a non-empty string")
	}

	for _, pattern := range rangePatterns {
		if m := pattern.FindStringSubmatch(normalized); m != nil {
			start, _ := strconv.Atoi(m[1])
			end, _ := strconv.Atoi(m[2])
			return p.validate(start, end, input, false)
		}
	}

	if m := singleYearPattern.FindStringSubmatch(normalized); m != nil {
		year, _ := strconv.Atoi(m[1])
		return p.validate(year, year, input, true)
	}

	return nil, p.fail(ErrFormat, input,
		fmt.Sprintf("cannot parse %q: expected 'YYYY' (e.g. '1914') or 'YYYY-YYYY' (e.g. '1918-1939')", input))
}

// IsValid reports whether the input parses without surfacing the error.
func (p *Parser) IsValid(input string) bool {
	_, err := p.Parse(input)
	return err == nil
}

func (p *Parser) validate(start, end int, original string, single bool) (*ParsedRange, error) {
	if start > end {
		return nil, p.fail(ErrOrder, original,
			fmt.Sprintf("invalid range: start year %d is after end year %d", start, end))
	}

	if start < p.minYear {
		return nil, p.fail(ErrBelowMin, original,
			fmt.Sprintf("year %d is before minimum supported year %d; maps before %d have highly uncertain borders",
				start, p.minYear, p.minYear))
	}

	if end > p.maxYear {
		return nil, p.fail(ErrAboveMax, original,
			fmt.Sprintf("year %d exceeds maximum supported year %d", end, p.maxYear))
	}

	if !p.allowFuture {
		if currentYear := p.now().Year(); start > currentYear {
			return nil, p.fail(ErrFuture, original,
				fmt.Sprintf("year %d is in the future; cannot generate speculative future maps", start))
		}
	}

	interval, err := model.NewYearInterval(start, end)
	if err != nil {
		// Unreachable after the order check above.
		return nil, p.fail(ErrOrder, original, err.Error())
	}

	return &ParsedRange{
		Interval:   interval,
		Original:   original,
		SingleYear: single,
	}, nil
}

func (p *Parser) fail(kind ErrorKind, input, message string) *ParseError {
	return &ParseError{
		Kind:       kind,
		Input:      input,
		Message:    message,
		Suggestion: p.SuggestCorrection(input),
	}
}

// SuggestCorrection extracts any 4-digit substrings from the input and
// proposes a corrected string: one year yields that year, two or more
// yield the first two as a sorted range. Empty when no year is found.
func (p *Parser) SuggestCorrection(input string) string {
	years := yearDigits.FindAllString(strings.TrimSpace(input), -1)

	switch {
	case len(years) == 0:
		return ""
	case len(years) == 1:
		return years[0]
	default:
		a, _ := strconv.Atoi(years[0])
		b, _ := strconv.Atoi(years[1])
		return fmt.Sprintf("%d-%d", min(a, b), max(a, b))
	}
}
