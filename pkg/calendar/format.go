package calendar

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultPattern is used when no display pattern is configured
const DefaultPattern = "MMM d, yyyy"

// TitlePattern renders month titles such as "March 2024"
const TitlePattern = "MMMM yyyy"

// Formatter renders a date according to a display pattern
type Formatter interface {
	Format(d Date, pattern string) string
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc func(d Date, pattern string) string

func (f FormatterFunc) Format(d Date, pattern string) string {
	return f(d, pattern)
}

// PatternFormatter interprets a small set of pattern tokens:
//
//	yyyy  4 digit year     yy  2 digit year     y  year
//	MMMM  January          MMM Jan              MM 01    M 1
//	dd    05               d   5
//	EEEE  Friday           EEE / EE / E  Fri
//
// Text inside single quotes is copied verbatim and '' yields a quote. Any
// other character is copied as is.
type PatternFormatter struct{}

var standaloneMinutes = regexp.MustCompile(`\bmm\b`)

// NormalizePattern rewrites a standalone "mm" token to "MM". Dates carry no
// time, so a lone "mm" is taken to mean the month.
func NormalizePattern(pattern string) string {
	return standaloneMinutes.ReplaceAllString(pattern, "MM")
}

// Format renders d using pattern. The zero Date renders as "".
func (PatternFormatter) Format(d Date, pattern string) string {
	if d.IsZero() {
		return ""
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	var out strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == '\'' {
			i = copyQuoted(&out, runes, i+1)
			continue
		}
		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		if !writeToken(&out, d, r, n) {
			out.WriteString(string(runes[i : i+n]))
		}
		i += n
	}
	return out.String()
}

// copyQuoted copies a quoted literal starting after the opening quote and
// returns the index following the closing quote.
func copyQuoted(out *strings.Builder, runes []rune, i int) int {
	if i < len(runes) && runes[i] == '\'' {
		out.WriteRune('\'')
		return i + 1
	}
	for i < len(runes) {
		if runes[i] == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				out.WriteRune('\'')
				i += 2
				continue
			}
			return i + 1
		}
		out.WriteRune(runes[i])
		i++
	}
	return i
}

func writeToken(out *strings.Builder, d Date, r rune, n int) bool {
	switch r {
	case 'y':
		switch n {
		case 2:
			fmt.Fprintf(out, "%02d", d.Year%100)
		case 1:
			fmt.Fprintf(out, "%d", d.Year)
		default:
			fmt.Fprintf(out, "%0*d", n, d.Year)
		}
	case 'M':
		switch {
		case n >= 4:
			out.WriteString(d.Month.String())
		case n == 3:
			out.WriteString(d.Month.String()[:3])
		case n == 2:
			fmt.Fprintf(out, "%02d", int(d.Month))
		default:
			fmt.Fprintf(out, "%d", int(d.Month))
		}
	case 'd':
		if n >= 2 {
			fmt.Fprintf(out, "%02d", d.Day)
		} else {
			fmt.Fprintf(out, "%d", d.Day)
		}
	case 'E':
		if n >= 4 {
			out.WriteString(d.Weekday().String())
		} else {
			out.WriteString(d.Weekday().String()[:3])
		}
	default:
		return false
	}
	return true
}
