package textwidth

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StringWidth returns the maximum visual width (in monospace columns) of the
// lines in s. ANSI colour sequences take no space and East Asian wide or
// fullwidth runes take two columns.
func StringWidth(s string) int {
	if s == "" {
		return 0
	}
	maxWidth := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lineWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// PadRight appends ASCII spaces until the rendered width matches target.
func PadRight(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return s + strings.Repeat(" ", diff)
}

// PadLeft prepends ASCII spaces until the rendered width matches target.
func PadLeft(s string, target int) string {
	diff := target - StringWidth(s)
	if diff <= 0 {
		return s
	}
	return strings.Repeat(" ", diff) + s
}

func lineWidth(s string) int {
	n := 0
	for _, r := range StripANSI(s) {
		if unicode.IsControl(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// StripANSI removes colour escape sequences from s.
func StripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}
