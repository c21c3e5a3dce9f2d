package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	spanPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap     = map[string]time.Duration{
		"d":     Day,
		"day":   Day,
		"days":  Day,
		"w":     7 * Day,
		"wk":    7 * Day,
		"wks":   7 * Day,
		"week":  7 * Day,
		"weeks": 7 * Day,
	}
)

// ParseSpan parses a human-friendly day span (for example "3d", "-1w" or
// "1w2d") and returns the equivalent duration along with a canonical, compact
// representation. Spans are whole days; a leading "-" makes it negative.
func ParseSpan(input string) (time.Duration, string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, "", fmt.Errorf("empty span")
	}

	sign := time.Duration(1)
	switch trimmed[0] {
	case '-':
		sign = -1
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}

	remaining := trimmed
	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := spanPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid span segment %q", strings.TrimSpace(remaining))
		}
		valueStr := matches[1]
		unitStr := matches[2]

		value, err := strconv.ParseInt(valueStr, 10, 64)
		if err != nil {
			return 0, "", fmt.Errorf("invalid span value %q: %w", valueStr, err)
		}
		base, ok := unitMap[unitStr]
		if !ok {
			return 0, "", fmt.Errorf("unsupported span unit %q", unitStr)
		}
		total += time.Duration(value) * base

		remaining = remaining[len(matches[0]):]
	}

	if total == 0 {
		return 0, "", fmt.Errorf("span must not be zero")
	}

	total *= sign
	return total, FormatSpan(total), nil
}

// FormatSpan renders a duration using week/day tokens. Sub-day remainders are
// dropped.
func FormatSpan(d time.Duration) string {
	prefix := ""
	if d < 0 {
		prefix = "-"
		d = -d
	}
	if d < Day {
		return "0d"
	}

	var parts []string
	weeks := d / (7 * Day)
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
		d -= weeks * 7 * Day
	}
	if days := d / Day; days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	return prefix + strings.Join(parts, "")
}
