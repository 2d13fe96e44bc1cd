package router

import (
	"regexp"
	"strconv"
)

var numberPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)

// ExtractPrice pulls a candidate user-proposed price out of free text by
// taking the maximum of all numeric substrings. Known-ambiguous with
// quantities and phone-like digit runs; kept for compatibility with the
// existing chat behavior.
func ExtractPrice(message string) *float64 {
	matches := numberPattern.FindAllString(message, -1)
	if len(matches) == 0 {
		return nil
	}

	var best float64
	found := false
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &best
}

// ContainsNumber reports whether the message has any numeric substring.
func ContainsNumber(message string) bool {
	return numberPattern.MatchString(message)
}
