// Package lyrics picks the short excerpt of a song's lyrics shown on lyric cards.
package lyrics

import (
	"regexp"
	"sort"
	"strings"
)

var (
	headerPattern = regexp.MustCompile(`^\s*\[([^\]]*)\]`)
	punctuation   = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
)

// sectionPriority is the order in which tagged sections are preferred.
var sectionPriority = []string{"chorus", "bridge", "verse"}

// Excerpt returns the most relevant part of full lyrics: the first chorus,
// else the first bridge, else the first verse, else the two most repeated
// lines. A section made of the same half twice is reduced to one half.
// It reports false when nothing usable is found.
func Excerpt(text string) (string, bool) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	for _, kind := range sectionPriority {
		if body, ok := section(text, kind); ok {
			return ReduceIfDouble(body), true
		}
	}

	if repeated, ok := MostRepeated(text); ok {
		return ReduceIfDouble(repeated), true
	}
	return "", false
}

// section returns the body of the first "[kind...]" section. The body runs
// from the header to the next header or blank line.
func section(text, kind string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := headerPattern.FindStringSubmatch(line)
		if m == nil || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(m[1])), kind) {
			continue
		}

		var body []string
		if rest := strings.TrimSpace(line[len(m[0]):]); rest != "" {
			body = append(body, rest)
		}
		for _, next := range lines[i+1:] {
			if headerPattern.MatchString(next) {
				break
			}
			if strings.TrimSpace(next) == "" {
				if len(body) == 0 {
					continue
				}
				break
			}
			body = append(body, strings.TrimSpace(next))
		}
		if len(body) > 0 {
			return strings.Join(body, "\n"), true
		}
	}
	return "", false
}

// MostRepeated returns the two lines occurring most often, ignoring case,
// punctuation, blank lines and section headers. Ties keep first-seen order.
func MostRepeated(text string) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, line := range strings.Split(text, "\n") {
		if headerPattern.MatchString(line) {
			continue
		}
		clean := strings.TrimSpace(strings.ToLower(punctuation.ReplaceAllString(line, "")))
		if clean == "" {
			continue
		}
		if counts[clean] == 0 {
			order = append(order, clean)
		}
		counts[clean]++
	}
	if len(order) < 2 {
		return "", false
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order[0] + "\n" + order[1], true
}

// ReduceIfDouble returns the first half of s when s is an even number of
// lines whose two halves are identical, and s otherwise.
func ReduceIfDouble(s string) string {
	lines := strings.Split(s, "\n")
	if len(lines) < 2 || len(lines)%2 != 0 {
		return s
	}
	half := len(lines) / 2
	for i := 0; i < half; i++ {
		if lines[i] != lines[i+half] {
			return s
		}
	}
	return strings.Join(lines[:half], "\n")
}
