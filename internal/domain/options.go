package domain

import (
	"regexp"
	"strings"
)

var (
	numberedLine   = regexp.MustCompile(`^\d+\.`)
	numberedPrefix = regexp.MustCompile(`\d+\.\s*`)
	separators     = regexp.MustCompile(`[,.;]|\n`)
	bulletReplacer = strings.NewReplacer("•", "", "â", "", "€", "", "¢", "", "*", "", "-", "")
)

// ParsePrimary reads one option per line. Blank lines, "*" bullets and
// "N." numbered lines are dropped.
func ParsePrimary(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "*") || numberedLine.MatchString(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseFallback strips bullet characters and numbering, then splits on
// commas, periods, semicolons and newlines.
func ParseFallback(content string) []string {
	cleaned := bulletReplacer.Replace(content)
	cleaned = numberedPrefix.ReplaceAllString(cleaned, "")

	var out []string
	for _, item := range separators.Split(cleaned, -1) {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseOptions uses the fallback parser only when the primary one finds nothing.
func ParseOptions(content string) []string {
	if opts := ParsePrimary(content); len(opts) > 0 {
		return opts
	}
	return ParseFallback(content)
}

// ParseManualOptions splits user-typed text into options, one per line.
func ParseManualOptions(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
