package layout

import (
	"regexp"
	"strconv"
	"strings"
)

// Category places a room on the main or an upper level.
type Category string

const (
	CategoryMain       Category = "main"
	CategoryUpper      Category = "upper"
	CategoryUnassigned Category = "unassigned"
)

var (
	mainLevelPattern  = regexp.MustCompile(`(?i)kitchen|great|living|dining|family|entry|foyer|mud|pantry|laundry|garage|office|\bden\b|study|powder`)
	upperLevelPattern = regexp.MustCompile(`(?i)bed|primary|master|bonus|media|loft|nursery`)
)

// ClassifyRoom assigns a room to a level category by name.
func ClassifyRoom(name string) Category {
	switch {
	case mainLevelPattern.MatchString(name):
		return CategoryMain
	case upperLevelPattern.MatchString(name):
		return CategoryUpper
	default:
		return CategoryUnassigned
	}
}

var (
	dimensionSeparator = regexp.MustCompile(`(?i)\s*(?:×|\*|\bby\b|x)\s*`)
	parenthetical      = regexp.MustCompile(`\([^)]*\)`)
	lengthPattern      = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*(?:'|ft\.?|feet|foot)?[\s-]*(?:(\d+(?:\.\d+)?)\s*(?:"|''|in\.?|inches)?)?$`)
)

// ParseDimensions parses a room dimension string such as "14x16",
// "14' x 16'", "14'6\" x 12'" or "12 by 10 ft" into width and depth in feet.
// ok is false when the string cannot be read, in which case the default
// 12 x 10 room is returned.
func ParseDimensions(s string) (width, depth float64, ok bool) {
	s = strings.TrimSpace(parenthetical.ReplaceAllString(s, ""))
	if s == "" {
		return DefaultRoomWidth, DefaultRoomDepth, false
	}
	parts := dimensionSeparator.Split(s, -1)
	if len(parts) != 2 {
		return DefaultRoomWidth, DefaultRoomDepth, false
	}
	w, okW := parseLength(parts[0])
	d, okD := parseLength(parts[1])
	if !okW || !okD {
		return DefaultRoomWidth, DefaultRoomDepth, false
	}
	return w, d, true
}

// parseLength reads a feet-and-inches length like 14, 14.5, 14', 14 ft or 14'6".
func parseLength(s string) (float64, bool) {
	m := lengthPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, false
	}
	feet, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		inches, err := strconv.ParseFloat(m[2], 64)
		if err != nil || inches >= 12 {
			return 0, false
		}
		feet += inches / 12
	}
	if feet <= 0 || feet > MaxRoomSpan {
		return 0, false
	}
	return feet, true
}
