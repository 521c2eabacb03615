package esig

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest package or document name the platform accepts.
const MaxNameLength = 150

var (
	trailingDotsOrSpaces = regexp.MustCompile(`[. ]+$`)
	reservedDeviceName   = regexp.MustCompile(`(?i)^(aux|com[0-9]|con|lpt[0-9]|nul|prn)(\..*)?$`)
	onlyDots             = regexp.MustCompile(`^\.+$`)
)

// SanitizeName makes name safe for use as a package or document name.
//
// It drops every character outside the ISO 8859-15 printable set and the
// characters that are illegal in file names, trailing dots and spaces,
// reserved device names and names made of dots only, and truncates the
// result to MaxNameLength characters. SanitizeName(SanitizeName(s)) equals
// SanitizeName(s).
func SanitizeName(name string) string {
	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if NameCharAllowed(r) {
			b.WriteRune(r)
		}
	}

	out := stripName(b.String())

	if utf8.RuneCountInString(out) > MaxNameLength {
		out = stripName(string([]rune(out)[:MaxNameLength]))
	}

	return out
}

func stripName(name string) string {
	name = trailingDotsOrSpaces.ReplaceAllString(name, "")
	name = reservedDeviceName.ReplaceAllString(name, "")

	return onlyDots.ReplaceAllString(name, "")
}

// NameCharAllowed reports whether r may appear in a sanitized name.
func NameCharAllowed(r rune) bool {
	switch {
	case r >= ' ' && r <= '~':
		return !strings.ContainsRune(`*/:<>?\|`, r)
	case r >= 0xA0 && r <= 0xFF:
		// Positions ISO 8859-15 reassigns to the characters listed below.
		switch r {
		case 0xA4, 0xA6, 0xA8, 0xB4, 0xB8, 0xBC, 0xBD, 0xBE:
			return false
		}

		return true
	}

	switch r {
	case '€', 'Š', 'š', 'Ž', 'ž', 'Œ', 'œ', 'Ÿ':
		return true
	}

	return false
}
