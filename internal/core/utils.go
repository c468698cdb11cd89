package core

import "strings"

// Atoi parses a leading optionally-signed run of decimal digits, ignoring leading
// whitespace and anything after the digits. Input without digits yields 0.
func Atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// IsNumber reports whether s is a non-empty string of decimal digits.
func IsNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SplitArg splits arg at its first space. ok is false when arg has no space.
func SplitArg(arg string) (head, rest string, ok bool) {
	return strings.Cut(arg, " ")
}
