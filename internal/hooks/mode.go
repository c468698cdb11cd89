package hooks

import (
	"fmt"
	"os"
)

// ParseMode converts a permission string to a FileMode. Accepted forms are octal
// numbers of one to four digits ("644", "0755", "4755") and nine-character symbolic
// masks ("rwxr-x---"), optionally preceded by a file type character ("-rw-r--r--").
func ParseMode(s string) (os.FileMode, error) {
	if s == "" {
		return 0, fmt.Errorf("empty mode")
	}
	if isOctal(s) {
		return parseOctalMode(s)
	}
	return parseSymbolicMode(s)
}

func isOctal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

func parseOctalMode(s string) (os.FileMode, error) {
	if len(s) > 4 {
		return 0, fmt.Errorf("invalid mode %q: too many digits", s)
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		n = n<<3 | uint32(s[i]-'0')
	}
	mode := os.FileMode(n & 0o777)
	if n&0o4000 != 0 {
		mode |= os.ModeSetuid
	}
	if n&0o2000 != 0 {
		mode |= os.ModeSetgid
	}
	if n&0o1000 != 0 {
		mode |= os.ModeSticky
	}
	return mode, nil
}

func parseSymbolicMode(s string) (os.FileMode, error) {
	if len(s) == 10 {
		s = s[1:]
	}
	if len(s) != 9 {
		return 0, fmt.Errorf("invalid mode %q", s)
	}
	const letters = "rwxrwxrwx"
	var mode os.FileMode
	for i := 0; i < 9; i++ {
		bit := os.FileMode(1) << (8 - i)
		switch c := s[i]; {
		case c == '-':
		case c == letters[i]:
			mode |= bit
		case i == 2 && (c == 's' || c == 'S'):
			mode |= os.ModeSetuid
			if c == 's' {
				mode |= bit
			}
		case i == 5 && (c == 's' || c == 'S'):
			mode |= os.ModeSetgid
			if c == 's' {
				mode |= bit
			}
		case i == 8 && (c == 't' || c == 'T'):
			mode |= os.ModeSticky
			if c == 't' {
				mode |= bit
			}
		default:
			return 0, fmt.Errorf("invalid mode %q: unexpected %q at position %d", s, c, i)
		}
	}
	return mode, nil
}
