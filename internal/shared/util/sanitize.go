package util

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidFileName is returned for names that cannot be stored safely.
var ErrInvalidFileName = errors.New("invalid file name")

const maxFileNameLength = 128

// SanitizeFileName flattens path separators, drops control characters and
// caps the length. Names containing ".." are rejected outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if len(s) > maxFileNameLength {
		s = truncateKeepingExt(s, maxFileNameLength)
	}
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}

func truncateKeepingExt(s string, limit int) string {
	ext := ""
	if i := strings.LastIndex(s, "."); i > 0 && len(s)-i <= 8 {
		ext = s[i:]
	}
	base := []rune(strings.TrimSuffix(s, ext))
	for len(string(base))+len(ext) > limit {
		base = base[:len(base)-1]
	}
	return string(base) + ext
}
