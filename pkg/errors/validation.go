package errors

import (
	"strings"
	"unicode"
)

// maxClassToken bounds a single --filter-classes entry. The longest class
// label in the table is well below this.
const maxClassToken = 128

// ValidateRoot validates a sysfs root path given on the command line or in
// a config file. It must be non-empty and free of control characters.
func ValidateRoot(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "sysfs root cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "sysfs root contains invalid characters")
		}
	}
	return nil
}

// ValidateOutputDir validates an output directory. Relative paths are
// allowed but must not escape upward with "..".
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	for _, r := range dir {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}
	if !strings.HasPrefix(dir, "/") {
		for _, part := range strings.Split(dir, "/") {
			if part == ".." {
				return New(ErrCodeInvalidPath, "output directory cannot contain path traversal sequences (..)")
			}
		}
	}
	return nil
}

// ValidateClassToken validates one class label from a filter list. Blank
// tokens are dropped by callers before validation, so only length and
// control characters are checked here.
func ValidateClassToken(token string) error {
	if len(token) > maxClassToken {
		return New(ErrCodeInvalidFilter, "class name too long (max %d characters)", maxClassToken)
	}
	for _, r := range token {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFilter, "class name contains invalid control characters")
		}
	}
	return nil
}

// ValidateRedisURL validates a Redis connection URL for the shared name
// cache. Only the redis and rediss schemes are accepted.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "redis URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidConfig, "redis URL must use redis or rediss scheme")
	}
	return nil
}
