package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinLen requires a string of at least min characters.
// Length is counted in runes, not bytes.
func MinLen(min int) Rule {
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			return ok && utf8.RuneCountInString(s) >= min
		},
		Message: fieldMessage(fmt.Sprintf("must be at least %d characters long", min)),
	}
}

// MaxLen requires a string of at most max characters.
// Length is counted in runes, not bytes.
func MaxLen(max int) Rule {
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			return ok && utf8.RuneCountInString(s) <= max
		},
		Message: fieldMessage(fmt.Sprintf("must be at most %d characters long", max)),
	}
}

// Matches requires the string to match the given regular expression.
// The pattern is compiled once at construction; an invalid pattern panics,
// consistent with regexp.MustCompile.
func Matches(pattern string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			return ok && re.MatchString(s)
		},
		Message: fieldMessage(fmt.Sprintf("must match pattern %s", pattern)),
	}
}

// NotBlank requires a string with at least one non-whitespace character.
func NotBlank() Rule {
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			return ok && strings.TrimSpace(s) != ""
		},
		Message: fieldMessage("must not be blank"),
	}
}

// OneOf requires the string to be one of the allowed options.
func OneOf(options ...string) Rule {
	allowed := make(map[string]struct{}, len(options))
	for _, o := range options {
		allowed[o] = struct{}{}
	}
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			if !ok {
				return false
			}
			_, found := allowed[s]
			return found
		},
		Message: fieldMessage(fmt.Sprintf("must be one of: %s", strings.Join(options, ", "))),
	}
}
