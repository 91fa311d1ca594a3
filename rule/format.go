package rule

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Email requires a syntactically valid email address with a dotted domain.
func Email() Rule {
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}

			addr, err := mail.ParseAddress(s)
			if err != nil {
				return false
			}

			// mail.ParseAddress accepts bare local parts and display names;
			// tighten to the shape expected for typical web input.
			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 || parts[0] == "" {
				return false
			}
			domain := parts[1]
			return strings.Contains(domain, ".") &&
				!strings.HasPrefix(domain, ".") &&
				!strings.HasSuffix(domain, ".")
		},
		Message: fieldMessage("must be a valid email address"),
	}
}

// URL requires an absolute http(s) URL with a host.
func URL() Rule {
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			if !ok {
				return false
			}
			u, err := url.Parse(s)
			if err != nil {
				return false
			}
			return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
		},
		Message: fieldMessage("must be a valid URL"),
	}
}

// UUID requires a canonical 36-character UUID string.
func UUID() Rule {
	return Rule{
		Check: func(value any) bool {
			s, ok := asString(value)
			if !ok {
				return false
			}

			// Fast rejection before parsing: length and hyphen positions.
			if len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}

			_, err := uuid.Parse(s)
			return err == nil
		},
		Message: fieldMessage("must be a valid UUID"),
	}
}
