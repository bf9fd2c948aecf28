package users

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxInitials = 2

// Initials returns the uppercased first letter of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == maxInitials {
			break
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// AddressLines returns the street line and the city line of an address.
// The suite is appended to the street line only when present.
func AddressLines(a Address) []string {
	street := strings.TrimSpace(a.Street)
	if suite := strings.TrimSpace(a.Suite); suite != "" {
		street += ", " + suite
	}
	return []string{street, strings.TrimSpace(a.City) + ", " + strings.TrimSpace(a.Zipcode)}
}

// FormatAddress renders an address as two newline separated lines.
func FormatAddress(a Address) string {
	return strings.Join(AddressLines(a), "\n")
}

// WebsiteURL turns the bare host name returned by the API into a link target.
func WebsiteURL(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return ""
	}
	lower := strings.ToLower(site)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return site
	}
	return "http://" + site
}

// Handle returns the @-prefixed username.
func Handle(username string) string {
	return "@" + strings.TrimSpace(username)
}
