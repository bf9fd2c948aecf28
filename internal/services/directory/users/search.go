package users

import "strings"

// Filter returns the users whose name, email or username contains query,
// ignoring case. A blank query returns a copy of all users in order.
func Filter(list []User, query string) []User {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]User, 0, len(list))
	for _, u := range list {
		if query == "" || u.matches(query) {
			out = append(out, u)
		}
	}
	return out
}

func (u User) matches(lowerQuery string) bool {
	return strings.Contains(strings.ToLower(u.Name), lowerQuery) ||
		strings.Contains(strings.ToLower(u.Email), lowerQuery) ||
		strings.Contains(strings.ToLower(u.Username), lowerQuery)
}
