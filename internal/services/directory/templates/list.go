package templates

import (
	"github.com/a-h/templ"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// UserList renders the content of the user container: one card per user in
// order, or a placeholder when there are none. The caller swaps it in as the
// container's entire content.
func UserList(list []users.User) templ.Component {
	if len(list) == 0 {
		return El("p", []Attr{Class("no-users")}, T(directoryi18n.NoUsersKey))
	}
	cards := make([]templ.Component, 0, len(list))
	for i, u := range list {
		cards = append(cards, UserCard(u, i))
	}
	return Group(cards...)
}
