package templates

import (
	"github.com/a-h/templ"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
	"github.com/louisbranch/userdirectory/internal/services/directory/users"
)

// UserCard renders one user. index only selects the entrance delay.
func UserCard(u users.User, index int) templ.Component {
	return El("div", []Attr{Class("user-card"), A("style", EnterTransition.Style(index)), A("data-user-id", itoa(u.ID))},
		El("div", []Attr{Class("user-header")},
			El("div", []Attr{Class("user-avatar"), A("aria-hidden", "true")}, Text(users.Initials(u.Name))),
			El("div", []Attr{Class("user-info")},
				El("h3", nil, Text(u.Name)),
				El("span", []Attr{Class("username")}, Text(users.Handle(u.Username))),
			),
		),
		El("div", []Attr{Class("contact-info")},
			contactItem(iconEmail, El("a", []Attr{Href("mailto:" + u.Email)}, Text(u.Email))),
			contactItem(iconPhone, El("a", []Attr{Href("tel:" + u.Phone)}, Text(u.Phone))),
			contactItem(iconWebsite, El("a", []Attr{Href(users.WebsiteURL(u.Website)), A("target", "_blank"), A("rel", "noopener")}, Text(u.Website))),
			companyItem(u),
		),
		El("div", []Attr{Class("address-info")},
			El("h4", nil, icon(iconAddress), T(directoryi18n.AddressHeadingKey)),
			El("div", []Attr{Class("address-details")}, addressLines(u.Address)),
		),
	)
}

func contactItem(iconClass string, content templ.Component) templ.Component {
	return El("div", []Attr{Class("contact-item")},
		icon(iconClass),
		El("span", nil, content),
	)
}

func companyItem(u users.User) templ.Component {
	if !u.HasCompany() {
		return nil
	}
	return El("div", []Attr{Class("contact-item", "company")},
		icon(iconCompany),
		El("span", nil, Text(u.Company.Name)),
	)
}

func addressLines(a users.Address) templ.Component {
	lines := users.AddressLines(a)
	parts := make([]templ.Component, 0, len(lines)*2)
	for i, line := range lines {
		if i > 0 {
			parts = append(parts, Void("br"))
		}
		parts = append(parts, Text(line))
	}
	return Group(parts...)
}
