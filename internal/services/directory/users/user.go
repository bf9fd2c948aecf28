// Package users holds the user record model and the pure helpers that turn a
// record into display strings.
package users

// User is one person returned by the users endpoint.
type User struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Website  string   `json:"website"`
	Address  Address  `json:"address"`
	Company  *Company `json:"company,omitempty"`
}

// Address is the postal address of a user. An empty Suite means absent.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite,omitempty"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Company is the optional employer of a user.
type Company struct {
	Name string `json:"name"`
}

// HasCompany reports whether the user carries a company block.
func (u User) HasCompany() bool {
	return u.Company != nil
}
