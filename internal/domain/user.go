package domain

import "strings"

// User owns one account per currency. Users are created from a fixed
// seed at process start and are never deleted.
type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Accounts []Account `json:"accounts"`
}

// Account returns the user's account in the given currency.
func (u *User) Account(currency Currency) (*Account, bool) {
	for i := range u.Accounts {
		if u.Accounts[i].Currency == currency {
			return &u.Accounts[i], true
		}
	}

	return nil, false
}

// AlternativeCurrencies returns the currencies the user holds accounts
// in, excluding from. This is the choice set for target-currency
// elicitation.
func (u *User) AlternativeCurrencies(from Currency) []Currency {
	var out []Currency
	for _, a := range u.Accounts {
		if a.Currency != from {
			out = append(out, a.Currency)
		}
	}

	return out
}

// MatchesName reports whether name matches the user's display name,
// case-insensitively.
func (u *User) MatchesName(name string) bool {
	return strings.EqualFold(u.Name, name)
}

// Clone returns a deep copy of the user.
func (u *User) Clone() *User {
	c := &User{
		ID:       u.ID,
		Name:     u.Name,
		Accounts: make([]Account, len(u.Accounts)),
	}
	copy(c.Accounts, u.Accounts)

	return c
}
