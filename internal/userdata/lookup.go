package userdata

// Find returns the user with the given id.
func Find(users []User, id string) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Organizations returns the distinct organizations of users in first-seen
// order.
func Organizations(users []User) []string {
	seen := make(map[string]bool)
	var orgs []string
	for _, u := range users {
		if seen[u.Organization] {
			continue
		}
		seen[u.Organization] = true
		orgs = append(orgs, u.Organization)
	}
	return orgs
}

// Stats are the headline figures on the dashboard.
type Stats struct {
	Users            int `json:"users"`
	ActiveUsers      int `json:"active_users"`
	UsersWithLoans   int `json:"users_with_loans"`
	UsersWithSavings int `json:"users_with_savings"`
}

// Summarize computes dashboard stats over users.
func Summarize(users []User) Stats {
	s := Stats{Users: len(users)}
	for _, u := range users {
		if u.Status == StatusActive {
			s.ActiveUsers++
		}
		if u.Employment.LoanRepayment > 0 {
			s.UsersWithLoans++
		}
		if u.AccountBalance > 0 {
			s.UsersWithSavings++
		}
	}
	return s
}
