// Package submission holds the normalized form data and the pure validation
// rules shared by the contact and early-release endpoints.
package submission

// Contact is a normalized contact-form submission. Fields are trimmed at the
// dto boundary and never mutated afterwards.
type Contact struct {
	Name     string
	Email    string
	Company  string
	Reason   string
	Message  string
	Honeypot string
}

// Signup is a normalized early-release signup.
type Signup struct {
	Name  string
	Email string
}

// Result is the validator outcome: valid when Fields is empty, otherwise one
// human-readable message per failing field.
type Result struct {
	Fields map[string]string
}

func (r Result) Valid() bool {
	return len(r.Fields) == 0
}

// ValidReasons is the closed set accepted for the contact form's reason field.
var ValidReasons = []string{"Demo", "Partnership", "Support", "Other"}

func isValidReason(reason string) bool {
	for _, r := range ValidReasons {
		if reason == r {
			return true
		}
	}
	return false
}
