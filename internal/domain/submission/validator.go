package submission

import "regexp"

// localpart@domain.tld with no whitespace; intentionally loose beyond that.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	maxNameLen    = 100
	minEmailLen   = 3
	maxEmailLen   = 254
	maxMessageLen = 5000
)

// ValidateContact applies every rule and reports all failing fields together,
// never just the first one.
func ValidateContact(c Contact) Result {
	fields := map[string]string{}

	validateName(c.Name, fields)
	validateEmail(c.Email, fields)

	if c.Message == "" || len(c.Message) > maxMessageLen {
		fields["message"] = "Message is required (1-5000 characters)."
	}

	if c.Reason != "" && !isValidReason(c.Reason) {
		fields["reason"] = "Invalid reason selected."
	}

	// company: optional, free-form, no constraint

	return Result{Fields: fields}
}

// ValidateSignup applies the name and email rules shared with the contact form.
func ValidateSignup(s Signup) Result {
	fields := map[string]string{}

	validateName(s.Name, fields)
	validateEmail(s.Email, fields)

	return Result{Fields: fields}
}

func validateName(name string, fields map[string]string) {
	if name == "" || len(name) > maxNameLen {
		fields["name"] = "Name is required (1-100 characters)."
	}
}

func validateEmail(email string, fields map[string]string) {
	if len(email) < minEmailLen || len(email) > maxEmailLen || !emailRe.MatchString(email) {
		fields["email"] = "A valid email address is required."
	}
}
