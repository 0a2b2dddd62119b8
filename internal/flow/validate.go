package flow

import (
	"regexp"

	"onboard/internal/user"
)

// emailPattern is deliberately permissive: anything shaped like
// local@domain.tld passes, strictness is not the point of step 1.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// validateStep returns field-scoped messages for the given step. Step 1
// requires email and password; steps 2 and 3 carry only optional fields, so
// nothing admin-selected becomes required.
func validateStep(step int, draft user.Submission) map[string]string {
	errs := map[string]string{}
	if step == FirstStep || step == FinalStep {
		if draft.Email == "" {
			errs["email"] = "Email is required"
		} else if !emailPattern.MatchString(draft.Email) {
			errs["email"] = "Invalid email"
		}
		if draft.Password == "" {
			errs["password"] = "Password is required"
		}
	}
	return errs
}
