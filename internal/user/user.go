// Package user holds the submitted onboarding records and the stores that
// persist them.
package user

import (
	"strings"
	"time"
)

// Submission is the create-user request body: the wizard draft in its wire
// shape. Address arrives as four discrete entry fields; it is flattened to a
// single string when the record is stored.
type Submission struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	AboutMe   string `json:"aboutMe"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Birthdate string `json:"birthdate"`
}

// Record is a stored onboarding record. Immutable once created; the password
// is write-only and never appears on this shape.
type Record struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	AboutMe   string    `json:"aboutMe,omitempty"`
	Address   string    `json:"address,omitempty"`
	Birthdate string    `json:"birthdate,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FormatAddress flattens the four address entry fields into the stored
// single-string form: "street, city, state zip" with empty parts elided.
// All-empty input yields the empty string so an absent address sorts and
// searches as empty.
func FormatAddress(street, city, state, zip string) string {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	zip = strings.TrimSpace(zip)

	region := strings.TrimSpace(state + " " + zip)

	parts := make([]string, 0, 3)
	for _, p := range []string{street, city, region} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Address returns the flattened address for a submission.
func (s Submission) Address() string {
	return FormatAddress(s.Street, s.City, s.State, s.Zip)
}
