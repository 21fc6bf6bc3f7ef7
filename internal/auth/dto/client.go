package dto

import "time"

// ActiveClientOutput is the current-identity response. For anonymous
// callers every identity field is null and only the locale is echoed
// back; registered JWT claims (iat/exp) are never included.
type ActiveClientOutput struct {
	Login    *string    `json:"login"`
	Type     *string    `json:"type"`
	FullName *string    `json:"fullName"`
	Email    *string    `json:"email"`
	Locale   string     `json:"locale"`
	SignUpAt *time.Time `json:"signUpAt"`
}

func AnonymousClient(locale string) *ActiveClientOutput {
	return &ActiveClientOutput{Locale: locale}
}
