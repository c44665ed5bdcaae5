package models

// Profile is optional user-facing metadata keyed by lowercased email.
type Profile struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	HomeBase    string `json:"home_base"`
	Bio         string `json:"bio"`
}
