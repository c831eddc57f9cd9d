package model

// AppUser is a read projection of an identity-provider account, used to
// populate assignment pickers. Accounts live entirely in the provider.
type AppUser struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}
