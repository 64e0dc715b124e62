package entity

// Profile is the locally persisted display profile.
// It is never sent to the remote gateway.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
