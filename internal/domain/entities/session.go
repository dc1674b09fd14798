package entities

// Session is the persisted identity marker written by the demo login gate.
// It is not a security boundary; its presence is all that gates the API.
type Session struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
