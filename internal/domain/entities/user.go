package entities

// StaffUser is the minimal identity kept in the browser session after a
// successful login. AccessToken is retained only so logout can revoke the
// remote session.
type StaffUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	AccessToken string `json:"-"`
}
