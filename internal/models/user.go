package models

// UserProfile is the single locally stored registration record. It gates
// access to the rest of the UI; it is a local record, not an account on any
// server, and the password is kept only to re-show the gate after logout.
type UserProfile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Selection is the user's chosen country and crop. It is transient state,
// re-derived from the settings store on load.
type Selection struct {
	Country string
	Crop    string
}

// Complete reports whether both parts of the selection are set.
func (s Selection) Complete() bool {
	return s.Country != "" && s.Crop != ""
}
