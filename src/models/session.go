package models

// Session is the authenticated caller, passed explicitly to services.
type Session struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
	Token        string `json:"-"`
}
