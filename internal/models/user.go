package models

type UserProfile struct {
	Name         string  `json:"name"`
	Surname      string  `json:"surname"`
	Phone        string  `json:"phone,omitempty"`
	Email        string  `json:"email"`
	NationalID   string  `json:"national_id"`
	IBAN         string  `json:"iban"`
	ProfileImage *string `json:"profile_image,omitempty"`
	PasswordHash string  `json:"password_hash,omitempty"`
}

// PublicProfile strips credential material before the profile leaves the API.
func (u UserProfile) PublicProfile() UserProfile {
	u.PasswordHash = ""
	return u
}

type SignUpRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	NationalID string `json:"national_id"`
	IBAN       string `json:"iban"`
	Password   string `json:"password"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdateRequest struct {
	Name       *string `json:"name,omitempty"`
	Surname    *string `json:"surname,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	NationalID *string `json:"national_id,omitempty"`
	IBAN       *string `json:"iban,omitempty"`
}
