package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash *string `db:"password"`
	MobileNumber *string `db:"mobile_number"`
	Gender       *string `db:"gender"`
	LogoURL      *string `db:"logo_url"`
	LogoFileName *string `db:"logo_file_name"`
}

// HasPassword reports whether registration completed with a password.
// Identities created as a side effect of OTP issuance have none.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}
