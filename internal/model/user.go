package model

// User is a row of the users table. EmailAddress is unique.
type User struct {
	Base
	Name         string `json:"name" db:"name"`
	EmailAddress string `json:"emailID" db:"email_address"`
	PasswordHash string `json:"-" db:"password_hash"`
}
