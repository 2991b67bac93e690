package model

import "time"

// Account a registered user
type Account struct {
	ID          int64     `json:"id" db:"id"`
	Nickname    string    `json:"nickname" db:"nickname"`
	Email       string    `json:"email" db:"email"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	CreatedDate time.Time `json:"createdDate" db:"created_date"`
}

// AuthResponse result of validating the request's credentials
type AuthResponse struct {
	User    *Account
	ErrCode int
	ErrMsg  string
	Error   error
}
