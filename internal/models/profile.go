package models

// Profile represents a user of the ledger
type Profile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Not serialized
}
