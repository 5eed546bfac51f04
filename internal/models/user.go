package models

// User represents a lounge customer keyed by mobile number. Customers are
// created implicitly the first time a mobile number is seen; Wallet carries
// the prepaid balance plus accumulated loyalty credit in rupees.
type User struct {
	Mobile string  `json:"mobile" db:"mobile" example:"9876543210"`
	Wallet float64 `json:"wallet" db:"wallet" example:"125.50"`
}
