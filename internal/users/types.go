package users

// User is the item stored in the users table. PasswordHash is never
// serialized to JSON.
type User struct {
	ID           string `json:"id" dynamodbav:"user_id"` // PK
	Name         string `json:"name" dynamodbav:"name"`
	Email        string `json:"email" dynamodbav:"email"` // GSI email-index
	PasswordHash string `json:"-" dynamodbav:"password_hash"`
	Phone        string `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Street       string `json:"street,omitempty" dynamodbav:"street,omitempty"`
	Apartment    string `json:"apartment,omitempty" dynamodbav:"apartment,omitempty"`
	City         string `json:"city,omitempty" dynamodbav:"city,omitempty"`
	Zip          string `json:"zip,omitempty" dynamodbav:"zip,omitempty"`
	Country      string `json:"country,omitempty" dynamodbav:"country,omitempty"`
	IsAdmin      bool   `json:"isAdmin" dynamodbav:"is_admin"`
}
