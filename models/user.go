package models

import "time"

// User holds a staff account (nurse, physician or FOSA administrator)
// used to authenticate against the API
type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password"`
	Nom       string    `json:"nom" bson:"nom"`
	Prenom    string    `json:"prenom" bson:"prenom"`
	Role      string    `json:"role" bson:"role"`
	Fosa      string    `json:"fosa,omitempty" bson:"fosa,omitempty"`
	Active    bool      `json:"active" bson:"active"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
