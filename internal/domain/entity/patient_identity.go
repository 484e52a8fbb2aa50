package entity

import "time"

// PatientIdentity is the minimal record distinguishing one patient from
// another, keyed by email. It is created at most once per distinct email;
// registration resolves duplicates to the pre-existing record.
type PatientIdentity struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}
