package model

// Barber is a flat record keyed by its server-generated identifier. The
// identifier is immutable once assigned.
type Barber struct {
	BarberID    string   `json:"barberId" bson:"_id"`
	Name        string   `json:"name" bson:"name"`
	Specialties []string `json:"specialties" bson:"specialties"`
	Rating      float64  `json:"rating" bson:"rating"`
	PhotoURL    string   `json:"photoUrl,omitempty" bson:"photo_url,omitempty"`
	CreatedAt   int64    `json:"createdAt" bson:"created_at"`
}

type BarberCreate struct {
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Rating      *float64 `json:"rating"`
	PhotoURL    string   `json:"photoUrl"`
}

// BarberUpdate uses pointer fields to distinguish "absent" from "set to the
// zero value"; only present fields are written to storage.
type BarberUpdate struct {
	Name        *string   `json:"name"`
	Specialties *[]string `json:"specialties"`
	Rating      *float64  `json:"rating"`
	PhotoURL    *string   `json:"photoUrl"`
}
