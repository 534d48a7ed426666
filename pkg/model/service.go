package model

// Service describes a bookable offering. The identifier carries a fixed
// "service-" prefix distinguishing it from other resource identifiers.
// duration and durationMinutes are both kept and never reconciled with one
// another, a schema redundancy inherited from the wire contract.
type Service struct {
	ServiceID       string  `json:"serviceId" bson:"_id"`
	Title           string  `json:"title" bson:"title"`
	Name            string  `json:"name" bson:"name"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	Price           float64 `json:"price" bson:"price"`
	Duration        int     `json:"duration" bson:"duration"`
	DurationMinutes int     `json:"durationMinutes" bson:"duration_minutes"`
	CreatedAt       int64   `json:"createdAt" bson:"created_at"`
}

type ServiceCreate struct {
	Title           string   `json:"title" validate:"required"`
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price" validate:"required"`
	Duration        *int     `json:"duration" validate:"required"`
	DurationMinutes *int     `json:"durationMinutes" validate:"required"`
}

type ServiceUpdate struct {
	Title           *string  `json:"title"`
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Duration        *int     `json:"duration"`
	DurationMinutes *int     `json:"durationMinutes"`
}
