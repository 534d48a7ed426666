package model

// Appointment statuses. The status is set to StatusScheduled at creation and
// otherwise caller-supplied.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment lives under a composite key: barberId partitions the
// collection so all appointments for one barber can be read together, and
// appointmentId addresses a single record within the partition. The service
// field is a free-text label, not a reference to a Service record.
type Appointment struct {
	AppointmentID string `json:"appointmentId" bson:"_id"`
	BarberID      string `json:"barberId" bson:"barber_id"`
	CustomerName  string `json:"customerName" bson:"customer_name"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customer_phone,omitempty"`
	StartTime     int64  `json:"startTime" bson:"start_time"`
	EndTime       int64  `json:"endTime" bson:"end_time"`
	Service       string `json:"service,omitempty" bson:"service,omitempty"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
	Status        string `json:"status" bson:"status"`
	CreatedAt     int64  `json:"createdAt" bson:"created_at"`
}

type AppointmentCreate struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone"`
	StartTime     *int64 `json:"startTime" validate:"required"`
	EndTime       *int64 `json:"endTime" validate:"required"`
	Service       string `json:"service"`
	Notes         string `json:"notes"`
}

type AppointmentUpdate struct {
	CustomerName  *string `json:"customerName"`
	CustomerPhone *string `json:"customerPhone"`
	StartTime     *int64  `json:"startTime"`
	EndTime       *int64  `json:"endTime"`
	Service       *string `json:"service"`
	Notes         *string `json:"notes"`
	Status        *string `json:"status"`
}
