package appointments

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"barberagenda/pkg/kafka"
	"barberagenda/pkg/model"
)

const (
	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"

	eventSource = "barberagenda"
)

// Event is the payload published on every appointment mutation.
// Appointment carries the record after the mutation; it is nil for
// deletions.
type Event struct {
	Type          string             `json:"type"`
	AppointmentID string             `json:"appointmentId"`
	BarberID      string             `json:"barberId"`
	OccurredAt    int64              `json:"occurredAt"`
	Appointment   *model.Appointment `json:"appointment,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// kafkaPublisher keys messages by barberId so all events for one barber
// land on the same partition in order.
type kafkaPublisher struct {
	producer *kafka.Producer
}

func NewKafkaPublisher(producer *kafka.Producer) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal appointment event: %w", err)
	}

	return p.producer.Publish(ctx, kafka.Message{
		Key:   event.BarberID,
		Value: value,
		Headers: map[string]string{
			kafka.HeaderEventID:   uuid.NewString(),
			kafka.HeaderEventType: event.Type,
			kafka.HeaderSource:    eventSource,
			kafka.HeaderTimestamp: strconv.FormatInt(event.OccurredAt, 10),
		},
		Timestamp: time.UnixMilli(event.OccurredAt),
	})
}

// nopPublisher is used when no brokers are configured.
type nopPublisher struct{}

func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error { return nil }
