package main

import (
	"barberagenda/internal/appointments"
	"barberagenda/internal/auth"
	"barberagenda/internal/barbers"
	"barberagenda/internal/services"
	"barberagenda/pkg/app"
	"barberagenda/pkg/config"
	"barberagenda/pkg/kafka"
	"barberagenda/pkg/validation"
)

const ServiceName = "barberagenda"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Barber Agenda service")

	serverApp := app.NewApplication(cfg)

	validator := validation.New()

	barberRepo := barbers.NewRepository(cfg)
	barberService := barbers.NewService(barberRepo, cfg)

	catalogRepo := services.NewRepository(cfg)
	catalogService := services.NewService(catalogRepo, validator, cfg)

	appointmentRepo := appointments.NewRepository(cfg)
	publisher := initPublisher(cfg, serverApp)
	appointmentService := appointments.NewService(appointmentRepo, publisher, validator, cfg)

	authRepo := auth.NewRepository(cfg)
	authService := auth.NewService(authRepo, cfg)

	cfg.Log.Info("Barber Agenda service initialized", "database", cfg.MongoDatabaseName)

	serverApp.SetApp(
		barbers.NewHandler(barberService, cfg.Log),
		services.NewHandler(catalogService, cfg.Log),
		appointments.NewHandler(appointmentService, cfg.Log),
		auth.NewHandler(authService, cfg.Log),
	)
	serverApp.Run()
}

// initPublisher wires the Kafka event stream when brokers are configured
// and falls back to a no-op publisher otherwise.
func initPublisher(cfg *config.Config, serverApp *app.Application) appointments.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		cfg.Log.Info("Kafka brokers not configured, appointment events disabled")
		return appointments.NewNopPublisher()
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}

	serverApp.OnShutdown(func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	})

	cfg.Log.Info("Kafka producer initialized", "topic", cfg.KafkaTopic)
	return appointments.NewKafkaPublisher(producer)
}
