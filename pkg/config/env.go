package config

import "time"

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DB"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	// The backing collection identities follow the table naming of the
	// deployment environment.
	EnvBarbersTable      = "BARBERS_TABLE"
	EnvServicesTable     = "SERVICES_TABLE"
	EnvAppointmentsTable = "APPOINTMENTS_TABLE"
	EnvUsersTable        = "USERS_TABLE"

	EnvPort = "PORT"

	EnvKafkaBrokers = "KAFKA_BROKERS"
	EnvKafkaTopic   = "KAFKA_TOPIC"

	EnvRequestTimeout  = "REQUEST_TIMEOUT"
	EnvMaxRequestSize  = "MAX_REQUEST_SIZE"
	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvLogLevel = "LOG_LEVEL"
)

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "barberagenda"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultBarbersTable      = "barbers"
	DefaultServicesTable     = "services"
	DefaultAppointmentsTable = "appointments"
	DefaultUsersTable        = "users"

	DefaultPort = "8080"

	DefaultKafkaTopic = "appointment-events"

	DefaultRequestTimeout  = 15 * time.Second
	DefaultMaxRequestSize  = 1 << 20
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel = "info"
)
