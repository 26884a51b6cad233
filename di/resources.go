package di

import (
	"context"

	"rental/infras/kafka"
	"rental/infras/otel"
	"rental/infras/postgres"
	reservationService "rental/internal/domains/reservation/service"
	"rental/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// provideResources lists what the server releases on shutdown. Pending notifications are
// flushed before the producer they write to is closed.
func provideResources(
	reservations reservationService.Reservation,
	producer kafka.Client,
	redisClient *goRedis.Client,
	db *postgres.Connection,
	otl otel.Otel,
) http.Resources {
	return http.Resources{
		{Name: "notifications", Close: reservations.Flush},
		{Name: "kafka", Close: func(context.Context) error { return producer.Close() }},
		{Name: "redis", Close: func(context.Context) error { return redisClient.Close() }},
		{Name: "postgres", Close: func(context.Context) error { return db.Close() }},
		{Name: "otel", Close: otl.Shutdown},
	}
}
