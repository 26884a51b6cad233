package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"rental/config"
	"rental/infras/kafka"
	"rental/infras/otel"
	apartmentDto "rental/internal/domains/apartment/model/dto"
	inquiryModel "rental/internal/domains/inquiry/model"
	"rental/internal/domains/notification/model/dto"
	"rental/internal/domains/reservation/model"
	"rental/shared/constant"

	"github.com/rs/zerolog/log"
)

// ErrNotificationFailed marks a notification that could not be handed to the broker. It never
// undoes the reservation or inquiry it was about.
var ErrNotificationFailed = errors.New("notification failed")

type Notifier interface {
	ReservationCreated(ctx context.Context, reservation model.Reservation, apartment apartmentDto.ApartmentResponse) error
	InquiryReceived(ctx context.Context, inquiry inquiryModel.Inquiry) error
}

type serviceImpl struct {
	producer kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(producer kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return &serviceImpl{
		producer: producer,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) ReservationCreated(ctx context.Context, reservation model.Reservation, apartment apartmentDto.ApartmentResponse) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".ReservationCreated")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event := dto.ReservationCreatedEvent{}
	event.FromModel(reservation, apartment, s.cfg.App.AdminEmails)

	topic := s.cfg.Kafka.Topics.ReservationCreated
	scope.SetAttribute("reservation.id", reservation.ID)

	err = s.producer.SendMessages(ctx, topic, kafka.Message{Key: reservation.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("reservationID", reservation.ID).Str("topic", topic).Msg("failed to publish reservation created event")

		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

func (s *serviceImpl) InquiryReceived(ctx context.Context, inquiry inquiryModel.Inquiry) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".InquiryReceived")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event := dto.InquiryReceivedEvent{}
	event.FromModel(inquiry, s.cfg.App.AdminEmails)

	topic := s.cfg.Kafka.Topics.InquiryReceived
	scope.SetAttribute("inquiry.id", inquiry.ID)

	err = s.producer.SendMessages(ctx, topic, kafka.Message{Key: inquiry.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("inquiryID", inquiry.ID).Str("topic", topic).Msg("failed to publish inquiry received event")

		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}
