package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Inquiry=MockInquiryService

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rental/config"
	"rental/infras/otel"
	"rental/internal/domains/inquiry/model"
	"rental/internal/domains/inquiry/model/dto"
	"rental/internal/domains/inquiry/repository"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetAllInquiry = shared.BuildCacheKey(constant.CacheKeyInquiries, "gets")
	cacheCountInquiry  = shared.BuildCacheKey(constant.CacheKeyInquiries, "count")
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type Inquiry interface {
	Create(ctx context.Context, req dto.CreateInquiryRequest) (dto.InquiryResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	Delete(ctx context.Context, id string) error
}

// Notifier tells the owners about a new message.
type Notifier interface {
	InquiryReceived(ctx context.Context, inquiry model.Inquiry) error
}

type serviceImpl struct {
	repo     repository.Inquiry
	notifier Notifier
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Inquiry, notifier Notifier, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inquiry {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create stores the message. A failed notification is logged; the inquiry stays saved.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInquiryRequest) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inquiry := req.ToModel()

	if err = s.repo.Insert(ctx, inquiry); err != nil {
		log.Error().Err(err).Msg("failed to save inquiry")

		return res, fmt.Errorf("failed to save inquiry: %w", err)
	}

	if notifyErr := s.notifier.InquiryReceived(ctx, inquiry); notifyErr != nil {
		log.Warn().Err(notifyErr).Str("inquiryID", inquiry.ID).Msg("inquiry saved without notification")
	}

	s.invalidate(ctx)

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	inquiries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, fmt.Errorf("failed to get inquiries: %w", err)
	}

	res.FromModels(inquiries, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInquiry, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count inquiries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	inquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return res, failure.Wrap(http.StatusNotFound, ErrInquiryNotFound)
	}

	res.FromModel(inquiry)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete inquiry")

		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	if deleted == 0 {
		return failure.Wrap(http.StatusNotFound, ErrInquiryNotFound)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
		shared.InvalidateCaches(c, s.cache, cacheCountInquiry)
	}()
}
