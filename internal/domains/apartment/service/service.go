package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Apartment=MockApartmentService

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"rental/config"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/apartment/model"
	"rental/internal/domains/apartment/model/dto"
	"rental/internal/domains/apartment/repository"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetApartment    = shared.BuildCacheKey(constant.CacheKeyApartments, "get")
	cacheGetAllApartment = shared.BuildCacheKey(constant.CacheKeyApartments, "gets")
	cacheCountApartment  = shared.BuildCacheKey(constant.CacheKeyApartments, "count")
)

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrApartmentInUse    = errors.New("apartment still has reservations")
)

type Apartment interface {
	Create(ctx context.Context, req dto.CreateApartmentRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetApartmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ApartmentResponse, error)
	PricePerNight(ctx context.Context, id string) (int, error)
	Update(ctx context.Context, req dto.UpdateApartmentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

// Images is the gallery side of an apartment, consulted when the apartment is removed.
type Images interface {
	ImageURLs(ctx context.Context, apartmentID string) ([]string, error)
	DeleteImagesFromS3(ctx context.Context, urls []string) error
}

type serviceImpl struct {
	repo   repository.Apartment
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	images Images
}

func New(repo repository.Apartment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, images Images) Apartment {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		images: images,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateApartmentRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apartment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	apartment := req.ToModel(user)

	if err = s.repo.Insert(ctx, apartment); err != nil {
		log.Error().Err(err).Msg("failed to create apartment")

		return constant.Empty, fmt.Errorf("failed to create apartment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllApartment)
		shared.InvalidateCaches(c, s.cache, cacheCountApartment)
	}()

	return apartment.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetApartmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apartment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllApartment, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for apartments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count apartments")

		return res, fmt.Errorf("failed to count apartments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get apartments")

		return res, fmt.Errorf("failed to get apartments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save apartments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apartment.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountApartment, req, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count apartments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save apartment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ApartmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apartment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetApartment, id)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	apartment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("apartmentID", id).Msg("failed to get apartment")

		return res, fmt.Errorf("failed to get apartment: %w", err)
	}

	if apartment.ID == constant.Empty {
		return res, failure.Wrap(http.StatusNotFound, ErrApartmentNotFound)
	}

	res.FromModel(apartment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save apartment to cache")
		}
	}()

	return res, nil
}

// PricePerNight is the nightly rate used to price reservations.
func (s *serviceImpl) PricePerNight(ctx context.Context, id string) (int, error) {
	apartment, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	if apartment.PricePerNight <= 0 {
		return 0, fmt.Errorf("apartment %s has no nightly price", id)
	}

	return apartment.PricePerNight, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateApartmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apartment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check apartment existence")

		return fmt.Errorf("failed to get apartment: %w", err)
	}

	if !exist {
		return failure.Wrap(http.StatusNotFound, ErrApartmentNotFound)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update apartment")

		return fmt.Errorf("failed to update apartment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".apartment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get apartment: %w", err)
	}

	if !exist {
		return failure.Wrap(http.StatusNotFound, ErrApartmentNotFound)
	}

	// Image rows go with the apartment; their objects are removed once the delete holds.
	urls, err := s.images.ImageURLs(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list apartment images: %w", err)
	}

	if _, err = s.repo.Delete(ctx, filter); err != nil {
		if errors.Is(err, postgres.ErrForeignKeyViolation) {
			return failure.Wrap(http.StatusConflict, ErrApartmentInUse)
		}

		log.Error().Err(err).Msg("failed to delete apartment")

		return fmt.Errorf("failed to delete apartment: %w", err)
	}

	if len(urls) > 0 {
		if err := s.images.DeleteImagesFromS3(ctx, urls); err != nil {
			log.Warn().Err(err).Str("apartmentID", id).Msg("failed to remove apartment images")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetApartment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete apartment cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(constant.CacheKeyGallery, "list", id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllApartment)
		shared.InvalidateCaches(c, s.cache, cacheCountApartment)
	}()
}
