package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Gallery=MockGalleryService

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"path/filepath"

	"rental/config"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/infras/s3"
	"rental/internal/domains/gallery/model"
	"rental/internal/domains/gallery/model/dto"
	"rental/internal/domains/gallery/repository"
	"rental/shared"
	"rental/shared/cache"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var cacheListGallery = shared.BuildCacheKey(constant.CacheKeyGallery, "list")

var (
	ErrApartmentNotFound  = errors.New("apartment not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrCoverConflict      = errors.New("another cover was set at the same time")
	ErrDeleteImagesFromS3 = errors.New("failed to delete images from S3")
)

type Gallery interface {
	Upload(ctx context.Context, apartmentID string, req dto.UploadImageRequest) (dto.ImageResponse, error)
	List(ctx context.Context, apartmentID string) (dto.GalleryResponse, error)
	Update(ctx context.Context, apartmentID, imageID string, req dto.UpdateImageRequest) error
	Delete(ctx context.Context, apartmentID, imageID string) error
	// ImageURLs reads the stored URLs of an apartment's images, bypassing the cache.
	ImageURLs(ctx context.Context, apartmentID string) ([]string, error)
	DeleteImagesFromS3(ctx context.Context, urls []string) error
}

type serviceImpl struct {
	repo  repository.Gallery
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Gallery, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Gallery {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

// Upload stores the file under the apartment's directory and appends it to the gallery. The
// first image of an apartment always becomes its cover.
func (s *serviceImpl) Upload(ctx context.Context, apartmentID string, req dto.UploadImageRequest) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	existing, err := s.repo.Count(ctx, repository.ByApartment(apartmentID))
	if err != nil {
		return res, fmt.Errorf("failed to count images: %w", err)
	}

	order := existing
	if req.DisplayOrder != nil {
		order = *req.DisplayOrder
	}

	directory := path.Join(s.cfg.External.S3.Directory, apartmentID)
	fileName := uuid.NewString() + filepath.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, directory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Str("apartmentID", apartmentID).Msg("failed to upload apartment image")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	image := req.ToModel(user, apartmentID, url, order, existing == 0)

	if err = s.repo.Insert(ctx, image); err != nil {
		s.removeObject(ctx, path.Join(directory, fileName))

		switch {
		case errors.Is(err, postgres.ErrForeignKeyViolation):
			return res, failure.Wrap(http.StatusNotFound, ErrApartmentNotFound)
		case errors.Is(err, postgres.ErrUniqueViolation):
			return res, failure.Wrap(http.StatusConflict, ErrCoverConflict)
		}

		log.Error().Err(err).Msg("failed to save apartment image")

		return res, fmt.Errorf("failed to save image: %w", err)
	}

	if req.IsCover && !image.IsCover {
		if err = s.repo.SetCover(ctx, apartmentID, image.ID); err != nil {
			log.Error().Err(err).Str("imageID", image.ID).Msg("failed to set cover image")

			return res, fmt.Errorf("failed to set cover image: %w", err)
		}

		image.IsCover = true
	}

	s.invalidate(ctx, apartmentID)

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, apartmentID string) (res dto.GalleryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListGallery, apartmentID)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for gallery")

		return res, nil
	}

	images, err := s.repo.GetAll(ctx, byDisplayOrder(), repository.ByApartment(apartmentID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get apartment images")

		return res, fmt.Errorf("failed to get images: %w", err)
	}

	res.FromModels(apartmentID, images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, apartmentID, imageID string, req dto.UpdateImageRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := repository.ByImage(apartmentID, imageID)

	current, err := s.find(ctx, filter)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update apartment image")

		return fmt.Errorf("failed to update image: %w", err)
	}

	if req.IsCover != nil && *req.IsCover && !current.IsCover {
		if err = s.repo.SetCover(ctx, apartmentID, imageID); err != nil {
			return fmt.Errorf("failed to set cover image: %w", err)
		}
	}

	s.invalidate(ctx, apartmentID)

	return nil
}

// Delete removes an image. When it was the cover, the next image in display order takes over.
func (s *serviceImpl) Delete(ctx context.Context, apartmentID, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := repository.ByImage(apartmentID, imageID)

	current, err := s.find(ctx, filter)
	if err != nil {
		return err
	}

	if _, err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete apartment image")

		return fmt.Errorf("failed to delete image: %w", err)
	}

	if current.IsCover {
		if err = s.promoteCover(ctx, apartmentID); err != nil {
			log.Error().Err(err).Str("apartmentID", apartmentID).Msg("failed to promote next cover image")
		}
	}

	s.removeObject(ctx, s.s3.ObjectKeyFromURL(current.URL))
	s.invalidate(ctx, apartmentID)

	return nil
}

func (s *serviceImpl) ImageURLs(ctx context.Context, apartmentID string) ([]string, error) {
	images, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.ByApartment(apartmentID), model.FieldID, model.FieldURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get image urls: %w", err)
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		urls = append(urls, image.URL)
	}

	return urls, nil
}

func (s *serviceImpl) DeleteImagesFromS3(ctx context.Context, urls []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".gallery.DeleteImagesFromS3")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var failed int

	for _, url := range urls {
		objectKey := s.s3.ObjectKeyFromURL(url)
		if objectKey == constant.Empty {
			log.Warn().Str("url", url).Msg("failed to extract object key from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
			log.Error().Err(err).Str("key", objectKey).Msg("failed to delete file from S3")

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, failed)
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, filter gDto.FilterGroup) (model.Image, error) {
	image, err := s.repo.Get(ctx, filter)
	if err != nil {
		return image, fmt.Errorf("failed to get image: %w", err)
	}

	if image.ID == constant.Empty {
		return image, failure.Wrap(http.StatusNotFound, ErrImageNotFound)
	}

	return image, nil
}

func (s *serviceImpl) promoteCover(ctx context.Context, apartmentID string) error {
	params := byDisplayOrder()
	params.Page, params.Limit = 1, 1

	next, err := s.repo.GetAll(ctx, params, repository.ByApartment(apartmentID), model.FieldID)
	if err != nil || len(next) == 0 {
		return err
	}

	return s.repo.SetCover(ctx, apartmentID, next[0].ID)
}

func (s *serviceImpl) removeObject(ctx context.Context, objectKey string) {
	if objectKey == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Warn().Err(err).Str("key", objectKey).Msg("failed to remove apartment image")
	}
}

// invalidate drops the gallery and every apartment entry, since apartments carry their cover.
func (s *serviceImpl) invalidate(ctx context.Context, apartmentID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheListGallery, apartmentID)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery cache")
		}

		shared.InvalidateCaches(c, s.cache, constant.CacheKeyApartments)
	}()
}

func byDisplayOrder() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc}
}
