package service_test

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental/config"
	"rental/infras/otel/mocks"
	"rental/infras/postgres"
	s3Mocks "rental/infras/s3/mocks"
	galleryMocks "rental/internal/domains/gallery/mocks"
	"rental/internal/domains/gallery/model"
	"rental/internal/domains/gallery/model/dto"
	"rental/internal/domains/gallery/service"
	cacheMocks "rental/shared/cache/mocks"
	"rental/shared/constant"
	gDto "rental/shared/dto"
	"rental/shared/failure"
)

const apartmentID = "a-1"

type fixture struct {
	repo  *galleryMocks.MockGallery
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Gallery
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.Directory = "apartments"

	f := fixture{
		repo:  galleryMocks.NewMockGallery(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}
	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
}

func upload(name string) dto.UploadImageRequest {
	return dto.UploadImageRequest{Image: &multipart.FileHeader{Filename: name}, AltText: "Living room"}
}

func TestGalleryService_Upload(t *testing.T) {
	t.Run("first image becomes the cover", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), "apartments/a-1", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, directory string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
				assert.Equal(t, ".jpg", path.Ext(fileName))

				return fmt.Sprintf("https://cdn.example.com/%s/%s", directory, fileName), nil
			})
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, image model.Image) error {
				assert.Equal(t, apartmentID, image.ApartmentID)
				assert.True(t, image.IsCover)
				assert.Equal(t, 0, image.DisplayOrder)
				assert.Equal(t, "Living room", image.AltText)
				assert.Equal(t, "admin-1", image.CreatedBy)

				return nil
			})

		res, err := f.svc.Upload(adminContext(), apartmentID, upload("room.jpg"))

		require.NoError(t, err)
		assert.True(t, res.IsCover)
		assert.Contains(t, res.URL, "https://cdn.example.com/apartments/a-1/")
	})

	t.Run("later image is appended and can take the cover", func(t *testing.T) {
		f := newFixture(t)
		req := upload("pool.png")
		req.IsCover = true

		var inserted model.Image

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/apartments/a-1/pool.png", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, image model.Image) error {
				inserted = image

				return nil
			})
		f.repo.EXPECT().
			SetCover(gomock.Any(), apartmentID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, imageID string) error {
				assert.Equal(t, inserted.ID, imageID)

				return nil
			})

		res, err := f.svc.Upload(adminContext(), apartmentID, req)

		require.NoError(t, err)
		assert.False(t, inserted.IsCover, "inserted without the flag so the unique cover index holds")
		assert.Equal(t, 2, inserted.DisplayOrder)
		assert.True(t, res.IsCover)
	})

	t.Run("explicit display order", func(t *testing.T) {
		f := newFixture(t)
		order := 7
		req := upload("view.webp")
		req.DisplayOrder = &order

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/apartments/a-1/view.webp", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, image model.Image) error {
				assert.Equal(t, 7, image.DisplayOrder)
				assert.False(t, image.IsCover)

				return nil
			})

		_, err := f.svc.Upload(adminContext(), apartmentID, req)

		assert.NoError(t, err)
	})

	t.Run("unknown apartment removes the uploaded object", func(t *testing.T) {
		f := newFixture(t)

		var uploadedName string

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ multipart.File, _ *multipart.FileHeader, fileName string) (string, error) {
				uploadedName = fileName

				return "https://cdn.example.com/apartments/a-1/" + fileName, nil
			})
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert: %w", postgres.ErrForeignKeyViolation))
		f.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, objectKey string) error {
				assert.Equal(t, "apartments/a-1/"+uploadedName, objectKey)

				return nil
			})

		_, err := f.svc.Upload(adminContext(), apartmentID, upload("room.jpg"))

		assert.ErrorIs(t, err, service.ErrApartmentNotFound)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("concurrent first uploads", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.example.com/x.jpg", nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert: %w", postgres.ErrUniqueViolation))
		f.s3.EXPECT().DeleteFile(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Upload(adminContext(), apartmentID, upload("room.jpg"))

		assert.ErrorIs(t, err, service.ErrCoverConflict)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("upload failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))

		_, err := f.svc.Upload(adminContext(), apartmentID, upload("room.jpg"))

		assert.ErrorContains(t, err, "failed to upload image")
	})
}

func TestGalleryService_List(t *testing.T) {
	t.Run("cover first, then display order", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "gallery:list:a-1", gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Image, error) {
				assert.Equal(t, model.FieldDisplayOrder, params.SortBy)
				assert.Zero(t, params.Limit)

				return []model.Image{
					{ID: "i-1", DisplayOrder: 0, URL: "https://cdn.example.com/1.jpg"},
					{ID: "i-2", DisplayOrder: 1, URL: "https://cdn.example.com/2.jpg", IsCover: true},
					{ID: "i-3", DisplayOrder: 2, URL: "https://cdn.example.com/3.jpg"},
				}, nil
			})

		res, err := f.svc.List(context.Background(), apartmentID)

		require.NoError(t, err)
		require.Len(t, res.Images, 3)
		assert.Equal(t, "i-2", res.Images[0].ID)
		assert.Equal(t, "i-1", res.Images[1].ID)
		assert.Equal(t, "https://cdn.example.com/2.jpg", res.Cover)
	})

	t.Run("empty gallery", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Image{}, nil)

		res, err := f.svc.List(context.Background(), apartmentID)

		require.NoError(t, err)
		assert.Empty(t, res.Images)
		assert.Empty(t, res.Cover)
	})
}

func TestGalleryService_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{}, nil)

		err := f.svc.Update(adminContext(), apartmentID, "missing", dto.UpdateImageRequest{})

		assert.ErrorIs(t, err, service.ErrImageNotFound)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("moves the cover", func(t *testing.T) {
		f := newFixture(t)
		caption := "Balcony"
		cover := true

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{ID: "i-3", ApartmentID: apartmentID}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &caption, fields[model.FieldAltText])
				assert.NotContains(t, fields, model.FieldIsCover)
				assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

				return nil
			})
		f.repo.EXPECT().SetCover(gomock.Any(), apartmentID, "i-3").Return(nil)

		err := f.svc.Update(adminContext(), apartmentID, "i-3", dto.UpdateImageRequest{AltText: &caption, IsCover: &cover})

		assert.NoError(t, err)
	})

	t.Run("already the cover", func(t *testing.T) {
		f := newFixture(t)
		cover := true

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{ID: "i-1", IsCover: true}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Update(adminContext(), apartmentID, "i-1", dto.UpdateImageRequest{IsCover: &cover}))
	})
}

func TestGalleryService_Delete(t *testing.T) {
	t.Run("deleting the cover promotes the next image", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{ID: "i-1", IsCover: true, URL: "https://cdn.example.com/apartments/a-1/1.jpg"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldID).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Image, error) {
				assert.Equal(t, 1, params.Limit)
				assert.Equal(t, model.FieldDisplayOrder, params.SortBy)

				return []model.Image{{ID: "i-2"}}, nil
			})
		f.repo.EXPECT().SetCover(gomock.Any(), apartmentID, "i-2").Return(nil)
		f.s3.EXPECT().ObjectKeyFromURL("https://cdn.example.com/apartments/a-1/1.jpg").Return("apartments/a-1/1.jpg")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "apartments/a-1/1.jpg").Return(nil)

		assert.NoError(t, f.svc.Delete(adminContext(), apartmentID, "i-1"))
	})

	t.Run("last image leaves no cover", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{ID: "i-1", IsCover: true, URL: "https://cdn.example.com/1.jpg"}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldID).Return([]model.Image{}, nil)
		f.s3.EXPECT().ObjectKeyFromURL(gomock.Any()).Return("1.jpg")
		f.s3.EXPECT().DeleteFile(gomock.Any(), "1.jpg").Return(errors.New("already gone"))

		assert.NoError(t, f.svc.Delete(adminContext(), apartmentID, "i-1"))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Image{}, nil)

		assert.ErrorIs(t, f.svc.Delete(adminContext(), apartmentID, "missing"), service.ErrImageNotFound)
	})
}

func TestGalleryService_ImageURLs(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any(), model.FieldID, model.FieldURL).
		Return([]model.Image{{URL: "https://cdn.example.com/1.jpg"}, {URL: "https://cdn.example.com/2.jpg"}}, nil)

	urls, err := f.svc.ImageURLs(context.Background(), apartmentID)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/1.jpg", "https://cdn.example.com/2.jpg"}, urls)
}

func TestGalleryService_DeleteImagesFromS3(t *testing.T) {
	f := newFixture(t)

	f.s3.EXPECT().ObjectKeyFromURL("https://cdn.example.com/1.jpg").Return("apartments/1.jpg")
	f.s3.EXPECT().ObjectKeyFromURL("https://elsewhere.example.com/2.jpg").Return("")
	f.s3.EXPECT().ObjectKeyFromURL("https://cdn.example.com/3.jpg").Return("apartments/3.jpg")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "apartments/1.jpg").Return(nil)
	f.s3.EXPECT().DeleteFile(gomock.Any(), "apartments/3.jpg").Return(errors.New("access denied"))

	err := f.svc.DeleteImagesFromS3(context.Background(), []string{
		"https://cdn.example.com/1.jpg",
		"https://elsewhere.example.com/2.jpg",
		"https://cdn.example.com/3.jpg",
	})

	assert.ErrorIs(t, err, service.ErrDeleteImagesFromS3)
	assert.ErrorContains(t, err, "1 images")
}
