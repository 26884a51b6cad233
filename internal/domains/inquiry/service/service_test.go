package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rental/config"
	"rental/infras/otel/mocks"
	inquiryMocks "rental/internal/domains/inquiry/mocks"
	"rental/internal/domains/inquiry/model"
	"rental/internal/domains/inquiry/model/dto"
	"rental/internal/domains/inquiry/service"
	cacheMocks "rental/shared/cache/mocks"
	gDto "rental/shared/dto"
	"rental/shared/failure"
)

type fixture struct {
	repo     *inquiryMocks.MockInquiry
	notifier *inquiryMocks.MockNotifier
	cache    *cacheMocks.MockRedisCache
	svc      service.Inquiry
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:     inquiryMocks.NewMockInquiry(ctrl),
		notifier: inquiryMocks.NewMockNotifier(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.notifier, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

var contact = dto.CreateInquiryRequest{Name: "Ana", Email: "ana@example.com", Message: "Is parking included?"}

func TestInquiryService_Create(t *testing.T) {
	t.Run("saved and announced", func(t *testing.T) {
		f := newFixture(t)

		var saved model.Inquiry

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
				saved = inquiry

				return nil
			})
		f.notifier.EXPECT().
			InquiryReceived(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inquiry model.Inquiry) error {
				assert.Equal(t, saved.ID, inquiry.ID)

				return nil
			})

		res, err := f.svc.Create(context.Background(), contact)

		require.NoError(t, err)
		assert.Equal(t, saved.ID, res.ID)
		assert.Equal(t, "ana@example.com", res.Email)
	})

	t.Run("notification failure keeps the inquiry", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.notifier.EXPECT().InquiryReceived(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		res, err := f.svc.Create(context.Background(), contact)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
	})

	t.Run("store failure is not announced", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		_, err := f.svc.Create(context.Background(), contact)

		assert.ErrorContains(t, err, "failed to save inquiry")
	})
}

func TestInquiryService_GetAll(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Inquiry{{ID: "i-1"}, {ID: "i-2"}, {ID: "i-3"}}, nil)

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Len(t, res.Inquiries, 3)
		assert.Equal(t, 2, res.TotalPage)
	})

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.GetInquiriesResponse) = dto.GetInquiriesResponse{TotalData: 1, Inquiries: []dto.InquiryResponse{{ID: "i-1"}}}

				return nil
			})

		res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
	})
}

func TestInquiryService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, service.ErrInquiryNotFound)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestInquiryService_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		assert.NoError(t, f.svc.Delete(context.Background(), "i-1"))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.ErrorIs(t, err, service.ErrInquiryNotFound)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
