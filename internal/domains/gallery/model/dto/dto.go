package dto

import (
	"cmp"
	"mime/multipart"
	"slices"

	"rental/internal/domains/gallery/model"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"

	"github.com/google/uuid"
)

type UploadImageRequest struct {
	Image        *multipart.FileHeader `json:"image"         validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=1"`
	ImageFile    multipart.File        `json:"-"`
	AltText      string                `json:"alt_text"      validate:"omitempty,max=255"`
	DisplayOrder *int                  `json:"display_order" validate:"omitempty,gte=0"`
	IsCover      bool                  `json:"is_cover"`
	Width        int                   `json:"width"         validate:"omitempty,gt=0"`
	Height       int                   `json:"height"        validate:"omitempty,gt=0"`
}

func (r *UploadImageRequest) ToModel(user, apartmentID, url string, order int, cover bool) model.Image {
	return model.Image{
		ID:           uuid.NewString(),
		ApartmentID:  apartmentID,
		URL:          url,
		AltText:      r.AltText,
		DisplayOrder: order,
		IsCover:      cover,
		Width:        r.Width,
		Height:       r.Height,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}
}

// UpdateImageRequest changes the caption or position of an image. Setting is_cover moves the
// cover flag to this image; it cannot be cleared directly.
type UpdateImageRequest struct {
	AltText      *string `db:"alt_text"      json:"alt_text"      validate:"omitempty,max=255"`
	DisplayOrder *int    `db:"display_order" json:"display_order" validate:"omitempty,gte=0"`
	IsCover      *bool   `db:"-"             json:"is_cover"`
}

type ImageResponse struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	AltText      string `json:"alt_text"`
	DisplayOrder int    `json:"display_order"`
	IsCover      bool   `json:"is_cover"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	gDto.Metadata
}

func (r *ImageResponse) FromModel(image model.Image) {
	r.ID = image.ID
	r.URL = image.URL
	r.AltText = image.AltText
	r.DisplayOrder = image.DisplayOrder
	r.IsCover = image.IsCover
	r.Width = image.Width
	r.Height = image.Height
	r.Metadata.FromModel(image.Metadata)
}

type GalleryResponse struct {
	ApartmentID string          `json:"apartment_id"`
	Cover       string          `json:"cover"`
	Images      []ImageResponse `json:"images"`
}

// FromModels lists the cover first, then the rest by display order and upload time.
func (r *GalleryResponse) FromModels(apartmentID string, images []model.Image) {
	sorted := slices.Clone(images)
	slices.SortStableFunc(sorted, func(a, b model.Image) int {
		if a.IsCover != b.IsCover {
			if a.IsCover {
				return -1
			}

			return 1
		}

		if c := cmp.Compare(a.DisplayOrder, b.DisplayOrder); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	r.ApartmentID = apartmentID
	r.Images = make([]ImageResponse, len(sorted))

	for i, image := range sorted {
		r.Images[i].FromModel(image)

		if image.IsCover {
			r.Cover = image.URL
		}
	}
}
