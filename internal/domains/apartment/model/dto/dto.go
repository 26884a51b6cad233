package dto

import (
	"rental/internal/domains/apartment/model"
	"rental/shared"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"

	"github.com/google/uuid"
)

type CreateApartmentRequest struct {
	Name          string  `json:"name"            validate:"required,max=100"`
	NameEn        string  `json:"name_en"         validate:"omitempty,max=100"`
	Description   string  `json:"description"     validate:"omitempty,max=5000"`
	DescriptionEn string  `json:"description_en"  validate:"omitempty,max=5000"`
	PricePerNight int     `json:"price_per_night" validate:"required,gt=0"`
	Capacity      int     `json:"capacity"        validate:"required,gt=0"`
	Latitude      float64 `json:"latitude"        validate:"omitempty,latitude"`
	Longitude     float64 `json:"longitude"       validate:"omitempty,longitude"`
}

func (c *CreateApartmentRequest) ToModel(user string) model.Apartment {
	now := timezone.Now()

	return model.Apartment{
		ID:            uuid.NewString(),
		Name:          c.Name,
		NameEn:        c.NameEn,
		Description:   c.Description,
		DescriptionEn: c.DescriptionEn,
		PricePerNight: c.PricePerNight,
		Capacity:      c.Capacity,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		Metadata:      gModel.NewMetadata(user, now),
	}
}

type UpdateApartmentRequest struct {
	Name          string   `db:"name"            json:"name"            validate:"omitempty,max=100"`
	NameEn        string   `db:"name_en"         json:"name_en"         validate:"omitempty,max=100"`
	Description   string   `db:"description"     json:"description"     validate:"omitempty,max=5000"`
	DescriptionEn string   `db:"description_en"  json:"description_en"  validate:"omitempty,max=5000"`
	PricePerNight *int     `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Capacity      *int     `db:"capacity"        json:"capacity"        validate:"omitempty,gt=0"`
	Latitude      *float64 `db:"latitude"        json:"latitude"        validate:"omitempty,latitude"`
	Longitude     *float64 `db:"longitude"       json:"longitude"       validate:"omitempty,longitude"`
}

type ApartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	NameEn        string  `json:"name_en"`
	Description   string  `json:"description"`
	DescriptionEn string  `json:"description_en"`
	PricePerNight int     `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	Image         string  `json:"image"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	gDto.Metadata
}

func (r *ApartmentResponse) FromModel(model model.Apartment) {
	r.ID = model.ID
	r.Name = model.Name
	r.NameEn = model.NameEn
	r.Description = model.Description
	r.DescriptionEn = model.DescriptionEn
	r.PricePerNight = model.PricePerNight
	r.Capacity = model.Capacity
	r.Latitude = model.Latitude
	r.Longitude = model.Longitude
	r.Metadata.FromModel(model.Metadata)

	if model.Cover != nil {
		r.Image = *model.Cover
	}
}

type GetApartmentsResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetApartmentsResponse) FromModels(models []model.Apartment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Apartments = make([]ApartmentResponse, len(models))
	for i, mod := range models {
		r.Apartments[i].FromModel(mod)
	}
}
