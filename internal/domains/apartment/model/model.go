package model

import "rental/shared/model"

const (
	TableName  = "apartments"
	EntityName = "apartment"

	FieldID            = "id"
	FieldName          = "name"
	FieldNameEn        = "name_en"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
)

type Apartment struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	NameEn        string  `db:"name_en"`
	Description   string  `db:"description"`
	DescriptionEn string  `db:"description_en"`
	PricePerNight int     `db:"price_per_night"`
	Capacity      int     `db:"capacity"`
	Latitude      float64 `db:"latitude"`
	Longitude     float64 `db:"longitude"`
	// Cover is read from the gallery; nil when the apartment has no images.
	Cover         *string `db:"cover" column:"url" table:"apartment_images"`
	model.Metadata
}

func (Apartment) GetJoinQuery() string {
	return "LEFT JOIN apartment_images ON apartment_images.apartment_id = apartments.id AND apartment_images.is_cover"
}
