package model

import "rental/shared/model"

const (
	TableName  = "apartment_images"
	EntityName = "gallery"

	FieldID           = "id"
	FieldApartmentID  = "apartment_id"
	FieldURL          = "url"
	FieldAltText      = "alt_text"
	FieldDisplayOrder = "display_order"
	FieldIsCover      = "is_cover"
)

// Image is one photo of an apartment. At most one image per apartment is the cover.
type Image struct {
	ID           string `db:"id"`
	ApartmentID  string `db:"apartment_id"`
	URL          string `db:"url"`
	AltText      string `db:"alt_text"`
	DisplayOrder int    `db:"display_order"`
	IsCover      bool   `db:"is_cover"`
	Width        int    `db:"width"`
	Height       int    `db:"height"`
	model.Metadata
}
