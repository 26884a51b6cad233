package dto

import (
	"time"

	"rental/shared/constant"
	"rental/shared/model"
	"rental/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

// FromModel renders the audit timestamps in the application timezone. Zero times stay empty.
func (m *Metadata) FromModel(source model.Metadata) {
	*m = Metadata{
		CreatedAt:  formatInstant(source.CreatedAt),
		ModifiedAt: formatInstant(source.ModifiedAt),
		CreatedBy:  source.CreatedBy,
		ModifiedBy: source.ModifiedBy,
	}
}

func formatInstant(at time.Time) string {
	if at.IsZero() {
		return constant.Empty
	}

	return timezone.Format(at, constant.DateFormat)
}
