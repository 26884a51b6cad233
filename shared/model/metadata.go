package model

import (
	"time"

	"rental/shared/constant"
)

// Metadata is the audit trail embedded in every stored record.
type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

func NewMetadata(actor string, at time.Time) Metadata {
	return Metadata{
		CreatedAt:  at,
		ModifiedAt: at,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

// Touch adds the modification columns to a partial update.
func Touch(fields map[string]any, actor string, at time.Time) map[string]any {
	if fields == nil {
		fields = make(map[string]any, 2)
	}

	fields[constant.FieldModifiedAt] = at
	fields[constant.FieldModifiedBy] = actor

	return fields
}
