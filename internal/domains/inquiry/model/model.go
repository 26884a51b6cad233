package model

import "rental/shared/model"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldCreatedAt = "created_at"
)

// Inquiry is a message left through the public contact form.
type Inquiry struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
	model.Metadata
}
