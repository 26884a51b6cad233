package dto

import (
	"strings"

	"rental/internal/domains/inquiry/model"
	"rental/shared"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"

	"github.com/google/uuid"
)

type CreateInquiryRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// ToModel trims the visitor's input; the record is attributed to the sender's address.
func (r *CreateInquiryRequest) ToModel() model.Inquiry {
	email := strings.ToLower(strings.TrimSpace(r.Email))

	return model.Inquiry{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		Email:    email,
		Message:  strings.TrimSpace(r.Message),
		Metadata: gModel.NewMetadata(email, timezone.Now()),
	}
}

type InquiryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(inquiry model.Inquiry) {
	r.ID = inquiry.ID
	r.Name = inquiry.Name
	r.Email = inquiry.Email
	r.Message = inquiry.Message
	r.Metadata.FromModel(inquiry.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
