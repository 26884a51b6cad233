package dto

import (
	apartmentDto "rental/internal/domains/apartment/model/dto"
	inquiryModel "rental/internal/domains/inquiry/model"
	"rental/internal/domains/reservation/model"
	"rental/shared/constant"
	"rental/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// ReservationCreatedEvent is published after a reservation commits. The mail service consumes it
// and renders the guest confirmation and the admin notice.
type ReservationCreatedEvent struct {
	EventID        string   `json:"event_id"`
	OccurredAt     string   `json:"occurred_at"`
	ReservationID  string   `json:"reservation_id"`
	ApartmentID    string   `json:"apartment_id"`
	ApartmentName  string   `json:"apartment_name"`
	ApartmentImage string   `json:"apartment_image,omitempty"`
	CheckIn        string   `json:"check_in"`
	CheckOut       string   `json:"check_out"`
	Nights         int      `json:"nights"`
	Status         string   `json:"status"`
	GuestName      string   `json:"guest_name"`
	GuestEmail     string   `json:"guest_email"`
	GuestPhone     string   `json:"guest_phone,omitempty"`
	Guests         int      `json:"guests"`
	Message        string   `json:"message,omitempty"`
	TotalPrice     int      `json:"total_price"`
	AdminEmails    []string `json:"admin_emails,omitempty"`
}

func (e *ReservationCreatedEvent) FromModel(reservation model.Reservation, apartment apartmentDto.ApartmentResponse, adminEmails []string) {
	stay := reservation.Range()

	e.EventID = uuid.NewString()
	e.OccurredAt = timezone.Format(timezone.Now(), time.RFC3339)
	e.ReservationID = reservation.ID
	e.ApartmentID = reservation.ApartmentID
	e.ApartmentName = apartment.Name
	e.ApartmentImage = apartment.Image
	e.CheckIn = stay.CheckIn.Format(constant.DateOnlyFormat)
	e.CheckOut = stay.CheckOut.Format(constant.DateOnlyFormat)
	e.Nights = stay.Nights()
	e.Status = reservation.Status
	e.GuestName = reservation.GuestName
	e.GuestEmail = reservation.GuestEmail
	e.GuestPhone = reservation.GuestPhone
	e.Guests = reservation.Guests
	e.Message = reservation.Message
	e.TotalPrice = reservation.TotalPrice
	e.AdminEmails = adminEmails
}

// InquiryReceivedEvent carries a contact form message to the mail service.
type InquiryReceivedEvent struct {
	EventID     string   `json:"event_id"`
	OccurredAt  string   `json:"occurred_at"`
	InquiryID   string   `json:"inquiry_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Message     string   `json:"message"`
	AdminEmails []string `json:"admin_emails,omitempty"`
}

func (e *InquiryReceivedEvent) FromModel(inquiry inquiryModel.Inquiry, adminEmails []string) {
	e.EventID = uuid.NewString()
	e.OccurredAt = timezone.Format(timezone.Now(), time.RFC3339)
	e.InquiryID = inquiry.ID
	e.Name = inquiry.Name
	e.Email = inquiry.Email
	e.Message = inquiry.Message
	e.AdminEmails = adminEmails
}
