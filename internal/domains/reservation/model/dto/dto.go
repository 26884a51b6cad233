package dto

import (
	"rental/internal/domains/reservation/model"
	"rental/shared"
	"rental/shared/constant"
	"rental/shared/daterange"
	gDto "rental/shared/dto"
	gModel "rental/shared/model"
	"rental/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ApartmentID string `json:"apartment_id" validate:"required,uuid"`
	CheckIn     string `json:"check_in"     validate:"required,date"`
	CheckOut    string `json:"check_out"    validate:"required,date"`
	GuestName   string `json:"guest_name"   validate:"required,max=100"`
	GuestEmail  string `json:"guest_email"  validate:"required,email,max=255"`
	GuestPhone  string `json:"guest_phone"  validate:"omitempty,max=30"`
	Guests      int    `json:"guests"       validate:"required,gte=1,lte=20"`
	Message     string `json:"message"      validate:"omitempty,max=2000"`
}

// ToModel builds a pending reservation for stay priced at pricePerNight.
func (c *CreateReservationRequest) ToModel(stay daterange.Range, pricePerNight int) model.Reservation {
	now := timezone.Now()
	email := strings.ToLower(strings.TrimSpace(c.GuestEmail))

	return model.Reservation{
		ID:          uuid.NewString(),
		ApartmentID: c.ApartmentID,
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
		Status:      constant.ReservationStatusPending,
		GuestName:   strings.TrimSpace(c.GuestName),
		GuestEmail:  email,
		GuestPhone:  strings.TrimSpace(c.GuestPhone),
		Guests:      c.Guests,
		Message:     strings.TrimSpace(c.Message),
		TotalPrice:  stay.Nights() * pricePerNight,
		Metadata:    gModel.NewMetadata(email, now),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type UpdateDatesRequest struct {
	CheckIn  string `json:"check_in"    validate:"required,date"`
	CheckOut string `json:"check_out"   validate:"required,date"`
	// TotalPrice of zero recomputes the price from the apartment's nightly rate.
	TotalPrice int `json:"total_price" validate:"omitempty,gte=0"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	ApartmentID string `json:"apartment_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Nights      int    `json:"nights"`
	Status      string `json:"status"`
	GuestName   string `json:"guest_name"`
	GuestEmail  string `json:"guest_email"`
	GuestPhone  string `json:"guest_phone,omitempty"`
	Guests      int    `json:"guests"`
	Message     string `json:"message,omitempty"`
	TotalPrice  int    `json:"total_price"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	stay := model.Range()

	r.ID = model.ID
	r.ApartmentID = model.ApartmentID
	r.CheckIn = stay.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = stay.CheckOut.Format(constant.DateOnlyFormat)
	r.Nights = stay.Nights()
	r.Status = model.Status
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Guests = model.Guests
	r.Message = model.Message
	r.TotalPrice = model.TotalPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// AvailabilityResponse is the advisory calendar for a date picker: every date before
// DisabledBefore and every date in DisabledDates is unavailable as a check-in night.
type AvailabilityResponse struct {
	ApartmentID    string   `json:"apartment_id"`
	DisabledBefore string   `json:"disabled_before"`
	DisabledDates  []string `json:"disabled_dates"`
}

func (a *AvailabilityResponse) FromDates(apartmentID string, today time.Time, dates []time.Time) {
	a.ApartmentID = apartmentID
	a.DisabledBefore = today.Format(constant.DateOnlyFormat)
	a.DisabledDates = make([]string, len(dates))

	for i, date := range dates {
		a.DisabledDates[i] = date.Format(constant.DateOnlyFormat)
	}
}

type CheckAvailabilityRequest struct {
	CheckIn  string `json:"check_in"  validate:"required,date"`
	CheckOut string `json:"check_out" validate:"required,date"`
}

type CheckAvailabilityResponse struct {
	ApartmentID string `json:"apartment_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Nights      int    `json:"nights"`
	Available   bool   `json:"available"`
	TotalPrice  int    `json:"total_price"`
}
