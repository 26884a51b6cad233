package model

import (
	"rental/shared/constant"
	"rental/shared/daterange"
	"rental/shared/model"
	"slices"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID          = "id"
	FieldApartmentID = "apartment_id"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldStatus      = "status"
	FieldGuestEmail  = "guest_email"
	FieldTotalPrice  = "total_price"
)

// ActiveStatuses occupy their dates.
var ActiveStatuses = []string{constant.ReservationStatusPending, constant.ReservationStatusConfirmed}

var transitions = map[string][]string{
	constant.ReservationStatusPending:   {constant.ReservationStatusConfirmed, constant.ReservationStatusCancelled},
	constant.ReservationStatusConfirmed: {constant.ReservationStatusCancelled},
}

type Reservation struct {
	ID          string    `db:"id"`
	ApartmentID string    `db:"apartment_id"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	Status      string    `db:"status"`
	GuestName   string    `db:"guest_name"`
	GuestEmail  string    `db:"guest_email"`
	GuestPhone  string    `db:"guest_phone"`
	Guests      int       `db:"guests"`
	Message     string    `db:"message"`
	TotalPrice  int       `db:"total_price"`
	model.Metadata
}

func (r Reservation) Range() daterange.Range {
	return daterange.New(r.CheckIn, r.CheckOut)
}

func (r Reservation) IsActive() bool {
	return IsActiveStatus(r.Status)
}

// Normalize drops whatever location the driver attached to the stored dates.
func (r *Reservation) Normalize() {
	stay := r.Range()
	r.CheckIn = stay.CheckIn
	r.CheckOut = stay.CheckOut
}

func IsActiveStatus(status string) bool {
	return slices.Contains(ActiveStatuses, status)
}

func IsValidStatus(status string) bool {
	return IsActiveStatus(status) || status == constant.ReservationStatusCancelled
}

// CanTransition reports whether an admin may move a reservation from one status to another.
// Nothing leaves cancelled.
func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}
