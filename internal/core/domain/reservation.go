package domain

import (
	"errors"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusOpened    ReservationStatus = "OPENED"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

func (s ReservationStatus) IsValid() bool {
	return s == ReservationStatusOpened || s == ReservationStatusConfirmed || s == ReservationStatusCancelled
}

var (
	ErrReservationNotOpened    = errors.New("reservation is not opened")
	ErrInvalidQuantity         = errors.New("quantity must be greater than zero")
	ErrInvalidStatusTransition = errors.New("invalid reservation status transition")
)

type ReservationItem struct {
	Product  ProductSnapshot `json:"product"`
	Quantity int             `json:"quantity"`
}

// Reservation lists the products a client intends to buy. Items and status are only
// changed through its methods; items can only be added while the reservation is opened.
type Reservation struct {
	ID        ID
	Client    ClientData
	CreatedAt time.Time

	status ReservationStatus
	items  []ReservationItem
	events []Event
}

func NewReservation(client ClientData, createdAt time.Time) *Reservation {
	return &Reservation{
		Client:    client,
		CreatedAt: createdAt,
		status:    ReservationStatusOpened,
	}
}

// RestoreReservation rebuilds a reservation from persisted state without recording events.
func RestoreReservation(id ID, status ReservationStatus, client ClientData, createdAt time.Time, items []ReservationItem) *Reservation {
	copied := make([]ReservationItem, len(items))
	copy(copied, items)
	return &Reservation{
		ID:        id,
		Client:    client,
		CreatedAt: createdAt,
		status:    status,
		items:     copied,
	}
}

func (r *Reservation) Status() ReservationStatus {
	return r.status
}

func (r *Reservation) Items() []ReservationItem {
	items := make([]ReservationItem, len(r.items))
	copy(items, r.items)
	return items
}

func (r *Reservation) IsOpened() bool {
	return r.status == ReservationStatusOpened
}

func (r *Reservation) Add(product ProductSnapshot, quantity int) error {
	if !r.IsOpened() {
		return ErrReservationNotOpened
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	r.items = append(r.items, ReservationItem{Product: product, Quantity: quantity})
	r.record(NewProductAddedToReservationEvent(r, product, quantity))
	return nil
}

func (r *Reservation) Confirm() error {
	return r.transition(ReservationStatusConfirmed)
}

func (r *Reservation) Cancel() error {
	return r.transition(ReservationStatusCancelled)
}

func (r *Reservation) transition(to ReservationStatus) error {
	if !r.IsOpened() {
		return ErrInvalidStatusTransition
	}
	from := r.status
	r.status = to
	r.record(NewReservationStatusChangedEvent(r.ID, to, from, time.Now(), r.Client.ID))
	return nil
}

func (r *Reservation) record(event Event) {
	r.events = append(r.events, event)
}

// PullEvents returns the events recorded since the last call and clears them.
func (r *Reservation) PullEvents() []Event {
	events := r.events
	r.events = nil
	return events
}

type ProductAddedToReservationEvent struct {
	ReservationID ID        `json:"reservation_id"`
	ClientID      ID        `json:"client_id"`
	ProductID     ID        `json:"product_id"`
	ProductName   string    `json:"product_name"`
	UnitPrice     Money     `json:"unit_price"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

func (e *ProductAddedToReservationEvent) GetName() string {
	return "reservation.product_added"
}

func (e *ProductAddedToReservationEvent) GetEntityName() string {
	return "reservation"
}

func NewProductAddedToReservationEvent(reservation *Reservation, product ProductSnapshot, quantity int) *ProductAddedToReservationEvent {
	return &ProductAddedToReservationEvent{
		ReservationID: reservation.ID,
		ClientID:      reservation.Client.ID,
		ProductID:     product.ID,
		ProductName:   product.Name,
		UnitPrice:     product.Price,
		Quantity:      quantity,
		AddedAt:       time.Now(),
	}
}

type ReservationStatusChangedEvent struct {
	ReservationID ID                `json:"reservation_id"`
	Status        ReservationStatus `json:"status"`
	OldStatus     ReservationStatus `json:"old_status"`
	UpdatedAt     time.Time         `json:"updated_at"`
	ClientID      ID                `json:"client_id"`
}

func (e *ReservationStatusChangedEvent) GetName() string {
	return "reservation.status_changed"
}

func (e *ReservationStatusChangedEvent) GetEntityName() string {
	return "reservation"
}

func NewReservationStatusChangedEvent(reservationID ID, status ReservationStatus, oldStatus ReservationStatus, updatedAt time.Time, clientID ID) *ReservationStatusChangedEvent {
	return &ReservationStatusChangedEvent{
		ReservationID: reservationID,
		Status:        status,
		OldStatus:     oldStatus,
		UpdatedAt:     updatedAt,
		ClientID:      clientID,
	}
}
