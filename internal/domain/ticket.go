package domain

import "time"

// Ticket is a purchased claim on a quantity of an event's capacity.
// UnitPrice is the price snapshot captured at purchase time and never
// mutated afterwards; cancellation reverses the event's counters by the
// ticket's own snapshot, not the event's current price.
type Ticket struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	OwnerID        string    `json:"owner_id"`
	Quantity       int       `json:"quantity"`
	UnitPrice      int64     `json:"unit_price"` // minor currency units
	IdempotencyKey string    `json:"-"`          // empty means none
	CreatedAt      time.Time `json:"created_at"`
}

// Total is the full price of the ticket: snapshot unit price times quantity.
func (t *Ticket) Total() int64 {
	return t.UnitPrice * int64(t.Quantity)
}

type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor currency units
	Currency string `json:"currency"`
}
