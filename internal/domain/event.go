package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrganizedBy string    `json:"organized_by"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	TicketPrice int64     `json:"ticket_price"` // minor currency units
	SoldCount   int       `json:"sold_count"`
	Income      int64     `json:"income"` // cached; cross-checked against ticket snapshots
	Likes       int       `json:"likes"`
	ImagePath   string    `json:"image_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Available is the number of seats still bookable.
func (e *Event) Available() int {
	return e.Capacity - e.SoldCount
}

func (e *Event) SoldOut() bool {
	return e.SoldCount >= e.Capacity
}

type CreateEventInput struct {
	OwnerID     string
	Title       string
	Description string
	OrganizedBy string
	EventDate   time.Time
	Location    string
	Capacity    int
	TicketPrice int64
	ImagePath   string
}

// TicketStats is a per-event figure recomputed from the ticket store,
// independent of the event's cached counters.
type TicketStats struct {
	Sold    int   `json:"sold"`
	Revenue int64 `json:"revenue"`
}

type EventWithStats struct {
	Event Event       `json:"event"`
	Stats TicketStats `json:"stats"`
}

// RevenueDrift reports a disagreement between an event's cached income and
// the sum of its tickets' price snapshots.
type RevenueDrift struct {
	EventID      string `json:"event_id"`
	CachedIncome int64  `json:"cached_income"`
	ActualIncome int64  `json:"actual_income"`
}
