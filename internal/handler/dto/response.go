package dto

import (
	"time"

	"github.com/evento-ems/evento/internal/domain"
)

type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmailVerified bool   `json:"email_verified"`
	PhoneVerified bool   `json:"phone_verified"`
	CreatedAt     string `json:"created_at"`
}

type EventResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrganizedBy string `json:"organized_by"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	TicketPrice int64  `json:"ticket_price"`
	SoldCount   int    `json:"sold_count"`
	Available   int    `json:"available"`
	Income      int64  `json:"income"`
	Likes       int    `json:"likes"`
	ImagePath   string `json:"image_path,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type TicketResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	OwnerID    string `json:"owner_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unit_price"`
	TotalPrice int64  `json:"total_price"`
	CreatedAt  string `json:"created_at"`
}

type OrderResponse struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type RecentEventResponse struct {
	Event       EventResponse `json:"event"`
	TicketsSold int           `json:"tickets_sold"`
	Revenue     int64         `json:"revenue"`
}

type VerificationStatusResponse struct {
	EmailVerified bool `json:"email_verified"`
	PhoneVerified bool `json:"phone_verified"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          string(u.Role),
		EmailVerified: u.EmailVerified,
		PhoneVerified: u.PhoneVerified,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		OwnerID:     e.OwnerID,
		Title:       e.Title,
		Description: e.Description,
		OrganizedBy: e.OrganizedBy,
		EventDate:   e.EventDate.Format(time.RFC3339),
		Location:    e.Location,
		Capacity:    e.Capacity,
		TicketPrice: e.TicketPrice,
		SoldCount:   e.SoldCount,
		Available:   e.Available(),
		Income:      e.Income,
		Likes:       e.Likes,
		ImagePath:   e.ImagePath,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:         t.ID,
		EventID:    t.EventID,
		OwnerID:    t.OwnerID,
		Quantity:   t.Quantity,
		UnitPrice:  t.UnitPrice,
		TotalPrice: t.Total(),
		CreatedAt:  t.CreatedAt.Format(time.RFC3339),
	}
}

func ToOrderResponse(o *domain.PaymentOrder) OrderResponse {
	return OrderResponse{
		OrderID:  o.ID,
		Amount:   o.Amount,
		Currency: o.Currency,
	}
}

func ToRecentEventResponse(e domain.EventWithStats) RecentEventResponse {
	return RecentEventResponse{
		Event:       ToEventResponse(&e.Event),
		TicketsSold: e.Stats.Sold,
		Revenue:     e.Stats.Revenue,
	}
}
