package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	OrganizedBy string `json:"organized_by" binding:"required"`
	EventDate   string `json:"event_date" binding:"required"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
	TicketPrice *int64 `json:"ticket_price" binding:"required,gte=0"`
	ImagePath   string `json:"image_path"`
}

// BookRequest deliberately carries no binding on quantity: the booking
// service reports an invalid quantity as its own distinct error.
type BookRequest struct {
	Quantity int `json:"quantity"`
}

type LikeRequest struct {
	Action string `json:"action" binding:"required,oneof=like unlike"`
}

type CreateOrderRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

type RequestVerificationRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type ConfirmEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type ConfirmPhoneRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Code   string `json:"code" binding:"required"`
}
