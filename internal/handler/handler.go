package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/evento-ems/evento/internal/domain"
	"github.com/evento-ems/evento/internal/handler/dto"
	"github.com/evento-ems/evento/internal/middleware"
	"github.com/evento-ems/evento/internal/service"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const recentEventsLimit = 5

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ToggleLike(ctx context.Context, eventID, userID string, like bool) (*domain.Event, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input service.BookInput) (*domain.Ticket, error)
	Cancel(ctx context.Context, ticketID string) error
	Get(ctx context.Context, ticketID string) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Ticket, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type AdminSvc interface {
	Stats(ctx context.Context) (*service.DashboardStats, error)
	RecentEvents(ctx context.Context, limit int) ([]domain.EventWithStats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

type PaymentSvc interface {
	CreateOrder(ctx context.Context, amount int64) (*domain.PaymentOrder, error)
}

type VerificationSvc interface {
	RequestEmail(ctx context.Context, userID string) error
	ConfirmEmail(ctx context.Context, token string) error
	RequestPhone(ctx context.Context, userID string) error
	ConfirmPhone(ctx context.Context, userID, code string) error
	Status(ctx context.Context, userID string) (*domain.VerificationStatus, error)
}

type Handler struct {
	eventService        EventSvc
	bookingService      BookingSvc
	userService         UserSvc
	adminService        AdminSvc
	paymentService      PaymentSvc
	verificationService VerificationSvc
	tokenTTL            time.Duration
}

func NewHandler(
	eventService EventSvc,
	bookingService BookingSvc,
	userService UserSvc,
	adminService AdminSvc,
	paymentService PaymentSvc,
	verificationService VerificationSvc,
	tokenTTL time.Duration,
) *Handler {
	return &Handler{
		eventService:        eventService,
		bookingService:      bookingService,
		userService:         userService,
		adminService:        adminService,
		paymentService:      paymentService,
		verificationService: verificationService,
		tokenTTL:            tokenTTL,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetCookie(middleware.TokenCookie, token, int(h.tokenTTL.Seconds()), "/", "", true, true)
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) Logout(c *ginext.Context) {
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) Profile(c *ginext.Context) {
	userID := c.GetString(middleware.CtxUserID)

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		OwnerID:     c.GetString(middleware.CtxUserID),
		Title:       req.Title,
		Description: req.Description,
		OrganizedBy: req.OrganizedBy,
		EventDate:   eventDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
		TicketPrice: *req.TicketPrice,
		ImagePath:   req.ImagePath,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ToggleLike(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	userID := c.GetString(middleware.CtxUserID)
	event, err := h.eventService.ToggleLike(c.Request.Context(), eventID, userID, req.Action == "like")
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Tickets

func (h *Handler) BookEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticket, err := h.bookingService.Book(c.Request.Context(), service.BookInput{
		EventID:        eventID,
		OwnerID:        c.GetString(middleware.CtxUserID),
		Quantity:       req.Quantity,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(ticket))
}

func (h *Handler) CancelTicket(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket id"})
		return
	}

	ticket, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Only the owner or an admin may cancel.
	if ticket.OwnerID != c.GetString(middleware.CtxUserID) &&
		c.GetString(middleware.CtxUserRole) != string(domain.RoleAdmin) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "not your ticket"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListUserTickets(c *ginext.Context) {
	ownerID := c.Param("id")
	if _, err := uuid.Parse(ownerID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	tickets, err := h.bookingService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Payments

func (h *Handler) CreateOrder(c *ginext.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// Verification

func (h *Handler) RequestEmailVerification(c *ginext.Context) {
	var req dto.RequestVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.verificationService.RequestEmail(c.Request.Context(), req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "verification email sent"})
}

func (h *Handler) ConfirmEmailVerification(c *ginext.Context) {
	var req dto.ConfirmEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.verificationService.ConfirmEmail(c.Request.Context(), req.Token); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "email verified"})
}

func (h *Handler) RequestPhoneVerification(c *ginext.Context) {
	var req dto.RequestVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.verificationService.RequestPhone(c.Request.Context(), req.UserID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "verification code sent"})
}

func (h *Handler) ConfirmPhoneVerification(c *ginext.Context) {
	var req dto.ConfirmPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.verificationService.ConfirmPhone(c.Request.Context(), req.UserID, req.Code); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "phone verified"})
}

func (h *Handler) VerificationStatus(c *ginext.Context) {
	userID := c.Param("id")
	if _, err := uuid.Parse(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid user id"})
		return
	}

	status, err := h.verificationService.Status(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerificationStatusResponse{
		EmailVerified: status.EmailVerified,
		PhoneVerified: status.PhoneVerified,
	})
}

// Admin

func (h *Handler) AdminStats(c *ginext.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) AdminUsers(c *ginext.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AdminRecentEvents(c *ginext.Context) {
	events, err := h.adminService.RecentEvents(c.Request.Context(), recentEventsLimit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RecentEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToRecentEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// handleError keeps business errors distinct: a sold-out event, a missing
// event, and bad input all map to different responses.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTicketNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrStorageConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrVerificationMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPaymentUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
