package handler

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/application"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/booking"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/payment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
)

// HotelServiceInterface はホテルサービスのインターフェース
type HotelServiceInterface interface {
	GetHotels(ctx context.Context, userID int64) ([]*hotel.Hotel, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*hotel.Hotel, error)
}

// BookingServiceInterface は予約サービスのインターフェース
type BookingServiceInterface interface {
	GetBooking(ctx context.Context, userID int64) (*booking.Booking, error)
	CreateBooking(ctx context.Context, input application.CreateBookingInput) (*booking.Booking, error)
	UpdateBooking(ctx context.Context, input application.UpdateBookingInput) (int64, error)
}

// TicketServiceInterface はチケットサービスのインターフェース
type TicketServiceInterface interface {
	GetTicketTypes(ctx context.Context) ([]*ticket.TicketType, error)
	GetUserTicket(ctx context.Context, userID int64) (*ticket.Ticket, error)
	CreateTicket(ctx context.Context, input application.CreateTicketInput) (*ticket.Ticket, error)
}

// PaymentServiceInterface は支払いサービスのインターフェース
type PaymentServiceInterface interface {
	GetPaymentByTicketID(ctx context.Context, userID, ticketID int64) (*payment.Payment, error)
	ProcessPayment(ctx context.Context, input application.ProcessPaymentInput) (*payment.Payment, error)
}
