package application

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/booking"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/payment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

// MockEnrollmentRepository はenrollment.Repositoryのモック
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (*enrollment.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enrollment.Enrollment), args.Error(1)
}

// MockTicketRepository はticket.Repositoryのモック
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindTicketTypes(ctx context.Context) ([]*ticket.TicketType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ticket.TicketType), args.Error(1)
}

func (m *MockTicketRepository) FindTicketTypeByID(ctx context.Context, id int64) (*ticket.TicketType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.TicketType), args.Error(1)
}

func (m *MockTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ticket.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, tx transaction.Tx, id int64, status ticket.Status) error {
	args := m.Called(ctx, tx, id, status)
	return args.Error(0)
}

// MockHotelRepository はhotel.Repositoryのモック
type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) FindHotels(ctx context.Context) ([]*hotel.Hotel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hotel.Hotel), args.Error(1)
}

func (m *MockHotelRepository) FindHotelWithRoomsByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Hotel), args.Error(1)
}

func (m *MockHotelRepository) FindRoomByID(ctx context.Context, id int64) (*hotel.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Room), args.Error(1)
}

func (m *MockHotelRepository) FindRoomByIDForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*hotel.Room, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hotel.Room), args.Error(1)
}

// MockBookingRepository はbooking.Repositoryのモック
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindWithRoomByUserID(ctx context.Context, userID int64) (*booking.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) CountByRoomIDForUpdate(ctx context.Context, tx transaction.Tx, roomID int64) (int, error) {
	args := m.Called(ctx, tx, roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	args := m.Called(ctx, tx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateRoom(ctx context.Context, tx transaction.Tx, bookingID, roomID int64) error {
	args := m.Called(ctx, tx, bookingID, roomID)
	return args.Error(0)
}

func (m *MockBookingRepository) CountAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPaymentRepository はpayment.Repositoryのモック
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByTicketID(ctx context.Context, ticketID int64) (*payment.Payment, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx transaction.Tx, p *payment.Payment) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

// MockTx はtransaction.Txのモック
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTx) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockTxManager はtransaction.Managerのモック
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) Begin(ctx context.Context) (transaction.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(transaction.Tx), args.Error(1)
}

// newMockTx はコミット・ロールバックを許容するトランザクションモックを返す
func newMockTx() *MockTx {
	tx := new(MockTx)
	tx.On("Commit").Return(nil).Maybe()
	tx.On("Rollback").Return(nil).Maybe()
	return tx
}
