package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
)

func newTicketService() (*TicketService, *MockTicketRepository, *MockEnrollmentRepository) {
	ticketRepo := new(MockTicketRepository)
	enrollmentRepo := new(MockEnrollmentRepository)
	return NewTicketService(ticketRepo, enrollmentRepo), ticketRepo, enrollmentRepo
}

func TestTicketService_GetTicketTypes(t *testing.T) {
	ctx := context.Background()

	t.Run("正常に種別一覧を取得できる", func(t *testing.T) {
		s, ticketRepo, _ := newTicketService()
		types := []*ticket.TicketType{
			{ID: 1, Name: "Presencial + Com Hotel", Price: 60000, IncludesHotel: true},
			{ID: 2, Name: "Online", Price: 10000, IsRemote: true},
		}
		ticketRepo.On("FindTicketTypes", mock.Anything).Return(types, nil)

		got, err := s.GetTicketTypes(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("空のカタログはエラーではない", func(t *testing.T) {
		s, ticketRepo, _ := newTicketService()
		ticketRepo.On("FindTicketTypes", mock.Anything).Return([]*ticket.TicketType{}, nil)

		got, err := s.GetTicketTypes(ctx)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestTicketService_GetUserTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("正常にチケットを取得できる", func(t *testing.T) {
		s, ticketRepo, enrollmentRepo := newTicketService()
		enrollmentRepo.On("FindWithAddressByUserID", mock.Anything, int64(10)).Return(eligibleEnrollment(), nil)
		ticketRepo.On("FindByEnrollmentID", mock.Anything, int64(3)).Return(eligibleTicket(), nil)

		got, err := s.GetUserTicket(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		require.NotNil(t, got.TicketType)
		assert.Equal(t, 60000, got.TicketType.Price)
	})

	t.Run("参加登録がない場合はNotFound", func(t *testing.T) {
		s, ticketRepo, enrollmentRepo := newTicketService()
		enrollmentRepo.On("FindWithAddressByUserID", mock.Anything, int64(10)).
			Return(nil, enrollment.ErrEnrollmentNotFound)

		_, err := s.GetUserTicket(ctx, 10)

		assert.ErrorIs(t, err, enrollment.ErrEnrollmentNotFound)
		ticketRepo.AssertNotCalled(t, "FindByEnrollmentID", mock.Anything, mock.Anything)
	})

	t.Run("チケットがない場合はNotFound", func(t *testing.T) {
		s, ticketRepo, enrollmentRepo := newTicketService()
		enrollmentRepo.On("FindWithAddressByUserID", mock.Anything, int64(10)).Return(eligibleEnrollment(), nil)
		ticketRepo.On("FindByEnrollmentID", mock.Anything, int64(3)).Return(nil, ticket.ErrTicketNotFound)

		_, err := s.GetUserTicket(ctx, 10)

		assert.ErrorIs(t, err, ticket.ErrTicketNotFound)
	})
}

func TestTicketService_CreateTicket(t *testing.T) {
	ctx := context.Background()
	input := CreateTicketInput{UserID: 10, TicketTypeID: 1}

	t.Run("正常にチケットを発行できる", func(t *testing.T) {
		s, ticketRepo, enrollmentRepo := newTicketService()
		tt := &ticket.TicketType{ID: 1, Name: "Presencial + Com Hotel", Price: 60000, IncludesHotel: true}
		enrollmentRepo.On("FindWithAddressByUserID", mock.Anything, int64(10)).Return(eligibleEnrollment(), nil)
		ticketRepo.On("FindTicketTypeByID", mock.Anything, int64(1)).Return(tt, nil)
		ticketRepo.On("Create", mock.Anything, mock.AnythingOfType("*ticket.Ticket")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*ticket.Ticket).ID = 7
			}).Return(nil)

		got, err := s.CreateTicket(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, int64(3), got.EnrollmentID)
		assert.Equal(t, ticket.StatusReserved, got.Status)
		require.NotNil(t, got.TicketType)
		assert.Equal(t, 60000, got.TicketType.Price)
	})

	t.Run("参加登録がない場合はNotFound", func(t *testing.T) {
		s, ticketRepo, enrollmentRepo := newTicketService()
		enrollmentRepo.On("FindWithAddressByUserID", mock.Anything, int64(10)).
			Return(nil, enrollment.ErrEnrollmentNotFound)

		_, err := s.CreateTicket(ctx, input)

		assert.ErrorIs(t, err, enrollment.ErrEnrollmentNotFound)
		ticketRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("種別が存在しない場合はNotFound", func(t *testing.T) {
		s, ticketRepo, enrollmentRepo := newTicketService()
		enrollmentRepo.On("FindWithAddressByUserID", mock.Anything, int64(10)).Return(eligibleEnrollment(), nil)
		ticketRepo.On("FindTicketTypeByID", mock.Anything, int64(1)).Return(nil, ticket.ErrTicketTypeNotFound)

		_, err := s.CreateTicket(ctx, input)

		assert.ErrorIs(t, err, ticket.ErrTicketTypeNotFound)
		ticketRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
