package application

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
)

type TicketService struct {
	ticketRepo     ticket.Repository
	enrollmentRepo enrollment.Repository
}

func NewTicketService(tr ticket.Repository, er enrollment.Repository) *TicketService {
	return &TicketService{ticketRepo: tr, enrollmentRepo: er}
}

// GetTicketTypes はチケット種別の全カタログを返す
func (s *TicketService) GetTicketTypes(ctx context.Context) ([]*ticket.TicketType, error) {
	return s.ticketRepo.FindTicketTypes(ctx)
}

// GetUserTicket はユーザーのチケットを種別込みで返す
func (s *TicketService) GetUserTicket(ctx context.Context, userID int64) (*ticket.Ticket, error) {
	enr, err := s.enrollmentRepo.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ticketRepo.FindByEnrollmentID(ctx, enr.ID)
}

type CreateTicketInput struct {
	UserID       int64
	TicketTypeID int64
}

// CreateTicket はユーザーの参加登録に対して新しいチケットをRESERVED状態で発行する
// 参加登録が既にチケットを持っていても拒否しない（現行仕様。意図は未確認）
func (s *TicketService) CreateTicket(ctx context.Context, input CreateTicketInput) (*ticket.Ticket, error) {
	enr, err := s.enrollmentRepo.FindWithAddressByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	tt, err := s.ticketRepo.FindTicketTypeByID(ctx, input.TicketTypeID)
	if err != nil {
		return nil, err
	}

	t := ticket.NewTicket(enr.ID, input.TicketTypeID)
	if err := s.ticketRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	t.TicketType = tt
	return t, nil
}
