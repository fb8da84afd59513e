package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/payment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/metrics"
)

type PaymentService struct {
	txManager      transaction.Manager
	paymentRepo    payment.Repository
	ticketRepo     ticket.Repository
	enrollmentRepo enrollment.Repository
}

func NewPaymentService(tm transaction.Manager, pr payment.Repository, tr ticket.Repository, er enrollment.Repository) *PaymentService {
	return &PaymentService{txManager: tm, paymentRepo: pr, ticketRepo: tr, enrollmentRepo: er}
}

// GetPaymentByTicketID は所有権チェックの後にチケットの支払いを返す
func (s *PaymentService) GetPaymentByTicketID(ctx context.Context, userID, ticketID int64) (*payment.Payment, error) {
	if _, err := s.resolveOwnedTicket(ctx, userID, ticketID); err != nil {
		return nil, err
	}
	return s.paymentRepo.FindByTicketID(ctx, ticketID)
}

type ProcessPaymentInput struct {
	UserID   int64
	TicketID int64
	Card     payment.CardData
}

// ProcessPayment は支払いを記録し、チケットをPAIDに遷移させる
// 支払い額はクライアントではなくチケット種別の価格から決定する（価格改ざん防止）
// 2つの書き込みは同一トランザクションで実行される
func (s *PaymentService) ProcessPayment(ctx context.Context, input ProcessPaymentInput) (*payment.Payment, error) {
	p, err := s.processPayment(ctx, input)
	recordPaymentMetric(err)
	return p, err
}

func (s *PaymentService) processPayment(ctx context.Context, input ProcessPaymentInput) (*payment.Payment, error) {
	t, err := s.resolveOwnedTicket(ctx, input.UserID, input.TicketID)
	if err != nil {
		return nil, err
	}
	if t.Status == ticket.StatusPaid {
		return nil, ticket.ErrTicketAlreadyPaid
	}

	p := payment.NewPayment(t.ID, t.TicketType.Price, input.Card)

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.paymentRepo.Create(ctx, tx, p); err != nil {
		return nil, err
	}
	if err := s.ticketRepo.UpdateStatus(ctx, tx, t.ID, ticket.StatusPaid); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("コミットに失敗: %w", err)
	}

	return p, nil
}

// resolveOwnedTicket はユーザーの参加登録を解決し、チケットの所有権を検証する
// 判定順序: 参加登録の存在 → チケットの存在 → 所有権
func (s *PaymentService) resolveOwnedTicket(ctx context.Context, userID, ticketID int64) (*ticket.Ticket, error) {
	enr, err := s.enrollmentRepo.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	t, err := s.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t.EnrollmentID != enr.ID {
		return nil, ticket.ErrTicketNotOwned
	}
	return t, nil
}

// recordPaymentMetric は支払い処理の結果をメトリクスに記録する
func recordPaymentMetric(err error) {
	m := metrics.Get()
	if m == nil {
		return
	}
	var status string
	switch {
	case err == nil:
		status = "success"
	case errors.Is(err, ticket.ErrTicketNotOwned):
		status = "not_owner"
	case apperror.KindOf(err) == apperror.KindNotFound:
		status = "not_found"
	default:
		status = "error"
	}
	m.PaymentsTotal.WithLabelValues(status).Inc()
}
