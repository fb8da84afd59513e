package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/payment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

type paymentRow struct {
	ID             int64     `db:"id"`
	TicketID       int64     `db:"ticket_id"`
	Value          int       `db:"value"`
	CardIssuer     string    `db:"card_issuer"`
	CardLastDigits string    `db:"card_last_digits"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r *paymentRow) toEntity() *payment.Payment {
	return &payment.Payment{
		ID: r.ID, TicketID: r.TicketID, Value: r.Value,
		CardIssuer: r.CardIssuer, CardLastDigits: r.CardLastDigits,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

// PaymentRepository は支払いリポジトリのPostgreSQL実装
type PaymentRepository struct{ db *sqlx.DB }

func NewPaymentRepository(db *sqlx.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) FindByTicketID(ctx context.Context, ticketID int64) (*payment.Payment, error) {
	var row paymentRow
	// チケットと支払いはサービス層では1対1として扱う（データ層の制約はなし）
	query := `SELECT id, ticket_id, value, card_issuer, card_last_digits, created_at, updated_at FROM payments WHERE ticket_id = $1 ORDER BY id LIMIT 1`
	if err := r.db.GetContext(ctx, &row, query, ticketID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("支払い取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *PaymentRepository) Create(ctx context.Context, tx transaction.Tx, p *payment.Payment) error {
	sqlxTx := UnwrapTx(tx)
	query := `INSERT INTO payments (ticket_id, value, card_issuer, card_last_digits, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := sqlxTx.QueryRowContext(ctx, query, p.TicketID, p.Value, p.CardIssuer, p.CardLastDigits, p.CreatedAt, p.UpdatedAt).Scan(&p.ID); err != nil {
		return fmt.Errorf("支払い作成に失敗: %w", err)
	}
	return nil
}

var _ payment.Repository = (*PaymentRepository)(nil)
