package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

type ticketTypeRow struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Price         int       `db:"price"`
	IsRemote      bool      `db:"is_remote"`
	IncludesHotel bool      `db:"includes_hotel"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r *ticketTypeRow) toEntity() *ticket.TicketType {
	return &ticket.TicketType{
		ID: r.ID, Name: r.Name, Price: r.Price,
		IsRemote: r.IsRemote, IncludesHotel: r.IncludesHotel,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

// ticketWithTypeRow はチケットと種別のJOIN結果を表す
type ticketWithTypeRow struct {
	ID           int64     `db:"id"`
	EnrollmentID int64     `db:"enrollment_id"`
	TicketTypeID int64     `db:"ticket_type_id"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`

	TypeName          string    `db:"type_name"`
	TypePrice         int       `db:"type_price"`
	TypeIsRemote      bool      `db:"type_is_remote"`
	TypeIncludesHotel bool      `db:"type_includes_hotel"`
	TypeCreatedAt     time.Time `db:"type_created_at"`
	TypeUpdatedAt     time.Time `db:"type_updated_at"`
}

func (r *ticketWithTypeRow) toEntity() *ticket.Ticket {
	return &ticket.Ticket{
		ID: r.ID, EnrollmentID: r.EnrollmentID, TicketTypeID: r.TicketTypeID,
		Status: ticket.Status(r.Status),
		TicketType: &ticket.TicketType{
			ID: r.TicketTypeID, Name: r.TypeName, Price: r.TypePrice,
			IsRemote: r.TypeIsRemote, IncludesHotel: r.TypeIncludesHotel,
			CreatedAt: r.TypeCreatedAt, UpdatedAt: r.TypeUpdatedAt,
		},
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

const ticketWithTypeQuery = `SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
	tt.name AS type_name, tt.price AS type_price, tt.is_remote AS type_is_remote,
	tt.includes_hotel AS type_includes_hotel, tt.created_at AS type_created_at, tt.updated_at AS type_updated_at
	FROM tickets t JOIN ticket_types tt ON tt.id = t.ticket_type_id`

// TicketRepository はチケットリポジトリのPostgreSQL実装
type TicketRepository struct{ db *sqlx.DB }

func NewTicketRepository(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) FindTicketTypes(ctx context.Context) ([]*ticket.TicketType, error) {
	var rows []ticketTypeRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at FROM ticket_types ORDER BY id`); err != nil {
		return nil, fmt.Errorf("チケット種別一覧取得に失敗: %w", err)
	}
	types := make([]*ticket.TicketType, len(rows))
	for i, row := range rows {
		types[i] = row.toEntity()
	}
	return types, nil
}

func (r *TicketRepository) FindTicketTypeByID(ctx context.Context, id int64) (*ticket.TicketType, error) {
	var row ticketTypeRow
	if err := r.db.GetContext(ctx, &row, `SELECT id, name, price, is_remote, includes_hotel, created_at, updated_at FROM ticket_types WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("チケット種別取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*ticket.Ticket, error) {
	var row ticketWithTypeRow
	// 参加登録が複数チケットを持つ場合は最初の1件（現行仕様）
	query := ticketWithTypeQuery + ` WHERE t.enrollment_id = $1 ORDER BY t.id LIMIT 1`
	if err := r.db.GetContext(ctx, &row, query, enrollmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	var row ticketWithTypeRow
	query := ticketWithTypeQuery + ` WHERE t.id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("チケット取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	query := `INSERT INTO tickets (enrollment_id, ticket_type_id, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, t.EnrollmentID, t.TicketTypeID, string(t.Status), t.CreatedAt, t.UpdatedAt).Scan(&t.ID); err != nil {
		return fmt.Errorf("チケット作成に失敗: %w", err)
	}
	return nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, tx transaction.Tx, id int64, status ticket.Status) error {
	sqlxTx := UnwrapTx(tx)
	result, err := sqlxTx.ExecContext(ctx, `UPDATE tickets SET status = $1, updated_at = NOW() WHERE id = $2`, string(status), id)
	if err != nil {
		return fmt.Errorf("チケット状態更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

var _ ticket.Repository = (*TicketRepository)(nil)
