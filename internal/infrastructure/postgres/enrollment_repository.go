package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
)

type enrollmentRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	CPF       string    `db:"cpf"`
	Birthday  time.Time `db:"birthday"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type addressRow struct {
	ID            int64     `db:"id"`
	EnrollmentID  int64     `db:"enrollment_id"`
	Street        string    `db:"street"`
	City          string    `db:"city"`
	State         string    `db:"state"`
	Number        string    `db:"number"`
	Neighborhood  string    `db:"neighborhood"`
	AddressDetail *string   `db:"address_detail"`
	PostalCode    string    `db:"postal_code"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r *addressRow) toEntity() enrollment.Address {
	return enrollment.Address{
		ID: r.ID, EnrollmentID: r.EnrollmentID,
		Street: r.Street, City: r.City, State: r.State,
		Number: r.Number, Neighborhood: r.Neighborhood,
		AddressDetail: r.AddressDetail, PostalCode: r.PostalCode,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

// EnrollmentRepository は参加登録リポジトリのPostgreSQL実装
type EnrollmentRepository struct{ db *sqlx.DB }

func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (*enrollment.Enrollment, error) {
	var row enrollmentRow
	query := `SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at FROM enrollments WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, enrollment.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("参加登録取得に失敗: %w", err)
	}

	var addrRows []addressRow
	if err := r.db.SelectContext(ctx, &addrRows, `SELECT id, enrollment_id, street, city, state, number, neighborhood, address_detail, postal_code, created_at, updated_at FROM addresses WHERE enrollment_id = $1`, row.ID); err != nil {
		return nil, fmt.Errorf("住所取得に失敗: %w", err)
	}

	addresses := make([]enrollment.Address, len(addrRows))
	for i, a := range addrRows {
		addresses[i] = a.toEntity()
	}

	return &enrollment.Enrollment{
		ID: row.ID, UserID: row.UserID,
		Name: row.Name, CPF: row.CPF, Birthday: row.Birthday, Phone: row.Phone,
		Addresses: addresses,
		CreatedAt: row.CreatedAt, UpdatedAt: row.UpdatedAt,
	}, nil
}

var _ enrollment.Repository = (*EnrollmentRepository)(nil)
