package ticket

import "time"

// Status はチケットの状態を表す
type Status string

const (
	StatusReserved Status = "RESERVED"
	StatusPaid     Status = "PAID"
)

// TicketType はチケット種別のカタログエントリを表す
// 不変の参照データ
type TicketType struct {
	ID            int64
	Name          string
	Price         int
	IsRemote      bool
	IncludesHotel bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ticket はチケットエンティティを表す
// 参加登録とチケット種別にそれぞれ1つずつ属する
type Ticket struct {
	ID           int64
	EnrollmentID int64
	TicketTypeID int64
	Status       Status
	TicketType   *TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTicket は新しいチケットをRESERVED状態で作成する
func NewTicket(enrollmentID, ticketTypeID int64) *Ticket {
	now := time.Now()
	return &Ticket{
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
		Status:       StatusReserved,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsPaid はチケットが支払い済みかを返す
func (t *Ticket) IsPaid() bool {
	return t.Status == StatusPaid
}

// Pay はチケットを支払い済み状態にする
// RESERVED → PAID の一方向の遷移のみを許可する
func (t *Ticket) Pay() error {
	if t.Status != StatusReserved {
		return ErrTicketAlreadyPaid
	}
	t.Status = StatusPaid
	t.UpdatedAt = time.Now()
	return nil
}

// GrantsHotelAccess はチケットがホテル予約の資格を満たすかを返す
// 支払い済み、かつ対面参加、かつホテル込みの種別であること
func (t *Ticket) GrantsHotelAccess() bool {
	if t.TicketType == nil {
		return false
	}
	return t.IsPaid() && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
