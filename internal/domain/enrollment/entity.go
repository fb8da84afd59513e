package enrollment

import "time"

// Enrollment は参加登録エンティティを表す
// ユーザーごとに1件。チケット購入・ホテル予約の前提条件
type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CPF       string
	Birthday  time.Time
	Phone     string
	Addresses []Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Address は参加登録に紐づく住所を表す
type Address struct {
	ID            int64
	EnrollmentID  int64
	Street        string
	City          string
	State         string
	Number        string
	Neighborhood  string
	AddressDetail *string
	PostalCode    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewEnrollment は新しい参加登録を作成する
func NewEnrollment(userID int64, name, cpf string, birthday time.Time, phone string) *Enrollment {
	now := time.Now()
	return &Enrollment{
		UserID:    userID,
		Name:      name,
		CPF:       cpf,
		Birthday:  birthday,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
