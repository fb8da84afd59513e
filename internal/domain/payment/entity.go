package payment

import "time"

// Payment は支払いエンティティを表す
// カード情報は発行会社と下4桁のみを保持し、カード番号全体は決して永続化しない
type Payment struct {
	ID             int64
	TicketID       int64
	Value          int
	CardIssuer     string
	CardLastDigits string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CardData は決済リクエストで受け取るカード情報
// 永続化されるのは Issuer と番号の下4桁だけ
type CardData struct {
	Issuer         string
	Number         string
	Name           string
	ExpirationDate string
	CVV            string
}

// LastDigits はカード番号の下4桁を返す
func (c *CardData) LastDigits() string {
	if len(c.Number) <= 4 {
		return c.Number
	}
	return c.Number[len(c.Number)-4:]
}

// NewPayment はチケットと種別価格から新しい支払いを作成する
// value はチケット種別の価格からサーバー側で決定する
func NewPayment(ticketID int64, value int, card CardData) *Payment {
	now := time.Now()
	return &Payment{
		TicketID:       ticketID,
		Value:          value,
		CardIssuer:     card.Issuer,
		CardLastDigits: card.LastDigits(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
