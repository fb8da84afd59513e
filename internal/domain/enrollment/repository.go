package enrollment

import "context"

// Repository は参加登録リポジトリのインターフェース
// 参加登録の作成・編集は外部コラボレーターの責務のため、参照系のみを公開する
type Repository interface {
	// FindWithAddressByUserID はユーザーIDから参加登録を住所込みで取得する
	FindWithAddressByUserID(ctx context.Context, userID int64) (*Enrollment, error)
}
