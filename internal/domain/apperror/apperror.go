package apperror

import "errors"

// Kind はドメインエラーの分類を表す閉じた集合
// 境界層（HTTPハンドラー）はこの集合を網羅的にマッピングする
type Kind int

const (
	// KindNotFound は参照されたエンティティが存在しない
	KindNotFound Kind = iota + 1
	// KindForbidden はエンティティは存在するがドメインルールに違反している
	KindForbidden
	// KindUnauthorized はエンティティが別のユーザーに属している
	KindUnauthorized
	// KindBadRequest はリクエストの形式が不正
	KindBadRequest
)

// Error は分類付きのドメインエラー
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound はNotFound分類のエラーを作成する
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Forbidden はForbidden分類のエラーを作成する
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// Unauthorized はUnauthorized分類のエラーを作成する
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// BadRequest はBadRequest分類のエラーを作成する
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// KindOf はエラーチェーンから分類を取り出す
// 分類を持たないエラーの場合は 0 を返す
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return 0
}
