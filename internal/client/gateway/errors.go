package gateway

import "errors"

// ゲートウェイが返す分類済みエラーです。呼び出し側は errors.Is で判別します。
var (
	ErrFetchFailed      = errors.New("gateway: fetch failed")
	ErrValidationFailed = errors.New("gateway: validation failed")
	ErrDuplicateField   = errors.New("gateway: duplicate field")
	ErrNotFound         = errors.New("gateway: not found")
)

// Error はサーバーメッセージを保持したままエラー種別を付与します。
type Error struct {
	kind    error
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.kind.Error()
}

func (e *Error) Unwrap() error {
	return e.kind
}

func newError(kind error, message string) *Error {
	return &Error{kind: kind, Message: message}
}
