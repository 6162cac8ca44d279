package departemen

import "errors"

var (
	// ErrDepartemenNotFound は部署が存在しない場合に返却されます。
	ErrDepartemenNotFound = errors.New("departemen: not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("departemen: invalid id")
)
