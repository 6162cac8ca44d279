package departemen

import "context"

// Repository は部署エンティティの永続化を行うインターフェースです。
type Repository interface {
	FindByID(ctx context.Context, id string) (*Departemen, error)
	// List は部署名の昇順で全件を返します。
	List(ctx context.Context) ([]*Departemen, error)
}
