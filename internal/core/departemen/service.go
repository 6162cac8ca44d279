package departemen

import (
	"context"
	"fmt"
	"strings"
)

// Service は部署マスタに関するユースケースをまとめます。
type Service struct {
	repo Repository
}

// UseCase は部署ユースケースの公開インターフェースです。
type UseCase interface {
	GetDepartemen(ctx context.Context, id string) (*Departemen, error)
	ListDepartemens(ctx context.Context) ([]*Departemen, error)
}

// NewService は Service を生成します。
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetDepartemen は部署を取得します。
func (s *Service) GetDepartemen(ctx context.Context, id string) (*Departemen, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	return s.repo.FindByID(ctx, id)
}

// ListDepartemens は部署の全件を部署名の昇順で取得します。
func (s *Service) ListDepartemens(ctx context.Context) ([]*Departemen, error) {
	return s.repo.List(ctx)
}
