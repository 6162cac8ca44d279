// Package store は取得済みデータと派生ビューの状態をまとめて管理します。
// 書き込み系の操作は成功後に全件を再取得し、ローカルの差分適用は行いません。
package store

import (
	"context"

	"github.com/ogurasousui/hr-graphql-clean-arch/internal/client/dataview"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/client/gateway"
	"github.com/ogurasousui/hr-graphql-clean-arch/internal/client/model"
	"github.com/rs/zerolog"
)

// Gateway はストアが利用するリモート操作の集合です。
type Gateway interface {
	FetchAll(ctx context.Context) (*gateway.FetchAllResult, error)
	CreateKaryawan(ctx context.Context, in gateway.CreateKaryawanInput) (*model.Karyawan, error)
	UpdateKaryawan(ctx context.Context, id string, in gateway.UpdateKaryawanInput) (*model.Karyawan, error)
	DeleteKaryawan(ctx context.Context, id string) (*model.Karyawan, error)
}

// Store はゲートウェイと派生ビューを束ねます。単一ゴルーチンからの利用を想定します。
type Store struct {
	gateway Gateway
	view    *dataview.View
	logger  zerolog.Logger

	departemens []model.Departemen
	vendors     []model.Vendor
	loading     bool
	loaded      bool
}

// New は Store を生成します。
func New(gw Gateway, logger zerolog.Logger) *Store {
	return &Store{
		gateway: gw,
		view:    dataview.New(),
		logger:  logger,
	}
}

// FetchData は全件を再取得してビューを差し替えます。
// 取得に失敗した場合は直前のデータを保持したままエラーを返します。
func (s *Store) FetchData(ctx context.Context) error {
	s.loading = true
	defer func() { s.loading = false }()

	result, err := s.gateway.FetchAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("fetch all failed")
		return err
	}

	s.view.Replace(result.Karyawans)
	s.departemens = result.Departemens
	s.vendors = result.Vendors
	s.loaded = true
	return nil
}

// Loading は取得処理中かどうかを返します。
func (s *Store) Loading() bool {
	return s.loading
}

// Loaded は一度でも取得に成功したかどうかを返します。
func (s *Store) Loaded() bool {
	return s.loaded
}

// Departemens は部署マスタを返します。
func (s *Store) Departemens() []model.Departemen {
	return s.departemens
}

// Vendors はベンダーマスタを返します。
func (s *Store) Vendors() []model.Vendor {
	return s.vendors
}

// View は派生ビューへの参照を返します。検索・ソート・ページ操作はこちらで行います。
func (s *Store) View() *dataview.View {
	return s.view
}

// Page は現在の派生ビューの 1 ページ分を返します。
func (s *Store) Page() dataview.Page {
	return s.view.Page()
}

// CreateKaryawan は従業員を登録し、成功したら全件を再取得します。
// ローカルへの差分適用は行わないため、ゲートウェイが返すレコードは破棄します。
func (s *Store) CreateKaryawan(ctx context.Context, in gateway.CreateKaryawanInput) error {
	if _, err := s.gateway.CreateKaryawan(ctx, in); err != nil {
		return err
	}
	return s.FetchData(ctx)
}

// UpdateKaryawan は従業員を更新し、成功したら全件を再取得します。
func (s *Store) UpdateKaryawan(ctx context.Context, id string, in gateway.UpdateKaryawanInput) error {
	if _, err := s.gateway.UpdateKaryawan(ctx, id, in); err != nil {
		return err
	}
	return s.FetchData(ctx)
}

// DeleteKaryawan は従業員を削除し、成功したら全件を再取得します。
func (s *Store) DeleteKaryawan(ctx context.Context, id string) error {
	if _, err := s.gateway.DeleteKaryawan(ctx, id); err != nil {
		return err
	}
	return s.FetchData(ctx)
}
