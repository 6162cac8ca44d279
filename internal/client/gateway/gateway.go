// Package gateway はダッシュボードサーバーの GraphQL API を呼び出すクライアントです。
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ogurasousui/hr-graphql-clean-arch/internal/client/model"
	"github.com/rs/zerolog"
)

const karyawanFields = `
        id
        nik
        NamaLengkap
        alamat
        noTelp
        tanggalMasukKaryawan
        departemenId
        vendorId
        departemen { id namaDepartemen }
        vendor { id namaVendor }`

const fetchAllQuery = `
query {
    karyawans {` + karyawanFields + `
    }
    departemens { id namaDepartemen }
    vendors { id namaVendor }
}`

const createKaryawanMutation = `
mutation CreateKaryawan($input: CreateKaryawanInput!) {
    createKaryawan(input: $input) {` + karyawanFields + `
    }
}`

const updateKaryawanMutation = `
mutation UpdateKaryawan($id: String!, $input: UpdateKaryawanInput!) {
    updateKaryawan(id: $id, input: $input) {` + karyawanFields + `
    }
}`

const deleteKaryawanMutation = `
mutation DeleteKaryawan($id: String!) {
    deleteKaryawan(id: $id) {` + karyawanFields + `
    }
}`

// Gateway は GraphQL エンドポイントとの通信を担います。
type Gateway struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option は Gateway の構築オプションです。
type Option func(*Gateway)

// WithHTTPClient は HTTP クライアントを差し替えます。
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.httpClient = client
		}
	}
}

// WithLogger はロガーを設定します。
func WithLogger(logger zerolog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

// New は Gateway を生成します。
func New(endpoint string, opts ...Option) *Gateway {
	g := &Gateway{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchAllResult はダッシュボードに必要な全データの取得結果です。
type FetchAllResult struct {
	Karyawans   []model.Karyawan
	Departemens []model.Departemen
	Vendors     []model.Vendor
}

// CreateKaryawanInput は新規登録の入力です。
type CreateKaryawanInput struct {
	NIK          string
	NamaLengkap  string
	Alamat       string
	NoTelepon    string
	TanggalMasuk time.Time
	DepartemenID string
	VendorID     string
}

// UpdateKaryawanInput は部分更新の入力です。nil のフィールドは送信しません。
type UpdateKaryawanInput struct {
	NIK          *string
	NamaLengkap  *string
	Alamat       *string
	NoTelepon    *string
	TanggalMasuk *time.Time
	DepartemenID *string
	VendorID     *string
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message    string                 `json:"message"`
	Extensions map[string]interface{} `json:"extensions"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type karyawanRecord struct {
	ID                   string `json:"id"`
	NIK                  string `json:"nik"`
	NamaLengkap          string `json:"NamaLengkap"`
	Alamat               string `json:"alamat"`
	NoTelp               string `json:"noTelp"`
	TanggalMasukKaryawan string `json:"tanggalMasukKaryawan"`
	DepartemenID         string `json:"departemenId"`
	VendorID             string `json:"vendorId"`
	Departemen           *struct {
		ID             string `json:"id"`
		NamaDepartemen string `json:"namaDepartemen"`
	} `json:"departemen"`
	Vendor *struct {
		ID         string `json:"id"`
		NamaVendor string `json:"namaVendor"`
	} `json:"vendor"`
}

// toModel はサーバーのレコードを表示用の形に正規化します。
func (rec karyawanRecord) toModel() model.Karyawan {
	k := model.Karyawan{
		ID:           rec.ID,
		NIK:          rec.NIK,
		NamaLengkap:  rec.NamaLengkap,
		Alamat:       rec.Alamat,
		NoTelepon:    rec.NoTelp,
		TanggalMasuk: normalizeTanggalMasuk(rec.TanggalMasukKaryawan),
		DepartemenID: rec.DepartemenID,
		VendorID:     rec.VendorID,
	}
	if rec.Departemen != nil {
		k.DepartemenNama = rec.Departemen.NamaDepartemen
	}
	if rec.Vendor != nil {
		k.VendorNama = rec.Vendor.NamaVendor
	}
	return k
}

// FetchAll は従業員・部署・ベンダーの全件を一括で取得します。
func (g *Gateway) FetchAll(ctx context.Context) (*FetchAllResult, error) {
	raw, err := g.execute(ctx, graphqlRequest{Query: fetchAllQuery})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Karyawans []karyawanRecord `json:"karyawans"`
		Departemens []struct {
			ID             string `json:"id"`
			NamaDepartemen string `json:"namaDepartemen"`
		} `json:"departemens"`
		Vendors []struct {
			ID         string `json:"id"`
			NamaVendor string `json:"namaVendor"`
		} `json:"vendors"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("decode response: %v", err))
	}

	result := &FetchAllResult{
		Karyawans:   make([]model.Karyawan, 0, len(payload.Karyawans)),
		Departemens: make([]model.Departemen, 0, len(payload.Departemens)),
		Vendors:     make([]model.Vendor, 0, len(payload.Vendors)),
	}

	for _, rec := range payload.Karyawans {
		result.Karyawans = append(result.Karyawans, rec.toModel())
	}

	for _, rec := range payload.Departemens {
		result.Departemens = append(result.Departemens, model.Departemen{ID: rec.ID, NamaDepartemen: rec.NamaDepartemen})
	}
	for _, rec := range payload.Vendors {
		result.Vendors = append(result.Vendors, model.Vendor{ID: rec.ID, NamaVendor: rec.NamaVendor})
	}

	return result, nil
}

// CreateKaryawan は従業員を新規登録し、登録後のレコードを返します。
func (g *Gateway) CreateKaryawan(ctx context.Context, in CreateKaryawanInput) (*model.Karyawan, error) {
	input := map[string]interface{}{
		"nik":                  in.NIK,
		"NamaLengkap":          in.NamaLengkap,
		"alamat":               in.Alamat,
		"noTelp":               in.NoTelepon,
		"tanggalMasukKaryawan": in.TanggalMasuk.Format(dateLayout),
		"departemenId":         in.DepartemenID,
		"vendorId":             in.VendorID,
	}

	return g.mutateKaryawan(ctx, createKaryawanMutation, "createKaryawan", map[string]interface{}{"input": input})
}

// UpdateKaryawan は指定フィールドのみを更新し、更新後のレコードを返します。
func (g *Gateway) UpdateKaryawan(ctx context.Context, id string, in UpdateKaryawanInput) (*model.Karyawan, error) {
	input := map[string]interface{}{}
	setString := func(key string, value *string) {
		if value != nil {
			input[key] = *value
		}
	}
	setString("nik", in.NIK)
	setString("NamaLengkap", in.NamaLengkap)
	setString("alamat", in.Alamat)
	setString("noTelp", in.NoTelepon)
	setString("departemenId", in.DepartemenID)
	setString("vendorId", in.VendorID)
	if in.TanggalMasuk != nil {
		input["tanggalMasukKaryawan"] = in.TanggalMasuk.Format(dateLayout)
	}

	return g.mutateKaryawan(ctx, updateKaryawanMutation, "updateKaryawan", map[string]interface{}{"id": id, "input": input})
}

// DeleteKaryawan は従業員を削除し、削除されたレコードを返します。
func (g *Gateway) DeleteKaryawan(ctx context.Context, id string) (*model.Karyawan, error) {
	return g.mutateKaryawan(ctx, deleteKaryawanMutation, "deleteKaryawan", map[string]interface{}{"id": id})
}

func (g *Gateway) mutateKaryawan(ctx context.Context, query, field string, variables map[string]interface{}) (*model.Karyawan, error) {
	raw, err := g.execute(ctx, graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}

	var payload map[string]karyawanRecord
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("decode response: %v", err))
	}

	rec, ok := payload[field]
	if !ok {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("missing %s in response", field))
	}

	k := rec.toModel()
	return &k, nil
}

func (g *Gateway) execute(ctx context.Context, req graphqlRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("encode request: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("build request: %v", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.logger.Warn().Err(err).Msg("graphql request failed")
		return nil, newError(ErrFetchFailed, fmt.Sprintf("request: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var parsed graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, newError(ErrFetchFailed, fmt.Sprintf("decode response: %v", err))
	}

	if len(parsed.Errors) > 0 {
		return nil, classifyGraphQLError(parsed.Errors[0])
	}

	return parsed.Data, nil
}

// classifyGraphQLError は extensions.code を優先し、無い場合はメッセージ内容で分類します。
func classifyGraphQLError(gqlErr graphqlError) error {
	if code, ok := gqlErr.Extensions["code"].(string); ok {
		switch code {
		case "VALIDATION_FAILED":
			return newError(ErrValidationFailed, gqlErr.Message)
		case "DUPLICATE_FIELD":
			return newError(ErrDuplicateField, gqlErr.Message)
		case "NOT_FOUND":
			return newError(ErrNotFound, gqlErr.Message)
		}
	}

	message := gqlErr.Message
	switch {
	case strings.Contains(message, "sudah terdaftar"):
		return newError(ErrDuplicateField, message)
	case strings.Contains(message, "tidak ditemukan"):
		return newError(ErrNotFound, message)
	case strings.Contains(message, "wajib"):
		return newError(ErrValidationFailed, message)
	default:
		return newError(ErrFetchFailed, message)
	}
}
