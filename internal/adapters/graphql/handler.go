package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"
)

// Handler は POST /graphql のリクエストを受け付ける http.Handler です。
type Handler struct {
	schema graphql.Schema
	logger zerolog.Logger
}

// NewHandler は Handler を生成します。
func NewHandler(schema graphql.Schema, logger zerolog.Logger) *Handler {
	return &Handler{schema: schema, logger: logger}
}

type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	for _, gqlErr := range result.Errors {
		h.logger.Warn().
			Str("operation", req.OperationName).
			Str("message", gqlErr.Message).
			Msg("graphql error")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode graphql response")
	}
}
