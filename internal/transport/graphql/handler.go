package graphql

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	log "github.com/sirupsen/logrus"
)

// Handler обслуживает GraphQL-запросы поверх HTTP POST.
type Handler struct {
	schema graphql.Schema
	logger *log.Entry
}

// NewHandler создаёт HTTP-обработчик для схемы.
func NewHandler(schema graphql.Schema, logger *log.Entry) *Handler {
	if logger == nil {
		logger = log.New().WithField("component", "graphql-handler")
	}
	return &Handler{schema: schema, logger: logger}
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ServeHTTP принимает стандартный GraphQL-запрос
// {"query": ..., "variables": ..., "operationName": ...}.
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
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        r.Context(),
	})

	if len(result.Errors) > 0 {
		h.logger.WithField("errors", result.Errors).Debug("graphql request finished with errors")
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.WithError(err).Warn("failed to encode graphql response")
	}
}
