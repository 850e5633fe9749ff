package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/segyhp/travel-crm/internal/casing"
	"github.com/segyhp/travel-crm/internal/domain"
	"github.com/segyhp/travel-crm/internal/service"
	"github.com/segyhp/travel-crm/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1 << 20

type RecordHandler struct {
	service RecordService
	logger  *logrus.Logger
}

func NewRecordHandler(service RecordService, logger *logrus.Logger) *RecordHandler {
	return &RecordHandler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the CRUD routes of every entity on r
func (h *RecordHandler) Register(r *mux.Router) {
	for _, entity := range domain.Entities {
		collection := "/" + string(entity)
		item := collection + "/{id}"

		r.HandleFunc(collection, h.List(entity)).Methods("GET")
		r.HandleFunc(collection, h.Create(entity)).Methods("POST")
		r.HandleFunc(item, h.Get(entity)).Methods("GET")
		r.HandleFunc(item, h.Update(entity)).Methods("PUT", "PATCH")
		r.HandleFunc(item, h.Delete(entity)).Methods("DELETE")
	}
}

// List handles GET /{entity}?search=&status=&tag=&customerId=&sort=&order=&limit=&offset=
func (h *RecordHandler) List(entity domain.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseListQuery(r)
		if err != nil {
			response.BadRequest(w, "Invalid query parameters", err)
			return
		}

		records, err := h.service.List(r.Context(), entity, query)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}

		response.List(w, records, response.Meta{Count: len(records), Limit: query.Limit, Offset: query.Offset})
	}
}

func (h *RecordHandler) Get(entity domain.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := h.service.Get(r.Context(), entity, mux.Vars(r)["id"])
		if err != nil {
			writeError(w, h.logger, err)
			return
		}

		response.Success(w, record)
	}
}

func (h *RecordHandler) Create(entity domain.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeRecord(w, r)
		if err != nil {
			response.BadRequest(w, "Invalid request body", err)
			return
		}

		record, err := h.service.Create(r.Context(), entity, input)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}

		response.Created(w, record)
	}
}

func (h *RecordHandler) Update(entity domain.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, err := decodeRecord(w, r)
		if err != nil {
			response.BadRequest(w, "Invalid request body", err)
			return
		}

		record, err := h.service.Update(r.Context(), entity, mux.Vars(r)["id"], input)
		if err != nil {
			writeError(w, h.logger, err)
			return
		}

		response.Success(w, record)
	}
}

func (h *RecordHandler) Delete(entity domain.Entity) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.Delete(r.Context(), entity, mux.Vars(r)["id"]); err != nil {
			writeError(w, h.logger, err)
			return
		}

		response.NoContent(w)
	}
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (casing.Record, error) {
	var record casing.Record
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&record); err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("body must be a JSON object")
	}
	return record, nil
}

func parseListQuery(r *http.Request) (service.ListQuery, error) {
	q := r.URL.Query()

	query := service.ListQuery{
		Search:     q.Get("search"),
		Status:     q.Get("status"),
		Tag:        q.Get("tag"),
		CustomerID: q.Get("customerId"),
		SortBy:     q.Get("sort"),
	}

	switch strings.ToLower(q.Get("order")) {
	case "", "asc":
	case "desc":
		query.Desc = true
	default:
		return query, fmt.Errorf("order must be asc or desc")
	}

	var err error
	if query.Limit, err = nonNegativeInt(q.Get("limit"), "limit"); err != nil {
		return query, err
	}
	if query.Offset, err = nonNegativeInt(q.Get("offset"), "offset"); err != nil {
		return query, err
	}

	return query, nil
}

func nonNegativeInt(text, name string) (int, error) {
	if text == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}
