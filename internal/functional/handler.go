package functional

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frizen94/ERPRO/internal/transport"
	"github.com/frizen94/ERPRO/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListRecords(filters Filters) ([]*FunctionalRecord, error)
	GetRecord(id int64) (*FunctionalRecord, error)
	GetRecordForPerson(personID int64) (*FunctionalRecord, error)
	CreateRecord(dto CreateRecordDTO) (*FunctionalRecord, error)
	UpdateRecord(id int64, dto UpdateRecordDTO) (*FunctionalRecord, error)
	DeleteRecord(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	filters := Filters{
		PersonID: queryInt64(r, "personId"),
		UnitID:   queryInt64(r, "unitId"),
		Status:   r.URL.Query().Get("status"),
	}

	records, err := h.Service.ListRecords(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	record, err := h.Service.GetRecord(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

// GetByPerson serves the one-record-per-person convention used by the
// person detail page.
func (h *Handler) GetByPerson(w http.ResponseWriter, r *http.Request) {
	personIDStr := chi.URLParam(r, "personId")
	personID, err := strconv.ParseInt(personIDStr, 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid person ID")
		return
	}

	record, err := h.Service.GetRecordForPerson(personID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.CreateRecord(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto UpdateRecordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.Service.UpdateRecord(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteRecord(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid record ID")
		return 0, false
	}
	return id, true
}

func queryInt64(r *http.Request, key string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
