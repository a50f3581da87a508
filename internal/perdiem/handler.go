package perdiem

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/frizen94/ERPRO/internal/transport"
	"github.com/frizen94/ERPRO/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListRequests(filters Filters) ([]*PerDiemRequest, error)
	GetRequest(id int64) (*PerDiemRequest, error)
	CreateRequest(dto CreatePerDiemDTO) (*PerDiemRequest, error)
	UpdateRequest(id int64, dto UpdatePerDiemDTO) (*PerDiemRequest, error)
	DeleteRequest(id int64) error
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
	filters := Filters{}

	if v := r.URL.Query().Get("personId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.PersonID = id
		}
	}
	if v := r.URL.Query().Get("statusId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.StatusID = id
		}
	}
	if v := r.URL.Query().Get("startFrom"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "startFrom must be a YYYY-MM-DD date")
			return
		}
		filters.StartFrom = &date
	}
	if v := r.URL.Query().Get("endTo"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "endTo must be a YYYY-MM-DD date")
			return
		}
		filters.EndTo = &date
	}

	requests, err := h.Service.ListRequests(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	req, err := h.Service.GetRequest(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreatePerDiemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.CreateRequest(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto UpdatePerDiemDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.UpdateRequest(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteRequest(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid per-diem request ID")
		return 0, false
	}
	return id, true
}
