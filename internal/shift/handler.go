package shift

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
	ListShifts(filters Filters) ([]*ShiftSchedule, error)
	GetShift(id int64) (*ShiftSchedule, error)
	CreateShift(dto CreateShiftDTO) (*ShiftSchedule, error)
	UpdateShift(id int64, dto UpdateShiftDTO) (*ShiftSchedule, error)
	DeleteShift(id int64) error
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
	filters := Filters{Status: r.URL.Query().Get("status")}

	if v := r.URL.Query().Get("personId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.PersonID = id
		}
	}
	if v := r.URL.Query().Get("unitId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.UnitID = id
		}
	}
	if v := r.URL.Query().Get("dateFrom"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "dateFrom must be a YYYY-MM-DD date")
			return
		}
		filters.DateFrom = &date
	}
	if v := r.URL.Query().Get("dateTo"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "dateTo must be a YYYY-MM-DD date")
			return
		}
		filters.DateTo = &date
	}

	shifts, err := h.Service.ListShifts(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, shifts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	sched, err := h.Service.GetShift(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sched)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := h.Service.CreateShift(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, sched)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto UpdateShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sched, err := h.Service.UpdateShift(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, sched)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteShift(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid shift schedule ID")
		return 0, false
	}
	return id, true
}
