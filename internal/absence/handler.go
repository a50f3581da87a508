package absence

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
	ListAbsences(filters Filters) ([]*Absence, error)
	GetAbsence(id int64) (*Absence, error)
	CreateAbsence(dto CreateAbsenceDTO) (*Absence, error)
	UpdateAbsence(id int64, dto UpdateAbsenceDTO) (*Absence, error)
	DeleteAbsence(id int64) error
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
	if v := r.URL.Query().Get("typeId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.AbsenceTypeID = id
		}
	}
	// active=true means "in progress today"; activeOn takes an explicit date.
	if v := r.URL.Query().Get("activeOn"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "activeOn must be a YYYY-MM-DD date")
			return
		}
		filters.ActiveOn = &date
	} else if r.URL.Query().Get("active") == "true" {
		now := time.Now()
		filters.ActiveOn = &now
	}

	absences, err := h.Service.ListAbsences(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, absences)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	a, err := h.Service.GetAbsence(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateAbsenceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.CreateAbsence(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var dto UpdateAbsenceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := h.Service.UpdateAbsence(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Service.DeleteAbsence(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid absence ID")
		return 0, false
	}
	return id, true
}
