package lookup

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frizen94/ERPRO/internal/transport"
	"github.com/frizen94/ERPRO/pkg/logger"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     service,
	}
}

// Register mounts all lookup table routes. Reads are open to any
// authenticated user; mutations go through the admin middleware.
func (h *Handler) Register(r chi.Router, requireAdmin func(http.Handler) http.Handler) {
	registerTable(h, r, requireAdmin, "/positions",
		h.Service.ListPositions, h.Service.CreatePosition, h.Service.UpdatePosition, h.Service.DeletePosition)
	registerTable(h, r, requireAdmin, "/organizational-units",
		h.Service.ListUnits, h.Service.CreateUnit, h.Service.UpdateUnit, h.Service.DeleteUnit)
	registerTable(h, r, requireAdmin, "/states",
		h.Service.ListStates, h.Service.CreateState, h.Service.UpdateState, h.Service.DeleteState)
	registerTable(h, r, requireAdmin, "/absence-types",
		h.Service.ListAbsenceTypes, h.Service.CreateAbsenceType, h.Service.UpdateAbsenceType, h.Service.DeleteAbsenceType)
	registerTable(h, r, requireAdmin, "/shift-types",
		h.Service.ListShiftTypes, h.Service.CreateShiftType, h.Service.UpdateShiftType, h.Service.DeleteShiftType)
	registerTable(h, r, requireAdmin, "/per-diem-statuses",
		h.Service.ListPerDiemStatuses, h.Service.CreatePerDiemStatus, h.Service.UpdatePerDiemStatus, h.Service.DeletePerDiemStatus)
	registerTable(h, r, requireAdmin, "/weapon-types",
		h.Service.ListWeaponTypes, h.Service.CreateWeaponType, h.Service.UpdateWeaponType, h.Service.DeleteWeaponType)

	// Municipalities take an optional stateId list filter, so the list
	// endpoint is wired by hand.
	r.Get("/municipalities", h.listMunicipalities)
	r.With(requireAdmin).Post("/municipalities", createEndpoint(h, h.Service.CreateMunicipality))
	r.With(requireAdmin).Put("/municipalities/{id}", updateEndpoint(h, h.Service.UpdateMunicipality))
	r.With(requireAdmin).Delete("/municipalities/{id}", deleteEndpoint(h, h.Service.DeleteMunicipality))
}

func registerTable[T, D any](h *Handler, r chi.Router, requireAdmin func(http.Handler) http.Handler, path string,
	list func() ([]*T, error),
	create func(D) (*T, error),
	update func(int64, D) (*T, error),
	del func(int64) error,
) {
	r.Get(path, listEndpoint(h, list))
	r.With(requireAdmin).Post(path, createEndpoint(h, create))
	r.With(requireAdmin).Put(path+"/{id}", updateEndpoint(h, update))
	r.With(requireAdmin).Delete(path+"/{id}", deleteEndpoint(h, del))
}

func listEndpoint[T any](h *Handler, list func() ([]*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := list()
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, rows)
	}
}

func createEndpoint[T, D any](h *Handler, create func(D) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var dto D
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		rec, err := create(dto)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusCreated, rec)
	}
}

func updateEndpoint[T, D any](h *Handler, update func(int64, D) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid ID")
			return
		}
		var dto D
		if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		rec, err := update(id, dto)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, rec)
	}
}

func deleteEndpoint(h *Handler, del func(int64) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid ID")
			return
		}
		if err := del(id); err != nil {
			h.HandleServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) listMunicipalities(w http.ResponseWriter, r *http.Request) {
	var stateID int64
	if v := r.URL.Query().Get("stateId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid stateId")
			return
		}
		stateID = id
	}

	rows, err := h.Service.ListMunicipalities(stateID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}
