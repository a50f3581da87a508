package weapon

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frizen94/ERPRO/internal/transport"
	"github.com/frizen94/ERPRO/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListWeapons(filters ItemFilters) ([]*WeaponItem, error)
	GetWeapon(id int64) (*WeaponItem, error)
	CreateWeapon(dto CreateWeaponDTO) (*WeaponItem, error)
	UpdateWeapon(id int64, dto UpdateWeaponDTO) (*WeaponItem, error)
	DeleteWeapon(id int64) error
	ListCheckouts(filters CheckoutFilters) ([]*WeaponCheckout, error)
	CheckoutWeapon(weaponID int64, dto CheckoutDTO) (*WeaponCheckout, error)
	ReturnWeapon(checkoutID int64) (*WeaponCheckout, error)
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
	filters := ItemFilters{
		Situation:    r.URL.Query().Get("situation"),
		SerialNumber: r.URL.Query().Get("serialNumber"),
	}
	if v := r.URL.Query().Get("typeId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.WeaponTypeID = id
		}
	}

	items, err := h.Service.ListWeapons(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "invalid weapon ID")
	if !ok {
		return
	}

	item, err := h.Service.GetWeapon(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateWeaponDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.CreateWeapon(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "invalid weapon ID")
	if !ok {
		return
	}

	var dto UpdateWeaponDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Service.UpdateWeapon(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "invalid weapon ID")
	if !ok {
		return
	}

	if err := h.Service.DeleteWeapon(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListCheckoutRecords(w http.ResponseWriter, r *http.Request) {
	filters := CheckoutFilters{
		OpenOnly: r.URL.Query().Get("open") == "true",
	}
	if v := r.URL.Query().Get("weaponId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.WeaponID = id
		}
	}
	if v := r.URL.Query().Get("personId"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			filters.PersonID = id
		}
	}

	checkouts, err := h.Service.ListCheckouts(filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, checkouts)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "invalid weapon ID")
	if !ok {
		return
	}

	var dto CheckoutDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	checkout, err := h.Service.CheckoutWeapon(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, checkout)
}

func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r, "invalid checkout ID")
	if !ok {
		return
	}

	checkout, err := h.Service.ReturnWeapon(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, checkout)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request, msg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, msg)
		return 0, false
	}
	return id, true
}
