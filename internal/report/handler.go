package report

import (
	"fmt"
	"net/http"
	"time"

	"github.com/frizen94/ERPRO/internal/transport"
	"github.com/frizen94/ERPRO/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

func (h *Handler) PersonsRoster(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.Service.PersonsRoster()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.writeAttachment(w, filename, buf.Bytes())
}

func (h *Handler) ShiftSchedules(w http.ResponseWriter, r *http.Request) {
	from, ok := h.parseDateParam(w, r, "dateFrom")
	if !ok {
		return
	}
	to, ok := h.parseDateParam(w, r, "dateTo")
	if !ok {
		return
	}

	buf, filename, err := h.Service.ShiftSchedules(from, to)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.writeAttachment(w, filename, buf.Bytes())
}

func (h *Handler) parseDateParam(w http.ResponseWriter, r *http.Request, name string) (time.Time, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, true
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, name+" must be formatted YYYY-MM-DD")
		return time.Time{}, false
	}
	return d, true
}

func (h *Handler) writeAttachment(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(body)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
