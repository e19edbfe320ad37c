package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/defectdash/pkg/domain/interfaces"
	"github.com/secmon-lab/defectdash/pkg/domain/model"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

type projectHandler struct {
	dashboard interfaces.Dashboard
}

func projectName(r *http.Request) types.ProjectName {
	return types.ProjectName(chi.URLParam(r, "name"))
}

func (h *projectHandler) list(w http.ResponseWriter, r *http.Request) {
	projects, err := h.dashboard.ListProjects(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, projects)
}

func (h *projectHandler) get(w http.ResponseWriter, r *http.Request) {
	project, err := h.dashboard.GetProject(r.Context(), projectName(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, project)
}

func (h *projectHandler) defects(w http.ResponseWriter, r *http.Request) {
	defects, err := h.dashboard.GetDefects(r.Context(), projectName(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, defects)
}

func (h *projectHandler) metrics(w http.ResponseWriter, r *http.Request) {
	report, err := h.dashboard.GetProjectMetrics(r.Context(), projectName(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

type notificationHandler struct {
	notification interfaces.Notification
	now          func() time.Time
}

// notificationResponse adds the relative age shown in the bell dropdown
type notificationResponse struct {
	*model.Notification
	Age string `json:"age"`
}

type publishRequest struct {
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Type    types.NotificationType `json:"type"`
}

func (h *notificationHandler) toResponse(n *model.Notification) notificationResponse {
	return notificationResponse{
		Notification: n,
		Age:          n.FormatAge(h.now()),
	}
}

func (h *notificationHandler) recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, goerr.Wrap(err, "invalid limit",
				goerr.V("limit", v),
				goerr.T(model.ErrTagInvalidInput)))
			return
		}
		limit = parsed
	}

	notifications, err := h.notification.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, h.toResponse(n))
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *notificationHandler) unreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notification.UnreadCount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]int{"count": count})
}

func (h *notificationHandler) publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagInvalidInput)))
		return
	}

	n, err := h.notification.Publish(r.Context(), req.Title, req.Message, req.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, h.toResponse(n))
}

func (h *notificationHandler) markAsRead(w http.ResponseWriter, r *http.Request) {
	id := types.NotificationID(chi.URLParam(r, "id"))
	if err := h.notification.MarkAsRead(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *notificationHandler) markAllAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notification.MarkAllAsRead(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
