package http

import (
	"net/http"

	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
)

type welcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, welcomeResponse{
		Message: app.MsgWelcome,
		Version: h.services.AppInfoService.GetAppVersion(r.Context()),
	}, http.StatusOK)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgPageNotFound, http.StatusNotFound)
}
