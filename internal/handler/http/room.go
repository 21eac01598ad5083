package http

import (
	"net/http"

	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
	"github.com/MKhiriev/go-airbnb-api/models"
)

// listRooms serves GET /rooms?title=&priceMin=&priceMax=.
func (h *Handler) listRooms(w http.ResponseWriter, r *http.Request) {
	filter := models.ListingFilter{Title: r.URL.Query().Get("title")}

	var err error
	if filter.PriceMin, err = queryInt(r, "priceMin"); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if filter.PriceMax, err = queryInt(r, "priceMax"); err != nil {
		writeServiceError(w, r, err)
		return
	}

	listings, err := h.services.ListingService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, listings, http.StatusOK)
}

// roomsAround serves GET /rooms/around?latitude=&longitude=&max_distance=.
func (h *Handler) roomsAround(w http.ResponseWriter, r *http.Request) {
	var (
		query models.NearQuery
		err   error
	)
	if query.Latitude, err = queryFloat(r, "latitude"); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if query.Longitude, err = queryFloat(r, "longitude"); err != nil {
		writeServiceError(w, r, err)
		return
	}
	maxDistance, err := queryFloat(r, "max_distance")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if maxDistance != nil {
		query.MaxDistance = *maxDistance
	}

	listings, err := h.services.ListingService.ListNear(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, listings, http.StatusOK)
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	details, err := h.services.ListingService.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, details, http.StatusOK)
}

func (h *Handler) publishRoom(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var draft models.ListingDraft
	if err = decodeBody(r, &draft); err != nil {
		writeServiceError(w, r, err)
		return
	}

	listing, err := h.services.ListingService.Create(r.Context(), account, draft)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("listing_id", listing.ID.String()).Msg("room published")
	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) updateRoom(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var update models.ListingUpdate
	if err = decodeBody(r, &update); err != nil {
		writeServiceError(w, r, err)
		return
	}

	listing, err := h.services.ListingService.Update(r.Context(), account, id, update)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) uploadRoomPicture(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	upload, err := readUpload(r, pictureField)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if upload == nil {
		writeServiceError(w, r, service.ErrMissingParameters)
		return
	}

	listing, err := h.services.ListingService.AddPhoto(r.Context(), account, id, *upload)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) deleteRoomPicture(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req struct {
		PictureID string `json:"picture_id"`
	}
	if err = decodeBody(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err = h.services.ListingService.DeletePhoto(r.Context(), account, id, req.PictureID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgPictureDeleted, http.StatusOK)
}

func (h *Handler) deleteRoom(w http.ResponseWriter, r *http.Request) {
	account, err := actor(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	id, err := urlID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.ListingService.Delete(r.Context(), account, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("listing_id", id.String()).Msg("room deleted")
	utils.WriteMessage(w, app.MsgRoomDeleted, http.StatusOK)
}
