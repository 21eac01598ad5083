package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-airbnb-api/internal/app"
	"github.com/MKhiriev/go-airbnb-api/internal/logger"
	"github.com/MKhiriev/go-airbnb-api/internal/service"
	"github.com/MKhiriev/go-airbnb-api/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrMissingParameters:  http.StatusBadRequest,
	service.ErrInvalidEmailFormat: http.StatusBadRequest,
	service.ErrInvalidData:        http.StatusBadRequest,
	service.ErrNotEditable:        http.StatusBadRequest,
	service.ErrPhotoLimitExceeded: http.StatusBadRequest,
	service.ErrPasswordUnchanged:  http.StatusBadRequest,
	service.ErrResetTokenExpired:  http.StatusBadRequest,

	service.ErrUnauthorized: http.StatusUnauthorized,

	service.ErrNotFound: http.StatusNotFound,

	service.ErrDuplicateEmail:    http.StatusConflict,
	service.ErrDuplicateUsername: http.StatusConflict,

	service.ErrUpstreamUnavailable: http.StatusServiceUnavailable,

	ErrInvalidID:    http.StatusBadRequest,
	ErrInvalidBody:  http.StatusBadRequest,
	ErrInvalidQuery: http.StatusBadRequest,
}

// errorMessageMap holds the client-facing wording. Keys are leaf errors, so
// a wrapped error matches at most one of them.
var errorMessageMap = map[error]string{
	service.ErrMissingParameters:   app.MsgMissingParameters,
	service.ErrInvalidEmailFormat:  app.MsgWrongEmailFormat,
	service.ErrInvalidData:         app.MsgInvalidDataProvided,
	service.ErrUserNotEditable:     app.MsgUserNotEditable,
	service.ErrRoomNotEditable:     app.MsgRoomNotEditable,
	service.ErrPhotoLimitExceeded:  app.MsgPhotoLimitExceeded,
	service.ErrPasswordUnchanged:   app.MsgPasswordUnchanged,
	service.ErrResetTokenExpired:   app.MsgResetTokenExpired,
	service.ErrUnauthorized:        app.MsgUnauthorized,
	service.ErrAccountNotFound:     app.MsgUserNotFound,
	service.ErrListingNotFound:     app.MsgRoomNotFound,
	service.ErrPhotoNotFound:       app.MsgPictureNotFound,
	service.ErrDuplicateEmail:      app.MsgEmailAlreadyExists,
	service.ErrDuplicateUsername:   app.MsgUsernameAlreadyExists,
	service.ErrUpstreamUnavailable: app.MsgUpstreamUnavailable,
	ErrInvalidID:                   app.MsgInvalidDataProvided,
	ErrInvalidBody:                 app.MsgInvalidDataProvided,
	ErrInvalidQuery:                app.MsgInvalidDataProvided,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and answers with the matching status and
// message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
