package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	router.Use(middleware.RequestSize(maxRequestBody))

	router.Get("/", h.welcome)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	// public reads and credential entry points
	router.Group(func(r chi.Router) {
		r.Post("/user/sign_up", h.signUp)
		r.Post("/user/log_in", h.logIn)
		r.Get("/users/{id}", h.getUser)
		r.Get("/user/rooms/{id}", h.userRooms)

		r.Get("/rooms", h.listRooms)
		r.Get("/rooms/around", h.roomsAround)
		r.Get("/rooms/{id}", h.getRoom)
	})

	// password recovery: guarded, no token
	router.Group(func(r chi.Router) {
		r.Use(h.immutable)

		r.Put("/user/recover_password", h.recoverPassword)
		r.Put("/user/reset_password", h.resetPassword)
	})

	// mutations: the guard runs before auth
	router.Group(func(r chi.Router) {
		r.Use(h.immutable)
		r.Use(h.auth)

		r.Put("/user/update/{id}", h.updateUser)
		r.Put("/user/delete_picture/{id}", h.deleteUserPicture)
		r.Put("/user/update_password", h.updatePassword)
		r.Delete("/user/delete", h.deleteUser)

		r.Put("/room/update/{id}", h.updateRoom)
		r.Put("/room/upload_picture/{id}", h.uploadRoomPicture)
		r.Put("/room/delete_picture/{id}", h.deleteRoomPicture)
		r.Delete("/room/delete/{id}", h.deleteRoom)
	})

	router.With(h.auth).Post("/room/publish", h.publishRoom)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
