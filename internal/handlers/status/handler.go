package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hotelfin/shared/constant"
	"hotelfin/transport/http/response"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.GetStatus)
}

func (handler *Handler) GetStatus(w http.ResponseWriter, _ *http.Request) {
	response.WithPlainText(w, http.StatusOK, constant.ResponseServerRunning)
}
