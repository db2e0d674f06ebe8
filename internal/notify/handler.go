// Package notify exposes the push-signal listener: a small HTTP surface the
// sync backend calls to announce that another device wrote to the remote
// store or that the device account changed. Signals carry no data; they are
// translated into bus events and the interested components react from there.
package notify

import (
	"net/http"

	"github.com/clipvault/clipvault/internal/event"
	"github.com/clipvault/clipvault/internal/logger"
)

type Handler struct {
	bus event.Bus

	logger *logger.Logger
}

func NewHandler(bus event.Bus, logger *logger.Logger) *Handler {
	logger.Info().Msg("notify handler created")
	return &Handler{
		bus:    bus,
		logger: logger,
	}
}

func (h *Handler) remoteChange(w http.ResponseWriter, _ *http.Request) {
	h.logger.Debug().Str("func", "*Handler.remoteChange").Msg("remote change signal received")

	h.bus.Publish(event.Event{Kind: event.KindRemoteChange})
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) accountChange(w http.ResponseWriter, _ *http.Request) {
	h.logger.Debug().Str("func", "*Handler.accountChange").Msg("account change signal received")

	h.bus.Publish(event.Event{Kind: event.KindAccountChange})
	w.WriteHeader(http.StatusAccepted)
}
