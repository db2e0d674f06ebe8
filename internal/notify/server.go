package notify

import (
	"context"
	"errors"
	"net/http"

	"github.com/clipvault/clipvault/internal/config"
	"github.com/clipvault/clipvault/internal/logger"
)

// Listener is the HTTP server carrying the push-signal routes.
type Listener struct {
	server *http.Server
	logger *logger.Logger
}

func NewListener(handler *Handler, cfg config.Notify, log *logger.Logger) *Listener {
	return &Listener{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler.Init(),
		},
		logger: log,
	}
}

// Run blocks serving signals until Shutdown is called.
func (l *Listener) Run() {
	l.logger.Info().Str("address", l.server.Addr).Msg("signal listener starting")
	if err := l.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.logger.Err(err).Msg("signal listener stopped")
	}
}

func (l *Listener) Shutdown(ctx context.Context) {
	if err := l.server.Shutdown(ctx); err != nil {
		l.logger.Err(err).Msg("signal listener shutdown")
	}
}
