package broker

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
)

// Relay is a minimal standalone move broker: it keeps the single most
// recently posted move and hands it to whoever asks. Two game processes
// pointed at the same relay can play each other over the network
type Relay struct {
	echo *echo.Echo

	mu   sync.Mutex
	last *MoveRecord
}

func NewRelay() *Relay {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	r := &Relay{echo: e}
	e.GET("/", r.getMove)
	e.POST("/", r.postMove)
	return r
}

func (r *Relay) getMove(c echo.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: r.last})
}

func (r *Relay) postMove(c echo.Context) error {
	var record MoveRecord
	if err := c.Bind(&record); err != nil {
		log.Warn().Msgf("relay: rejecting unreadable move: %v", err)
		return c.JSON(http.StatusBadRequest, Envelope{Success: false})
	}

	r.mu.Lock()
	r.last = &record
	r.mu.Unlock()

	log.Info().Msgf("relay: stored move %s for turn %d", record.Move(), record.Turn)
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: &record})
}

// Handler exposes the relay's routes for tests and embedding
func (r *Relay) Handler() http.Handler {
	return r.echo
}

// Start serves the relay until the context is cancelled, then shuts
// down gracefully
func (r *Relay) Start(ctx context.Context, addr string) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.echo.Shutdown(shutdownCtx); err != nil {
			log.Warn().Msgf("relay: shutdown: %v", err)
		}
	}()

	err := r.echo.Start(addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
