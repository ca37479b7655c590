package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avelis/spacetravel/api"
	"github.com/avelis/spacetravel/config"
	"github.com/avelis/spacetravel/internal/service/itinerary"
	"github.com/avelis/spacetravel/internal/service/registry"
	"github.com/gin-gonic/gin"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, registrySvc registry.RegistryUseCase, itinerarySvc itinerary.ItineraryUseCase) error {
	router := gin.New()
	router.Use(gin.Recovery())

	api.NewRegistryHandler(registrySvc).Register(router.Group("/registry"))
	api.NewItineraryHandler(itinerarySvc).Register(router.Group("/itineraries"))

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
