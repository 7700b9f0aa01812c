package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/Domenick1991/flightdesk/api"
	"github.com/Domenick1991/flightdesk/config"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, authH *api.AuthHandler, flightH *api.FlightHandler, bookingH *api.BookingHandler) error {
	router := NewRouter(cfg, authH, flightH, bookingH)

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
		return srv.Shutdown(shutdownCtx)
	}
}

// NewRouter wires the public routes, the authenticated group and the
// swagger UI.
func NewRouter(cfg *config.Config, authH *api.AuthHandler, flightH *api.FlightHandler, bookingH *api.BookingHandler) *gin.Engine {
	router := gin.Default()

	public := router.Group("/")
	authH.Register(public)
	flightH.Register(public)

	authed := router.Group("/", api.AuthRequired(cfg.Auth.SigningKey))
	bookingH.Register(authed)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/openapi.json"),
		)))
	}

	return router
}
