package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"voyage/cmd/fx/analysis_fx"
	"voyage/cmd/fx/assistant_fx"
	"voyage/cmd/fx/catalog_fx"
	"voyage/cmd/fx/config_fx"
	"voyage/cmd/fx/controllers_fx"
	"voyage/cmd/fx/db_fx"
	"voyage/cmd/fx/llm_fx"
	"voyage/cmd/fx/logger_fx"
	"voyage/internal/api/controllers"
	"voyage/internal/config"
	"voyage/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		llm_fx.Module,
		db_fx.Module,
		analysis_fx.Module,
		assistant_fx.Module,
		catalog_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config                   *config.Config
	Registry                 *prometheus.Registry
	TravelAnalysisController *controllers.TravelAnalysisController
	ChatController           *controllers.ChatController
	FlightSearchController   *controllers.FlightSearchController
	PlacesSearchController   *controllers.PlacesSearchController
	CatalogController        *controllers.CatalogController
	HealthController         *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if !p.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(p.Config.CORS.AllowedOrigins))

	RegisterRoutes(r, p)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{})))

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", p.HealthController.HealthHandler)

	api := r.Group("/api")

	api.POST("/ai-travel-analysis", p.TravelAnalysisController.AnalyzeHandler)
	api.POST("/ai-travel-analysis/pdf", p.TravelAnalysisController.ExportPDFHandler)
	api.POST("/ai-chat", p.ChatController.ChatHandler)
	api.POST("/flights-search", p.FlightSearchController.SearchHandler)
	api.POST("/places-search", p.PlacesSearchController.SearchHandler)

	api.GET("/flights", p.CatalogController.SearchFlightsHandler)
	api.GET("/flights/:id", p.CatalogController.GetFlightHandler)
	api.GET("/hotels", p.CatalogController.SearchHotelsHandler)
	api.GET("/hotels/:id", p.CatalogController.GetHotelHandler)
	api.GET("/restaurants", p.CatalogController.SearchRestaurantsHandler)
	api.GET("/restaurants/:id", p.CatalogController.GetRestaurantHandler)
	api.GET("/places", p.CatalogController.SearchPlacesHandler)
	api.GET("/places/:id", p.CatalogController.GetPlaceHandler)
}
