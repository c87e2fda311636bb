package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/slowgallery/cmd/website/internal/configuration"
	"github.com/adampresley/slowgallery/cmd/website/internal/home"
	"github.com/adampresley/slowgallery/cmd/website/internal/webapp"
	"github.com/adampresley/slowgallery/pkg/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Version string = "development"
	appName string = "slowgallery"

	config configuration.Config

	/* Services */
	galleryLoader services.GalleryLoaderService
	loaderMetrics *services.LoaderMetrics
	photoService  services.PhotoServicer
	renderer      rendering.TemplateRenderer

	/* Controllers */
	homeController home.HomeHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("unsplashEndpoint", config.UnsplashEndpoint),
		slog.Int("photosPerPage", config.PhotosPerPage),
		slog.Int("loadDelayMs", config.LoadDelayMs),
		slog.Int("busyLoopIterations", config.BusyLoopIterations),
		slog.Int("maxLoadWorkers", config.MaxLoadWorkers),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	if loaderMetrics, err = services.NewLoaderMetrics(prometheus.DefaultRegisterer); err != nil {
		panic(err)
	}

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        webapp.FS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	photoService = services.NewUnsplashService(services.UnsplashServiceConfig{
		AccessKey: config.UnsplashAccessKey,
		Endpoint:  config.UnsplashEndpoint,
	})

	galleryLoader = services.NewGalleryLoaderService(services.GalleryLoaderConfig{
		BusyLoopIterations: config.BusyLoopIterations,
		Delay:              config.LoadDelay(),
		MaxWorkers:         config.MaxLoadWorkers,
		Metrics:            loaderMetrics,
		PerPage:            config.PhotosPerPage,
		PhotoService:       photoService,
		ShutdownCtx:        shutdownCtx,
	})

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		GalleryLoader: galleryLoader,
		Renderer:      renderer,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	requestLoggingMiddleware := newRequestLoggingMiddleware(
		[]string{
			"/static",
			"/heartbeat",
			"/metrics",
		},
	)

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /metrics", HandlerFunc: promhttp.Handler().ServeHTTP},
		{Path: "GET /", HandlerFunc: homeController.HomePage, Middlewares: []mux.MiddlewareFunc{requestLoggingMiddleware}},
		{Path: "GET /gallery", HandlerFunc: homeController.Gallery, Middlewares: []mux.MiddlewareFunc{requestLoggingMiddleware}},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             webapp.FS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	cancel()
	galleryLoader.Stop()
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}
