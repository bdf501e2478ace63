package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/ClusterLabs/striker-testinput/handler"
	"github.com/ClusterLabs/striker-testinput/modules/forms"
	"github.com/ClusterLabs/striker-testinput/pkg/httpserver"
	"github.com/ClusterLabs/striker-testinput/pkg/i18n"
	"github.com/ClusterLabs/striker-testinput/pkg/logger"
	"github.com/ClusterLabs/striker-testinput/pkg/ratelimiter"
	"github.com/ClusterLabs/striker-testinput/pkg/requestid"
)

func newServeCmd(envFiles *[]string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the form validation API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*envFiles)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			logger.SetAsDefault(log)

			tr, err := forms.Translations()
			if err != nil {
				return err
			}
			limiter, err := newLimiter(cfg)
			if err != nil {
				return err
			}

			srv := httpserver.New(
				httpserver.WithAddr(cfg.Addr),
				httpserver.WithReadTimeout(cfg.ReadTimeout),
				httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
				httpserver.WithLogger(log),
			)
			return srv.Run(cmd.Context(), newRouter(routerDeps{
				log:              log,
				registry:         forms.Default(),
				translator:       tr,
				limiter:          limiter,
				maxBodyBytes:     cfg.MaxBodyBytes,
				patternCacheSize: cfg.PatternCacheSize,
			}))
		},
	}
}

type routerDeps struct {
	log        *slog.Logger
	registry   *forms.Registry
	translator *i18n.Translator
	// nil disables throttling
	limiter          ratelimiter.Limiter
	maxBodyBytes     int64
	patternCacheSize int
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		httpserver.LogRequests(d.log),
		middleware.Recoverer,
	)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSON(map[string]string{"status": "ok"}).Render(w, r)
	})

	r.Route("/api", func(r chi.Router) {
		if d.limiter != nil {
			r.Use(ratelimiter.Middleware(d.limiter,
				ratelimiter.WithDeniedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_ = handler.JSONError(handler.ErrTooManyRequests).Render(w, r)
				})),
			))
		}
		r.Mount("/forms", forms.NewService(d.registry,
			forms.WithLogger(d.log),
			forms.WithMaxBodyBytes(d.maxBodyBytes),
			forms.WithTranslator(d.translator),
			forms.WithPatternCacheSize(d.patternCacheSize),
		).Handle())
	})

	return r
}
