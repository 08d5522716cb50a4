package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/projects"
)

// server bundles the per-process state shared by every route.
type server struct {
	cfg        config.Config
	sessions   *contact.Registry
	metrics    *metrics.Store
	adminToken string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var envFile, port, templates string
	flagSet := pflag.NewFlagSet("folio", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flagSet.StringVar(&port, "port", "", "listen port (overrides PORT)")
	flagSet.StringVar(&templates, "templates", "", "template glob (overrides TEMPLATE_GLOB)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Load(envFile)
	if port != "" {
		cfg.Port = port
	}
	if templates != "" {
		cfg.TemplateGlob = templates
	}

	store, err := metrics.Open(cfg.MetricsDSN)
	if err != nil {
		return err
	}
	defer store.Close()

	s := newServer(cfg, contact.NewHTTPRelay(cfg.FormEndpoint, cfg.FormTimeout), store)
	defer s.sessions.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go s.sessions.Run(ctx, time.Minute)
	go cleanupOldVisitorData(store)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s.router(gin.Default()),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Listening on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newServer wires a session registry whose controllers report outcomes to
// the metrics store. opts are passed to every new controller.
func newServer(cfg config.Config, relay contact.Relay, store *metrics.Store, opts ...contact.Option) *server {
	s := &server{cfg: cfg, metrics: store}
	opts = append(opts, contact.WithObserver(s.recordSubmission))
	s.sessions = contact.NewRegistry(cfg.SessionTTL, func() *contact.Controller {
		return contact.NewController(relay, opts...)
	})
	s.initAdminToken()
	return s
}

func (s *server) recordSubmission(sent bool) {
	if err := s.metrics.RecordSubmission(sent); err != nil {
		log.Printf("Error recording submission: %v", err)
	}
}

func (s *server) router(r *gin.Engine) *gin.Engine {
	r.LoadHTMLGlob(s.cfg.TemplateGlob)
	r.Use(corsMiddleware(s.cfg.AllowedOrigins))
	r.Use(s.visitorTrackingMiddleware())

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		ctrl := s.controllerFor(c)
		fields, status := ctrl.Snapshot()
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent": AboutMe,
			"projects":       projects.Cards(projects.Catalog),
			"fields":         fields,
			"status":         status,
		})
	})

	// Work experience content
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "work-content.html", gin.H{
			"entries": WorkHistory,
		})
	})

	// Education content
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "education-content.html", gin.H{
			"entries": Education,
		})
	})

	// Liveness for the load balancer
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.setupContactRoutes(r)
	s.setupAdminRoutes(r)
	return r
}
