// Package server exposes the loaded dataset over HTTP: the dashboard page,
// the CSV export, the sponsor chart, and the JSON API.
package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mohammad-safakhou/billtracker/config"
	"github.com/mohammad-safakhou/billtracker/internal/bills"
	"github.com/mohammad-safakhou/billtracker/internal/search"
	"github.com/mohammad-safakhou/billtracker/internal/telemetry"
)

// Server holds the request-time dependencies. The dataset and the search
// index are immutable after construction.
type Server struct {
	cfg    *config.Config
	data   *bills.Dataset
	search *search.Index
	tele   *telemetry.Telemetry
	logger *log.Logger
}

// New wires a server around an already-loaded dataset.
func New(cfg *config.Config, data *bills.Dataset, idx *search.Index, tele *telemetry.Telemetry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.Writer(), "[HTTP] ", log.LstdFlags)
	}
	return &Server{cfg: cfg, data: data, search: idx, tele: tele, logger: logger}
}

// Echo builds the configured echo instance with all routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := err.Error()
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		req := c.Request()
		s.logger.Printf("%d %s %s from %s: %v", code, req.Method, req.URL.Path, c.RealIP(), err)
		if !c.Response().Committed {
			_ = c.JSON(code, map[string]interface{}{"error": msg})
		}
	}
	if s.tele != nil {
		e.Use(s.observe)
	}

	e.GET("/", s.handleDashboard)
	e.GET("/export.csv", s.handleExport)
	e.GET("/chart/sponsors.png", s.handleSponsorChart)
	e.GET("/healthz", func(c echo.Context) error { return c.String(200, "ok") })
	registerDocs(e)

	api := e.Group("/api")
	api.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))
	api.GET("/bills", s.handleAPIBills)
	api.GET("/summary", s.handleAPISummary)

	if s.cfg.Telemetry.Enabled && s.tele != nil {
		e.GET("/metrics", echo.WrapHandler(s.tele.Handler()))
	}
	return e
}

func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
			err = nil
		}
		s.tele.ObserveRequest(c.Request().Method, c.Path(), c.Response().Status, time.Since(start))
		return err
	}
}

// Run loads the dataset per the config, builds the search index and the
// instruments, and serves until the listener fails.
func Run(cfg *config.Config) error {
	loadLogger := log.New(log.Writer(), "[DATA] ", log.LstdFlags)
	data, err := bills.Load(cfg.Data.SummaryCSV, cfg.Data.RawDir, loadLogger, cfg.General.Debug)
	if err != nil {
		return err
	}

	idx, err := search.Build(data.Bills())
	if err != nil {
		return err
	}

	tele := telemetry.New()
	tele.BillsLoaded.Set(float64(data.Len()))
	tele.RawSkipped.Set(float64(data.SkippedRaw()))

	srv := New(cfg, data, idx, tele, nil)
	e := srv.Echo()
	log.Printf("listening on %s", cfg.Server.Listen)
	return e.Start(cfg.Server.Listen)
}
