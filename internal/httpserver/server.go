package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/tinytelemetry/widgetdeck/internal/form"
	"github.com/tinytelemetry/widgetdeck/internal/model"
	"github.com/tinytelemetry/widgetdeck/internal/store"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

// Options configure the API server.
type Options struct {
	Addr string
	// RateLimit is the sustained requests per second; zero disables limiting.
	RateLimit float64
	Logger    *zap.Logger
}

// Server exposes the form widgets' validate/compute pipeline and the
// persisted store keys over HTTP.
type Server struct {
	addr      string
	widgets   *widget.Registry
	deps      widget.Deps
	store     model.KVReader
	limiter   *rate.Limiter
	logger    *zap.Logger
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server. deps.KV backs the /api/store
// routes and may be nil, in which case they report 503.
func NewServer(reg *widget.Registry, deps widget.Deps, opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = model.DefaultAPIAddr
	}
	deps = deps.WithDefaults()
	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(1, int(opts.RateLimit)))
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		addr:      opts.Addr,
		widgets:   reg,
		deps:      deps,
		limiter:   limiter,
		store:     deps.KV,
		logger:    deps.Logger,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
	if opts.Logger != nil {
		s.logger = opts.Logger
	}
	return s
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.limiter != nil {
		r.Use(rateLimit(s.limiter))
	}

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/widgets", s.handleWidgets)
	api.POST("/widgets/:id/evaluate", s.handleEvaluate)
	api.GET("/store", s.handleKeys)
	api.GET("/store/:key", s.handleValue)
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()
	s.logger.Info("api listening", zap.String("addr", listener.Addr().String()))

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server stopped", zap.Error(err))
		}
	}()
	return nil
}

// Run starts the server and blocks until ctx is done, then shuts it down.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(); err != nil {
		return err
	}
	<-ctx.Done()
	return s.Stop()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func rateLimit(l *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"uptime":  time.Since(s.startTime).String(),
		"widgets": s.widgets.Len(),
	})
}

type fieldInfo struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
}

type widgetInfo struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Mode        string      `json:"mode"`
	Fields      []fieldInfo `json:"fields"`
}

func (s *Server) handleWidgets(c *gin.Context) {
	forms := s.widgets.Forms()
	out := make([]widgetInfo, 0, len(forms))
	for _, spec := range forms {
		eval := spec.NewForm(s.deps)
		fields := eval.Fields()
		info := widgetInfo{
			ID:          spec.ID,
			Title:       spec.Title,
			Description: spec.Description,
			Mode:        eval.Mode().String(),
			Fields:      make([]fieldInfo, 0, len(fields)),
		}
		for _, f := range fields {
			info.Fields = append(info.Fields, fieldInfo{Name: f.Name, Label: f.Label, Placeholder: f.Placeholder})
		}
		out = append(out, info)
	}
	c.JSON(http.StatusOK, gin.H{"widgets": out})
}

func (s *Server) handleEvaluate(c *gin.Context) {
	spec, ok := s.widgets.Lookup(c.Param("id"))
	if !ok || spec.Kind != widget.KindForm {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown form widget"})
		return
	}

	var req struct {
		Fields map[string]string `json:"fields"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
	}

	// A fresh form per request keeps concurrent requests independent.
	eval := spec.NewForm(s.deps)
	if unknown := form.Apply(eval, req.Fields); len(unknown) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown fields", "fields": unknown})
		return
	}

	out := eval.Evaluate()
	if out.Status != form.StatusOk {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "invalid", "error": out.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "result": out.Lines})
}

func (s *Server) handleKeys(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no store configured"})
		return
	}
	keys, err := s.store.Keys(c.Request.Context())
	if err != nil {
		s.logger.Error("list keys failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list keys"})
		return
	}
	if keys == nil {
		keys = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// handleValue returns the raw JSON stored under a key.
func (s *Server) handleValue(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no store configured"})
		return
	}
	value, err := store.Lookup(c.Request.Context(), s.store, c.Param("key"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "key not found"})
		return
	case err != nil:
		s.logger.Error("read key failed", zap.String("key", c.Param("key")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read key"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(value))
}
