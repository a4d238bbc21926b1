package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"gridpath/astar"
	"gridpath/grid"
	"gridpath/models"
)

// Server exposes the path finder over HTTP and websocket.
type Server struct {
	finder   *astar.Finder
	logger   *zap.Logger
	upgrader websocket.Upgrader
}

func New(finder *astar.Finder, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		finder: finder,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ret": models.RetOK})
	})
	r.POST("/path", s.findPath)
	r.GET("/ws", s.serveWs)
	return r
}

func (s *Server) Run(addr string) error {
	s.logger.Info("path service listening", zap.String("addr", addr))
	return s.Router().Run(addr)
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func (s *Server) findPath(c *gin.Context) {
	req := &models.FindPathReq{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResp(errors.Wrap(err, "decode request")))
		return
	}
	resp, status := s.solve(req)
	c.JSON(status, resp)
}

var errUnwalkable = errors.New("tile is unwalkable")

// solve validates the request the way the interactive shell validates typed
// coordinates, then searches. The HTTP status is returned for the JSON route.
func (s *Server) solve(req *models.FindPathReq) (*models.FindPathResp, int) {
	g, err := req.Grid()
	if err != nil {
		return models.NewErrorResp(err), http.StatusBadRequest
	}
	start, end, err := req.Endpoints()
	if err != nil {
		return models.NewErrorResp(err), http.StatusBadRequest
	}
	for _, pt := range []grid.Point{start, end} {
		cell, err := g.Cell(pt)
		if err != nil {
			return models.NewErrorResp(err), http.StatusBadRequest
		}
		if !cell.Walkable {
			return models.NewErrorResp(errors.Wrapf(errUnwalkable, "%v", pt)), http.StatusBadRequest
		}
	}

	result, err := s.finder.FindPath(g, start, end)
	if err != nil {
		s.logger.Warn("search failed", zap.Error(err))
		return models.NewErrorResp(err), http.StatusUnprocessableEntity
	}
	s.logger.Debug("search done",
		zap.Int("width", g.Width()),
		zap.Int("height", g.Height()),
		zap.Bool("found", result.Found),
		zap.Int("expanded", result.Expanded))
	return models.NewFindPathResp(result), http.StatusOK
}
