package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"prepstock/adapters/snapshot"
	"prepstock/core/score"
	"prepstock/internal/errors"
	"prepstock/internal/logging"
)

// Request bodies use the snapshot format (household + items). YAML is a
// superset of JSON, so the snapshot parser ingests both and applies the same
// clamping rules as the CLI path.

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Version: s.version})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": s.version})
}

func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.engine.Catalog())
}

func (s *Server) handleReport(c *gin.Context) {
	snap, ok := s.readSnapshot(c)
	if !ok {
		return
	}
	report := s.engine.Report(snap.Household, snap.Items)
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleScore(c *gin.Context) {
	snap, ok := s.readSnapshot(c)
	if !ok {
		return
	}
	n := s.engine.Score(snap.Household, snap.Items)
	c.JSON(http.StatusOK, scoreResponse{Score: n, Tier: string(score.Tier(n))})
}

func (s *Server) readSnapshot(c *gin.Context) (*snapshot.Snapshot, bool) {
	body, err := c.GetRawData()
	if err != nil {
		s.writeError(c, http.StatusBadRequest, errors.Snapshot("reading request body", err))
		return nil, false
	}

	snap, err := snapshot.Parse(body)
	if err != nil {
		s.writeError(c, http.StatusBadRequest, err)
		return nil, false
	}
	return snap, true
}

func (s *Server) writeError(c *gin.Context, status int, err error) {
	logging.Warn("request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err))

	resp := errorResponse{Type: string(errors.TypeInternal), Message: err.Error()}
	if e, ok := err.(*errors.Error); ok {
		resp.Type = string(e.Type)
		resp.Message = e.Message
	}
	c.AbortWithStatusJSON(status, resp)
}
