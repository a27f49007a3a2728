package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// acquireLockHandler handles POST /api/v1/locks. A name with a live
// holder answers 409 so the caller can back off and retry.
func (s *Server) acquireLockHandler(c *gin.Context) {
	var req models.AcquireLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	lock, err := s.deps.Locks.Acquire(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.LockResponse{ResourceLock: lock})
}

// releaseLockHandler handles POST /api/v1/locks/release. Only the owner
// may release; anyone else gets a 403.
func (s *Server) releaseLockHandler(c *gin.Context) {
	var req models.ReleaseLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	if err := s.deps.Locks.Release(c.Request.Context(), req.Name, req.OwnerAgentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getLockHandler handles GET /api/v1/locks/:name, returning the active
// lock for a name or 404 when nobody holds it.
func (s *Server) getLockHandler(c *gin.Context) {
	lock, err := s.deps.Locks.GetActive(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LockResponse{ResourceLock: lock})
}

// listLocksHandler handles GET /api/v1/locks. active=true narrows the
// list to currently held locks.
func (s *Server) listLocksHandler(c *gin.Context) {
	locks, err := s.deps.Locks.List(c.Request.Context(), c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.LocksResponse{Locks: locks})
}
