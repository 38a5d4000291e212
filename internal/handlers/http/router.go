// Package http exposes the job watcher and the claim view over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /v1/jobs/:id          last stored snapshot of a job
//	GET /v1/jobs/:id/watch    NDJSON stream of snapshots until the job settles
//	GET /v1/claims/:hash      claim resolution, NDJSON stream with ?follow=true
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gabapcia/claimwatch/internal/claimview"
	"github.com/gabapcia/claimwatch/internal/jobwatch"
	"github.com/gabapcia/claimwatch/internal/pkg/logger"
	"github.com/gabapcia/claimwatch/internal/pkg/validator"
	"github.com/gabapcia/claimwatch/internal/pkg/x/chflow"

	"github.com/gin-gonic/gin"
)

const ndjsonContentType = "application/x-ndjson"

type handler struct {
	jobs   jobwatch.Service
	claims claimview.Service
}

// NewRouter builds the gin engine serving jobs and claims.
func NewRouter(jobs jobwatch.Service, claims claimview.Service) *gin.Engine {
	h := handler{jobs: jobs, claims: claims}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	r.GET("/healthz", h.health)

	v1 := r.Group("/v1")
	{
		jobs := v1.Group("/jobs")
		jobs.GET("/:id", h.lastKnown)
		jobs.GET("/:id/watch", h.watch)

		v1.GET("/claims/:hash", h.claim)
	}

	return r
}

// requestLogger logs every request once it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		keysAndValues := []any{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"latency", time.Since(start),
		}

		if len(c.Errors) > 0 {
			logger.Error(ctx, "request failed", append(keysAndValues, "error", c.Errors.String())...)
			return
		}
		logger.Info(ctx, "request served", keysAndValues...)
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, validator.ErrValidation),
		errors.Is(err, jobwatch.ErrNetworkNotRegistered):
		return http.StatusBadRequest
	case errors.Is(err, jobwatch.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusOf(err), gin.H{"error": err.Error()})
}

// stream writes every value received from ch as one JSON line, flushing after
// each so clients see snapshots as they happen.
func stream[T any](c *gin.Context, ch <-chan T) {
	c.Header("Content-Type", ndjsonContentType)
	c.Status(http.StatusOK)

	encoder := json.NewEncoder(c.Writer)
	for {
		v, ok := chflow.Receive(c.Request.Context(), ch)
		if !ok {
			return
		}

		if err := encoder.Encode(v); err != nil {
			_ = c.Error(err)
			return
		}
		c.Writer.Flush()
	}
}

func (h handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h handler) lastKnown(c *gin.Context) {
	session, err := h.jobs.LastKnown(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h handler) watch(c *gin.Context) {
	sessionCh, err := h.jobs.Watch(c.Request.Context(), c.Query("network"), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	stream(c, sessionCh)
}

func (h handler) claim(c *gin.Context) {
	follow, _ := strconv.ParseBool(c.Query("follow"))
	if follow {
		resolutionCh, err := h.claims.Follow(c.Request.Context(), c.Param("hash"))
		if err != nil {
			abortWithError(c, err)
			return
		}

		stream(c, resolutionCh)
		return
	}

	res, err := h.claims.Resolve(c.Request.Context(), c.Param("hash"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
