package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/domain/model/identity"
)

const actorContextKey = "actor"

// requireAuth authenticates the bearer token and stores the resulting actor
// in the request context. Requests without a valid token are rejected before
// the handler runs.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return writeError(ctx, identity.ErrActorIsNotAuthenticated)
		}

		actor, err := s.verifier.Verify(token)
		if err != nil {
			return writeError(ctx, err)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

// actorFrom returns the authenticated actor stored by requireAuth. The zero
// actor is returned on unauthenticated routes; operations that need a caller
// reject it through their access policy.
func actorFrom(ctx echo.Context) identity.Actor {
	actor, ok := ctx.Get(actorContextKey).(identity.Actor)
	if !ok {
		return identity.Actor{}
	}
	return actor
}

// recordMetrics counts every request and observes its latency, labeled by the
// route template rather than the raw path so identifiers do not explode the
// cardinality.
func (s *Server) recordMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if s.metrics == nil {
			return next(ctx)
		}

		start := time.Now()
		err := next(ctx)

		status := ctx.Response().Status
		if err != nil {
			if httpErr, ok := err.(*echo.HTTPError); ok {
				status = httpErr.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		method := ctx.Request().Method
		path := ctx.Path()
		s.metrics.Requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		s.metrics.LatencyMS.WithLabelValues(method, path).Observe(float64(time.Since(start).Milliseconds()))

		return err
	}
}
