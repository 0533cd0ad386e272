package middleware

import (
	"context"
	"net/http"

	"builder_estimates/internal/domain/cart"
	"builder_estimates/internal/domain/session"
	"builder_estimates/internal/infrastructure/config"
	"builder_estimates/internal/usecase/interfaces"
	"builder_estimates/pkg"
	"builder_estimates/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxSession = "session"

var errSessionUnavailable = pkg.NewDomainErrorSimple("SESSION_UNAVAILABLE", "Session store unavailable", http.StatusServiceUnavailable)

// Sessions loads the visitor session before the handler and persists it, when the
// handler modified it, before the response is sent. The handler's response is held
// until the save succeeds; a failed save replaces it with 503. The cookie carries a
// sliding expiry.
func Sessions(store interfaces.ISessionStore, cfg config.SessionConfig, log *logger.Logger) gin.HandlerFunc {
	log = log.With("component", "SessionMiddleware")
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var s *session.Session
		id, err := c.Cookie(cfg.CookieName)
		if err == nil && validSessionID(id) {
			data, found, err := store.Load(ctx, id)
			if err != nil {
				log.Error("load session", "error", err)
				c.AbortWithStatusJSON(errSessionUnavailable.HTTPStatus, errSessionUnavailable.ToHTTPError())
				return
			}
			if found {
				s = session.Restore(id, data)
			} else {
				s = session.New(id)
			}
		} else {
			s = session.New(uuid.NewString())
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, s.ID(), int(cfg.TTL.Seconds()), "/", "", cfg.CookieSecure, true)
		c.Set(ctxSession, s)

		orig := c.Writer
		held := holdResponse(orig)
		c.Writer = held
		defer func() { c.Writer = orig }()

		c.Next()

		c.Writer = orig
		if err := persist(ctx, store, s, cfg); err != nil {
			log.Error("save session", "session_id", s.ID(), "error", err)
			h := orig.Header()
			h.Del("Location")
			h.Del("Content-Type")
			h.Del("Content-Length")
			c.AbortWithStatusJSON(errSessionUnavailable.HTTPStatus, errSessionUnavailable.ToHTTPError())
			return
		}
		held.release()
	}
}

// persist writes a modified session back, deleting it once the cart is gone.
func persist(ctx context.Context, store interfaces.ISessionStore, s *session.Session, cfg config.SessionConfig) error {
	if !s.Modified() {
		return nil
	}
	data := s.Data()
	if data.Cart == nil {
		return store.Delete(ctx, s.ID())
	}
	return store.Save(ctx, s.ID(), data, cfg.TTL)
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Session returns the request's session. Outside the Sessions middleware it returns
// a throwaway session so handlers never see nil.
func Session(c *gin.Context) *session.Session {
	if v, ok := c.Get(ctxSession); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	s := session.New(uuid.NewString())
	c.Set(ctxSession, s)
	return s
}

// Cart returns the session cart, creating it on first access.
func Cart(c *gin.Context) *cart.Cart {
	return Session(c).Cart()
}
