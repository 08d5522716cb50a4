package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/contact"
)

const sessionCookie = "contact_session"

var formFields = []contact.Field{contact.FieldName, contact.FieldEmail, contact.FieldMessage}

func corsMiddleware(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "HX-Request", "HX-Target", "HX-Trigger"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// controllerFor returns the caller's form controller, starting a session
// when the cookie is missing or has expired. The cookie is re-issued on every
// hit so it lives as long as the registry entry does.
func (s *server) controllerFor(c *gin.Context) *contact.Controller {
	if id, err := c.Cookie(sessionCookie); err == nil {
		if ctrl, ok := s.sessions.Lookup(id); ok {
			s.setSessionCookie(c, id)
			return ctrl
		}
	}
	id, ctrl := s.sessions.New()
	s.setSessionCookie(c, id)
	return ctrl
}

func (s *server) setSessionCookie(c *gin.Context, id string) {
	c.SetCookie(sessionCookie, id, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
}

// renderForm answers with the form fragment, or JSON for script clients.
func (s *server) renderForm(c *gin.Context, code int, ctrl *contact.Controller) {
	fields, status := ctrl.Snapshot()
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(code, gin.H{"fields": fields, "status": status})
		return
	}
	c.HTML(code, "contact.html", gin.H{
		"fields": fields,
		"status": status,
	})
}

func (s *server) setupContactRoutes(r *gin.Engine) {
	// HTMX contact form fragment
	r.GET("/contact-form", func(c *gin.Context) {
		s.renderForm(c, http.StatusOK, s.controllerFor(c))
	})

	// Polled after a send to pick up the reset
	r.GET("/contact/status", func(c *gin.Context) {
		s.renderForm(c, http.StatusOK, s.controllerFor(c))
	})

	// Per-keystroke updates from hx-trigger="input"
	r.POST("/contact/field", func(c *gin.Context) {
		ctrl := s.controllerFor(c)
		field := contact.Field(c.PostForm("id"))
		value, ok := c.GetPostForm("value")
		if !ok {
			// hx-include sends the input under its own name
			value = c.PostForm(string(field))
		}
		if err := ctrl.UpdateField(field, value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", func(c *gin.Context) {
		ctrl := s.controllerFor(c)

		if _, status := ctrl.Snapshot(); status.Submitting {
			s.renderForm(c, http.StatusConflict, ctrl)
			return
		}

		for _, f := range formFields {
			if v, ok := c.GetPostForm(string(f)); ok {
				// formFields only holds known fields, so this cannot fail.
				_ = ctrl.UpdateField(f, v)
			}
		}

		// Invalid input is dropped without feedback; the form renders as it was.
		ctrl.Submit(c.Request.Context())
		s.renderForm(c, http.StatusOK, ctrl)
	})
}
