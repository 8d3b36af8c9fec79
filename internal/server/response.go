package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/moneypath/internal/i18n"
)

// coursesURL is where not-found pages send the learner.
const coursesURL = "/courses"

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`

	// Link is a recovery route for the learner.
	Link     string `json:"link,omitempty"`
	LinkText string `json:"linkText,omitempty"`

	// Missing lists required task keys that block completion.
	Missing []string `json:"missing,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func (s *Server) locale(c *gin.Context) string {
	return requestLocale(c, s.deps.Locale)
}

func (s *Server) respondError(c *gin.Context, status int, code string, key i18n.Key, args ...any) {
	c.AbortWithStatusJSON(status, errorEnvelope{Error: apiError{
		Code:    code,
		Message: i18n.T(s.locale(c), key, args...),
	}})
}

func (s *Server) respondNotFound(c *gin.Context, code string, key i18n.Key) {
	loc := s.locale(c)
	c.AbortWithStatusJSON(http.StatusNotFound, errorEnvelope{Error: apiError{
		Code:     code,
		Message:  i18n.T(loc, key),
		Link:     coursesURL,
		LinkText: i18n.T(loc, i18n.BackToCourses),
	}})
}

// respondInternal attaches err for the request log and answers with a
// generic localized message.
func (s *Server) respondInternal(c *gin.Context, err error, key i18n.Key) {
	_ = c.Error(err)
	s.respondError(c, http.StatusInternalServerError, "internal", key)
}
