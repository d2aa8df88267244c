package server

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"quizkit/internal/page"
	"quizkit/internal/quiz"
)

// submitAction posts back to the page and jumps to the score display.
const submitAction = "/submit#result"

// handleIndex renders the quiz in its unanswered state.
func (s *Server) handleIndex(c *gin.Context) {
	form, diagnostic := s.current()
	if form == nil {
		s.writePage(c, http.StatusServiceUnavailable, page.FailurePage(diagnostic, stylesheetURL))
		return
	}
	s.writePage(c, http.StatusOK, page.QuizPage(page.View{
		Form:          form,
		State:         quiz.NewState(form),
		StylesheetURL: stylesheetURL,
		Action:        submitAction,
	}))
}

// handleSubmit evaluates posted answers and re-renders the page with the outcome.
func (s *Server) handleSubmit(c *gin.Context) {
	form, diagnostic := s.current()
	if form == nil {
		s.writePage(c, http.StatusServiceUnavailable, page.FailurePage(diagnostic, stylesheetURL))
		return
	}
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form submission")
		return
	}
	state := page.StateFromValues(form, c.Request.PostForm)
	view := page.View{
		Form:          form,
		State:         state,
		StylesheetURL: stylesheetURL,
		Action:        submitAction,
	}

	result, err := s.evaluator.Evaluate(form, state)
	var incomplete *quiz.IncompleteSubmissionError
	switch {
	case errors.As(err, &incomplete):
		view.Notice = page.NoticeIncomplete
		s.writePage(c, http.StatusUnprocessableEntity, page.QuizPage(view))
	case err != nil:
		s.log.Error().Err(err).Msg("evaluate submission")
		c.String(http.StatusInternalServerError, "evaluation failed")
	default:
		view.Result = &result
		s.log.Debug().Int("correct", result.CorrectCount).Int("total", result.Total).Str("tier", string(result.Tier)).Msg("submission scored")
		s.writePage(c, http.StatusOK, page.QuizPage(view))
	}
}

func (s *Server) writePage(c *gin.Context, status int, component templ.Component) {
	html, err := page.Render(c.Request.Context(), component)
	if err != nil {
		s.log.Error().Err(err).Msg("render page")
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(html))
}
