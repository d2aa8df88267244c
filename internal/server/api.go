package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"quizkit/internal/question"
	"quizkit/internal/quiz"
	"quizkit/internal/response"
	"quizkit/internal/validator"
)

// quizView is the student-facing form: prompts and options, no correctness metadata.
type quizView struct {
	Title             string         `json:"title,omitempty"`
	UnsupportedPolicy string         `json:"unsupported_policy"`
	Questions         []questionView `json:"questions"`
}

type questionView struct {
	Index       int      `json:"index"`
	Type        string   `json:"type"`
	Prompt      string   `json:"prompt"`
	Group       string   `json:"group"`
	Options     []string `json:"options,omitempty"`
	Unsupported bool     `json:"unsupported,omitempty"`
}

type evaluateRequest struct {
	Answers []answerRequest `json:"answers" binding:"required,dive"`
}

type answerRequest struct {
	Index    *int     `json:"index" binding:"required,min=0"`
	Selected []string `json:"selected"`
	Text     string   `json:"text"`
}

type evaluateResponse struct {
	CorrectCount       int     `json:"correct_count"`
	Total              int     `json:"total"`
	PerQuestionCorrect []bool  `json:"per_question_correct"`
	Incorrect          []int   `json:"incorrect"`
	Tier               string  `json:"tier"`
	Percentage         float64 `json:"percentage"`
	Score              string  `json:"score"`
	Message            string  `json:"message"`
}

type incompleteDetails struct {
	Unanswered []int `json:"unanswered"`
}

type malformedDetails struct {
	Diagnostic string `json:"diagnostic"`
}

type reloadResponse struct {
	Questions int `json:"questions"`
}

// handleQuiz returns the student view of the current form.
func (s *Server) handleQuiz(c *gin.Context) {
	form, diagnostic := s.current()
	if form == nil {
		response.FailWithDetails(c, http.StatusServiceUnavailable, response.ErrQuizUnavailable, malformedDetails{Diagnostic: diagnostic})
		return
	}
	response.Success(c, http.StatusOK, newQuizView(form, s.evaluator.Policy()))
}

// handleEvaluate scores a JSON submission.
func (s *Server) handleEvaluate(c *gin.Context) {
	form, diagnostic := s.current()
	if form == nil {
		response.FailWithDetails(c, http.StatusServiceUnavailable, response.ErrQuizUnavailable, malformedDetails{Diagnostic: diagnostic})
		return
	}
	var req evaluateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	responses := make([]quiz.Response, 0, len(req.Answers))
	for _, answer := range req.Answers {
		responses = append(responses, quiz.Response{Index: *answer.Index, Selected: answer.Selected, Text: answer.Text})
	}
	state, err := quiz.StateFromResponses(form, responses)
	if err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidPayload, map[string]string{"answers": err.Error()})
		return
	}

	result, err := s.evaluator.Evaluate(form, state)
	var incomplete *quiz.IncompleteSubmissionError
	switch {
	case errors.As(err, &incomplete):
		response.FailWithDetails(c, http.StatusUnprocessableEntity, response.ErrIncompleteSubmission, incompleteDetails{Unanswered: incomplete.Unanswered})
	case err != nil:
		s.log.Error().Err(err).Msg("evaluate submission")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	default:
		response.Success(c, http.StatusOK, newEvaluateResponse(form, result))
	}
}

// handleReload re-reads the bank. A failed reload keeps serving the previous form.
func (s *Server) handleReload(c *gin.Context) {
	if err := s.Reload(); err != nil {
		s.log.Warn().Err(err).Msg("reload rejected")
		var validationErr *question.ValidationError
		if errors.As(err, &validationErr) {
			fields := make(map[string]string, len(validationErr.Issues))
			for _, issue := range validationErr.Issues {
				fields[issue.Field] = issue.Message
			}
			response.FailWithFields(c, http.StatusUnprocessableEntity, response.ErrValidation, fields)
			return
		}
		response.FailWithDetails(c, http.StatusUnprocessableEntity, response.ErrMalformedBank, malformedDetails{Diagnostic: diagnosticFor(err)})
		return
	}
	form, _ := s.current()
	response.Success(c, http.StatusOK, reloadResponse{Questions: form.Len()})
}

func newQuizView(form *quiz.Form, policy quiz.UnsupportedPolicy) quizView {
	view := quizView{
		Title:             form.Title,
		UnsupportedPolicy: policy.String(),
		Questions:         make([]questionView, 0, form.Len()),
	}
	for _, item := range form.Questions {
		entry := questionView{
			Index:       item.Index,
			Type:        string(item.Type),
			Prompt:      item.Prompt,
			Group:       item.Group,
			Unsupported: item.Unsupported,
		}
		for _, control := range item.Controls {
			entry.Options = append(entry.Options, control.Value)
		}
		view.Questions = append(view.Questions, entry)
	}
	return view
}

func newEvaluateResponse(form *quiz.Form, result quiz.ScoreResult) evaluateResponse {
	incorrect := result.Incorrect
	if incorrect == nil {
		incorrect = []int{}
	}
	return evaluateResponse{
		CorrectCount:       result.CorrectCount,
		Total:              result.Total,
		PerQuestionCorrect: result.PerQuestionCorrect,
		Incorrect:          incorrect,
		Tier:               string(result.Tier),
		Percentage:         result.Percentage,
		Score:              result.ScoreLine(),
		Message:            result.Tier.Message(form.Feedback),
	}
}
