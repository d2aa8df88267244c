package server

import (
	"encoding/json"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"quizkit/internal/page"
	"quizkit/internal/question"
	"quizkit/internal/quiz"
)

const smallBank = `title: Arithmetic
questions:
  - question: "2 + 2?"
    type: single-answer
    options: ["3", "4"]
    answer: "4"
  - question: Even numbers
    type: multiple-answer
    options: ["1", "2", "4"]
    answer: ["2", "4"]
  - question: Spell 3
    type: free-form
    answer: three
`

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
		Details json.RawMessage   `json:"details"`
	} `json:"error"`
	Metadata struct {
		RequestID string `json:"request_id"`
	} `json:"metadata"`
}

func writeBank(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	return path
}

func newTestHandler(t *testing.T, cfg Config) (*Server, http.Handler) {
	t.Helper()
	cfg.GinMode = "test"
	cfg.Logger = zerolog.Nop()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	handler, err := s.Handler()
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return s, handler
}

func do(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func postForm(handler http.Handler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(handler, req)
}

func postJSON(handler http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return do(handler, req)
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope %q: %v", resp.Body.String(), err)
	}
	return body
}

// TestIndexServesQuiz ensures the root path renders the embedded quiz.
func TestIndexServesQuiz(t *testing.T) {
	_, handler := newTestHandler(t, Config{})
	resp := do(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `<ol class="quiz-list">`) || !strings.Contains(body, `action="/submit#result"`) {
		t.Fatalf("expected quiz form in page")
	}
	if !strings.Contains(body, stylesheetURL) {
		t.Fatalf("expected stylesheet link")
	}
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

// TestAssetsServed ensures the embedded stylesheet is reachable.
func TestAssetsServed(t *testing.T) {
	_, handler := newTestHandler(t, Config{})
	resp := do(handler, httptest.NewRequest(http.MethodGet, stylesheetURL, nil))
	if resp.Code != http.StatusOK || !strings.Contains(resp.Body.String(), ".quiz-list") {
		t.Fatalf("unexpected asset response %d", resp.Code)
	}
}

// TestSubmitScoresCompleteForm verifies a complete submission shows the score and incorrect marks.
func TestSubmitScoresCompleteForm(t *testing.T) {
	_, handler := newTestHandler(t, Config{BankPath: writeBank(t, smallBank)})
	values := url.Values{}
	values.Set("question1", "4")
	values["question2"] = []string{"2"}
	values.Set("question3", " Three ")
	resp := postForm(handler, values)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Your Score: 2 / 3") {
		t.Fatalf("expected score in page: %s", body)
	}
	if !strings.Contains(body, `<li class="question multiple-answer incorrect" data-question-index="1">`) {
		t.Fatalf("expected multiple-answer question marked incorrect")
	}
	if !strings.Contains(body, `value=" Three "`) {
		t.Fatalf("expected free text to be preserved")
	}
	if !strings.Contains(body, html.EscapeString(quiz.TierGood.Message(question.Feedback{}))) {
		t.Fatalf("expected tier message in page")
	}
	if !strings.Contains(body, `<form method="post" action="/submit#result">`) || !strings.Contains(body, `<section id="result"`) {
		t.Fatalf("expected the re-rendered form to target the score display")
	}
}

// TestSubmitIncompleteShowsNotice verifies incomplete submissions are refused with the notice.
func TestSubmitIncompleteShowsNotice(t *testing.T) {
	_, handler := newTestHandler(t, Config{BankPath: writeBank(t, smallBank)})
	values := url.Values{}
	values.Set("question1", "4")
	resp := postForm(handler, values)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, page.NoticeIncomplete) {
		t.Fatalf("expected incomplete notice")
	}
	if strings.Contains(body, "Your Score") {
		t.Fatalf("expected no score for incomplete submission")
	}
	if !strings.Contains(body, `value="4" data-correct="true" checked`) {
		t.Fatalf("expected selection to be preserved")
	}
}

// TestAPIQuizHidesAnswers verifies the student view carries no correctness metadata.
func TestAPIQuizHidesAnswers(t *testing.T) {
	_, handler := newTestHandler(t, Config{BankPath: writeBank(t, smallBank)})
	resp := do(handler, httptest.NewRequest(http.MethodGet, "/api/v1/quiz", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "correct") || strings.Contains(resp.Body.String(), "three") {
		t.Fatalf("expected no answer data in %s", resp.Body.String())
	}
	var view quizView
	if err := json.Unmarshal(decodeEnvelope(t, resp).Data, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Title != "Arithmetic" || len(view.Questions) != 3 || view.Questions[1].Group != "question2" {
		t.Fatalf("unexpected view: %+v", view)
	}
	if view.UnsupportedPolicy != "block" {
		t.Fatalf("unexpected policy %q", view.UnsupportedPolicy)
	}
}

// TestAPIEvaluate verifies JSON submissions are scored.
func TestAPIEvaluate(t *testing.T) {
	_, handler := newTestHandler(t, Config{BankPath: writeBank(t, smallBank)})
	resp := postJSON(handler, "/api/v1/quiz/evaluate", `{"answers":[
		{"index":0,"selected":["4"]},
		{"index":1,"selected":["2","4"]},
		{"index":2,"text":"THREE"}
	]}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var result evaluateResponse
	if err := json.Unmarshal(decodeEnvelope(t, resp).Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.CorrectCount != 3 || result.Total != 3 || result.Tier != "perfect" || result.Score != "Your Score: 3 / 3" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Incorrect == nil || len(result.Incorrect) != 0 {
		t.Fatalf("expected empty incorrect list, got %v", result.Incorrect)
	}
}

// TestAPIEvaluateErrors verifies validation, unknown options, and incomplete submissions.
func TestAPIEvaluateErrors(t *testing.T) {
	_, handler := newTestHandler(t, Config{BankPath: writeBank(t, smallBank)})
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{name: "missing answers", body: `{}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "negative index", body: `{"answers":[{"index":-1}]}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "unknown option", body: `{"answers":[{"index":0,"selected":["5"]}]}`, status: http.StatusBadRequest, code: "INVALID_PAYLOAD"},
		{name: "incomplete", body: `{"answers":[{"index":0,"selected":["4"]}]}`, status: http.StatusUnprocessableEntity, code: "INCOMPLETE_SUBMISSION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postJSON(handler, "/api/v1/quiz/evaluate", tc.body)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, resp.Code, resp.Body.String())
			}
			body := decodeEnvelope(t, resp)
			if body.Error == nil || body.Error.Code != tc.code {
				t.Fatalf("expected code %s, got %+v", tc.code, body.Error)
			}
		})
	}

	resp := postJSON(handler, "/api/v1/quiz/evaluate", `{"answers":[{"index":0,"selected":["4"]}]}`)
	var details incompleteDetails
	if err := json.Unmarshal(decodeEnvelope(t, resp).Error.Details, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if len(details.Unanswered) != 2 || details.Unanswered[0] != 1 || details.Unanswered[1] != 2 {
		t.Fatalf("unexpected unanswered list %v", details.Unanswered)
	}
}

// TestReloadKeepsPreviousFormOnFailure verifies reload swaps the form only when the new bank renders.
func TestReloadKeepsPreviousFormOnFailure(t *testing.T) {
	path := writeBank(t, smallBank)
	s, handler := newTestHandler(t, Config{BankPath: path})

	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	resp := postJSON(handler, "/api/v1/quiz/reload", "")
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
	if body := decodeEnvelope(t, resp); body.Error == nil || body.Error.Code != "MALFORMED_BANK" {
		t.Fatalf("expected malformed bank error, got %s", resp.Body.String())
	}
	if form, _ := s.current(); form.Len() != 3 {
		t.Fatalf("expected previous form to stay, got %d questions", form.Len())
	}

	if err := os.WriteFile(path, []byte("- question: Only\n  type: free-form\n  answer: yes\n"), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}
	resp = postJSON(handler, "/api/v1/quiz/reload", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if form, _ := s.current(); form.Len() != 1 {
		t.Fatalf("expected reloaded form, got %d questions", form.Len())
	}
}

// TestMalformedBankServesFailurePage verifies an unrenderable bank yields the diagnostic, not a crash.
func TestMalformedBankServesFailurePage(t *testing.T) {
	_, handler := newTestHandler(t, Config{BankPath: writeBank(t, "questions: []\n")})
	resp := do(handler, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), page.FailureHeading) || strings.Contains(resp.Body.String(), "quiz-list") {
		t.Fatalf("expected failure page, got %s", resp.Body.String())
	}
	apiResp := do(handler, httptest.NewRequest(http.MethodGet, "/api/v1/quiz", nil))
	if apiResp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected API status 503, got %d", apiResp.Code)
	}
}

// TestStrictRejectsInvalidBank verifies strict mode refuses to start on validation issues.
func TestStrictRejectsInvalidBank(t *testing.T) {
	path := writeBank(t, "- question: Pick\n  type: single-answer\n  options: [a]\n  answer: b\n")
	if _, err := New(Config{BankPath: path, Strict: true, Logger: zerolog.Nop()}); err == nil {
		t.Fatalf("expected strict mode to reject the bank")
	}
}

// TestHealthAndNotFound verifies the health check and JSON 404s.
func TestHealthAndNotFound(t *testing.T) {
	_, handler := newTestHandler(t, Config{})
	if resp := do(handler, httptest.NewRequest(http.MethodGet, "/health", nil)); resp.Code != http.StatusOK {
		t.Fatalf("expected health 200, got %d", resp.Code)
	}
	resp := do(handler, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if body := decodeEnvelope(t, resp); body.Error == nil || body.Error.Code != "NOT_FOUND" {
		t.Fatalf("unexpected 404 body %s", resp.Body.String())
	}
}
