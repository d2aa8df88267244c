package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type sampleRequest struct {
	Answers []sampleAnswer `json:"answers" binding:"required,dive"`
}

type sampleAnswer struct {
	Index *int `json:"index" binding:"required,min=0"`
}

func bindBody(t *testing.T, body string) map[string]string {
	t.Helper()
	Setup()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var dst sampleRequest
	return Bind(c, &dst)
}

// TestBindValid verifies a valid body binds without field errors.
func TestBindValid(t *testing.T) {
	if fields := bindBody(t, `{"answers":[{"index":0}]}`); fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}
}

// TestBindUsesJSONNames verifies translated messages name JSON fields.
func TestBindUsesJSONNames(t *testing.T) {
	fields := bindBody(t, `{"answers":[{"index":-1}]}`)
	message, ok := fields["sampleRequest.answers[0].index"]
	if !ok {
		t.Fatalf("expected index field error, got %v", fields)
	}
	if !strings.Contains(message, "index") {
		t.Fatalf("expected JSON field name in message, got %q", message)
	}
}

// TestBindSyntaxError verifies non-validation errors land under detail.
func TestBindSyntaxError(t *testing.T) {
	fields := bindBody(t, `{"answers":`)
	if fields["detail"] == "" {
		t.Fatalf("expected detail entry, got %v", fields)
	}
}
