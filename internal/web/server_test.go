package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// sequenceGenerator yields n + 1 with n incremented per call.
type sequenceGenerator struct {
	n int
}

func (g *sequenceGenerator) Generate(_ problemgen.Difficulty, op problemgen.Operation) problemgen.Problem {
	g.n++
	return problemgen.Problem{Operand1: g.n, Operand2: 1, Operation: op, Answer: op.Apply(g.n, 1)}
}

func newTestServer(delay time.Duration) *Server {
	session := practice.New(&sequenceGenerator{}, practice.Options{AdvanceDelay: delay})
	return NewServer(session, nil)
}

func do(t *testing.T, s *Server, method, path string, body any) (*httptest.ResponseRecorder, answerResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	var resp answerResponse
	if rec.Code == http.StatusOK && rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestIndex(t *testing.T) {
	s := newTestServer(time.Second)
	rec, _ := do(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Mathdrill")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestState(t *testing.T) {
	s := newTestServer(time.Second)
	rec, st := do(t, s, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, st.Problem.Operand1)
	assert.Equal(t, "+", st.Problem.Operator)
	assert.Equal(t, "medium", st.Settings.Difficulty)
	assert.Equal(t, "addition", st.Settings.Operation)
	assert.Nil(t, st.Feedback)
}

func TestAnswer_CorrectAutoAdvances(t *testing.T) {
	s := newTestServer(20 * time.Millisecond)
	_, st := do(t, s, http.MethodGet, "/api/state", nil)
	answer := st.Problem.Operand1 + st.Problem.Operand2

	rec, resp := do(t, s, http.MethodPost, "/api/answer", answerRequest{Answer: strconv.Itoa(answer)})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, "correct", resp.Feedback.Outcome)
	assert.Equal(t, 1, resp.Score.Correct)
	assert.Equal(t, int64(20), resp.AdvanceInMs)
	assert.True(t, resp.Pending)

	assert.Eventually(t, func() bool {
		_, st := do(t, s, http.MethodGet, "/api/state", nil)
		return st.Problem.Operand1 == 2 && st.Feedback == nil && !st.Pending
	}, time.Second, 5*time.Millisecond)
}

func TestAnswer_IncorrectCarriesAnswer(t *testing.T) {
	s := newTestServer(time.Second)
	rec, resp := do(t, s, http.MethodPost, "/api/answer", answerRequest{Answer: "99"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, "incorrect", resp.Feedback.Outcome)
	require.NotNil(t, resp.Feedback.Answer)
	assert.Equal(t, 2, *resp.Feedback.Answer)
	assert.Equal(t, 1, resp.Score.Incorrect)
	assert.Zero(t, resp.AdvanceInMs)
}

func TestAnswer_Invalid(t *testing.T) {
	s := newTestServer(time.Second)
	_, resp := do(t, s, http.MethodPost, "/api/answer", answerRequest{Answer: "abc"})
	require.NotNil(t, resp.Feedback)
	assert.Equal(t, "invalid", resp.Feedback.Outcome)
	assert.Equal(t, "Please enter a number!", resp.Feedback.Message)
	assert.Zero(t, resp.Score.Total)
}

func TestAnswer_BadJSON(t *testing.T) {
	s := newTestServer(time.Second)
	req := httptest.NewRequest(http.MethodPost, "/api/answer", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

// The page shows the "error" field of any non-2xx reply instead of rendering it as state.
func TestErrorReplyShape(t *testing.T) {
	s := newTestServer(time.Second)
	for _, path := range []string{"/api/answer", "/api/settings"} {
		method := http.MethodPost
		if path == "/api/settings" {
			method = http.MethodPut
		}
		req := httptest.NewRequest(method, path, bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.Router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), path)
		assert.NotEmpty(t, body["error"], path)
		assert.NotContains(t, body, "problem", path)
	}

	rec, _ := do(t, s, http.MethodGet, "/", nil)
	assert.Contains(t, rec.Body.String(), "if (!res.ok)")
}

func TestSettings_CancelsPendingAdvance(t *testing.T) {
	s := newTestServer(30 * time.Millisecond)
	_, resp := do(t, s, http.MethodPost, "/api/answer", answerRequest{Answer: "2"})
	require.True(t, resp.Pending)

	rec, st := do(t, s, http.MethodPut, "/api/settings", settingsJSON{Difficulty: "hard", Operation: "division"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hard", st.Settings.Difficulty)
	assert.Equal(t, "division", st.Settings.Operation)
	assert.Equal(t, "÷", st.Problem.Operator)
	assert.False(t, st.Pending)
	assert.False(t, s.advance.Pending())

	time.Sleep(60 * time.Millisecond)
	_, after := do(t, s, http.MethodGet, "/api/state", nil)
	assert.Equal(t, st.Problem, after.Problem, "cancelled auto-advance must not replace the problem")
}

func TestSettings_UnknownNamesDefault(t *testing.T) {
	s := newTestServer(time.Second)
	_, st := do(t, s, http.MethodPut, "/api/settings", settingsJSON{Difficulty: "insane", Operation: "power"})
	assert.Equal(t, "medium", st.Settings.Difficulty)
	assert.Equal(t, "addition", st.Settings.Operation)
}

func TestNewProblemAndReset(t *testing.T) {
	s := newTestServer(time.Second)
	do(t, s, http.MethodPost, "/api/answer", answerRequest{Answer: "0"})

	_, st := do(t, s, http.MethodPost, "/api/problem", nil)
	assert.Equal(t, 2, st.Problem.Operand1)
	assert.Nil(t, st.Feedback)
	assert.Equal(t, 1, st.Score.Incorrect)

	_, st = do(t, s, http.MethodPost, "/api/reset", nil)
	assert.Equal(t, scoreJSON{}, st.Score)
	assert.Equal(t, 3, st.Problem.Operand1)
}
