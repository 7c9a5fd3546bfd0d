package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/score"
)

type problemJSON struct {
	Operand1 int    `json:"operand1"`
	Operand2 int    `json:"operand2"`
	Operator string `json:"operator"`
}

type scoreJSON struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
	Total     int `json:"total"`
}

type settingsJSON struct {
	Difficulty string `json:"difficulty"`
	Operation  string `json:"operation"`
}

type feedbackJSON struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
	Answer  *int   `json:"answer,omitempty"`
}

type stateJSON struct {
	Problem  problemJSON   `json:"problem"`
	Score    scoreJSON     `json:"score"`
	Settings settingsJSON  `json:"settings"`
	Feedback *feedbackJSON `json:"feedback"`
	Pending  bool          `json:"pending"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type answerResponse struct {
	stateJSON
	AdvanceInMs int64 `json:"advance_in_ms,omitempty"`
}

func (s *Server) handleIndex(c *gin.Context) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "page unavailable"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

func (s *Server) handleState(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.stateLocked())
}

func (s *Server) handleSettings(c *gin.Context) {
	var req settingsJSON
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance.Stop()
	s.session.Apply(practice.Settings{
		Difficulty: problemgen.ParseDifficulty(req.Difficulty),
		Operation:  problemgen.ParseOperation(req.Operation),
	})
	s.feedback = nil
	c.JSON(http.StatusOK, s.stateLocked())
}

func (s *Server) handleNewProblem(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance.Stop()
	s.session.NextProblem()
	s.feedback = nil
	c.JSON(http.StatusOK, s.stateLocked())
}

func (s *Server) handleAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.session.Submit(req.Answer)
	s.feedback = toFeedback(res.Outcome)

	resp := answerResponse{}
	if res.Advance != nil {
		ticket := *res.Advance
		s.advance.Schedule(ticket.Delay, func() { s.autoAdvance(ticket) })
		resp.AdvanceInMs = ticket.Delay.Milliseconds()
	}
	resp.stateJSON = s.stateLocked()
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleReset(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advance.Stop()
	s.session.Reset()
	s.feedback = nil
	c.JSON(http.StatusOK, s.stateLocked())
}

// autoAdvance runs on the timer goroutine after a correct answer.
func (s *Server) autoAdvance(t practice.Ticket) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.Advance(t) {
		s.feedback = nil
	}
}

// stateLocked snapshots the session. Callers must hold s.mu.
func (s *Server) stateLocked() stateJSON {
	p := s.session.Current()
	st := s.session.Score()
	set := s.session.Settings()
	return stateJSON{
		Problem: problemJSON{
			Operand1: p.Operand1,
			Operand2: p.Operand2,
			Operator: p.Operation.Symbol(),
		},
		Score: scoreJSON{
			Correct:   st.Correct,
			Incorrect: st.Incorrect,
			Total:     st.Total(),
		},
		Settings: settingsJSON{
			Difficulty: set.Difficulty.String(),
			Operation:  set.Operation.String(),
		},
		Feedback: s.feedback,
		Pending:  s.session.Pending(),
	}
}

func toFeedback(out score.Outcome) *feedbackJSON {
	fb := &feedbackJSON{Outcome: out.Kind.String(), Message: out.Message()}
	if out.Kind == score.Incorrect {
		answer := out.Answer
		fb.Answer = &answer
	}
	return fb
}
