package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addQuestionHandler handles POST /game/add_question. A question whose text
// or answer is already in the pool answers 409.
func (s *Server) addQuestionHandler(c *gin.Context) {
	var req AddQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	q, err := s.questions.CreateQuestion(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	s.logger.Info("Question added", "question_id", q.ID)

	c.JSON(http.StatusOK, newQuestionResponse(q))
}

// deleteQuestionHandler handles POST /game/delete_question.
func (s *Server) deleteQuestionHandler(c *gin.Context) {
	var req DeleteQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := s.questions.DeleteQuestion(c.Request.Context(), req.QuestionID); err != nil {
		mapServiceError(c, err)
		return
	}
	s.logger.Info("Question deleted", "question_id", req.QuestionID)

	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// listQuestionsHandler handles GET /game/list_questions.
func (s *Server) listQuestionsHandler(c *gin.Context) {
	qs, err := s.questions.ListQuestions(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := QuestionListResponse{Questions: make([]QuestionResponse, 0, len(qs))}
	for _, q := range qs {
		resp.Questions = append(resp.Questions, newQuestionResponse(q))
	}
	c.JSON(http.StatusOK, resp)
}
