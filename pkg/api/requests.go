package api

// LoginRequest is the HTTP request body for POST /admin.login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AddQuestionRequest is the HTTP request body for POST /game/add_question.
type AddQuestionRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// DeleteQuestionRequest is the HTTP request body for POST /game/delete_question.
type DeleteQuestionRequest struct {
	QuestionID int `json:"question_id" binding:"required"`
}
