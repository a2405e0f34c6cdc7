package dto

type QuizQuestionDTO struct {
	Id      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type QuizQuestionsResponse struct {
	Questions []QuizQuestionDTO `json:"questions"`
}

type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type QuizResultResponse struct {
	Total  int    `json:"total"`
	Bucket string `json:"bucket"`
	Advice string `json:"advice"`
}
