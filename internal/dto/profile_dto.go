package dto

type SubmitSurveyRequest struct {
	// Responses maps question id to the selected option key.
	Responses map[string]string `json:"responses" validate:"required,min=1"`
}

type UpdateConfidenceRequest struct {
	Subject    string  `json:"subject" validate:"required"`
	Confidence float64 `json:"confidence" validate:"min=0,max=1"`
}

type SessionCreateResponse struct {
	SessionId string `json:"session_id"`
	Token     string `json:"token"`
}
