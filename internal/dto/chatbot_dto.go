package dto

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatMessageRequest struct {
	Message string        `json:"message" validate:"required,max=2000"`
	History []ChatMessage `json:"history"`
}

type ChatMessageResponse struct {
	Reply string `json:"reply"`
}
