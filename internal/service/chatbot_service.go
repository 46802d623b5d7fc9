package service

import (
	"context"
	"strings"

	"ai-careercompass-be/internal/constant"
	"ai-careercompass-be/internal/dto"
	"ai-careercompass-be/internal/pkg/logger"
	"ai-careercompass-be/pkg/llm"
)

// historyWindow bounds how many prior turns are replayed to the model.
const historyWindow = 8

type IChatbotService interface {
	SendMessage(ctx context.Context, request *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
}

type chatbotService struct {
	provider llm.LLMProvider
	logger   logger.ILogger
}

func NewChatbotService(provider llm.LLMProvider, sysLogger logger.ILogger) IChatbotService {
	return &chatbotService{provider: provider, logger: sysLogger}
}

func (s *chatbotService) SendMessage(ctx context.Context, request *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	messages := make([]llm.Message, 0, historyWindow+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: constant.CareerAdvisorSystemPrompt,
	})

	history := request.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		role := turn.Role
		if role != "assistant" {
			role = "user"
		}
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		messages = append(messages, llm.Message{Role: role, Content: content})
	}

	messages = append(messages, llm.Message{Role: "user", Content: request.Message})

	reply, err := s.provider.Chat(ctx, messages, llm.WithTemperature(0.65))
	if err != nil {
		s.logger.Warn("chatbot", "Chat completion failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return &dto.ChatMessageResponse{Reply: strings.TrimSpace(reply)}, nil
}
