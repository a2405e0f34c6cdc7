package service

import (
	"context"
	"fmt"

	"mindgarden-be/internal/dto"
	"mindgarden-be/internal/pkg/logger"
	"mindgarden-be/internal/pkg/serverutils"
	"mindgarden-be/internal/repository/memory"
	"mindgarden-be/pkg/flow"
	"mindgarden-be/pkg/llm"
	"mindgarden-be/pkg/store"
)

// apologyReply is what the companion says when its backend is down. The
// conversation keeps going; ChatUnavailable never escapes this service.
const apologyReply = "I'm sorry, I'm having trouble thinking straight right now. Could you tell me that again in a moment?"

type IChatService interface {
	Send(ctx context.Context, sessionID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	History(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	sessions *memory.SessionRepository
	provider llm.LLMProvider
	log      logger.ILogger
}

func NewChatService(
	sessions *memory.SessionRepository,
	provider llm.LLMProvider,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions: sessions,
		provider: provider,
		log:      log,
	}
}

func (s *chatService) Send(ctx context.Context, sessionID string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	if !sess.Progress.Unlocked(flow.StepChat) {
		return nil, serverutils.NewInvalidTransitionError("the chat companion is still locked")
	}

	history := s.transcript(sess, req.Message)

	reply, err := s.provider.Chat(ctx, history, llm.WithTemperature(0.7))
	degraded := false
	if err != nil || reply == "" {
		if err != nil {
			s.log.Warn("chat", "companion backend failed, sending apology", map[string]interface{}{"error": err.Error()})
		}
		reply = apologyReply
		degraded = true
	}

	sess.ChatLog = append(sess.ChatLog,
		store.ChatTurn{Role: store.ChatRoleUser, Content: req.Message},
		store.ChatTurn{Role: store.ChatRoleAssistant, Content: reply},
	)
	s.sessions.Save(sess)

	return &dto.SendChatResponse{Reply: reply, Degraded: degraded}, nil
}

func (s *chatService) History(ctx context.Context, sessionID string) (*dto.ChatHistoryResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, serverutils.NewNotFoundError("session not found")
	}
	turns := make([]store.ChatTurn, len(sess.ChatLog))
	copy(turns, sess.ChatLog)
	return &dto.ChatHistoryResponse{Turns: turns}, nil
}

// transcript assembles the provider history: a system prompt tinted by the
// latest mood label, the stored conversation, then the new message.
func (s *chatService) transcript(sess *store.Session, message string) []llm.Message {
	moodLabel := "neutral"
	if sess.MoodRecord != nil {
		moodLabel = sess.MoodRecord.MoodLabel()
	}

	history := make([]llm.Message, 0, len(sess.ChatLog)+2)
	history = append(history, llm.Message{
		Role:    store.ChatRoleSystem,
		Content: fmt.Sprintf("You are a kind and understanding mental wellness coach. The user is feeling %s today. Keep replies short, warm and practical.", moodLabel),
	})
	for _, turn := range sess.ChatLog {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	history = append(history, llm.Message{Role: store.ChatRoleUser, Content: message})
	return history
}
