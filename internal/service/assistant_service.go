package service

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"legalbridge-be/internal/constant"
	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"
	"legalbridge-be/pkg/assistant"

	"github.com/google/uuid"
)

type IAssistantService interface {
	CreateSession(ctx context.Context, userID uuid.UUID) (*dto.CreateChatSessionResponse, error)
	GetSessions(ctx context.Context, userID uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetHistory(ctx context.Context, userID, sessionID uuid.UUID) ([]*dto.ChatMessageResponse, error)
	SendMessage(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
	AnalyzeDocument(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeDocumentRequest) (*dto.AnalyzeDocumentResponse, error)
}

type assistantService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   assistant.Provider
	logger     logger.ILogger

	// One in-flight generation per chat session. Guarded sends return 409.
	pendingMu sync.Mutex
	pending   map[uuid.UUID]struct{}
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	provider assistant.Provider,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory: uowFactory,
		provider:   provider,
		logger:     log,
		pending:    make(map[uuid.UUID]struct{}),
	}
}

func (s *assistantService) tryAcquire(sessionID uuid.UUID) bool {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	if _, busy := s.pending[sessionID]; busy {
		return false
	}
	s.pending[sessionID] = struct{}{}
	return true
}

func (s *assistantService) release(sessionID uuid.UUID) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()
	delete(s.pending, sessionID)
}

func messageToDTO(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	if msg == nil {
		return nil
	}
	return &dto.ChatMessageResponse{
		Id:         msg.Id,
		Role:       string(msg.Role),
		Content:    msg.Content,
		Status:     string(msg.Status),
		Confidence: msg.Confidence,
		Sources:    msg.Sources,
		CreatedAt:  msg.CreatedAt,
	}
}

func (s *assistantService) CreateSession(ctx context.Context, userID uuid.UUID) (*dto.CreateChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userID,
		Title:     constant.DefaultSessionTitle,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	greeting := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: session.Id,
		Role:      entity.MessageRoleAssistant,
		Content:   constant.AssistantGreeting,
		Status:    entity.MessageStatusComplete,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, greeting); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateChatSessionResponse{
		Id:       session.Id,
		Title:    session.Title,
		Greeting: messageToDTO(greeting),
	}, nil
}

func (s *assistantService) GetSessions(ctx context.Context, userID uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatSessionResponse, len(sessions))
	for i, session := range sessions {
		res[i] = &dto.ChatSessionResponse{
			Id:        session.Id,
			Title:     session.Title,
			CreatedAt: session.CreatedAt,
			UpdatedAt: session.UpdatedAt,
		}
	}
	return res, nil
}

// ownedSession resolves a session and verifies the caller owns it.
func (s *assistantService) ownedSession(ctx context.Context, uow unitofwork.UnitOfWork, userID, sessionID uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionID},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, serverutils.NewNotFoundError("Chat session not found")
	}
	return session, nil
}

func (s *assistantService) GetHistory(ctx context.Context, userID, sessionID uuid.UUID) ([]*dto.ChatMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedSession(ctx, uow, userID, sessionID); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatMessageResponse, len(messages))
	for i, msg := range messages {
		res[i] = messageToDTO(msg)
	}
	return res, nil
}

func (s *assistantService) SendMessage(ctx context.Context, userID, sessionID uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.ownedSession(ctx, uow, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if !s.tryAcquire(sessionID) {
		return nil, serverutils.NewConflictError("A response is already being generated for this session")
	}
	defer s.release(sessionID)

	// 1. Load prior turns before persisting the new prompt.
	history, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: sessionID},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	// 2. Persist the user turn and a pending assistant row. The assistant
	// row id is the only key used to attach the eventual response.
	sent := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionID,
		Role:      entity.MessageRoleUser,
		Content:   req.Content,
		Status:    entity.MessageStatusComplete,
		CreatedAt: time.Now(),
	}
	reply := &entity.ChatMessage{
		Id:        uuid.New(),
		SessionId: sessionID,
		Role:      entity.MessageRoleAssistant,
		Content:   "",
		Status:    entity.MessageStatusPending,
		CreatedAt: time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, sent); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, reply); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// 3. Generate with a hard deadline.
	providerHistory := buildProviderHistory(history)
	genCtx, cancel := context.WithTimeout(ctx, constant.AssistantGenerateTimeout)
	defer cancel()

	response, genErr := s.provider.Generate(genCtx, req.Content, providerHistory)

	// A canceled or timed-out generation never attaches its result; the
	// pending row flips to failed instead.
	if genErr != nil || genCtx.Err() != nil {
		reply.Status = entity.MessageStatusFailed
		reply.Content = "The assistant could not produce a response. Please try again."
		if updateErr := uow.ChatMessageRepository().UpdateByID(ctx, reply); updateErr != nil {
			s.logger.Error("AssistantService", "Failed to mark reply failed", map[string]interface{}{"error": updateErr.Error()})
		}
		if genErr == nil {
			genErr = genCtx.Err()
		}
		if errors.Is(genErr, context.Canceled) || errors.Is(genErr, context.DeadlineExceeded) {
			return nil, serverutils.NewAssistantError("The assistant timed out", genErr)
		}
		return nil, serverutils.NewAssistantError("The assistant failed to respond", genErr)
	}

	// 4. Attach the response by id.
	reply.Content = response.Text
	reply.Status = entity.MessageStatusComplete
	if response.Confidence > 0 {
		confidence := response.Confidence
		reply.Confidence = &confidence
	}
	reply.Sources = response.Sources
	if err := uow.ChatMessageRepository().UpdateByID(ctx, reply); err != nil {
		return nil, err
	}

	// 5. First real prompt names the session.
	if session.Title == constant.DefaultSessionTitle {
		session.Title = sessionTitle(req.Content)
		session.UpdatedAt = time.Now()
		if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
			s.logger.Warn("AssistantService", "Failed to update session title", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.SendMessageResponse{
		SessionId: sessionID,
		Sent:      messageToDTO(sent),
		Reply:     messageToDTO(reply),
	}, nil
}

func (s *assistantService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedSession(ctx, uow, userID, sessionID); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionID); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *assistantService) AnalyzeDocument(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeDocumentRequest) (*dto.AnalyzeDocumentResponse, error) {
	genCtx, cancel := context.WithTimeout(ctx, constant.AssistantAnalyzeTimeout)
	defer cancel()

	response, err := s.provider.Analyze(genCtx, req.Content)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, serverutils.NewAssistantError("Document analysis timed out", err)
		}
		return nil, serverutils.NewAssistantError("Document analysis failed", err)
	}

	res := &dto.AnalyzeDocumentResponse{
		Summary: response.Text,
		Sources: response.Sources,
	}
	if response.Confidence > 0 {
		confidence := response.Confidence
		res.Confidence = &confidence
	}
	return res, nil
}

// buildProviderHistory converts the stored log into provider turns, newest
// constant.AssistantHistoryLimit only, skipping unfinished rows.
func buildProviderHistory(history []*entity.ChatMessage) []assistant.Message {
	start := 0
	if len(history) > constant.AssistantHistoryLimit {
		start = len(history) - constant.AssistantHistoryLimit
	}

	turns := make([]assistant.Message, 0, len(history)-start)
	for _, msg := range history[start:] {
		if msg.Status != entity.MessageStatusComplete {
			continue
		}
		turns = append(turns, assistant.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return turns
}

// sessionTitle truncates on a rune boundary so multi-byte prompts never yield
// an invalid UTF-8 title.
func sessionTitle(prompt string) string {
	const maxTitle = 60
	if utf8.RuneCountInString(prompt) <= maxTitle {
		return prompt
	}
	return string([]rune(prompt)[:maxTitle]) + "..."
}
