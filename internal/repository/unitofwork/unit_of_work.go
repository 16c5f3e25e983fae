package unitofwork

import (
	"context"

	"legalbridge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	ConsultationRepository() contract.ConsultationRepository
	NotificationRepository() contract.NotificationRepository
}
