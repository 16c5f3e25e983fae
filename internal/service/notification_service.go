package service

import (
	"context"
	"fmt"
	"time"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"
	"legalbridge-be/pkg/events"

	"github.com/google/uuid"
)

type INotificationService interface {
	GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.NotificationResponse, error)
	// MarkRead only touches notifications owned by userID.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	// HandleEvent persists a notification for domain events that warrant one.
	HandleEvent(ctx context.Context, event events.Event) (*entity.Notification, error)
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewNotificationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = &dto.NotificationResponse{
			Id:        n.Id,
			Type:      n.Type,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}
	return res, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, userID, id)
}

func (s *notificationService) HandleEvent(ctx context.Context, event events.Event) (*entity.Notification, error) {
	payload := event.Payload()

	userIDStr, _ := payload["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		// Events without a target user carry nothing to persist.
		return nil, nil
	}

	var title, body string
	switch event.EventType() {
	case events.TypeConsultationBooked:
		lawyerName, _ := payload["lawyer_name"].(string)
		scheduledAt, _ := payload["scheduled_at"].(string)
		title = "Consultation confirmed"
		body = fmt.Sprintf("Your consultation with %s is booked for %s.", lawyerName, scheduledAt)
	case events.TypeSignedIn:
		// Session events fan out over the socket but are not stored.
		return nil, nil
	case events.TypeSignedOut:
		return nil, nil
	case events.TypeUserUpdated:
		return nil, nil
	default:
		s.logger.Debug("NotificationService", "Ignoring event type", map[string]interface{}{"type": event.EventType()})
		return nil, nil
	}

	notification := &entity.Notification{
		Id:        uuid.New(),
		UserId:    userID,
		Type:      event.EventType(),
		Title:     title,
		Body:      body,
		Read:      false,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}
