package service

import (
	"context"
	"time"

	"legalbridge-be/internal/dto"
	"legalbridge-be/internal/entity"
	"legalbridge-be/internal/pkg/logger"
	"legalbridge-be/internal/pkg/mailer"
	"legalbridge-be/internal/pkg/serverutils"
	"legalbridge-be/internal/repository/specification"
	"legalbridge-be/internal/repository/unitofwork"
	"legalbridge-be/pkg/catalog"
	"legalbridge-be/pkg/events"

	pktNats "legalbridge-be/pkg/nats"

	"github.com/google/uuid"
)

// processorDelay simulates the settlement window of a real payment gateway.
const processorDelay = 3 * time.Second

type IConsultationService interface {
	GetPaymentMethods(ctx context.Context) *dto.PaymentMethodsResponse
	Book(ctx context.Context, userID uuid.UUID, userEmail string, req *dto.BookConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, userID, id uuid.UUID) (*dto.ConsultationResponse, error)
	GetConsultations(ctx context.Context, userID uuid.UUID) ([]*dto.ConsultationResponse, error)
}

type consultationService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger

	// Overridable in tests.
	settleDelay time.Duration
}

func NewConsultationService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IConsultationService {
	return &consultationService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
		settleDelay:    processorDelay,
	}
}

func (s *consultationService) GetPaymentMethods(ctx context.Context) *dto.PaymentMethodsResponse {
	return &dto.PaymentMethodsResponse{
		UPI:     []string{"Google Pay", "PhonePe", "Paytm", "BHIM UPI"},
		Cards:   []string{"Visa", "Mastercard", "RuPay", "American Express"},
		Wallets: []string{"Paytm Wallet", "Amazon Pay", "Mobikwik"},
	}
}

func consultationToDTO(c *entity.Consultation) *dto.ConsultationResponse {
	return &dto.ConsultationResponse{
		Id:            c.Id,
		LawyerId:      c.LawyerId,
		LawyerName:    c.LawyerName,
		ScheduledAt:   c.ScheduledAt,
		DurationMins:  c.DurationMins,
		Amount:        c.Amount,
		PaymentMethod: c.PaymentMethod,
		PaymentStatus: string(c.PaymentStatus),
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
	}
}

func (s *consultationService) Book(ctx context.Context, userID uuid.UUID, userEmail string, req *dto.BookConsultationRequest) (*dto.ConsultationResponse, error) {
	lawyer, found := catalog.LawyerByID(req.LawyerId)
	if !found {
		return nil, serverutils.NewNotFoundError("Lawyer not found")
	}

	if req.ScheduledAt.Before(time.Now()) {
		return nil, serverutils.NewDataError(400, "Consultation must be scheduled in the future", nil)
	}

	amount := lawyer.HourlyRateAmount * req.DurationMins / 60

	consultation := &entity.Consultation{
		Id:            uuid.New(),
		UserId:        userID,
		LawyerId:      lawyer.ID,
		LawyerName:    lawyer.Name,
		ScheduledAt:   req.ScheduledAt,
		DurationMins:  req.DurationMins,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: entity.PaymentStatusPending,
		Status:        entity.ConsultationStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConsultationRepository().Create(ctx, consultation); err != nil {
		return nil, err
	}

	// Simulated settlement. A real gateway integration would replace this
	// wait with a webhook.
	select {
	case <-time.After(s.settleDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	consultation.PaymentStatus = entity.PaymentStatusCompleted
	consultation.Status = entity.ConsultationStatusConfirmed
	consultation.UpdatedAt = time.Now()
	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeConsultationBooked,
			Data: map[string]interface{}{
				"user_id":         userID.String(),
				"consultation_id": consultation.Id.String(),
				"lawyer_name":     lawyer.Name,
				"scheduled_at":    consultation.ScheduledAt.Format(time.RFC3339),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("ConsultationService", "Failed to publish booking event", map[string]interface{}{"error": err.Error()})
		}
	}

	if userEmail != "" {
		go func() {
			when := consultation.ScheduledAt.Format("Mon, 2 Jan 2006 15:04")
			if err := s.emailService.SendConsultationConfirmation(userEmail, lawyer.Name, when); err != nil {
				s.logger.Error("ConsultationService", "Failed to send confirmation email", map[string]interface{}{
					"email": userEmail,
					"error": err.Error(),
				})
			}
		}()
	}

	return consultationToDTO(consultation), nil
}

func (s *consultationService) GetConsultation(ctx context.Context, userID, id uuid.UUID) (*dto.ConsultationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := uow.ConsultationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, serverutils.NewNotFoundError("Consultation not found")
	}
	return consultationToDTO(consultation), nil
}

func (s *consultationService) GetConsultations(ctx context.Context, userID uuid.UUID) ([]*dto.ConsultationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultations, err := uow.ConsultationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "scheduled_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ConsultationResponse, len(consultations))
	for i, c := range consultations {
		res[i] = consultationToDTO(c)
	}
	return res, nil
}
