package usecase

import (
	"context"
	"sponsorship/config"
	"sponsorship/domain"
	"strings"
	"time"
)

type contactUC struct {
	repo    domain.ContactRepo
	mailer  domain.ContactMailer
	TimeOut time.Duration
}

func NewContactUseCase(repo domain.ContactRepo, mailer domain.ContactMailer, timeOut time.Duration) domain.ContactUseCase {
	return &contactUC{
		repo:    repo,
		mailer:  mailer,
		TimeOut: timeOut,
	}
}

// SubmitContactMessage saves the message before mailing the confirmation. A mail
// failure keeps the saved row and comes back as an *domain.ExternalServiceError.
func (cu *contactUC) SubmitContactMessage(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := validateRequest(msg); err != nil {
		return err
	}
	msg.ID = 0

	ctx, cancel := context.WithTimeout(ctx, cu.TimeOut)
	defer cancel()

	if err := cu.repo.CreateContactMessage(ctx, msg); err != nil {
		return err
	}

	if err := cu.mailer.SendContactConfirmation(ctx, msg); err != nil {
		config.GetLogrusInstance().WithError(err).WithField("contact_id", msg.ID).Error("could not send contact confirmation")
		return &domain.ExternalServiceError{Service: "mail", Err: err}
	}
	return nil
}
