package domain

import (
	"context"
	"time"
)

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name" validate:"required,max=100"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email" validate:"required,email,max=255"`
	Subject   string    `gorm:"type:varchar(150);not null" json:"subject" validate:"required,max=150"`
	Message   string    `gorm:"type:text;not null" json:"message" validate:"required"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ContactMessage) TableName() string { return "contact_messages" }

// ContactMailer delivers the acknowledgement sent back to whoever wrote in.
type ContactMailer interface {
	SendContactConfirmation(ctx context.Context, msg *ContactMessage) error
}

type ContactRepo interface {
	CreateContactMessage(ctx context.Context, msg *ContactMessage) error
}

type ContactUseCase interface {
	SubmitContactMessage(ctx context.Context, msg *ContactMessage) error
}
