package domain

import "time"

type CorrespondenceType string

const (
	Letter       CorrespondenceType = "Letter"
	EmailMessage CorrespondenceType = "Email"
	Card         CorrespondenceType = "Card"
	Gift         CorrespondenceType = "Gift"
	Photo        CorrespondenceType = "Photo"
)

func ParseCorrespondenceType(s string) (CorrespondenceType, bool) {
	return matchFold(s, []CorrespondenceType{Letter, EmailMessage, Card, Gift, Photo})
}

// ChildCorrespondence is one letter, card or gift exchanged between a child and a sponsor.
type ChildCorrespondence struct {
	ID                 uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildID            uint               `gorm:"not null;index" json:"child_id"`
	CorrespondenceType CorrespondenceType `gorm:"type:varchar(10);not null;default:Letter" json:"correspondence_type"`
	Subject            string             `gorm:"type:varchar(100);not null" json:"subject"`
	Content            string             `gorm:"type:text" json:"content"`
	DateSent           time.Time          `gorm:"type:date;not null" json:"date_sent"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
}

func (ChildCorrespondence) TableName() string { return "child_correspondence" }

type CorrespondenceForm struct {
	CorrespondenceType string `json:"correspondence_type" form:"correspondence_type"`
	Subject            string `json:"subject" form:"subject" valid:"required~Subject is required,stringlength(1|100)~Ensure this value has at most 100 characters"`
	Content            string `json:"content" form:"content"`
	DateSent           string `json:"date_sent" form:"date_sent" valid:"required~Date sent is required"`
}

func (f *CorrespondenceForm) Build(childID uint, now time.Time) (*ChildCorrespondence, error) {
	trimAll(&f.CorrespondenceType, &f.Subject, &f.Content, &f.DateSent)
	errs := checkTags(f)

	c := &ChildCorrespondence{
		ChildID:            childID,
		CorrespondenceType: Letter,
		Subject:            f.Subject,
		Content:            f.Content,
	}

	if f.CorrespondenceType != "" {
		if t, ok := ParseCorrespondenceType(f.CorrespondenceType); ok {
			c.CorrespondenceType = t
		} else {
			errs["correspondence_type"] = "Select a valid choice"
		}
	}

	if d := dateBetween(errs, "date_sent", f.DateSent, programStart, now); d != nil {
		c.DateSent = *d
	}

	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return c, nil
}
