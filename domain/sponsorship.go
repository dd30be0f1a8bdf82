package domain

import (
	"context"
	"time"
)

type ChildSponsorship struct {
	ID              uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SponsorID       uint            `gorm:"not null;uniqueIndex:idx_sponsor_child" json:"sponsor_id"`
	Sponsor         *Sponsor        `gorm:"foreignKey:SponsorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"sponsor,omitempty"`
	ChildID         uint            `gorm:"not null;uniqueIndex:idx_sponsor_child;index" json:"child_id"`
	Child           *Child          `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"child,omitempty"`
	SponsorshipType SponsorshipType `gorm:"type:varchar(20);not null;default:Full" json:"sponsorship_type"`
	StartDate       time.Time       `gorm:"type:date;not null" json:"start_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (ChildSponsorship) TableName() string { return "child_sponsorships" }

type SponsorshipRequest struct {
	SponsorID       uint   `json:"sponsor_id" form:"sponsor_id" validate:"required,gt=0"`
	ChildID         uint   `json:"child_id" form:"child_id" validate:"required,gt=0"`
	SponsorshipType string `json:"sponsorship_type" form:"sponsorship_type" validate:"omitempty,oneof=Full Partial Education Medical"`
	StartDate       string `json:"start_date" form:"start_date" validate:"required"`
}

func (r *SponsorshipRequest) Build(now time.Time) (*ChildSponsorship, error) {
	errs := map[string]string{}
	s := &ChildSponsorship{
		SponsorID:       r.SponsorID,
		ChildID:         r.ChildID,
		SponsorshipType: FullSponsorship,
	}
	if r.SponsorshipType != "" {
		if t, ok := ParseSponsorshipType(r.SponsorshipType); ok {
			s.SponsorshipType = t
		} else {
			errs["sponsorship_type"] = "Select a valid choice"
		}
	}
	if d := dateBetween(errs, "start_date", r.StartDate, programStart, now); d != nil {
		s.StartDate = *d
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return s, nil
}

// SponsorshipCandidates are the children and sponsors still in the programme.
type SponsorshipCandidates struct {
	Children []Child   `json:"children"`
	Sponsors []Sponsor `json:"sponsors"`
}

type ChildSponsorshipReport struct {
	ChildID      uint               `json:"child_id"`
	PrefixedID   string             `json:"prefixed_id"`
	FullName     string             `json:"full_name"`
	IsSponsored  YesNo              `json:"is_sponsored"`
	Sponsorships []ChildSponsorship `json:"sponsorships"`
}

type SponsorshipRepo interface {
	ListCandidates(ctx context.Context) (*SponsorshipCandidates, error)
	SponsorshipExists(ctx context.Context, sponsorID, childID uint) (bool, error)
	CreateSponsorship(ctx context.Context, sponsorship *ChildSponsorship) error
	TerminateSponsorship(ctx context.Context, childID uint) error
	DeleteSponsorship(ctx context.Context, id uint) error
	ListSponsoredChildren(ctx context.Context, search, page string) (*[]Child, *PageMeta, error)
	ListSponsorshipsByChild(ctx context.Context, childID uint) (*Child, *[]ChildSponsorship, error)
}

type SponsorshipUseCase interface {
	ListCandidates(ctx context.Context) (*SponsorshipCandidates, error)
	CreateSponsorship(ctx context.Context, req *SponsorshipRequest) (*ChildSponsorship, error)
	TerminateSponsorship(ctx context.Context, childID uint) error
	DeleteSponsorship(ctx context.Context, id uint) error
	ListSponsoredChildren(ctx context.Context, search, page string) (*[]Child, *PageMeta, error)
	GetChildReport(ctx context.Context, childID uint) (*ChildSponsorshipReport, error)
}
