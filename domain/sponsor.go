package domain

import (
	"context"
	"strings"
	"time"
)

type Sponsor struct {
	ID                  uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName           string             `gorm:"type:varchar(50);not null;index" json:"first_name"`
	LastName            string             `gorm:"type:varchar(50);not null;index" json:"last_name"`
	Gender              Gender             `gorm:"type:varchar(6);not null" json:"gender"`
	Email               *string            `gorm:"type:varchar(255)" json:"email"`
	JobTitle            string             `gorm:"type:varchar(50)" json:"job_title"`
	Region              string             `gorm:"type:varchar(50)" json:"region"`
	Town                string             `gorm:"type:varchar(50)" json:"town"`
	Origin              string             `gorm:"type:varchar(50)" json:"origin"`
	BusinessTelephone   string             `gorm:"type:varchar(20)" json:"business_telephone"`
	MobileTelephone     string             `gorm:"type:varchar(20)" json:"mobile_telephone"`
	City                string             `gorm:"type:varchar(50)" json:"city"`
	FirstStreetAddress  string             `gorm:"type:varchar(100)" json:"first_street_address"`
	SecondStreetAddress string             `gorm:"type:varchar(100)" json:"second_street_address"`
	ZipCode             string             `gorm:"type:varchar(20)" json:"zip_code"`
	StartDate           *time.Time         `gorm:"type:date" json:"start_date"`
	Comment             string             `gorm:"type:text" json:"comment"`
	IsDeparted          YesNo              `gorm:"type:varchar(3);not null;default:No;index" json:"is_departed"`
	Departures          []SponsorDeparture `gorm:"foreignKey:SponsorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"departures,omitempty"`
	CreatedAt           time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Sponsor) TableName() string { return "sponsor_details" }

func (s Sponsor) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

type SponsorDeparture struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SponsorID       uint      `gorm:"not null;index" json:"sponsor_id"`
	DepartureDate   time.Time `gorm:"type:date;not null" json:"departure_date"`
	DepartureReason string    `gorm:"type:varchar(255);not null" json:"departure_reason"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SponsorDeparture) TableName() string { return "sponsor_departures" }

type SponsorForm struct {
	FirstName           string `json:"first_name" form:"first_name" valid:"required~First name is required,stringlength(1|50)~Ensure this value has at most 50 characters,matches(^[A-Za-z]+( [A-Za-z]+)*$)~Only letters and spaces are allowed"`
	LastName            string `json:"last_name" form:"last_name" valid:"required~Last name is required,stringlength(1|50)~Ensure this value has at most 50 characters,matches(^[A-Za-z]+( [A-Za-z]+)*$)~Only letters and spaces are allowed"`
	Gender              string `json:"gender" form:"gender" valid:"required~Gender is required"`
	Email               string `json:"email" form:"email" valid:"email~Enter a valid email address"`
	JobTitle            string `json:"job_title" form:"job_title" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Region              string `json:"region" form:"region" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Town                string `json:"town" form:"town" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Origin              string `json:"origin" form:"origin" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	BusinessTelephone   string `json:"business_telephone" form:"business_telephone"`
	MobileTelephone     string `json:"mobile_telephone" form:"mobile_telephone"`
	City                string `json:"city" form:"city" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	FirstStreetAddress  string `json:"first_street_address" form:"first_street_address" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	SecondStreetAddress string `json:"second_street_address" form:"second_street_address" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	ZipCode             string `json:"zip_code" form:"zip_code" valid:"stringlength(0|20)~Ensure this value has at most 20 characters"`
	StartDate           string `json:"start_date" form:"start_date"`
	Comment             string `json:"comment" form:"comment"`
}

var programStart = time.Date(2013, 1, 1, 0, 0, 0, 0, time.UTC)

func (f *SponsorForm) Build(now time.Time) (*Sponsor, error) {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	errs := checkTags(f)

	s := &Sponsor{
		FirstName:           f.FirstName,
		LastName:            f.LastName,
		Email:               strPtr(f.Email),
		JobTitle:            strings.TrimSpace(f.JobTitle),
		Region:              strings.TrimSpace(f.Region),
		Town:                strings.TrimSpace(f.Town),
		Origin:              strings.TrimSpace(f.Origin),
		City:                strings.TrimSpace(f.City),
		FirstStreetAddress:  strings.TrimSpace(f.FirstStreetAddress),
		SecondStreetAddress: strings.TrimSpace(f.SecondStreetAddress),
		ZipCode:             strings.TrimSpace(f.ZipCode),
		Comment:             strings.TrimSpace(f.Comment),
		IsDeparted:          No,
	}

	if strings.TrimSpace(f.Gender) != "" {
		if g, ok := ParseGender(f.Gender); ok {
			s.Gender = g
		} else {
			setIfAbsent(errs, "gender", "Select either Male or Female")
		}
	}

	s.BusinessTelephone = optionalPhone(errs, "business_telephone", f.BusinessTelephone)
	s.MobileTelephone = optionalPhone(errs, "mobile_telephone", f.MobileTelephone)
	s.StartDate = dateBetween(errs, "start_date", f.StartDate, programStart, now)

	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return s, nil
}

// DepartureRequest records why and when a sponsor left the programme.
type DepartureRequest struct {
	DepartureDate   string `json:"departure_date" form:"departure_date" validate:"required"`
	DepartureReason string `json:"departure_reason" form:"departure_reason" validate:"required,max=255"`
}

// Build converts the request into a departure row. The request must already pass struct validation.
func (r *DepartureRequest) Build(sponsorID uint, now time.Time) (*SponsorDeparture, error) {
	errs := map[string]string{}
	d := dateBetween(errs, "departure_date", r.DepartureDate, programStart, now)
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return &SponsorDeparture{
		SponsorID:       sponsorID,
		DepartureDate:   *d,
		DepartureReason: strings.TrimSpace(r.DepartureReason),
	}, nil
}

type SponsorRepo interface {
	ListSponsors(ctx context.Context, search, page string, departed YesNo) (*[]Sponsor, *PageMeta, error)
	GetSponsorByID(ctx context.Context, id uint) (*Sponsor, error)
	CreateSponsor(ctx context.Context, sponsor *Sponsor) error
	UpdateSponsor(ctx context.Context, sponsor *Sponsor) error
	DeleteSponsor(ctx context.Context, id uint) error
	DepartSponsor(ctx context.Context, departure *SponsorDeparture) error
	ReinstateSponsor(ctx context.Context, id uint) error
}

type SponsorUseCase interface {
	ListSponsors(ctx context.Context, search, page string) (*[]Sponsor, *PageMeta, error)
	ListDepartedSponsors(ctx context.Context, search, page string) (*[]Sponsor, *PageMeta, error)
	GetSponsor(ctx context.Context, id uint) (*Sponsor, error)
	CreateSponsor(ctx context.Context, form *SponsorForm) (*Sponsor, error)
	UpdateSponsor(ctx context.Context, id uint, form *SponsorForm) (*Sponsor, error)
	DeleteSponsor(ctx context.Context, id uint) error
	DepartSponsor(ctx context.Context, id uint, req *DepartureRequest) (*SponsorDeparture, error)
	ReinstateSponsor(ctx context.Context, id uint) error
}
