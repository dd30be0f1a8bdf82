package domain

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"
)

type Child struct {
	ID                       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName                 string     `gorm:"type:varchar(50);not null;index" json:"full_name"`
	PreferredName            string     `gorm:"type:varchar(50)" json:"preferred_name"`
	Residence                string     `gorm:"type:varchar(50)" json:"residence"`
	District                 string     `gorm:"type:varchar(50)" json:"district"`
	Tribe                    string     `gorm:"type:varchar(20)" json:"tribe"`
	Gender                   Gender     `gorm:"type:varchar(6);not null" json:"gender"`
	DateOfBirth              *time.Time `gorm:"type:date" json:"date_of_birth"`
	Weight                   *float64   `gorm:"type:decimal(5,2)" json:"weight"`
	Height                   *int       `json:"height"`
	Aspiration               string     `gorm:"type:varchar(50)" json:"aspiration"`
	CInterest                string     `gorm:"type:varchar(100)" json:"c_interest"`
	IsChildInSchool          YesNo      `gorm:"type:varchar(3);not null;default:No" json:"is_child_in_school"`
	IsSponsored              YesNo      `gorm:"type:varchar(3);not null;default:No;index" json:"is_sponsored"`
	FatherName               string     `gorm:"type:varchar(100)" json:"father_name"`
	IsFatherAlive            YesNo      `gorm:"type:varchar(3);not null" json:"is_father_alive"`
	FatherDescription        string     `gorm:"type:varchar(100)" json:"father_description"`
	MotherName               string     `gorm:"type:varchar(100)" json:"mother_name"`
	IsMotherAlive            YesNo      `gorm:"type:varchar(3);not null" json:"is_mother_alive"`
	MotherDescription        string     `gorm:"type:varchar(100)" json:"mother_description"`
	Guardian                 string     `gorm:"type:varchar(50)" json:"guardian"`
	GuardianContact          string     `gorm:"type:varchar(20);default:+256999999999" json:"guardian_contact"`
	RelationshipWithGuardian string     `gorm:"type:varchar(20)" json:"relationship_with_guardian"`
	Siblings                 string     `gorm:"type:varchar(100)" json:"siblings"`
	BackgroundInfo           string     `gorm:"type:text" json:"background_info"`
	HealthStatus             string     `gorm:"type:varchar(50)" json:"health_status"`
	Responsibility           string     `gorm:"type:varchar(50)" json:"responsibility"`
	RelationshipWithChrist   string     `gorm:"type:varchar(100)" json:"relationship_with_christ"`
	Religion                 *Religion  `gorm:"type:varchar(30)" json:"religion"`
	PrayerRequest            string     `gorm:"type:varchar(50)" json:"prayer_request"`
	YearEnrolled             int        `gorm:"not null" json:"year_enrolled"`
	IsDeparted               YesNo      `gorm:"type:varchar(3);not null;default:No;index" json:"is_departed"`
	StaffComment             string     `gorm:"type:varchar(50)" json:"staff_comment"`
	CompiledBy               string     `gorm:"type:varchar(10)" json:"compiled_by"`

	ProfilePicture *ChildProfilePicture  `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"profile_picture,omitempty"`
	Progress       []ChildProgress       `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"progress,omitempty"`
	Correspondence []ChildCorrespondence `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"correspondence,omitempty"`
	Incidents      []ChildIncident       `gorm:"foreignKey:ChildID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"incidents,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Child) TableName() string { return "child_info" }

// PrefixedID is the display identifier used on reports. It is never stored.
func (c Child) PrefixedID() string {
	return fmt.Sprintf("P-0%d", c.ID)
}

// Age in whole years at now, nil when the date of birth is unknown.
func (c Child) Age(now time.Time) *int {
	if c.DateOfBirth == nil {
		return nil
	}
	dob := *c.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return &age
}

// ChildView is the response shape of a child, carrying the derived fields.
type ChildView struct {
	Child
	PrefixedID string `json:"prefixed_id"`
	Age        *int   `json:"age"`
}

func NewChildView(c Child, now time.Time) ChildView {
	return ChildView{Child: c, PrefixedID: c.PrefixedID(), Age: c.Age(now)}
}

type ChildProfilePicture struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildID    uint      `gorm:"not null;uniqueIndex" json:"child_id"`
	Picture    string    `gorm:"type:varchar(255);not null" json:"picture"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
	IsCurrent  bool      `gorm:"default:true" json:"is_current"`
}

func (ChildProfilePicture) TableName() string { return "child_profile_pictures" }

var PictureExtensions = []string{".jpg", ".jpeg", ".png"}

type ChildProgress struct {
	ID                     uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildID                uint            `gorm:"not null;index" json:"child_id"`
	NameOfSchool           string          `gorm:"type:varchar(50)" json:"name_of_school"`
	PreviousSchools        string          `gorm:"type:text" json:"previous_schools"`
	EducationLevel         EducationLevel  `gorm:"type:varchar(20);not null;default:Pre-School" json:"education_level"`
	ChildClass             *ClassLevel     `gorm:"type:varchar(20)" json:"child_class"`
	BestSubject            string          `gorm:"type:varchar(50)" json:"best_subject"`
	Score                  *int            `json:"score"`
	CoCurricularActivity   string          `gorm:"type:varchar(100)" json:"co_curricular_activity"`
	ResponsibilityAtSchool string          `gorm:"type:varchar(50)" json:"responsibility_at_school"`
	FuturePlans            string          `gorm:"type:varchar(100)" json:"future_plans"`
	ResponsibilityAtHome   string          `gorm:"type:varchar(50)" json:"responsibility_at_home"`
	Notes                  string          `gorm:"type:text" json:"notes"`
	CreatedAt              time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (ChildProgress) TableName() string { return "child_progress" }

// ChildForm is the raw registration input, from a request body or a spreadsheet row.
type ChildForm struct {
	FullName                 string `json:"full_name" form:"full_name" valid:"required~Full name is required,stringlength(1|50)~Ensure this value has at most 50 characters,matches(^[A-Za-z]+( [A-Za-z]+)*$)~Only letters and spaces are allowed"`
	PreferredName            string `json:"preferred_name" form:"preferred_name" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Residence                string `json:"residence" form:"residence" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	District                 string `json:"district" form:"district" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Tribe                    string `json:"tribe" form:"tribe" valid:"stringlength(0|20)~Ensure this value has at most 20 characters"`
	Gender                   string `json:"gender" form:"gender" valid:"required~Gender is required"`
	DateOfBirth              string `json:"date_of_birth" form:"date_of_birth"`
	Weight                   string `json:"weight" form:"weight"`
	Height                   string `json:"height" form:"height"`
	Aspiration               string `json:"aspiration" form:"aspiration" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	CInterest                string `json:"c_interest" form:"c_interest" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	IsChildInSchool          string `json:"is_child_in_school" form:"is_child_in_school"`
	IsSponsored              string `json:"is_sponsored" form:"is_sponsored"`
	FatherName               string `json:"father_name" form:"father_name" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	IsFatherAlive            string `json:"is_father_alive" form:"is_father_alive"`
	FatherDescription        string `json:"father_description" form:"father_description" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	MotherName               string `json:"mother_name" form:"mother_name" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	IsMotherAlive            string `json:"is_mother_alive" form:"is_mother_alive"`
	MotherDescription        string `json:"mother_description" form:"mother_description" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	Guardian                 string `json:"guardian" form:"guardian" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	GuardianContact          string `json:"guardian_contact" form:"guardian_contact"`
	RelationshipWithGuardian string `json:"relationship_with_guardian" form:"relationship_with_guardian" valid:"stringlength(0|20)~Ensure this value has at most 20 characters"`
	Siblings                 string `json:"siblings" form:"siblings" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	BackgroundInfo           string `json:"background_info" form:"background_info"`
	HealthStatus             string `json:"health_status" form:"health_status" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Responsibility           string `json:"responsibility" form:"responsibility" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	RelationshipWithChrist   string `json:"relationship_with_christ" form:"relationship_with_christ" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	Religion                 string `json:"religion" form:"religion"`
	PrayerRequest            string `json:"prayer_request" form:"prayer_request" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	YearEnrolled             string `json:"year_enrolled" form:"year_enrolled" valid:"required~Year enrolled is required"`
	IsDeparted               string `json:"is_departed" form:"is_departed"`
	StaffComment             string `json:"staff_comment" form:"staff_comment" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	CompiledBy               string `json:"compiled_by" form:"compiled_by" valid:"stringlength(0|10)~Ensure this value has at most 10 characters"`
}

const DefaultGuardianContact = "+256999999999"

var (
	earliestBirthDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	firstEnrolYear    = 2013
)

// Build validates every field of the form and returns the child it describes.
// On any failure it returns a *ValidationError and no child.
func (f *ChildForm) Build(now time.Time) (*Child, error) {
	f.trim()
	errs := checkTags(f)

	child := &Child{
		FullName:                 f.FullName,
		PreferredName:            f.PreferredName,
		Residence:                f.Residence,
		District:                 f.District,
		Tribe:                    f.Tribe,
		Aspiration:               f.Aspiration,
		CInterest:                f.CInterest,
		FatherName:               f.FatherName,
		FatherDescription:        f.FatherDescription,
		MotherName:               f.MotherName,
		MotherDescription:        f.MotherDescription,
		Guardian:                 f.Guardian,
		RelationshipWithGuardian: f.RelationshipWithGuardian,
		Siblings:                 f.Siblings,
		BackgroundInfo:           f.BackgroundInfo,
		HealthStatus:             f.HealthStatus,
		Responsibility:           f.Responsibility,
		RelationshipWithChrist:   f.RelationshipWithChrist,
		PrayerRequest:            f.PrayerRequest,
		StaffComment:             f.StaffComment,
		CompiledBy:               f.CompiledBy,
	}

	if f.Gender != "" {
		if g, ok := ParseGender(f.Gender); ok {
			child.Gender = g
		} else {
			setIfAbsent(errs, "gender", "Select either Male or Female")
		}
	}

	child.DateOfBirth = dateBetween(errs, "date_of_birth", f.DateOfBirth, earliestBirthDate, now)

	if f.Weight != "" {
		w, err := strconv.ParseFloat(f.Weight, 64)
		if err != nil || !weightPattern.MatchString(f.Weight) || w <= 0 {
			errs["weight"] = "Enter a positive number with at most 5 digits and 2 decimal places"
		} else {
			child.Weight = &w
		}
	}

	if f.Height != "" {
		h, err := parseInt(f.Height)
		if err != nil || h < 1 || h > 100 {
			errs["height"] = "Ensure this value is between 1 and 100"
		} else {
			child.Height = &h
		}
	}

	child.IsChildInSchool = yesNoField(errs, "is_child_in_school", f.IsChildInSchool, false)
	child.IsSponsored = yesNoField(errs, "is_sponsored", f.IsSponsored, false)
	child.IsFatherAlive = yesNoField(errs, "is_father_alive", f.IsFatherAlive, true)
	child.IsMotherAlive = yesNoField(errs, "is_mother_alive", f.IsMotherAlive, true)
	child.IsDeparted = yesNoField(errs, "is_departed", f.IsDeparted, false)

	child.GuardianContact = optionalPhone(errs, "guardian_contact", f.GuardianContact)
	if child.GuardianContact == "" {
		child.GuardianContact = DefaultGuardianContact
	}

	if f.Religion != "" {
		if r, ok := ParseReligion(f.Religion); ok {
			child.Religion = &r
		} else {
			errs["religion"] = "Select a valid choice"
		}
	}

	if f.YearEnrolled != "" {
		y, err := parseInt(f.YearEnrolled)
		if err != nil || y < firstEnrolYear || y > now.Year() {
			errs["year_enrolled"] = fmt.Sprintf("Year enrolled must be between %d and %d", firstEnrolYear, now.Year())
		} else {
			child.YearEnrolled = y
		}
	}

	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return child, nil
}

func (f *ChildForm) trim() {
	trimAll(
		&f.FullName, &f.PreferredName, &f.Residence, &f.District, &f.Tribe, &f.Gender, &f.DateOfBirth,
		&f.Weight, &f.Height, &f.Aspiration, &f.CInterest, &f.IsChildInSchool, &f.IsSponsored,
		&f.FatherName, &f.IsFatherAlive, &f.FatherDescription, &f.MotherName, &f.IsMotherAlive,
		&f.MotherDescription, &f.Guardian, &f.GuardianContact, &f.RelationshipWithGuardian, &f.Siblings,
		&f.BackgroundInfo, &f.HealthStatus, &f.Responsibility, &f.RelationshipWithChrist, &f.Religion,
		&f.PrayerRequest, &f.YearEnrolled, &f.IsDeparted, &f.StaffComment, &f.CompiledBy,
	)
}

type ProgressForm struct {
	NameOfSchool           string `json:"name_of_school" form:"name_of_school" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	PreviousSchools        string `json:"previous_schools" form:"previous_schools"`
	EducationLevel         string `json:"education_level" form:"education_level"`
	ChildClass             string `json:"child_class" form:"child_class"`
	BestSubject            string `json:"best_subject" form:"best_subject" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Score                  string `json:"score" form:"score"`
	CoCurricularActivity   string `json:"co_curricular_activity" form:"co_curricular_activity" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	ResponsibilityAtSchool string `json:"responsibility_at_school" form:"responsibility_at_school" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	FuturePlans            string `json:"future_plans" form:"future_plans" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	ResponsibilityAtHome   string `json:"responsibility_at_home" form:"responsibility_at_home" valid:"stringlength(0|50)~Ensure this value has at most 50 characters"`
	Notes                  string `json:"notes" form:"notes"`
}

func (f *ProgressForm) Build(childID uint) (*ChildProgress, error) {
	f.trim()
	errs := checkTags(f)

	p := &ChildProgress{
		ChildID:                childID,
		NameOfSchool:           f.NameOfSchool,
		PreviousSchools:        f.PreviousSchools,
		EducationLevel:         PreSchool,
		BestSubject:            f.BestSubject,
		CoCurricularActivity:   f.CoCurricularActivity,
		ResponsibilityAtSchool: f.ResponsibilityAtSchool,
		FuturePlans:            f.FuturePlans,
		ResponsibilityAtHome:   f.ResponsibilityAtHome,
		Notes:                  f.Notes,
	}

	if f.EducationLevel != "" {
		if lvl, ok := ParseEducationLevel(f.EducationLevel); ok {
			p.EducationLevel = lvl
		} else {
			errs["education_level"] = "Select a valid choice"
		}
	}

	if f.ChildClass != "" {
		if cls, ok := ParseClassLevel(f.ChildClass); ok {
			p.ChildClass = &cls
		} else {
			errs["child_class"] = "Select a valid choice"
		}
	}

	if f.Score != "" {
		s, err := parseInt(f.Score)
		if err != nil || s < 0 || s > 100 {
			errs["score"] = "Ensure this value is between 0 and 100"
		} else {
			p.Score = &s
		}
	}

	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return p, nil
}

func (f *ProgressForm) trim() {
	trimAll(&f.NameOfSchool, &f.PreviousSchools, &f.EducationLevel, &f.ChildClass, &f.BestSubject, &f.Score,
		&f.CoCurricularActivity, &f.ResponsibilityAtSchool, &f.FuturePlans, &f.ResponsibilityAtHome, &f.Notes)
}

type Dashboard struct {
	TotalChildren     int64 `json:"total_children"`
	SponsoredChildren int64 `json:"sponsored_children"`
	DepartedChildren  int64 `json:"departed_children"`
	ActiveSponsors    int64 `json:"active_sponsors"`
	DepartedSponsors  int64 `json:"departed_sponsors"`
	Policies          int64 `json:"policies"`
}

type ChildRepo interface {
	ListChildren(ctx context.Context, search, page string) (*[]Child, *PageMeta, error)
	GetChildByID(ctx context.Context, id uint) (*Child, error)
	CreateChild(ctx context.Context, child *Child) error
	UpdateChild(ctx context.Context, child *Child) error
	// DeleteChild returns the stored picture path of the removed child, if any.
	DeleteChild(ctx context.Context, id uint) (*string, error)
	DeleteAllChildren(ctx context.Context) (int64, []string, error)
	// SaveProfilePicture returns the path of the picture it replaced, if any.
	SaveProfilePicture(ctx context.Context, pic *ChildProfilePicture) (*string, error)
	ListProgress(ctx context.Context, childID uint) (*[]ChildProgress, error)
	CreateProgress(ctx context.Context, progress *ChildProgress) error
	DeleteProgress(ctx context.Context, id uint) error
	ListCorrespondence(ctx context.Context, childID uint) (*[]ChildCorrespondence, error)
	CreateCorrespondence(ctx context.Context, correspondence *ChildCorrespondence) error
	DeleteCorrespondence(ctx context.Context, id uint) error
	ListIncidents(ctx context.Context, childID uint) (*[]ChildIncident, error)
	CreateIncident(ctx context.Context, incident *ChildIncident) error
	DeleteIncident(ctx context.Context, id uint) error
	GetDashboard(ctx context.Context) (*Dashboard, error)
}

type ChildUseCase interface {
	ListChildren(ctx context.Context, search, page string) (*[]Child, *PageMeta, error)
	GetChild(ctx context.Context, id uint) (*Child, error)
	CreateChild(ctx context.Context, form *ChildForm) (*Child, error)
	UpdateChild(ctx context.Context, id uint, form *ChildForm) (*Child, error)
	DeleteChild(ctx context.Context, id uint) error
	DeleteAllChildren(ctx context.Context) (int64, error)
	UploadProfilePicture(ctx context.Context, childID uint, filename string, r io.Reader) (*ChildProfilePicture, error)
	ListProgress(ctx context.Context, childID uint) (*[]ChildProgress, error)
	CreateProgress(ctx context.Context, childID uint, form *ProgressForm) (*ChildProgress, error)
	DeleteProgress(ctx context.Context, id uint) error
	ListCorrespondence(ctx context.Context, childID uint) (*[]ChildCorrespondence, error)
	CreateCorrespondence(ctx context.Context, childID uint, form *CorrespondenceForm) (*ChildCorrespondence, error)
	DeleteCorrespondence(ctx context.Context, id uint) error
	ListIncidents(ctx context.Context, childID uint) (*[]ChildIncident, error)
	CreateIncident(ctx context.Context, childID uint, reportedBy string, form *IncidentForm) (*ChildIncident, error)
	DeleteIncident(ctx context.Context, id uint) error
	ImportChildren(ctx context.Context, filename string, r io.Reader) (int, error)
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
