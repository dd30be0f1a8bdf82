package domain

import "time"

// ChildIncident records something that happened to a child and what staff did about it.
type ChildIncident struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChildID      uint      `gorm:"not null;index" json:"child_id"`
	IncidentDate time.Time `gorm:"type:date;not null" json:"incident_date"`
	Location     string    `gorm:"type:varchar(100)" json:"location"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	ActionTaken  string    `gorm:"type:text" json:"action_taken"`
	ReportedBy   string    `gorm:"type:varchar(50)" json:"reported_by"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ChildIncident) TableName() string { return "child_incidents" }

type IncidentForm struct {
	IncidentDate string `json:"incident_date" form:"incident_date" valid:"required~Incident date is required"`
	Location     string `json:"location" form:"location" valid:"stringlength(0|100)~Ensure this value has at most 100 characters"`
	Description  string `json:"description" form:"description" valid:"required~Description is required"`
	ActionTaken  string `json:"action_taken" form:"action_taken"`
}

// Build validates the form. reportedBy is the username of the staff member filing it.
func (f *IncidentForm) Build(childID uint, reportedBy string, now time.Time) (*ChildIncident, error) {
	trimAll(&f.IncidentDate, &f.Location, &f.Description, &f.ActionTaken)
	errs := checkTags(f)

	incident := &ChildIncident{
		ChildID:     childID,
		Location:    f.Location,
		Description: f.Description,
		ActionTaken: f.ActionTaken,
		ReportedBy:  reportedBy,
	}

	if d := dateBetween(errs, "incident_date", f.IncidentDate, programStart, now); d != nil {
		incident.IncidentDate = *d
	}

	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}
	return incident, nil
}
