package domain

import "strings"

// YesNo is stored and serialised as "Yes" or "No".
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

func (v YesNo) Bool() bool { return v == Yes }

func YesNoFromBool(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}

// ParseYesNo accepts Yes or No in any letter case.
func ParseYesNo(s string) (YesNo, bool) {
	return matchFold(s, []YesNo{Yes, No})
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type Religion string

const (
	BornAgainChristian Religion = "Born-again Christian"
	Anglican           Religion = "Anglican"
	Catholic           Religion = "Catholic"
	Muslim             Religion = "Muslim"
)

type EducationLevel string

const (
	PreSchool    EducationLevel = "Pre-School"
	Kindergarten EducationLevel = "Kindergarten"
	Primary      EducationLevel = "Primary"
	Secondary    EducationLevel = "Secondary"
	Tertiary     EducationLevel = "Tertiary"
	University   EducationLevel = "University"
)

type ClassLevel string

var ClassLevels = []ClassLevel{
	"Baby", "Middle", "Top",
	"P.1", "P.2", "P.3", "P.4", "P.5", "P.6", "P.7",
	"S.1", "S.2", "S.3", "S.4", "S.5", "S.6",
	"Tertiary", "University",
}

type SponsorshipType string

const (
	FullSponsorship      SponsorshipType = "Full"
	PartialSponsorship   SponsorshipType = "Partial"
	EducationSponsorship SponsorshipType = "Education"
	MedicalSponsorship   SponsorshipType = "Medical"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// matchFold returns the canonical member of set equal to s ignoring case and surrounding space.
func matchFold[T ~string](s string, set []T) (T, bool) {
	s = strings.TrimSpace(s)
	for _, v := range set {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func ParseGender(s string) (Gender, bool) {
	return matchFold(s, []Gender{Male, Female})
}

func ParseReligion(s string) (Religion, bool) {
	return matchFold(s, []Religion{BornAgainChristian, Anglican, Catholic, Muslim})
}

func ParseEducationLevel(s string) (EducationLevel, bool) {
	return matchFold(s, []EducationLevel{PreSchool, Kindergarten, Primary, Secondary, Tertiary, University})
}

func ParseClassLevel(s string) (ClassLevel, bool) {
	return matchFold(s, ClassLevels)
}

func ParseSponsorshipType(s string) (SponsorshipType, bool) {
	return matchFold(s, []SponsorshipType{FullSponsorship, PartialSponsorship, EducationSponsorship, MedicalSponsorship})
}
