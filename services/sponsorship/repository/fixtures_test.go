package repository

import (
	"fmt"
	"sponsorship/domain"
	"sponsorship/testutil"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// repoSuite gives every test a fresh migrated database.
type repoSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *repoSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
}

func (s *repoSuite) seedChild(name string) *domain.Child {
	child := &domain.Child{
		FullName:        name,
		Gender:          domain.Female,
		IsChildInSchool: domain.Yes,
		IsSponsored:     domain.No,
		IsFatherAlive:   domain.Yes,
		IsMotherAlive:   domain.No,
		GuardianContact: domain.DefaultGuardianContact,
		YearEnrolled:    2015,
		IsDeparted:      domain.No,
	}
	s.Require().NoError(s.db.Create(child).Error)
	return child
}

func (s *repoSuite) seedChildren(n int) {
	for i := 0; i < n; i++ {
		s.seedChild(fmt.Sprintf("Child %s", string(rune('A'+i%26))))
	}
}

func (s *repoSuite) seedSponsor(first, last string, departed domain.YesNo) *domain.Sponsor {
	sponsor := &domain.Sponsor{
		FirstName:  first,
		LastName:   last,
		Gender:     domain.Male,
		IsDeparted: departed,
	}
	s.Require().NoError(s.db.Create(sponsor).Error)
	return sponsor
}

func (s *repoSuite) reloadChild(id uint) domain.Child {
	var child domain.Child
	s.Require().NoError(s.db.First(&child, id).Error)
	return child
}

func (s *repoSuite) count(model interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
