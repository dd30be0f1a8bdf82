package usecase

import (
	"context"
	"errors"
	"sponsorship/domain"
	"sponsorship/services/sponsorship/repository"
	"sponsorship/testutil"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

// ucSuite wires every use case to real repositories over a fresh in-memory database.
type ucSuite struct {
	suite.Suite
	db          *gorm.DB
	uploadDir   string
	mailer      *fakeMailer
	children    *childUC
	sponsors    *sponsorUC
	sponsorship *sponsorshipUC
	policies    domain.PolicyUseCase
	auth        domain.AuthUseCase
	contact     domain.ContactUseCase
	profiles    *profileUC
}

func (s *ucSuite) SetupTest() {
	s.db = testutil.NewDB(s.T())
	s.uploadDir = s.T().TempDir()
	s.mailer = &fakeMailer{}
	timeout := 5 * time.Second

	s.children = NewChildUseCase(repository.NewChildRepository(s.db), s.uploadDir, timeout).(*childUC)
	s.children.now = func() time.Time { return fixedNow }
	s.sponsors = NewSponsorUseCase(repository.NewSponsorRepository(s.db), timeout).(*sponsorUC)
	s.sponsors.now = func() time.Time { return fixedNow }
	s.sponsorship = NewSponsorshipUseCase(repository.NewSponsorshipRepository(s.db), timeout).(*sponsorshipUC)
	s.sponsorship.now = func() time.Time { return fixedNow }
	s.policies = NewPolicyUseCase(repository.NewPolicyRepository(s.db), timeout)
	s.auth = NewAuthUseCase(repository.NewUserRepository(s.db), timeout)
	s.contact = NewContactUseCase(repository.NewContactRepository(s.db), s.mailer, timeout)
	s.profiles = NewProfileUseCase(repository.NewProfileRepository(s.db), s.uploadDir, timeout).(*profileUC)
}

func (s *ucSuite) count(model interface{}) int64 {
	var n int64
	s.Require().NoError(s.db.Model(model).Count(&n).Error)
	return n
}

func (s *ucSuite) validChildForm(name string) *domain.ChildForm {
	return &domain.ChildForm{
		FullName:      name,
		Gender:        "Female",
		DateOfBirth:   "2012-04-01",
		IsFatherAlive: "Yes",
		IsMotherAlive: "No",
		YearEnrolled:  "2018",
	}
}

func (s *ucSuite) createChild(name string) *domain.Child {
	child, err := s.children.CreateChild(context.Background(), s.validChildForm(name))
	s.Require().NoError(err)
	return child
}

func (s *ucSuite) createSponsor(first, last string) *domain.Sponsor {
	sponsor, err := s.sponsors.CreateSponsor(context.Background(), &domain.SponsorForm{
		FirstName: first,
		LastName:  last,
		Gender:    "Male",
	})
	s.Require().NoError(err)
	return sponsor
}

func (s *ucSuite) fieldErrors(err error) map[string]string {
	var verr *domain.ValidationError
	s.Require().ErrorAs(err, &verr)
	return verr.Fields
}

type fakeMailer struct {
	err  error
	sent []*domain.ContactMessage
}

func (m *fakeMailer) SendContactConfirmation(_ context.Context, msg *domain.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var errRelayDown = errors.New("relay refused connection")
