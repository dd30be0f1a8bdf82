package usecase

import (
	"context"
	"sponsorship/domain"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SponsorshipUseCaseSuite struct {
	ucSuite
}

func TestSponsorshipUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SponsorshipUseCaseSuite))
}

func (s *SponsorshipUseCaseSuite) request(sponsorID, childID uint) *domain.SponsorshipRequest {
	return &domain.SponsorshipRequest{
		SponsorID:       sponsorID,
		ChildID:         childID,
		SponsorshipType: "Education",
		StartDate:       "2023-01-10",
	}
}

func (s *SponsorshipUseCaseSuite) TestCreateSponsorshipSetsFlag() {
	ctx := context.Background()
	sponsor := s.createSponsor("Anna", "Smith")
	child := s.createChild("Grace")

	link, err := s.sponsorship.CreateSponsorship(ctx, s.request(sponsor.ID, child.ID))
	s.Require().NoError(err)
	s.Equal(domain.EducationSponsorship, link.SponsorshipType)

	got, err := s.children.GetChild(ctx, child.ID)
	s.Require().NoError(err)
	s.Equal(domain.Yes, got.IsSponsored)
}

func (s *SponsorshipUseCaseSuite) TestDuplicateAppliesNothing() {
	ctx := context.Background()
	sponsor := s.createSponsor("Anna", "Smith")
	child := s.createChild("Grace")
	_, err := s.sponsorship.CreateSponsorship(ctx, s.request(sponsor.ID, child.ID))
	s.Require().NoError(err)
	s.Require().NoError(s.sponsorship.TerminateSponsorship(ctx, child.ID))

	_, err = s.sponsorship.CreateSponsorship(ctx, s.request(sponsor.ID, child.ID))
	s.ErrorIs(err, domain.ErrSponsorshipExists)

	got, err := s.children.GetChild(ctx, child.ID)
	s.Require().NoError(err)
	s.Equal(domain.No, got.IsSponsored)
	s.Equal(int64(1), s.count(&domain.ChildSponsorship{}))
}

func (s *SponsorshipUseCaseSuite) TestCreateSponsorshipValidation() {
	_, err := s.sponsorship.CreateSponsorship(context.Background(), &domain.SponsorshipRequest{SponsorshipType: "Lunch"})
	fields := s.fieldErrors(err)
	for _, key := range []string{"sponsor_id", "child_id", "sponsorship_type", "start_date"} {
		s.Contains(fields, key)
	}

	_, err = s.sponsorship.CreateSponsorship(context.Background(), &domain.SponsorshipRequest{
		SponsorID: 1,
		ChildID:   1,
		StartDate: "2030-01-01",
	})
	s.Contains(s.fieldErrors(err), "start_date")
}

func (s *SponsorshipUseCaseSuite) TestChildReport() {
	ctx := context.Background()
	sponsor := s.createSponsor("Anna", "Smith")
	child := s.createChild("Grace")
	_, err := s.sponsorship.CreateSponsorship(ctx, s.request(sponsor.ID, child.ID))
	s.Require().NoError(err)

	report, err := s.sponsorship.GetChildReport(ctx, child.ID)
	s.Require().NoError(err)
	s.Equal(child.PrefixedID(), report.PrefixedID)
	s.Equal("Grace", report.FullName)
	s.Equal(domain.Yes, report.IsSponsored)
	s.Require().Len(report.Sponsorships, 1)
	s.Equal(sponsor.ID, report.Sponsorships[0].Sponsor.ID)

	children, meta, err := s.sponsorship.ListSponsoredChildren(ctx, "", "")
	s.Require().NoError(err)
	s.Len(*children, 1)
	s.Equal(int64(1), meta.Total)

	_, err = s.sponsorship.GetChildReport(ctx, 404)
	s.ErrorIs(err, domain.ErrNotFound)
}
