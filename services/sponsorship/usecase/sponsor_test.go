package usecase

import (
	"context"
	"sponsorship/domain"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SponsorUseCaseSuite struct {
	ucSuite
}

func TestSponsorUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SponsorUseCaseSuite))
}

func (s *SponsorUseCaseSuite) TestCreateSponsorValidation() {
	_, err := s.sponsors.CreateSponsor(context.Background(), &domain.SponsorForm{
		FirstName:       "Anna1",
		Gender:          "Male",
		Email:           "not-an-email",
		MobileTelephone: "555",
		StartDate:       "2012-12-31",
	})
	fields := s.fieldErrors(err)
	for _, key := range []string{"first_name", "last_name", "email", "mobile_telephone", "start_date"} {
		s.Contains(fields, key)
	}
	s.Equal(int64(0), s.count(&domain.Sponsor{}))
}

func (s *SponsorUseCaseSuite) TestCreateAndUpdateSponsor() {
	ctx := context.Background()
	sponsor, err := s.sponsors.CreateSponsor(ctx, &domain.SponsorForm{
		FirstName: "Anna",
		LastName:  "Smith",
		Gender:    "female",
		Email:     " Anna@Example.ORG ",
		StartDate: "2020-02-01",
	})
	s.Require().NoError(err)
	s.Equal(domain.Female, sponsor.Gender)
	s.Require().NotNil(sponsor.Email)
	s.Equal("anna@example.org", *sponsor.Email)
	s.Equal(domain.No, sponsor.IsDeparted)

	updated, err := s.sponsors.UpdateSponsor(ctx, sponsor.ID, &domain.SponsorForm{
		FirstName: "Anna",
		LastName:  "Smith Jones",
		Gender:    "Female",
	})
	s.Require().NoError(err)
	s.Equal("Smith Jones", updated.LastName)
	s.Nil(updated.Email)
}

func (s *SponsorUseCaseSuite) TestDepartAndReinstate() {
	ctx := context.Background()
	sponsor := s.createSponsor("Anna", "Smith")

	_, err := s.sponsors.DepartSponsor(ctx, sponsor.ID, &domain.DepartureRequest{DepartureDate: "2024-06-16", DepartureReason: "Future"})
	s.Contains(s.fieldErrors(err), "departure_date")

	_, err = s.sponsors.DepartSponsor(ctx, sponsor.ID, &domain.DepartureRequest{DepartureDate: "2024-06-01"})
	s.Contains(s.fieldErrors(err), "departure_reason")

	departure, err := s.sponsors.DepartSponsor(ctx, sponsor.ID, &domain.DepartureRequest{DepartureDate: "2024-06-01", DepartureReason: " Relocated "})
	s.Require().NoError(err)
	s.Equal("Relocated", departure.DepartureReason)

	active, _, err := s.sponsors.ListSponsors(ctx, "", "")
	s.Require().NoError(err)
	s.Empty(*active)

	departed, _, err := s.sponsors.ListDepartedSponsors(ctx, "smith", "")
	s.Require().NoError(err)
	s.Require().Len(*departed, 1)
	s.Len((*departed)[0].Departures, 1)

	s.Require().NoError(s.sponsors.ReinstateSponsor(ctx, sponsor.ID))
	active, _, err = s.sponsors.ListSponsors(ctx, "", "")
	s.Require().NoError(err)
	s.Len(*active, 1)

	_, err = s.sponsors.DepartSponsor(ctx, 404, &domain.DepartureRequest{DepartureDate: "2024-06-01", DepartureReason: "x"})
	s.ErrorIs(err, domain.ErrNotFound)
}
