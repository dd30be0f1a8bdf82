package usecase

import (
	"context"
	"sponsorship/domain"
	"strings"
	"time"
)

func (s *ChildUseCaseSuite) TestCreateCorrespondence() {
	ctx := context.Background()
	child := s.createChild("Grace")

	letter, err := s.children.CreateCorrespondence(ctx, child.ID, &domain.CorrespondenceForm{
		Subject:  "  Thank you  ",
		Content:  "For the school shoes.",
		DateSent: "2024-05-02",
	})
	s.Require().NoError(err)
	s.Equal(domain.Letter, letter.CorrespondenceType)
	s.Equal("Thank you", letter.Subject)
	s.Equal(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), letter.DateSent)

	_, err = s.children.CreateCorrespondence(ctx, child.ID, &domain.CorrespondenceForm{
		CorrespondenceType: "card",
		Subject:            "Christmas",
		DateSent:           "2024-06-01",
	})
	s.Require().NoError(err)

	list, err := s.children.ListCorrespondence(ctx, child.ID)
	s.Require().NoError(err)
	s.Require().Len(*list, 2)
	s.Equal(domain.Card, (*list)[0].CorrespondenceType)
	s.Equal("Thank you", (*list)[1].Subject)
}

func (s *ChildUseCaseSuite) TestCreateCorrespondenceRejects() {
	ctx := context.Background()
	child := s.createChild("Grace")

	_, err := s.children.CreateCorrespondence(ctx, child.ID, &domain.CorrespondenceForm{
		CorrespondenceType: "Parcel",
		Subject:            strings.Repeat("s", 101),
		DateSent:           "2024-06-16",
	})
	fields := s.fieldErrors(err)
	s.Contains(fields, "correspondence_type")
	s.Contains(fields, "subject")
	s.Contains(fields, "date_sent")

	_, err = s.children.CreateCorrespondence(ctx, child.ID, &domain.CorrespondenceForm{
		Subject:  "Old letter",
		DateSent: "2012-12-31",
	})
	s.Contains(s.fieldErrors(err), "date_sent")

	_, err = s.children.CreateCorrespondence(ctx, 404, &domain.CorrespondenceForm{
		Subject:  "Hello",
		DateSent: "2024-01-01",
	})
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(int64(0), s.count(&domain.ChildCorrespondence{}))
}

func (s *ChildUseCaseSuite) TestDeleteCorrespondence() {
	ctx := context.Background()
	child := s.createChild("Grace")
	letter, err := s.children.CreateCorrespondence(ctx, child.ID, &domain.CorrespondenceForm{
		Subject:  "Hello",
		DateSent: "2024-01-01",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.children.DeleteCorrespondence(ctx, letter.ID))
	s.ErrorIs(s.children.DeleteCorrespondence(ctx, letter.ID), domain.ErrNotFound)
}

func (s *ChildUseCaseSuite) TestCreateIncidentRecordsReporter() {
	ctx := context.Background()
	child := s.createChild("Grace")

	incident, err := s.children.CreateIncident(ctx, child.ID, "mary", &domain.IncidentForm{
		IncidentDate: "2024-06-10",
		Location:     " School playground ",
		Description:  "Fell from the swing.",
		ActionTaken:  "Taken to the clinic.",
	})
	s.Require().NoError(err)
	s.Equal("mary", incident.ReportedBy)
	s.Equal("School playground", incident.Location)

	list, err := s.children.ListIncidents(ctx, child.ID)
	s.Require().NoError(err)
	s.Require().Len(*list, 1)
	s.Equal("Fell from the swing.", (*list)[0].Description)

	s.Require().NoError(s.children.DeleteIncident(ctx, incident.ID))
	s.ErrorIs(s.children.DeleteIncident(ctx, incident.ID), domain.ErrNotFound)
}

func (s *ChildUseCaseSuite) TestCreateIncidentRejects() {
	ctx := context.Background()
	child := s.createChild("Grace")

	_, err := s.children.CreateIncident(ctx, child.ID, "mary", &domain.IncidentForm{
		IncidentDate: "tomorrow",
		Location:     strings.Repeat("l", 101),
		Description:  "   ",
	})
	fields := s.fieldErrors(err)
	s.Contains(fields, "incident_date")
	s.Contains(fields, "location")
	s.Contains(fields, "description")

	_, err = s.children.ListIncidents(ctx, 404)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Equal(int64(0), s.count(&domain.ChildIncident{}))
}
