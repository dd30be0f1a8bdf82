package repository

import (
	"context"
	"sponsorship/domain"
)

func (s *ChildRepositorySuite) TestCorrespondenceNewestFirst() {
	ctx := context.Background()
	child := s.seedChild("Grace")

	older := &domain.ChildCorrespondence{ChildID: child.ID, CorrespondenceType: domain.Letter, Subject: "Christmas", DateSent: day(2022, 12, 20)}
	newer := &domain.ChildCorrespondence{ChildID: child.ID, CorrespondenceType: domain.Card, Subject: "Birthday", DateSent: day(2023, 4, 2)}
	s.Require().NoError(s.repo.CreateCorrespondence(ctx, older))
	s.Require().NoError(s.repo.CreateCorrespondence(ctx, newer))

	list, err := s.repo.ListCorrespondence(ctx, child.ID)
	s.Require().NoError(err)
	s.Require().Len(*list, 2)
	s.Equal("Birthday", (*list)[0].Subject)
	s.Equal("Christmas", (*list)[1].Subject)

	_, err = s.repo.ListCorrespondence(ctx, 999)
	s.ErrorIs(err, domain.ErrNotFound)
	s.ErrorIs(s.repo.CreateCorrespondence(ctx, &domain.ChildCorrespondence{ChildID: 999, Subject: "x", DateSent: day(2023, 1, 1)}), domain.ErrNotFound)

	s.Require().NoError(s.repo.DeleteCorrespondence(ctx, older.ID))
	s.ErrorIs(s.repo.DeleteCorrespondence(ctx, older.ID), domain.ErrNotFound)
	s.Equal(int64(1), s.count(&domain.ChildCorrespondence{}))
}

func (s *ChildRepositorySuite) TestIncidentsNewestFirst() {
	ctx := context.Background()
	child := s.seedChild("Grace")
	other := s.seedChild("Peter")

	s.Require().NoError(s.repo.CreateIncident(ctx, &domain.ChildIncident{ChildID: child.ID, IncidentDate: day(2023, 2, 1), Description: "Fell"}))
	s.Require().NoError(s.repo.CreateIncident(ctx, &domain.ChildIncident{ChildID: child.ID, IncidentDate: day(2023, 8, 9), Description: "Malaria"}))
	s.Require().NoError(s.repo.CreateIncident(ctx, &domain.ChildIncident{ChildID: other.ID, IncidentDate: day(2023, 5, 5), Description: "Lost book"}))

	list, err := s.repo.ListIncidents(ctx, child.ID)
	s.Require().NoError(err)
	s.Require().Len(*list, 2)
	s.Equal("Malaria", (*list)[0].Description)
	s.Equal("Fell", (*list)[1].Description)

	empty := s.seedChild("Sarah")
	list, err = s.repo.ListIncidents(ctx, empty.ID)
	s.Require().NoError(err)
	s.Empty(*list)

	s.ErrorIs(s.repo.DeleteIncident(ctx, 999), domain.ErrNotFound)
}

func (s *ChildRepositorySuite) TestDeleteChildRemovesRecords() {
	ctx := context.Background()
	child := s.seedChild("Grace")
	other := s.seedChild("Peter")

	s.Require().NoError(s.repo.CreateCorrespondence(ctx, &domain.ChildCorrespondence{ChildID: child.ID, Subject: "Hello", DateSent: day(2023, 1, 1)}))
	s.Require().NoError(s.repo.CreateIncident(ctx, &domain.ChildIncident{ChildID: child.ID, IncidentDate: day(2023, 1, 1), Description: "Fell"}))
	s.Require().NoError(s.repo.CreateIncident(ctx, &domain.ChildIncident{ChildID: other.ID, IncidentDate: day(2023, 1, 1), Description: "Fell"}))

	loaded, err := s.repo.GetChildByID(ctx, child.ID)
	s.Require().NoError(err)
	s.Len(loaded.Correspondence, 1)
	s.Len(loaded.Incidents, 1)

	_, err = s.repo.DeleteChild(ctx, child.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), s.count(&domain.ChildCorrespondence{}))
	s.Equal(int64(1), s.count(&domain.ChildIncident{}))

	deleted, _, err := s.repo.DeleteAllChildren(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)
	s.Equal(int64(0), s.count(&domain.ChildIncident{}))
}
