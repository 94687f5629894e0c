package jobs_test

import (
	"errors"
	"testing"

	"limelight/auth"
	"limelight/models"
	"limelight/services/jobs"
)

type fakeClient struct {
	jobs      []models.Job
	fetchErr  error
	fetches   int
	creates   int
	updates   int
	deletes   int
	lastJob   models.Job
	writeErr  error
	deletedID string
}

func (f *fakeClient) Jobs(token, websiteID string) ([]models.Job, error) {
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.jobs, nil
}

func (f *fakeClient) CreateJob(token string, job models.Job) error {
	f.creates++
	f.lastJob = job
	return f.writeErr
}

func (f *fakeClient) UpdateJob(token string, job models.Job) error {
	f.updates++
	f.lastJob = job
	return f.writeErr
}

func (f *fakeClient) DeleteJob(token, jobID, userID string) error {
	f.deletes++
	f.deletedID = jobID
	return f.writeErr
}

type fakeSession struct {
	userID string
	site   *models.Website
}

func (f *fakeSession) UserID() string { return f.userID }

func (f *fakeSession) SelectedWebsite() (models.Website, bool) {
	if f.site == nil {
		return models.Website{}, false
	}
	return *f.site, true
}

func loggedIn() *fakeSession {
	return &fakeSession{userID: "u1", site: &models.Website{ID: "w1"}}
}

func TestAddRejectsInvalidDateWithoutNetwork(t *testing.T) {
	client := &fakeClient{}
	svc := jobs.NewService(client, auth.StaticToken("tok"), loggedIn())

	err := svc.Add(models.Job{Title: "Concert", Date: "2024-13-40", Time: "20:00"})
	if !errors.Is(err, jobs.ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
	if client.creates != 0 || client.fetches != 0 {
		t.Fatalf("expected zero requests, got creates=%d fetches=%d", client.creates, client.fetches)
	}
}

func TestAddRejectsInvalidTimeWithoutNetwork(t *testing.T) {
	client := &fakeClient{}
	svc := jobs.NewService(client, auth.StaticToken("tok"), loggedIn())

	err := svc.Add(models.Job{Title: "Concert", Date: "2024-06-01", Time: "25:99"})
	if !errors.Is(err, jobs.ErrInvalidTime) {
		t.Fatalf("expected ErrInvalidTime, got %v", err)
	}
	if client.creates != 0 {
		t.Fatalf("expected zero create requests, got %d", client.creates)
	}
}

func TestAddNormalizesAndRefetches(t *testing.T) {
	client := &fakeClient{jobs: []models.Job{{ID: "j1", Title: "Concert"}}}
	svc := jobs.NewService(client, auth.StaticToken("tok"), loggedIn())

	err := svc.Add(models.Job{Title: "Concert", Date: "1/6/2024", Time: "8:00 PM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.creates != 1 {
		t.Fatalf("expected 1 create, got %d", client.creates)
	}
	if client.fetches != 1 {
		t.Fatalf("expected refetch after create, got %d fetches", client.fetches)
	}
	if client.lastJob.Date != "2024-06-01" {
		t.Fatalf("expected normalised date 2024-06-01, got %q", client.lastJob.Date)
	}
	if client.lastJob.Time != "20:00" {
		t.Fatalf("expected normalised time 20:00, got %q", client.lastJob.Time)
	}
	if client.lastJob.WebsiteID != "w1" || client.lastJob.UserID != "u1" {
		t.Fatalf("expected session identifiers on the payload, got %+v", client.lastJob)
	}
	if !client.lastJob.IsPublic {
		t.Fatal("expected new jobs to default to public")
	}

	if got := svc.Jobs(); len(got) != 1 || got[0].ID != "j1" {
		t.Fatalf("expected refetched collection, got %+v", got)
	}
}

func TestWritesRequireSession(t *testing.T) {
	client := &fakeClient{}
	svc := jobs.NewService(client, auth.StaticToken("tok"), &fakeSession{})

	if err := svc.Add(models.Job{Date: "2024-06-01", Time: "20:00"}); !errors.Is(err, jobs.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	svcNoSite := jobs.NewService(client, auth.StaticToken("tok"), &fakeSession{userID: "u1"})
	if err := svcNoSite.Delete("j1"); !errors.Is(err, jobs.ErrNoWebsiteSelected) {
		t.Fatalf("expected ErrNoWebsiteSelected, got %v", err)
	}
	if client.creates != 0 || client.deletes != 0 {
		t.Fatal("expected zero requests without a session")
	}
}

func TestRefreshIsNoopWithoutSelection(t *testing.T) {
	client := &fakeClient{}
	svc := jobs.NewService(client, auth.StaticToken("tok"), &fakeSession{userID: "u1"})

	if err := svc.Refresh(); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
	if client.fetches != 0 {
		t.Fatalf("expected zero fetches, got %d", client.fetches)
	}
}

func TestRefreshFailureEmptiesCollection(t *testing.T) {
	client := &fakeClient{jobs: []models.Job{{ID: "j1"}}}
	svc := jobs.NewService(client, auth.StaticToken("tok"), loggedIn())

	if err := svc.Refresh(); err != nil {
		t.Fatalf("seed refresh: %v", err)
	}
	if len(svc.Jobs()) != 1 {
		t.Fatal("expected seeded collection")
	}

	client.fetchErr = errors.New("boom")
	if err := svc.Refresh(); err == nil {
		t.Fatal("expected refresh error")
	}
	if got := svc.Jobs(); len(got) != 0 {
		t.Fatalf("expected emptied collection after failed fetch, got %+v", got)
	}
}

func TestDeleteRefetches(t *testing.T) {
	client := &fakeClient{jobs: []models.Job{}}
	svc := jobs.NewService(client, auth.StaticToken("tok"), loggedIn())

	if err := svc.Delete("j9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.deletes != 1 || client.deletedID != "j9" {
		t.Fatalf("expected delete of j9, got deletes=%d id=%q", client.deletes, client.deletedID)
	}
	if client.fetches != 1 {
		t.Fatalf("expected refetch after delete, got %d", client.fetches)
	}
}
