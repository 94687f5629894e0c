package session_test

import (
	"errors"
	"testing"

	"limelight/auth"
	"limelight/models"
	"limelight/services/session"
)

type fakePlatform struct {
	sites    []models.Website
	listErr  error
	hasSite  bool
	hasErr   error
	listReqs int
}

func (f *fakePlatform) WebsitesByUser(token, userID string) ([]models.Website, error) {
	f.listReqs++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sites, nil
}

func (f *fakePlatform) HasWebsite(token, userID string) (bool, error) {
	return f.hasSite, f.hasErr
}

func site(id, title string) models.Website {
	return models.Website{ID: id, Title: title}
}

func TestSetUserSelectsFirstWebsite(t *testing.T) {
	client := &fakePlatform{sites: []models.Website{site("w1", "First"), site("w2", "Second")}}
	svc := session.NewService(client, auth.StaticToken("tok"))

	svc.SetUser("u1")

	selected, ok := svc.SelectedWebsite()
	if !ok {
		t.Fatal("expected a selected website after login")
	}
	if selected.ID != "w1" {
		t.Fatalf("expected default selection w1, got %s", selected.ID)
	}
	if got := len(svc.Websites()); got != 2 {
		t.Fatalf("expected 2 websites, got %d", got)
	}
}

func TestRefreshPreservesSelectionByID(t *testing.T) {
	client := &fakePlatform{sites: []models.Website{site("w1", "First"), site("w2", "Second")}}
	svc := session.NewService(client, auth.StaticToken("tok"))
	svc.SetUser("u1")

	if err := svc.SelectWebsite("w2"); err != nil {
		t.Fatalf("select w2: %v", err)
	}

	// The refreshed list carries the same ids in a new order.
	client.sites = []models.Website{site("w2", "Second renamed"), site("w1", "First")}
	svc.RefreshWebsites()

	selected, ok := svc.SelectedWebsite()
	if !ok || selected.ID != "w2" {
		t.Fatalf("expected selection to stay on w2, got %+v (ok=%v)", selected, ok)
	}
	if selected.Title != "Second renamed" {
		t.Fatalf("expected refreshed data for w2, got %q", selected.Title)
	}
}

func TestRefreshFallsBackToFirstWhenSelectionVanishes(t *testing.T) {
	client := &fakePlatform{sites: []models.Website{site("w1", "First"), site("w2", "Second")}}
	svc := session.NewService(client, auth.StaticToken("tok"))
	svc.SetUser("u1")
	if err := svc.SelectWebsite("w2"); err != nil {
		t.Fatalf("select w2: %v", err)
	}

	client.sites = []models.Website{site("w1", "First")}
	svc.RefreshWebsites()

	selected, ok := svc.SelectedWebsite()
	if !ok || selected.ID != "w1" {
		t.Fatalf("expected fallback to w1, got %+v (ok=%v)", selected, ok)
	}
}

func TestRefreshFailureLeavesPriorState(t *testing.T) {
	client := &fakePlatform{sites: []models.Website{site("w1", "First")}}
	svc := session.NewService(client, auth.StaticToken("tok"))
	svc.SetUser("u1")

	client.listErr = errors.New("boom")
	svc.RefreshWebsites()

	if got := len(svc.Websites()); got != 1 {
		t.Fatalf("expected prior website list to survive, got %d entries", got)
	}
	if selected, ok := svc.SelectedWebsite(); !ok || selected.ID != "w1" {
		t.Fatalf("expected prior selection to survive, got %+v (ok=%v)", selected, ok)
	}
}

func TestSelectUnknownWebsite(t *testing.T) {
	client := &fakePlatform{sites: []models.Website{site("w1", "First")}}
	svc := session.NewService(client, auth.StaticToken("tok"))
	svc.SetUser("u1")

	err := svc.SelectWebsite("nope")
	if !errors.Is(err, session.ErrUnknownWebsite) {
		t.Fatalf("expected ErrUnknownWebsite, got %v", err)
	}
}

func TestSelectionChangeNotifiesListeners(t *testing.T) {
	client := &fakePlatform{sites: []models.Website{site("w1", "First"), site("w2", "Second")}}
	svc := session.NewService(client, auth.StaticToken("tok"))

	var seen []string
	svc.OnSelect(func(site models.Website) {
		seen = append(seen, site.ID)
	})

	svc.SetUser("u1")
	if err := svc.SelectWebsite("w2"); err != nil {
		t.Fatalf("select w2: %v", err)
	}
	// Re-selecting the same website must not fire again.
	if err := svc.SelectWebsite("w2"); err != nil {
		t.Fatalf("reselect w2: %v", err)
	}

	if len(seen) != 2 || seen[0] != "w1" || seen[1] != "w2" {
		t.Fatalf("unexpected listener sequence: %v", seen)
	}
}

func TestHasWebsiteRequiresUser(t *testing.T) {
	client := &fakePlatform{}
	svc := session.NewService(client, auth.StaticToken("tok"))

	if _, err := svc.HasWebsite(); !errors.Is(err, session.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestHasWebsiteSurfacesResult(t *testing.T) {
	client := &fakePlatform{hasSite: true}
	svc := session.NewService(client, auth.StaticToken("tok"))
	svc.SetUser("u1")

	has, err := svc.HasWebsite()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !has {
		t.Fatal("expected hasWebsite true")
	}
}
