package onboarding_test

import (
	"errors"
	"strings"
	"testing"

	"limelight/auth"
	"limelight/models"
	"limelight/services/onboarding"
	"limelight/services/platform"
)

type fakeClient struct {
	taken      bool
	takenErr   error
	checks     int
	creates    int
	lastCreate platform.CreateWebsiteRequest
	createErr  error
}

func (f *fakeClient) SubdomainTaken(subdomain string) (bool, error) {
	f.checks++
	return f.taken, f.takenErr
}

func (f *fakeClient) CreateWebsite(token string, create platform.CreateWebsiteRequest) (models.Website, error) {
	f.creates++
	f.lastCreate = create
	if f.createErr != nil {
		return models.Website{}, f.createErr
	}
	return models.Website{ID: "w-new", Title: create.Title, Subdomain: create.Subdomain}, nil
}

type fakeSession struct {
	userID    string
	refreshes int
}

func (f *fakeSession) UserID() string   { return f.userID }
func (f *fakeSession) RefreshWebsites() { f.refreshes++ }

func newWizard(client *fakeClient) (*onboarding.Wizard, *fakeSession) {
	session := &fakeSession{userID: "u1"}
	return onboarding.NewWizard(client, auth.StaticToken("tok"), session), session
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Band", "my-band"},
		{"  Trimmed  Name ", "trimmed-name"},
		{"Åse & The Strings!", "se--the-strings"},
		{"already-fine", "already-fine"},
	}
	for _, c := range cases {
		if got := onboarding.Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNextValidatesTitle(t *testing.T) {
	w, _ := newWizard(&fakeClient{})

	if _, err := w.Next(); !errors.Is(err, onboarding.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}

	w.SetField(func(d *onboarding.Draft) { d.Title = strings.Repeat("x", 51) })
	if _, err := w.Next(); !errors.Is(err, onboarding.ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}

	w.SetField(func(d *onboarding.Draft) { d.Title = "My Band" })
	step, err := w.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step != onboarding.StepSubdomain {
		t.Fatalf("expected StepSubdomain, got %v", step)
	}
}

func TestSubdomainStepChecksAvailability(t *testing.T) {
	client := &fakeClient{taken: true}
	w, _ := newWizard(client)

	w.SetField(func(d *onboarding.Draft) {
		d.Title = "My Band"
		d.Subdomain = "My Band"
	})
	if _, err := w.Next(); err != nil {
		t.Fatalf("title step: %v", err)
	}

	if _, err := w.Next(); !errors.Is(err, onboarding.ErrSubdomainTaken) {
		t.Fatalf("expected ErrSubdomainTaken, got %v", err)
	}
	if client.checks != 1 {
		t.Fatalf("expected 1 duplicate check, got %d", client.checks)
	}

	client.taken = false
	step, err := w.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step != onboarding.StepTemplate {
		t.Fatalf("expected StepTemplate, got %v", step)
	}
	if got := w.Draft().Subdomain; got != "my-band" {
		t.Fatalf("expected slugified subdomain stored, got %q", got)
	}
}

func TestSubdomainStepRejectsReservedNames(t *testing.T) {
	w, _ := newWizard(&fakeClient{})

	w.SetField(func(d *onboarding.Draft) {
		d.Title = "My Band"
		d.Subdomain = "admin"
	})
	if _, err := w.Next(); err != nil {
		t.Fatalf("title step: %v", err)
	}

	if _, err := w.Next(); !errors.Is(err, onboarding.ErrSubdomainForbidden) {
		t.Fatalf("expected ErrSubdomainForbidden, got %v", err)
	}
}

func TestBackNeverGoesPastFirstStep(t *testing.T) {
	w, _ := newWizard(&fakeClient{})

	if step := w.Back(); step != onboarding.StepArtistName {
		t.Fatalf("expected StepArtistName, got %v", step)
	}
}

func TestSubmitCreatesWebsiteAndRefreshes(t *testing.T) {
	client := &fakeClient{}
	w, session := newWizard(client)

	w.SetField(func(d *onboarding.Draft) {
		d.Title = "My Band"
		d.Subdomain = "my-band"
		d.TemplateID = 3
		d.ContactEmail = "band@example.com"
	})

	site, err := w.Submit()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if site.ID != "w-new" {
		t.Fatalf("expected created website, got %+v", site)
	}
	if client.lastCreate.Subdomain != "my-band" || client.lastCreate.TemplateID != 3 {
		t.Fatalf("unexpected creation payload: %+v", client.lastCreate)
	}
	if client.lastCreate.UserID != "u1" {
		t.Fatalf("expected user id on payload, got %q", client.lastCreate.UserID)
	}
	if session.refreshes != 1 {
		t.Fatalf("expected session refresh after creation, got %d", session.refreshes)
	}
}

func TestSubmitRejectsShortSubdomain(t *testing.T) {
	client := &fakeClient{}
	w, _ := newWizard(client)

	w.SetField(func(d *onboarding.Draft) {
		d.Title = "My Band"
		d.Subdomain = "ab"
		d.TemplateID = 1
	})

	if _, err := w.Submit(); !errors.Is(err, onboarding.ErrSubdomainTooShort) {
		t.Fatalf("expected ErrSubdomainTooShort, got %v", err)
	}
	if client.creates != 0 {
		t.Fatalf("expected zero create requests, got %d", client.creates)
	}
}

func TestSubmitRequiresUser(t *testing.T) {
	client := &fakeClient{}
	w := onboarding.NewWizard(client, auth.StaticToken("tok"), &fakeSession{})
	w.SetField(func(d *onboarding.Draft) {
		d.Title = "My Band"
		d.Subdomain = "my-band"
		d.TemplateID = 1
	})

	if _, err := w.Submit(); !errors.Is(err, onboarding.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
