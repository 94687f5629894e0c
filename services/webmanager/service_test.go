package webmanager_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limelight/auth"
	"limelight/models"
	"limelight/services/webmanager"
)

type fakeUpdater struct {
	updates int
	last    models.Website
	err     error
}

func (f *fakeUpdater) UpdateWebsite(token string, site models.Website) (models.Website, error) {
	f.updates++
	f.last = site
	if f.err != nil {
		return models.Website{}, f.err
	}
	return site, nil
}

type fakeSession struct {
	site      *models.Website
	refreshes int
}

func (f *fakeSession) SelectedWebsite() (models.Website, bool) {
	if f.site == nil {
		return models.Website{}, false
	}
	return *f.site, true
}

func (f *fakeSession) RefreshWebsites() { f.refreshes++ }

func baseSite() models.Website {
	return models.Website{ID: "w1", UserID: "u1", Title: "My Band", Subdomain: "myband", TemplateID: 1}
}

func newService(t *testing.T) (*webmanager.Service, *fakeUpdater, *fakeSession) {
	t.Helper()
	site := baseSite()
	session := &fakeSession{site: &site}
	updater := &fakeUpdater{}
	svc := webmanager.NewService(updater, auth.StaticToken("tok"), session)
	return svc, updater, session
}

func TestUpdateFieldTracksPerField(t *testing.T) {
	svc, _, _ := newService(t)

	require.False(t, svc.HasChanges())

	require.NoError(t, svc.UpdateField("title", "New Name"))
	assert.True(t, svc.HasChanges())
	assert.Equal(t, []string{"title"}, svc.ModifiedFields())

	require.NoError(t, svc.UpdateField("description", "Bio text"))
	assert.Equal(t, []string{"description", "title"}, svc.ModifiedFields())
}

func TestRevertingFieldClearsDirtyFlag(t *testing.T) {
	svc, _, _ := newService(t)

	require.NoError(t, svc.UpdateField("title", "New Name"))
	require.True(t, svc.HasChanges())

	// Writing the original value back clears the flag: tracking compares
	// values, it does not count writes.
	require.NoError(t, svc.UpdateField("title", "My Band"))
	assert.False(t, svc.HasChanges())
	assert.Empty(t, svc.ModifiedFields())
}

func TestUpdateFieldRejectsUnknownNames(t *testing.T) {
	svc, _, _ := newService(t)

	err := svc.UpdateField("no_such_field", "x")
	assert.ErrorIs(t, err, webmanager.ErrUnknownField)
	assert.False(t, svc.HasChanges())
}

func TestSavePushesDraftAndReloadsBaseline(t *testing.T) {
	svc, updater, session := newService(t)

	require.NoError(t, svc.UpdateField("title", "New Name"))
	require.NoError(t, svc.Save())

	assert.Equal(t, 1, updater.updates)
	assert.Equal(t, "New Name", updater.last.Title)
	assert.Equal(t, 1, session.refreshes)
	assert.False(t, svc.HasChanges(), "save must leave a clean draft")
}

func TestSaveFailureKeepsDraftAndDirtySet(t *testing.T) {
	svc, updater, _ := newService(t)
	updater.err = errors.New("boom")

	require.NoError(t, svc.UpdateField("title", "New Name"))
	require.Error(t, svc.Save())

	assert.True(t, svc.HasChanges(), "failed save must not discard edits")
	draft, err := svc.Draft()
	require.NoError(t, err)
	assert.Equal(t, "New Name", draft.Title)
}

func TestLoadDiscardsPendingEdits(t *testing.T) {
	svc, _, _ := newService(t)

	require.NoError(t, svc.UpdateField("title", "Abandoned Edit"))
	require.True(t, svc.HasChanges())

	// Selection switch loads the other website and drops the pending edit.
	other := baseSite()
	other.ID = "w2"
	other.Title = "Other Band"
	svc.Load(other)

	assert.False(t, svc.HasChanges())
	draft, err := svc.Draft()
	require.NoError(t, err)
	assert.Equal(t, "Other Band", draft.Title)
}

func TestDraftWithoutLoadFails(t *testing.T) {
	updater := &fakeUpdater{}
	svc := webmanager.NewService(updater, auth.StaticToken("tok"), &fakeSession{})

	_, err := svc.Draft()
	assert.ErrorIs(t, err, webmanager.ErrNoDraft)
	assert.ErrorIs(t, svc.Save(), webmanager.ErrNoDraft)
}
