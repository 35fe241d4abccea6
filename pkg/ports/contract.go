package ports

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractEpoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// RunStoreContract runs every store contract suite against store.
func RunStoreContract(t *testing.T, store Store) {
	t.Run("UserStore", func(t *testing.T) { RunUserStoreContract(t, store) })
	t.Run("ProjectStore", func(t *testing.T) { RunProjectStoreContract(t, store) })
	t.Run("FormStore", func(t *testing.T) { RunFormStoreContract(t, store) })
	t.Run("ResponseStore", func(t *testing.T) { RunResponseStoreContract(t, store) })
}

// RunUserStoreContract verifies that a UserStore implementation
// adheres to the defined interface contract.
func RunUserStoreContract(t *testing.T, store UserStore) {
	ctx := context.Background()
	email := strings.ToLower(domain.NewID()) + "@example.com"

	user := &domain.User{
		ID:          domain.NewID(),
		Name:        "Ada",
		Email:       email,
		Preferences: domain.DefaultPreferences(),
		Projects:    []string{},
		CreatedAt:   contractEpoch,
		UpdatedAt:   contractEpoch,
	}

	t.Run("Create and Get", func(t *testing.T) {
		require.NoError(t, store.CreateUser(ctx, user))

		loaded, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, loaded.Email)
		assert.Equal(t, user.Name, loaded.Name)
		assert.Equal(t, domain.ThemeLight, loaded.Preferences.Theme)

		byEmail, err := store.GetUserByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	})

	t.Run("Email Taken", func(t *testing.T) {
		dup := *user
		dup.ID = domain.NewID()
		err := store.CreateUser(ctx, &dup)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("Update", func(t *testing.T) {
		changed := *user
		changed.Location = "Lisbon"
		changed.Projects = []string{"p1"}
		require.NoError(t, store.UpdateUser(ctx, &changed))

		loaded, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", loaded.Location)
		assert.Equal(t, []string{"p1"}, loaded.Projects)
	})

	t.Run("Returned Copies Are Isolated", func(t *testing.T) {
		loaded, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		loaded.Name = "mutated"

		again, err := store.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", again.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := store.GetUser(ctx, "missing-"+user.ID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = store.GetUserByEmail(ctx, "missing-"+email)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		err = store.UpdateUser(ctx, &domain.User{ID: "missing-" + user.ID, Email: "x-" + email})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

// RunProjectStoreContract verifies that a ProjectStore implementation
// adheres to the defined interface contract.
func RunProjectStoreContract(t *testing.T, store ProjectStore) {
	ctx := context.Background()
	owner := domain.NewID()

	older := &domain.Project{ID: domain.NewID(), Name: "older", Owner: owner, Forms: []string{}, CreatedAt: contractEpoch, UpdatedAt: contractEpoch}
	newer := &domain.Project{ID: domain.NewID(), Name: "newer", Owner: owner, Forms: []string{}, CreatedAt: contractEpoch.Add(time.Hour), UpdatedAt: contractEpoch.Add(time.Hour)}
	foreign := &domain.Project{ID: domain.NewID(), Name: "foreign", Owner: domain.NewID(), Forms: []string{}, CreatedAt: contractEpoch, UpdatedAt: contractEpoch}

	t.Run("Save and Get", func(t *testing.T) {
		for _, p := range []*domain.Project{older, newer, foreign} {
			require.NoError(t, store.SaveProject(ctx, p))
		}

		loaded, err := store.GetProject(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, "older", loaded.Name)
		assert.Equal(t, owner, loaded.Owner)
		assert.True(t, contractEpoch.Equal(loaded.CreatedAt))
	})

	t.Run("Overwrite", func(t *testing.T) {
		changed := *older
		changed.TotalViews = 3
		changed.Forms = []string{"f1", "f2"}
		require.NoError(t, store.SaveProject(ctx, &changed))

		loaded, err := store.GetProject(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, loaded.TotalViews)
		assert.Equal(t, []string{"f1", "f2"}, loaded.Forms)
	})

	t.Run("List Newest First", func(t *testing.T) {
		list, err := store.ListProjects(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, newer.ID, list[0].ID)
		assert.Equal(t, older.ID, list[1].ID)

		none, err := store.ListProjects(ctx, domain.NewID())
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.DeleteProject(ctx, newer.ID))
		_, err := store.GetProject(ctx, newer.ID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)

		list, err := store.ListProjects(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, older.ID, list[0].ID)

		assert.NoError(t, store.DeleteProject(ctx, newer.ID), "deleting twice is not an error")
	})
}

// RunFormStoreContract verifies that a FormStore implementation
// adheres to the defined interface contract.
func RunFormStoreContract(t *testing.T, store FormStore) {
	ctx := context.Background()
	owner := domain.NewID()
	projectID := domain.NewID()
	reader := domain.NewID()

	first := domain.NewForm("first", owner, projectID, contractEpoch)
	second := domain.NewForm("second", owner, projectID, contractEpoch.Add(time.Minute))
	elsewhere := domain.NewForm("elsewhere", owner, domain.NewID(), contractEpoch.Add(2*time.Minute))
	second.AccessSettings.SharedWith = []domain.SharedUser{{UserID: reader, AccessLevel: domain.AccessView}}

	t.Run("Save and Get", func(t *testing.T) {
		first.Pages[0].ConditionalLogic = &domain.ConditionalLogic{
			Conditions: []domain.Condition{{QuestionID: "q1", AnswerCriteria: "yes"}},
			TruePageID: "page-b",
		}
		for _, f := range []*domain.Form{first, second, elsewhere} {
			require.NoError(t, store.SaveForm(ctx, f))
		}

		loaded, err := store.GetForm(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "first", loaded.Title)
		assert.Equal(t, domain.FormStatusDraft, loaded.Status)
		require.Len(t, loaded.Pages, 1)
		require.NotNil(t, loaded.Pages[0].ConditionalLogic)
		assert.Equal(t, "page-b", loaded.Pages[0].ConditionalLogic.TruePageID)
	})

	t.Run("List By Project In Creation Order", func(t *testing.T) {
		list, err := store.ListFormsByProject(ctx, projectID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)
	})

	t.Run("List By Owner Most Recently Updated First", func(t *testing.T) {
		touched := first.Clone()
		touched.UpdatedAt = contractEpoch.Add(time.Hour)
		require.NoError(t, store.SaveForm(ctx, touched))

		list, err := store.ListFormsByOwner(ctx, owner)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, []string{first.ID, elsewhere.ID, second.ID},
			[]string{list[0].ID, list[1].ID, list[2].ID})
	})

	t.Run("Shared With", func(t *testing.T) {
		list, err := store.ListFormsSharedWith(ctx, reader)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, second.ID, list[0].ID)

		unshared := second.Clone()
		unshared.AccessSettings.SharedWith = []domain.SharedUser{}
		require.NoError(t, store.SaveForm(ctx, unshared))

		list, err = store.ListFormsSharedWith(ctx, reader)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("Moving To Another Project", func(t *testing.T) {
		moved := elsewhere.Clone()
		moved.ProjectID = projectID
		require.NoError(t, store.SaveForm(ctx, moved))

		list, err := store.ListFormsByProject(ctx, projectID)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.DeleteForm(ctx, first.ID))
		_, err := store.GetForm(ctx, first.ID)
		assert.ErrorIs(t, err, domain.ErrFormNotFound)

		list, err := store.ListFormsByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		assert.NoError(t, store.DeleteForm(ctx, first.ID))
	})
}

// RunResponseStoreContract verifies that a ResponseStore implementation
// adheres to the defined interface contract.
func RunResponseStoreContract(t *testing.T, store ResponseStore) {
	ctx := context.Background()
	formID := domain.NewID()

	newResponse := func(offset time.Duration, value any) *domain.Response {
		return &domain.Response{
			ID:     domain.NewID(),
			FormID: formID,
			Answers: []domain.Answer{
				{QuestionID: "q1", QuestionType: domain.QuestionShortAnswer, Value: value},
			},
			TimeTakenSeconds: 12.5,
			CreatedAt:        contractEpoch.Add(offset),
		}
	}
	late := newResponse(time.Hour, "late")
	early := newResponse(0, "early")
	other := newResponse(0, "other")
	other.FormID = domain.NewID()

	t.Run("Save and Get", func(t *testing.T) {
		for _, r := range []*domain.Response{late, early, other} {
			require.NoError(t, store.SaveResponse(ctx, r))
		}

		loaded, err := store.GetResponse(ctx, early.ID)
		require.NoError(t, err)
		assert.Equal(t, formID, loaded.FormID)
		assert.Equal(t, 12.5, loaded.TimeTakenSeconds)
		assert.Equal(t, domain.Answers{"q1": "early"}, loaded.AnswerMap())
	})

	t.Run("List Oldest First", func(t *testing.T) {
		list, err := store.ListResponses(ctx, formID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, early.ID, list[0].ID)
		assert.Equal(t, late.ID, list[1].ID)
	})

	t.Run("Delete By Form", func(t *testing.T) {
		n, err := store.DeleteResponses(ctx, formID)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		list, err := store.ListResponses(ctx, formID)
		require.NoError(t, err)
		assert.Empty(t, list)

		_, err = store.GetResponse(ctx, early.ID)
		assert.ErrorIs(t, err, domain.ErrResponseNotFound)

		kept, err := store.GetResponse(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, other.FormID, kept.FormID)

		n, err = store.DeleteResponses(ctx, formID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
