package service_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aretw0/canova/pkg/adapters/memory"
	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/dsl"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/aretw0/canova/pkg/ports"
	"github.com/aretw0/canova/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock advances one second per reading so timestamps are strictly ordered.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type fixture struct {
	svc    *service.Service
	store  *memory.Store
	owner  *service.Session
	reader *service.Session
}

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()
	tokens, err := auth.NewTokens([]byte("test-secret"))
	require.NoError(t, err)

	clock := &tickingClock{now: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)}
	store := memory.NewStore()
	opts = append([]service.Option{
		service.WithClock(clock.Now),
		service.WithFrontendURL("https://canova.example/"),
	}, opts...)
	svc := service.New(store, tokens, opts...)

	ctx := context.Background()
	owner, err := svc.Signup(ctx, service.SignupInput{Name: "Olga", Email: "Olga@Example.com", Password: "secret1"})
	require.NoError(t, err)
	reader, err := svc.Signup(ctx, service.SignupInput{Name: "Rui", Email: "rui@example.com", Password: "secret2"})
	require.NoError(t, err)

	return &fixture{svc: svc, store: store, owner: owner, reader: reader}
}

// branchingPages asks q1 on A and routes yes to C and anything else to B.
func branchingPages(t *testing.T) []domain.Page {
	t.Helper()
	b := dsl.New("Survey")
	b.Page("A").
		Ask("q1", domain.QuestionMultipleChoice, "Continue?").
		Options("yes", "no").
		Required().
		When("q1", "yes").
		Then("C").
		Else("B")
	b.Page("B").Ask("q2", domain.QuestionShortAnswer, "Why not?")
	b.Page("C").Ask("q3", domain.QuestionRating, "Rate us").Scale(1, 5)
	form, err := b.Build()
	require.NoError(t, err)
	return form.Pages
}

func (f *fixture) publishedForm(t *testing.T) *domain.Form {
	t.Helper()
	ctx := context.Background()
	ownerID := f.owner.User.ID

	project, err := f.svc.CreateProject(ctx, ownerID, "Research")
	require.NoError(t, err)
	form, err := f.svc.CreateForm(ctx, ownerID, project.ID, "Survey")
	require.NoError(t, err)
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: branchingPages(t)})
	require.NoError(t, err)
	form, err = f.svc.PublishForm(ctx, ownerID, form.ID)
	require.NoError(t, err)
	return form
}

func TestAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, "olga@example.com", f.owner.User.Email)
	assert.Empty(t, f.owner.User.PasswordHash)

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := f.svc.Signup(ctx, service.SignupInput{Name: "x", Email: "OLGA@example.com", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("Invalid Input", func(t *testing.T) {
		_, err := f.svc.Signup(ctx, service.SignupInput{Name: "x", Email: "not-an-email", Password: "secret1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, err = f.svc.Signup(ctx, service.SignupInput{Name: "x", Email: "x@example.com", Password: "123"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Signin And Authenticate", func(t *testing.T) {
		session, err := f.svc.Signin(ctx, "olga@example.com", "secret1")
		require.NoError(t, err)

		id, err := f.svc.Authenticate(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, f.owner.User.ID, id.UserID)

		_, err = f.svc.Signin(ctx, "olga@example.com", "wrong-password")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		_, err = f.svc.Signin(ctx, "nobody@example.com", "secret1")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

		_, err = f.svc.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("Profile And Preferences", func(t *testing.T) {
		location := " Porto "
		user, err := f.svc.UpdateProfile(ctx, f.owner.User.ID, service.ProfileUpdate{Location: &location})
		require.NoError(t, err)
		assert.Equal(t, "Porto", user.Location)
		assert.Equal(t, "Olga", user.Name)

		dark := domain.ThemeDark
		user, err = f.svc.UpdatePreferences(ctx, f.owner.User.ID, service.PreferencesUpdate{Theme: &dark})
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeDark, user.Preferences.Theme)

		bogus := domain.Theme("neon")
		_, err = f.svc.UpdatePreferences(ctx, f.owner.User.ID, service.PreferencesUpdate{Theme: &bogus})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Check Email", func(t *testing.T) {
		user, ok, err := f.svc.CheckEmail(ctx, " RUI@example.com")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, f.reader.User.ID, user.ID)

		_, ok, err = f.svc.CheckEmail(ctx, "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestProjects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID := f.owner.User.ID

	first, err := f.svc.CreateProject(ctx, ownerID, "First")
	require.NoError(t, err)
	second, err := f.svc.CreateProject(ctx, ownerID, "Second")
	require.NoError(t, err)

	_, err = f.svc.CreateProject(ctx, ownerID, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	profile, err := f.svc.Profile(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID, second.ID}, profile.Projects)

	list, err := f.svc.MyProjects(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)

	t.Run("Get Counts Views For The Owner Only", func(t *testing.T) {
		p, err := f.svc.GetProject(ctx, ownerID, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, p.TotalViews)

		_, err = f.svc.GetProject(ctx, f.reader.User.ID, first.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Rename", func(t *testing.T) {
		p, err := f.svc.RenameProject(ctx, ownerID, first.ID, "Renamed")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", p.Name)
	})

	t.Run("Recent Works", func(t *testing.T) {
		form, err := f.svc.CreateForm(ctx, ownerID, second.ID, "Latest")
		require.NoError(t, err)

		works, err := f.svc.RecentWorks(ctx, ownerID, 0)
		require.NoError(t, err)
		require.Len(t, works, 3)
		for i := 1; i < len(works); i++ {
			assert.False(t, works[i].UpdatedAt.After(works[i-1].UpdatedAt), "works are sorted by update time")
		}
		assert.Contains(t, []string{works[0].ID, works[1].ID}, form.ID)

		works, err = f.svc.RecentWorks(ctx, ownerID, 1)
		require.NoError(t, err)
		assert.Len(t, works, 1)
	})

	t.Run("Delete Cascades", func(t *testing.T) {
		form, err := f.svc.CreateForm(ctx, ownerID, first.ID, "Doomed")
		require.NoError(t, err)
		form, err = f.svc.PublishForm(ctx, ownerID, form.ID)
		require.NoError(t, err)
		_, err = f.svc.SubmitResponse(ctx, "", form.ID, service.Submission{
			Answers: []domain.Answer{{QuestionID: "unused", Value: "x"}},
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput, "the default page has no questions")

		require.NoError(t, f.svc.DeleteProject(ctx, ownerID, first.ID))

		_, err = f.store.GetProject(ctx, first.ID)
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
		_, err = f.store.GetForm(ctx, form.ID)
		assert.ErrorIs(t, err, domain.ErrFormNotFound)

		profile, err := f.svc.Profile(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, []string{second.ID}, profile.Projects)
	})
}

// gatedStore blocks the first SaveForm after arm until release is closed.
type gatedStore struct {
	*memory.Store
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) arm() {
	g.entered = make(chan struct{})
	g.release = make(chan struct{})
	g.armed.Store(true)
}

func (g *gatedStore) SaveForm(ctx context.Context, form *domain.Form) error {
	if g.armed.CompareAndSwap(true, false) {
		close(g.entered)
		<-g.release
	}
	return g.Store.SaveForm(ctx, form)
}

func TestProjects_DeleteWaitsForFormUpdate(t *testing.T) {
	ctx := context.Background()
	tokens, err := auth.NewTokens([]byte("test-secret"))
	require.NoError(t, err)
	store := &gatedStore{Store: memory.NewStore()}
	svc := service.New(store, tokens)

	owner, err := svc.Signup(ctx, service.SignupInput{Name: "Olga", Email: "olga@example.com", Password: "secret1"})
	require.NoError(t, err)
	ownerID := owner.User.ID
	project, err := svc.CreateProject(ctx, ownerID, "Research")
	require.NoError(t, err)
	form, err := svc.CreateForm(ctx, ownerID, project.ID, "Survey")
	require.NoError(t, err)

	store.arm()
	updated := make(chan error, 1)
	go func() {
		title := "Renamed"
		_, err := svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Title: &title})
		updated <- err
	}()
	<-store.entered

	deleted := make(chan error, 1)
	go func() { deleted <- svc.DeleteProject(ctx, ownerID, project.ID) }()
	assert.Never(t, func() bool { return len(deleted) > 0 }, 100*time.Millisecond, 5*time.Millisecond,
		"delete must wait for the update holding the form")

	close(store.release)
	require.NoError(t, <-updated)
	require.NoError(t, <-deleted)

	_, err = store.GetForm(ctx, form.ID)
	assert.ErrorIs(t, err, domain.ErrFormNotFound)
	_, err = store.GetProject(ctx, project.ID)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	title := "Too late"
	_, err = svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestForms_CreateBuildsFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID := f.owner.User.ID

	project, err := f.svc.CreateProject(ctx, ownerID, "Research")
	require.NoError(t, err)
	form, err := f.svc.CreateForm(ctx, ownerID, project.ID, "Survey")
	require.NoError(t, err)
	require.Len(t, form.Pages, 1)
	assert.True(t, form.Pages[0].IsTerminal())

	project, err = f.store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{form.ID}, project.Forms)

	_, err = f.svc.CreateForm(ctx, f.reader.User.ID, project.ID, "Intruder")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	updated, err := f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: branchingPages(t)})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, updated.Pages[0].NextPageID)
	assert.Empty(t, updated.Pages[1].NextPageID)
	assert.Equal(t, []string{"A"}, updated.Pages[2].PrevPageID)

	forms, err := f.svc.FormsByProject(ctx, ownerID, project.ID)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, form.ID, forms[0].ID)
}

func TestForms_UpdateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := f.publishedForm(t)
	ownerID := f.owner.User.ID

	long := string(make([]rune, domain.MaxFormTitle+1))
	_, err := f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Title: &long})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: []domain.Page{{ID: "x"}, {ID: "x"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: []domain.Page{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	unnamed := branchingPages(t)
	unnamed[0].ConditionalLogic.Conditions[0].QuestionID = ""
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: unnamed})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "a condition without a question is rejected, not dropped")
	_, err = f.svc.BuildFlow(ctx, ownerID, form.ID, unnamed)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	stored, err := f.store.GetForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "q1", stored.Pages[0].ConditionalLogic.Conditions[0].QuestionID)

	title := "Hijacked"
	_, err = f.svc.UpdateForm(ctx, f.reader.User.ID, form.ID, service.FormUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestForms_ContentChangeResetsPublishedForm(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := f.publishedForm(t)
	ownerID := f.owner.User.ID

	_, err := f.svc.SubmitResponse(ctx, "", form.ID, service.Submission{
		Answers:          []domain.Answer{{QuestionID: "q1", Value: "yes"}, {QuestionID: "q3", Value: 4}},
		TimeTakenSeconds: 30,
	})
	require.NoError(t, err)

	t.Run("Title Change Keeps Responses", func(t *testing.T) {
		title := "Survey 2025"
		updated, err := f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Title: &title})
		require.NoError(t, err)
		f.svc.Wait()

		assert.Equal(t, domain.FormStatusPublished, updated.Status)
		assert.Equal(t, 1, updated.TotalResponses)
	})

	t.Run("Same Pages Keep Responses", func(t *testing.T) {
		updated, err := f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: branchingPages(t)})
		require.NoError(t, err)
		f.svc.Wait()
		assert.Equal(t, domain.FormStatusPublished, updated.Status)
	})

	t.Run("Content Change Wipes Responses", func(t *testing.T) {
		pages := branchingPages(t)
		pages[1].Sections[0].Questions[0].QuestionText = "Why not, really?"

		updated, err := f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: pages})
		require.NoError(t, err)
		f.svc.Wait()

		assert.Equal(t, domain.FormStatusDraft, updated.Status)
		assert.Zero(t, updated.TotalResponses)
		assert.Zero(t, updated.AverageResponseTime)

		responses, err := f.store.ListResponses(ctx, form.ID)
		require.NoError(t, err)
		assert.Empty(t, responses)
	})
}

func TestForms_PublishAndShare(t *testing.T) {
	var published []string
	hooks := domain.LifecycleHooks{
		OnFormPublished: func(_ context.Context, e *domain.FormEvent) { published = append(published, e.FormID) },
	}
	f := newFixture(t, service.WithLifecycleHooks(hooks))
	ctx := context.Background()
	ownerID, readerID := f.owner.User.ID, f.reader.User.ID
	form := f.publishedForm(t)

	assert.Equal(t, "https://canova.example/forms/public/"+form.ID, form.PublishedLink)
	assert.Equal(t, []string{form.ID}, published)

	_, err := f.svc.PublishForm(ctx, readerID, form.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.ShareForm(ctx, ownerID, form.ID, "olga@example.com", domain.AccessView)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sharing with yourself")

	_, err = f.svc.ShareForm(ctx, ownerID, form.ID, "ghost@example.com", domain.AccessView)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = f.svc.ShareForm(ctx, ownerID, form.ID, "rui@example.com", domain.AccessLevel("admin"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	shared, err := f.svc.ShareForm(ctx, ownerID, form.ID, "rui@example.com", domain.AccessView)
	require.NoError(t, err)
	shared, err = f.svc.ShareForm(ctx, ownerID, form.ID, "RUI@example.com", domain.AccessEdit)
	require.NoError(t, err)
	assert.Equal(t, []domain.SharedUser{{UserID: readerID, AccessLevel: domain.AccessEdit}}, shared.AccessSettings.SharedWith)

	_, err = f.svc.ShareForm(ctx, readerID, form.ID, "olga@example.com", domain.AccessView)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	mine, err := f.svc.SharedWithMe(ctx, readerID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, form.ID, mine[0].ID)

	title := "Edited by Rui"
	edited, err := f.svc.UpdateForm(ctx, readerID, form.ID, service.FormUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, edited.Title)

	private := domain.AccessSettings{Visibility: domain.VisibilityPrivate}
	_, err = f.svc.UpdateForm(ctx, readerID, form.ID, service.FormUpdate{AccessSettings: &private})
	assert.ErrorIs(t, err, domain.ErrForbidden, "editors may not change access")
}

func TestForms_PublicAccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID := f.owner.User.ID
	form := f.publishedForm(t)

	got, err := f.svc.PublicForm(ctx, "", form.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalViews)
	got, err = f.svc.PublicForm(ctx, "", form.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalViews)
	assert.Equal(t, []domain.DailyView{{Date: "2025-05-01", Count: 2}}, got.DailyViews)

	private := domain.AccessSettings{Visibility: domain.VisibilityPrivate}
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{AccessSettings: &private})
	require.NoError(t, err)

	_, err = f.svc.PublicForm(ctx, "", form.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.svc.GetForm(ctx, f.reader.User.ID, form.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	draft := domain.FormStatusDraft
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Status: &draft})
	require.NoError(t, err)
	_, err = f.svc.PublicForm(ctx, ownerID, form.ID)
	assert.ErrorIs(t, err, domain.ErrFormNotPublished)
}

func TestResponses(t *testing.T) {
	var saved int
	hooks := domain.LifecycleHooks{
		OnResponseSaved: func(context.Context, *domain.FormEvent) { saved++ },
	}
	f := newFixture(t, service.WithLifecycleHooks(hooks))
	ctx := context.Background()
	ownerID := f.owner.User.ID
	form := f.publishedForm(t)

	_, err := f.svc.SubmitResponse(ctx, "", form.ID, service.Submission{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.SubmitResponse(ctx, "", form.ID, service.Submission{
		Answers: []domain.Answer{{QuestionID: "q1", Value: "maybe"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	first, err := f.svc.SubmitResponse(ctx, "", form.ID, service.Submission{
		Answers:          []domain.Answer{{QuestionID: "q1", Value: "no"}, {QuestionID: "q2", Value: "busy"}},
		TimeTakenSeconds: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.QuestionMultipleChoice, first.Answers[0].QuestionType)

	_, err = f.svc.SubmitResponse(ctx, f.reader.User.ID, form.ID, service.Submission{
		Answers:          []domain.Answer{{QuestionID: "q1", Value: "yes"}, {QuestionID: "q3", Value: 5}},
		TimeTakenSeconds: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	stored, err := f.store.GetForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TotalResponses)
	assert.InDelta(t, 15.0, stored.AverageResponseTime, 0.001)

	responses, err := f.svc.FormResponses(ctx, ownerID, form.ID)
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, first.ID, responses[0].ID)

	_, err = f.svc.FormResponses(ctx, f.reader.User.ID, form.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	one, err := f.svc.GetResponse(ctx, ownerID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, form.ID, one.FormID)
	_, err = f.svc.GetResponse(ctx, f.reader.User.ID, first.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	summary, err := f.svc.FormAnalytics(ctx, ownerID, form.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalResponses)
	require.Len(t, summary.Pages, 3)

	project, err := f.svc.ProjectAnalytics(ctx, ownerID, form.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.PublishedForms)
	assert.Equal(t, 2, project.TotalResponses)
}

func TestFillNavigation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	form := f.publishedForm(t)

	_, err := f.svc.Navigate(ctx, "", form.ID, "A", domain.Answers{}, nil)
	var missing *domain.MissingAnswersError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"q1"}, missing.QuestionIDs)

	pos, err := f.svc.Navigate(ctx, "", form.ID, "A", domain.Answers{"q1": "yes"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "C", pos.PageID)
	assert.Equal(t, flow.ReasonConditional, pos.Reason)
	assert.Equal(t, []string{"A"}, pos.History)

	pos, err = f.svc.Navigate(ctx, "", form.ID, "C", domain.Answers{"q1": "yes"}, pos.History)
	require.NoError(t, err)
	assert.True(t, pos.Submit)
	assert.Equal(t, "C", pos.PageID)
	assert.Equal(t, []string{"A"}, pos.History)

	back, err := f.svc.Back(ctx, "", form.ID, pos.History)
	require.NoError(t, err)
	assert.Equal(t, "A", back.PageID)
	assert.Empty(t, back.History)

	back, err = f.svc.Back(ctx, "", form.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "A", back.PageID)

	_, err = f.svc.Navigate(ctx, "", form.ID, "ghost", nil, nil)
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}

func TestBuildFlowAndLint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID := f.owner.User.ID
	form := f.publishedForm(t)

	pages := branchingPages(t)
	pages[1].ConditionalLogic = &domain.ConditionalLogic{TruePageID: "nowhere"}

	result, err := f.svc.BuildFlow(ctx, ownerID, form.ID, pages)
	require.NoError(t, err)
	require.Len(t, result.Dangling, 1)
	assert.Equal(t, "nowhere", result.Dangling[0].TargetID)

	stored, err := f.store.GetForm(ctx, form.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Pages[1].ConditionalLogic, "previews are not saved")

	result, err = f.svc.BuildFlow(ctx, ownerID, form.ID, nil)
	require.NoError(t, err)
	assert.True(t, result.Clean())

	report, err := f.svc.LintForm(ctx, ownerID, form.ID)
	require.NoError(t, err)
	assert.False(t, report.HasErrors())

	_, err = f.svc.BuildFlow(ctx, f.reader.User.ID, form.ID, nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

type countingHost struct {
	mu      sync.Mutex
	deleted []string
}

func (h *countingHost) Upload(context.Context, ports.MediaUpload) (ports.Asset, error) {
	return ports.Asset{}, errors.New("not supported")
}

func (h *countingHost) Delete(_ context.Context, publicID string, _ ports.ResourceType) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deleted = append(h.deleted, publicID)
	return nil
}

func TestForms_MediaCleanup(t *testing.T) {
	const base = "https://media.example"
	host := &countingHost{}
	f := newFixture(t, service.WithMediaHost(host, base))
	ctx := context.Background()
	ownerID := f.owner.User.ID

	project, err := f.svc.CreateProject(ctx, ownerID, "Media")
	require.NoError(t, err)
	form, err := f.svc.CreateForm(ctx, ownerID, project.ID, "With images")
	require.NoError(t, err)

	pages := domain.ClonePages(form.Pages)
	pages[0].Sections[0].Questions = []domain.Question{
		{ID: "img", Type: domain.QuestionImage, MediaURL: base + "/image/upload/v1/form-media/images/cat.png"},
	}
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: pages})
	require.NoError(t, err)
	f.svc.Wait()
	assert.Empty(t, host.deleted)

	pages[0].Sections[0].Questions = []domain.Question{}
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: pages})
	require.NoError(t, err)
	f.svc.Wait()
	assert.Equal(t, []string{"form-media/images/cat"}, host.deleted)

	pages[0].Sections[0].Questions = []domain.Question{
		{ID: "vid", Type: domain.QuestionVideo, MediaURL: base + "/video/upload/v2/form-media/videos/intro.mp4"},
	}
	_, err = f.svc.UpdateForm(ctx, ownerID, form.ID, service.FormUpdate{Pages: pages})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteForm(ctx, ownerID, form.ID))
	f.svc.Wait()
	assert.Contains(t, host.deleted, "form-media/videos/intro")

	project, err = f.store.GetProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, project.Forms)
}
