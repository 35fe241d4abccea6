package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/pkg/adapters/file"
	"github.com/aretw0/canova/pkg/adapters/memory"
	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/dsl"
	"github.com/aretw0/canova/pkg/observability"
	"github.com/aretw0/canova/pkg/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t       *testing.T
	handler http.Handler
}

func newAPI(t *testing.T, opts ...Option) *apiClient {
	t.Helper()
	return newAPIWithService(t, nil, opts...)
}

func newAPIWithService(t *testing.T, svcOpts []service.Option, opts ...Option) *apiClient {
	t.Helper()
	tokens, err := auth.NewTokens([]byte("test-secret"))
	require.NoError(t, err)
	svcOpts = append([]service.Option{service.WithFrontendURL("https://canova.example")}, svcOpts...)
	svc := service.New(memory.NewStore(), tokens, svcOpts...)
	t.Cleanup(svc.Wait)
	return &apiClient{t: t, handler: NewHandler(svc, opts...)}
}

// do sends a JSON request and decodes the envelope of the reply.
func (c *apiClient) do(method, path, token string, body any) (*httptest.ResponseRecorder, Envelope) {
	c.t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)

	var env Envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(c.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// data re-decodes the envelope payload into dest.
func data(t *testing.T, env Envelope, dest any) {
	t.Helper()
	raw, err := json.Marshal(env.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dest))
}

func (c *apiClient) signup(name, email string) string {
	c.t.Helper()
	w, env := c.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name": name, "email": email, "password": "secret1",
	})
	require.Equal(c.t, http.StatusCreated, w.Code, w.Body.String())
	var session service.Session
	data(c.t, env, &session)
	return session.Token
}

func surveyPages(t *testing.T) []domain.Page {
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

func TestSystemEndpoints(t *testing.T) {
	api := newAPI(t)

	w, _ := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)

	w, _ = api.do(http.MethodGet, "/info", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"api_version":"1.0.0"`)

	w, _ = api.do(http.MethodGet, "/openapi.yaml", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"openapi":"3.0.3"`)

	w, _ = api.do(http.MethodGet, "/swagger", "", nil)
	assert.Contains(t, w.Body.String(), "swagger-ui")

	doc, err := GetSwagger()
	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/api/forms/{id}/flow"))
}

func TestRoutesFollowOpenAPI(t *testing.T) {
	api := newAPI(t)
	doc, err := GetSwagger()
	require.NoError(t, err)

	ids := strings.NewReplacer("{id}", "missing", "{projectId}", "missing", "{formId}", "missing")
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			w, _ := api.do(method, ids.Replace(path)+"?email=a@example.com", "", nil)
			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code, op.OperationID)
			assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"),
				"%s %s is not routed: %d %s", method, path, w.Code, w.Body.String())

			secured := op.Security != nil && len(*op.Security) > 0
			if secured {
				assert.Equal(t, http.StatusUnauthorized, w.Code, "%s needs a token", op.OperationID)
			} else {
				assert.NotEqual(t, http.StatusUnauthorized, w.Code, "%s is public", op.OperationID)
			}
		}
	}
}

func TestAuthEndpoints(t *testing.T) {
	api := newAPI(t)
	token := api.signup("Olga", "olga@example.com")

	t.Run("Profile Requires Token", func(t *testing.T) {
		w, env := api.do(http.MethodGet, "/api/auth/profile", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)

		w, _ = api.do(http.MethodGet, "/api/auth/profile", "garbage", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w, env = api.do(http.MethodGet, "/api/auth/profile", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var user domain.User
		data(t, env, &user)
		assert.Equal(t, "olga@example.com", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Duplicate Signup", func(t *testing.T) {
		w, _ := api.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
			"name": "Other", "email": "OLGA@example.com", "password": "secret1",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Signin", func(t *testing.T) {
		w, _ := api.do(http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "olga@example.com", "password": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w, env := api.do(http.MethodPost, "/api/auth/signin", "", map[string]string{"email": "olga@example.com", "password": "secret1"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, env.Success)
	})

	t.Run("Preferences", func(t *testing.T) {
		w, _ := api.do(http.MethodPut, "/api/auth/preferences", token, map[string]string{"theme": "neon"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, env := api.do(http.MethodPut, "/api/auth/preferences", token, map[string]string{"theme": "dark"})
		require.Equal(t, http.StatusOK, w.Code)
		var user domain.User
		data(t, env, &user)
		assert.Equal(t, domain.ThemeDark, user.Preferences.Theme)
	})

	t.Run("Check Email", func(t *testing.T) {
		w, env := api.do(http.MethodGet, "/api/auth/check-email?email=OLGA@example.com", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, env.Data.(map[string]any)["exists"])

		w, _ = api.do(http.MethodGet, "/api/auth/check-email", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader("{"))
		w := httptest.NewRecorder()
		api.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFormLifecycle(t *testing.T) {
	api := newAPI(t)
	owner := api.signup("Olga", "olga@example.com")
	reader := api.signup("Rui", "rui@example.com")

	w, env := api.do(http.MethodPost, "/api/projects", owner, map[string]string{"name": "Research"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project domain.Project
	data(t, env, &project)

	w, env = api.do(http.MethodPost, "/api/forms", owner, map[string]string{"title": "Survey", "projectId": project.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var form domain.Form
	data(t, env, &form)
	formPath := "/api/forms/" + form.ID

	w, env = api.do(http.MethodPut, formPath, owner, map[string]any{"pages": surveyPages(t)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data(t, env, &form)
	assert.Equal(t, []string{"C", "B"}, form.Pages[0].NextPageID)

	t.Run("Draft Is Not Fillable", func(t *testing.T) {
		w, _ := api.do(http.MethodGet, "/api/forms/public/"+form.ID, "", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	w, env = api.do(http.MethodPut, formPath+"/publish", owner, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data(t, env, &form)
	assert.Equal(t, "https://canova.example/forms/public/"+form.ID, form.PublishedLink)

	t.Run("Anonymous Fill", func(t *testing.T) {
		w, _ := api.do(http.MethodGet, "/api/forms/public/"+form.ID, "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = api.do(http.MethodGet, "/api/forms/public/"+form.ID, "stale-token", nil)
		assert.Equal(t, http.StatusOK, w.Code, "an invalid token is treated as anonymous")

		w, env := api.do(http.MethodPost, "/api/forms/public/"+form.ID+"/next", "", map[string]any{
			"currentPageId": "A",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"q1"}, env.Details)

		w, env = api.do(http.MethodPost, "/api/forms/public/"+form.ID+"/next", "", map[string]any{
			"currentPageId": "A",
			"answers":       map[string]any{"q1": "yes"},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var pos service.Position
		data(t, env, &pos)
		assert.Equal(t, "C", pos.PageID)
		assert.Equal(t, []string{"A"}, pos.History)

		w, env = api.do(http.MethodPost, "/api/forms/public/"+form.ID+"/back", "", map[string]any{"history": pos.History})
		require.Equal(t, http.StatusOK, w.Code)
		data(t, env, &pos)
		assert.Equal(t, "A", pos.PageID)
	})

	t.Run("Submit Response", func(t *testing.T) {
		w, _ := api.do(http.MethodPost, "/api/responses/"+form.ID, "", map[string]any{
			"answers":          []map[string]any{{"questionId": "q3", "value": 9}},
			"timeTakenSeconds": 5,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w, _ = api.do(http.MethodPost, "/api/responses/"+form.ID, "", map[string]any{
			"answers":          []map[string]any{{"questionId": "q1", "value": "yes"}, {"questionId": "q3", "value": 4}},
			"timeTakenSeconds": 30,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w, env := api.do(http.MethodGet, "/api/responses/form/"+form.ID, owner, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var list []domain.Response
		data(t, env, &list)
		require.Len(t, list, 1)

		w, _ = api.do(http.MethodGet, "/api/responses/"+list[0].ID, reader, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Reader Permissions", func(t *testing.T) {
		w, _ := api.do(http.MethodGet, formPath, reader, nil)
		assert.Equal(t, http.StatusOK, w.Code, "public forms are viewable")

		w, _ = api.do(http.MethodPut, formPath, reader, map[string]any{"title": "Hijacked"})
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, _ = api.do(http.MethodPost, formPath+"/share", owner, map[string]string{"email": "rui@example.com", "accessLevel": "edit"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w, env := api.do(http.MethodGet, "/api/forms/shared", reader, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var shared []domain.Form
		data(t, env, &shared)
		require.Len(t, shared, 1)
		assert.Equal(t, form.ID, shared[0].ID)

		w, _ = api.do(http.MethodPost, formPath+"/share", owner, map[string]string{"email": "nobody@example.com", "accessLevel": "view"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Flow Tools", func(t *testing.T) {
		w, env := api.do(http.MethodPost, formPath+"/flow", owner, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, true, env.Success)

		w, _ = api.do(http.MethodGet, formPath+"/flow/lint", owner, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = api.do(http.MethodGet, formPath+"/flowchart?current=C&visited=A,C", owner, nil)
		require.Equal(t, http.StatusOK, w.Code)
		chart := w.Body.String()
		assert.Contains(t, chart, "graph TD")
		assert.Contains(t, chart, "class C current")
	})

	t.Run("Analytics And Recent", func(t *testing.T) {
		w, _ := api.do(http.MethodGet, formPath+"/analytics", owner, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, _ = api.do(http.MethodGet, "/api/projects/"+project.ID+"/analytics", owner, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w, env := api.do(http.MethodGet, "/api/projects/recent?limit=1", owner, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var works []service.RecentWork
		data(t, env, &works)
		assert.Len(t, works, 1)

		w, _ = api.do(http.MethodGet, "/api/projects/recent?limit=abc", owner, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		w, _ = api.do(http.MethodGet, "/api/projects/recent?limit=500", owner, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete Project", func(t *testing.T) {
		w, _ := api.do(http.MethodDelete, "/api/projects/"+project.ID, reader, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w, _ = api.do(http.MethodDelete, "/api/projects/"+project.ID, owner, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, _ = api.do(http.MethodGet, formPath, owner, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlowchartDoesNotReportBuilds(t *testing.T) {
	var builds atomic.Int32
	engine := canova.New(canova.WithLifecycleHooks(domain.LifecycleHooks{
		OnFlowBuilt: func(context.Context, *domain.FlowEvent) { builds.Add(1) },
	}))
	api := newAPIWithService(t, []service.Option{service.WithEngine(engine)})
	owner := api.signup("Olga", "olga@example.com")

	w, env := api.do(http.MethodPost, "/api/projects", owner, map[string]string{"name": "Research"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project domain.Project
	data(t, env, &project)

	w, env = api.do(http.MethodPost, "/api/forms", owner, map[string]string{"title": "Survey", "projectId": project.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var form domain.Form
	data(t, env, &form)

	w, _ = api.do(http.MethodPut, "/api/forms/"+form.ID, owner, map[string]any{"pages": surveyPages(t)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	saved := builds.Load()
	require.Positive(t, saved)

	for i := 0; i < 3; i++ {
		w, _ = api.do(http.MethodGet, "/api/forms/"+form.ID+"/flowchart", owner, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, saved, builds.Load())
}

func TestMetricsEndpoint(t *testing.T) {
	api := newAPI(t, WithMetrics(observability.NewMetrics()))

	api.do(http.MethodGet, "/health", "", nil)
	api.do(http.MethodGet, "/api/forms/does-not-exist", "", nil)

	w, _ := api.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `canova_http_requests_total{method="GET",route="/health",status="200"} 1`)
	assert.Contains(t, body, `route="/api/forms/{id}",status="401"`)
}

func TestCORS(t *testing.T) {
	api := newAPI(t, WithCORSOrigins("https://app.example"))

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")
		w := httptest.NewRecorder()
		api.handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, "https://app.example", preflight("https://app.example").Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, preflight("https://evil.example").Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AnyOriginWithoutCredentials(t *testing.T) {
	api := newAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	w := httptest.NewRecorder()
	api.handler.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestMediaUploadAndServe(t *testing.T) {
	host := file.New(t.TempDir(), "http://localhost:8080/media")
	api := newAPI(t, WithMedia(host))
	token := api.signup("Olga", "olga@example.com")

	upload := func(filename, contentType string, content []byte) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		part.Write(content)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/media", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		api.handler.ServeHTTP(w, req)
		return w
	}

	w := upload("notes.txt", "text/plain", []byte("hello"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	png := []byte("\x89PNG\r\n\x1a\nfake-image")
	w = upload("logo.png", "image/png", png)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	url := env.Data.(map[string]any)["url"].(string)
	require.True(t, strings.HasPrefix(url, "http://localhost:8080/media/image/upload/"), url)

	req := httptest.NewRequest(http.MethodGet, strings.TrimPrefix(url, "http://localhost:8080"), nil)
	served := httptest.NewRecorder()
	api.handler.ServeHTTP(served, req)
	require.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, png, served.Body.Bytes())

	req = httptest.NewRequest(http.MethodGet, "/media/image/upload/v1/../../etc/passwd", nil)
	missing := httptest.NewRecorder()
	api.handler.ServeHTTP(missing, req)
	assert.Equal(t, http.StatusNotFound, missing.Code)
}
