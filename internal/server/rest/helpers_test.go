package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"journal-api/internal/cryptox"
	"journal-api/internal/logging"
	"journal-api/internal/server/config"
	"journal-api/internal/server/entries"
	"journal-api/internal/server/models"
	"journal-api/internal/server/shared/db"
	"journal-api/internal/server/users"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeMailer struct {
	body string
	sent int
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	m.body = body
	m.sent++
	return nil
}

// recordingEntryRepo wraps an entry repository and counts calls, so tests
// can assert that guarded routes never reach the store.
type recordingEntryRepo struct {
	entries.Repository
	calls int
}

func (r *recordingEntryRepo) FetchAll(ctx context.Context, owner models.Owner) ([]*entries.Entry, error) {
	r.calls++
	return r.Repository.FetchAll(ctx, owner)
}

func (r *recordingEntryRepo) FetchOne(ctx context.Context, owner models.Owner, date string) (*entries.Entry, error) {
	r.calls++
	return r.Repository.FetchOne(ctx, owner, date)
}

func (r *recordingEntryRepo) Save(ctx context.Context, owner models.Owner, date, content string) error {
	r.calls++
	return r.Repository.Save(ctx, owner, date, content)
}

func (r *recordingEntryRepo) Update(ctx context.Context, owner models.Owner, date, content string) error {
	r.calls++
	return r.Repository.Update(ctx, owner, date, content)
}

func (r *recordingEntryRepo) Delete(ctx context.Context, owner models.Owner, date string) error {
	r.calls++
	return r.Repository.Delete(ctx, owner, date)
}

// ---- helpers ----

type testEnv struct {
	server    *Server
	mailer    *fakeMailer
	entryRepo *recordingEntryRepo
	cipher    *cryptox.Cipher
	cfg       *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	m := db.NewInMemoryRepositoryManager()
	cipher := cryptox.NewCipher(cfg.FieldCipherSecret)
	mailer := &fakeMailer{}
	us := users.NewService(m.Users(), m.Sessions(), cipher, mailer, cfg)
	entryRepo := &recordingEntryRepo{Repository: m.Entries()}

	s := NewServer(cfg.EndpointAddr, nopLogger{}, us, entryRepo, cipher, cfg.AccessTokenSecret)

	return &testEnv{server: s, mailer: mailer, entryRepo: entryRepo, cipher: cipher, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.server.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// registerUser creates an account over HTTP and returns its token pair.
func (e *testEnv) registerUser(t *testing.T, name, email, password string) TokenPairResponse {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/authentication/register",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeJSON[TokenPairResponse](t, rec)
}
