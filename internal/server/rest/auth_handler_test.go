package rest

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"journal-api/internal/server/auth"
)

func TestRegister_CreatedWithTokenPair(t *testing.T) {
	env := newTestEnv(t)

	resp := env.registerUser(t, "Alice", "alice@example.com", "pa55word")
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	claims, err := auth.ParseToken(resp.AccessToken, []byte(env.cfg.AccessTokenSecret))
	require.NoError(t, err)
	require.Equal(t, "Alice", claims.Name)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestRegister_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/authentication/register", `{"email":"a@b.c"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotEmpty(t, decodeJSON[ErrorResponse](t, rec).Error)
}

func TestRegister_DuplicateAnswers401(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pa55word")

	rec := env.do(t, http.MethodPost, "/authentication/register",
		`{"name":"Alice","email":"alice@example.com","password":"pa55word"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_SuccessAndFailures(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "pa55word")

	rec := env.do(t, http.MethodPost, "/authentication/login",
		`{"email":"alice@example.com","password":"pa55word"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[TokenPairResponse](t, rec)
	require.NotEmpty(t, resp.AccessToken)
	require.NotEmpty(t, resp.RefreshToken)

	rec = env.do(t, http.MethodPost, "/authentication/login", `{"email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/authentication/login",
		`{"email":"ghost@example.com","password":"x"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/authentication/login",
		`{"email":"alice@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_FlowAndRepeat(t *testing.T) {
	env := newTestEnv(t)
	pair := env.registerUser(t, "Alice", "alice@example.com", "pa55word")

	rec := env.do(t, http.MethodDelete, "/authentication/logout",
		`{"refreshToken":"`+pair.RefreshToken+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// a second logout with the already-deleted token reports not found
	rec = env.do(t, http.MethodDelete, "/authentication/logout",
		`{"refreshToken":"`+pair.RefreshToken+`"}`, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodDelete, "/authentication/logout", `{}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerate_NewAccessToken(t *testing.T) {
	env := newTestEnv(t)
	pair := env.registerUser(t, "Alice", "alice@example.com", "pa55word")

	rec := env.do(t, http.MethodPost, "/authentication/generate",
		`{"refreshToken":"`+pair.RefreshToken+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeJSON[AccessTokenResponse](t, rec)
	claims, err := auth.ParseToken(resp.AccessToken, []byte(env.cfg.AccessTokenSecret))
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestGenerate_Failures(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/authentication/generate", `{}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/authentication/generate",
		`{"refreshToken":"never-issued"}`, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
}

var resetLinkRe = regexp.MustCompile(`/authentication/resetPassword/([0-9a-f]+)`)

func TestForgotAndResetPassword_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "Alice", "alice@example.com", "old-password")

	rec := env.do(t, http.MethodPost, "/authentication/forgotPassword",
		`{"email":"ghost@example.com"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/authentication/forgotPassword",
		`{"email":"alice@example.com"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, env.mailer.sent)

	m := resetLinkRe.FindStringSubmatch(env.mailer.body)
	require.NotNil(t, m, "mail body should contain the reset link")
	token := m[1]

	rec = env.do(t, http.MethodPut, "/authentication/resetPassword/"+token, `{}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code, "missing password")

	rec = env.do(t, http.MethodPut, "/authentication/resetPassword/"+token,
		`{"password":"new-password"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPut, "/authentication/resetPassword/bogus",
		`{"password":"x"}`, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodPost, "/authentication/login",
		`{"email":"alice@example.com","password":"new-password"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
}
