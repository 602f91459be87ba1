package httpapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAlice(t *testing.T, e *testEnv) {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/api/users/register", "",
		`{"name":"Alice","email":"alice@x.com","password":"pw1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func loginToken(t *testing.T, e *testEnv, email, password string) string {
	t.Helper()
	rec := e.request(t, http.MethodPost, "/api/users/login", "",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	out := struct {
		Token string `json:"token"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotEmpty(t, out.Token)
	return out.Token
}

func TestRegister_DuplicateEmail(t *testing.T) {
	e := newTestEnv(t)

	registerAlice(t, e)

	// second registration with the same email must fail and must not touch
	// the existing record
	rec := e.request(t, http.MethodPost, "/api/users/register", "",
		`{"name":"Mallory","email":"alice@x.com","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, rec.Body.String())

	for _, u := range e.store.users {
		assert.Equal(t, "Alice", u.Name)
	}
}

func TestLogin_WrongPassword_IdenticalMessages(t *testing.T) {
	e := newTestEnv(t)

	registerAlice(t, e)

	first := e.request(t, http.MethodPost, "/api/users/login", "",
		`{"email":"alice@x.com","password":"nope"}`)
	second := e.request(t, http.MethodPost, "/api/users/login", "",
		`{"email":"alice@x.com","password":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, first.Code)
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())

	// unknown email must be indistinguishable from a wrong password
	unknown := e.request(t, http.MethodPost, "/api/users/login", "",
		`{"email":"ghost@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, first.Body.String(), unknown.Body.String())
}

func TestLoginAndMe(t *testing.T) {
	e := newTestEnv(t)

	registerAlice(t, e)
	token := loginToken(t, e, "alice@x.com", "pw1")

	rec := e.request(t, http.MethodGet, "/api/users/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	out := struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "alice@x.com", out.Email)
	assert.Equal(t, "user", out.Role)
}

func TestMe_DeletedUser(t *testing.T) {
	e := newTestEnv(t)

	registerAlice(t, e)
	token := loginToken(t, e, "alice@x.com", "pw1")

	for id := range e.store.users {
		delete(e.store.users, id)
	}

	// the token still verifies, but the row is gone
	rec := e.request(t, http.MethodGet, "/api/users/me", token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}
