package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nhle/project-tracker/internal/auth"
	"github.com/nhle/project-tracker/internal/store"
	"github.com/nhle/project-tracker/tests/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	store  store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, testutil.NewTestStore(t), auth.NewHeaderResolver(""), nil)
}

func newTestServerWith(t *testing.T, s store.Store, resolver auth.Resolver, issuer auth.TokenIssuer) *testServer {
	t.Helper()

	h := NewHandler(s, auth.NewPasswordHasher(bcrypt.MinCost), issuer, nil)
	router := NewRouter(RouterConfig{
		Handler:    h,
		Resolver:   resolver,
		AuthHeader: auth.DefaultHeader,
		StaticDir:  t.TempDir(),
	})
	return &testServer{t: t, router: router, store: s}
}

// do sends a request; userID 0 omits the identity header.
func (ts *testServer) do(method, path string, userID int64, body any) *httptest.ResponseRecorder {
	ts.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ts.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(auth.DefaultHeader, strconv.FormatInt(userID, 10))
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func (ts *testServer) register(name, email, password string) int64 {
	ts.t.Helper()

	rec := ts.do(http.MethodPost, "/api/register", 0, gin.H{"name": name, "email": email, "password": password})
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[struct {
		UserID int64 `json:"userId"`
	}](ts.t, rec).UserID
}

func (ts *testServer) createProject(userID int64, body gin.H) int64 {
	ts.t.Helper()

	rec := ts.do(http.MethodPost, "/api/projects", userID, body)
	require.Equal(ts.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[struct {
		ProjectID int64 `json:"projectId"`
	}](ts.t, rec).ProjectID
}
