package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/mock"
	"github.com/MKhiriev/go-route-handler/internal/service"
	"github.com/MKhiriev/go-route-handler/internal/store"
	"github.com/MKhiriev/go-route-handler/models"
)

const (
	testUserID = int64(7)
	testToken  = "header.payload.signature"
)

type testEnv struct {
	auth    *mock.MockAuthService
	notes   *mock.MockNoteService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newTestEnv(t *testing.T, routes config.Routes) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:    mock.NewMockAuthService(ctrl),
		notes:   mock.NewMockNoteService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	services := &service.Services{
		AuthService:    env.auth,
		NoteService:    env.notes,
		AppInfoService: env.appInfo,
	}
	env.router = NewHandler(services, routes, logger.Nop()).Init()
	return env
}

// expectValidToken makes testToken resolve to testUserID.
func (e *testEnv) expectValidToken() {
	e.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{
		UserID: testUserID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "token-id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}, nil)
}

func (e *testEnv) do(method, target, body string, authorized bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(e *testEnv)
		wantStatus int
		wantToken  bool
	}{
		{
			name: "success",
			body: `{"login":"alice","password":"secret-password"}`,
			setup: func(e *testEnv) {
				user := models.User{UserID: 1, Login: "alice"}
				e.auth.EXPECT().RegisterUser(gomock.Any(), models.User{Login: "alice", Password: "secret-password"}).Return(user, nil)
				e.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: testToken}, nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  true,
		},
		{
			name:       "malformed body",
			body:       `{"login":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid data",
			body: `{"login":"a","password":"x"}`,
			setup: func(e *testEnv) {
				e.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidDataProvided)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "login taken",
			body: `{"login":"alice","password":"secret-password"}`,
			setup: func(e *testEnv) {
				e.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "token creation fails",
			body: `{"login":"alice","password":"secret-password"}`,
			setup: func(e *testEnv) {
				e.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1, Login: "alice"}, nil)
				e.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Routes{})
			if tt.setup != nil {
				tt.setup(env)
			}

			rr := env.do(http.MethodPost, "/api/user/register", tt.body, false)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantToken {
				assert.Equal(t, "Bearer "+testToken, rr.Header().Get("Authorization"))
				assert.JSONEq(t, `{"login":"alice"}`, rr.Body.String())
				return
			}
			assert.Empty(t, rr.Header().Get("Authorization"))
			assert.Equal(t, tt.wantStatus, decodeError(t, rr).Status)
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t, config.Routes{})
		user := models.User{UserID: 3, Login: "bob"}
		env.auth.EXPECT().Login(gomock.Any(), models.User{Login: "bob", Password: "password1"}).Return(user, nil)
		env.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: testToken}, nil)

		rr := env.do(http.MethodPost, "/api/user/login", `{"login":"bob","password":"password1"}`, false)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer "+testToken, rr.Header().Get("Authorization"))
	})

	t.Run("wrong credentials", func(t *testing.T) {
		env := newTestEnv(t, config.Routes{})
		env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrWrongCredentials)

		rr := env.do(http.MethodPost, "/api/user/login", `{"login":"bob","password":"nope"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, service.ErrWrongCredentials.Error(), decodeError(t, rr).Error)
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		env := newTestEnv(t, config.Routes{})

		rr := env.do(http.MethodGet, "/api/user/login", "", false)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
		assert.Equal(t, "POST", rr.Header().Get("Allow"))
	})
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t, config.Routes{})
	env.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(models.VersionResponse{Version: "v1.2.3"})

	rr := env.do(http.MethodGet, "/api/version", "", false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"v1.2.3"}`, rr.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	tests := []struct {
		name        string
		routes      config.Routes
		method      string
		target      string
		wantAllow   string
		wantMessage string
	}{
		{
			name:        "default message",
			method:      http.MethodPost,
			target:      "/api/version",
			wantAllow:   "GET, HEAD",
			wantMessage: "Method not allowed",
		},
		{
			name:        "configured message",
			routes:      config.Routes{MethodNotAllowedMessage: "nope"},
			method:      http.MethodDelete,
			target:      "/api/notes",
			wantAllow:   "GET, POST",
			wantMessage: "nope",
		},
		{
			name:        "unauthenticated request still gets 405",
			method:      http.MethodPost,
			target:      "/api/notes/1",
			wantAllow:   "GET, PUT, PATCH, DELETE",
			wantMessage: "Method not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.routes)

			rr := env.do(tt.method, tt.target, "", false)

			assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Allow"))
			assert.Equal(t, tt.wantMessage, decodeError(t, rr).Error)
		})
	}
}

func TestNotes_Unauthorized(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(e *testEnv)
	}{
		{name: "no header"},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(e *testEnv) {
				e.auth.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Routes{UnauthorizedMessage: "who are you?"})
			if tt.setup != nil {
				tt.setup(env)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			env.router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Bearer")
			resp := decodeError(t, rr)
			assert.Equal(t, "who are you?", resp.Error)
			assert.Equal(t, rr.Header().Get(traceIDHeader), resp.TraceID)
		})
	}
}

func TestNotes_List(t *testing.T) {
	env := newTestEnv(t, config.Routes{})
	env.expectValidToken()
	env.notes.EXPECT().ListNotes(gomock.Any(), testUserID).Return([]models.Note{
		{ID: 1, UserID: testUserID, Title: "first"},
		{ID: 2, UserID: testUserID, Title: "second"},
	}, nil)

	rr := env.do(http.MethodGet, "/api/notes", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.NotesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Length)
	assert.Equal(t, "second", resp.Notes[1].Title)
}

func TestNotes_Create(t *testing.T) {
	env := newTestEnv(t, config.Routes{})
	env.expectValidToken()
	env.notes.EXPECT().
		CreateNote(gomock.Any(), models.Note{UserID: testUserID, Title: "groceries", Body: "milk"}).
		Return(models.Note{ID: 42, UserID: testUserID, Title: "groceries", Body: "milk"}, nil)

	// id and owner from the body are ignored
	rr := env.do(http.MethodPost, "/api/notes", `{"id":9,"title":"groceries","body":"milk"}`, true)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/notes/42", rr.Header().Get("Location"))
}

func TestNotes_Get(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(e *testEnv)
		wantStatus int
	}{
		{
			name:   "found",
			target: "/api/notes/5",
			setup: func(e *testEnv) {
				e.notes.EXPECT().GetNote(gomock.Any(), testUserID, int64(5)).Return(models.Note{ID: 5, Title: "t"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/api/notes/6",
			setup: func(e *testEnv) {
				e.notes.EXPECT().GetNote(gomock.Any(), testUserID, int64(6)).Return(models.Note{}, store.ErrNoteNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "id is not a number", target: "/api/notes/abc", wantStatus: http.StatusBadRequest},
		{name: "id is not positive", target: "/api/notes/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Routes{})
			env.expectValidToken()
			if tt.setup != nil {
				tt.setup(env)
			}

			rr := env.do(http.MethodGet, tt.target, "", true)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestNotes_Update(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			env := newTestEnv(t, config.Routes{})
			env.expectValidToken()
			env.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ any, update models.NoteUpdate) (models.Note, error) {
					assert.Equal(t, int64(5), update.ID)
					assert.Equal(t, testUserID, update.UserID)
					require.NotNil(t, update.Title)
					assert.Equal(t, "renamed", *update.Title)
					assert.Nil(t, update.Body)
					return models.Note{ID: 5, Title: "renamed"}, nil
				})

			rr := env.do(method, "/api/notes/5", `{"title":"renamed"}`, true)

			assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
		})
	}
}

func TestNotes_Delete(t *testing.T) {
	env := newTestEnv(t, config.Routes{})
	env.expectValidToken()
	env.notes.EXPECT().DeleteNote(gomock.Any(), testUserID, int64(5)).Return(nil)

	rr := env.do(http.MethodDelete, "/api/notes/5", "", true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Zero(t, rr.Body.Len())
}

func TestNotes_ServerErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *testEnv)
	}{
		{
			name: "service error",
			setup: func(e *testEnv) {
				e.notes.EXPECT().ListNotes(gomock.Any(), testUserID).Return(nil, errors.New("connection refused"))
			},
		},
		{
			name: "service panic",
			setup: func(e *testEnv) {
				e.notes.EXPECT().ListNotes(gomock.Any(), testUserID).DoAndReturn(
					func(_ any, _ int64) ([]models.Note, error) {
						panic("nil map write")
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Routes{InternalServerErrorMessage: "oops"})
			env.expectValidToken()
			tt.setup(env)

			rr := env.do(http.MethodGet, "/api/notes", "", true)

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			resp := decodeError(t, rr)
			assert.Equal(t, "oops", resp.Error)
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestNotFound(t *testing.T) {
	env := newTestEnv(t, config.Routes{})

	rr := env.do(http.MethodGet, "/api/unknown", "", false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ErrRouteNotFound.Error(), decodeError(t, rr).Error)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{err: ErrInvalidNoteID, want: http.StatusBadRequest},
		{err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{err: ErrNoSession, want: http.StatusUnauthorized},
		{err: store.ErrNoteNotFound, want: http.StatusNotFound},
		{err: store.ErrLoginAlreadyExists, want: http.StatusConflict},
		{err: errors.Join(errors.New("ctx"), store.ErrNoteNotFound), want: http.StatusNotFound},
		{err: errors.New("anything else"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
