package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordwheel/wheelbot/ent"
	testdatabase "github.com/wordwheel/wheelbot/test/database"
)

func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	db := testdatabase.NewTestClient(t)
	s := NewServer(db, "test-signing-key")
	return s, s.Router()
}

func bootstrapAdmin(t *testing.T, s *Server, email, password string) *ent.Admin {
	a, err := s.admins.BootstrapAdmin(context.Background(), email, password)
	require.NoError(t, err)
	return a
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	rec := doJSON(t, router, http.MethodPost, "/admin.login",
		gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code)
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatal("login response has no session cookie")
	return nil
}

func TestLogin(t *testing.T) {
	s, router := newTestServer(t)
	bootstrapAdmin(t, s, "admin@example.com", "secret")

	t.Run("valid credentials set a session cookie", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/admin.login",
			gin.H{"email": "admin@example.com", "password": "secret"})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AdminResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "admin@example.com", resp.Email)
		assert.NotZero(t, resp.ID)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("wrong password is forbidden", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/admin.login",
			gin.H{"email": "admin@example.com", "password": "wrong"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unknown email is forbidden", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/admin.login",
			gin.H{"email": "ghost@example.com", "password": "secret"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing password is rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/admin.login",
			gin.H{"email": "admin@example.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCurrentAdmin(t *testing.T) {
	s, router := newTestServer(t)
	admin := bootstrapAdmin(t, s, "admin@example.com", "secret")
	cookie := login(t, router, "admin@example.com", "secret")

	t.Run("with session returns the account", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/admin.current", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AdminResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, admin.ID, resp.ID)
		assert.Equal(t, "admin@example.com", resp.Email)
	})

	t.Run("without session is unauthorized", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/admin.current", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered session is unauthorized", func(t *testing.T) {
		bad := &http.Cookie{Name: sessionCookieName, Value: cookie.Value + "ff"}
		rec := doJSON(t, router, http.MethodGet, "/admin.current", nil, bad)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted account is forbidden", func(t *testing.T) {
		require.NoError(t, s.db.Admin.DeleteOneID(admin.ID).Exec(context.Background()))

		rec := doJSON(t, router, http.MethodGet, "/admin.current", nil, cookie)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	s, router := newTestServer(t)
	bootstrapAdmin(t, s, "admin@example.com", "secret")
	cookie := login(t, router, "admin@example.com", "secret")

	rec := doJSON(t, router, http.MethodGet, "/admin.logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AdminResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin@example.com", resp.Email)

	// The response clears the cookie.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestQuestionEndpoints(t *testing.T) {
	s, router := newTestServer(t)
	bootstrapAdmin(t, s, "admin@example.com", "secret")
	cookie := login(t, router, "admin@example.com", "secret")

	var questionID int

	t.Run("auth required", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/game/add_question",
			gin.H{"question": "Столица Франции", "answer": "Париж"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("add question", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/game/add_question",
			gin.H{"question": "Столица Франции", "answer": "Париж"}, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp QuestionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotZero(t, resp.QuestionID)
		assert.Equal(t, "Столица Франции", resp.Question)
		assert.Equal(t, "Париж", resp.Answer)
		questionID = resp.QuestionID
	})

	t.Run("duplicate question conflicts", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/game/add_question",
			gin.H{"question": "Столица Франции", "answer": "Париж"}, cookie)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("empty answer rejected", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/game/add_question",
			gin.H{"question": "Без ответа", "answer": ""}, cookie)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("list questions", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/game/list_questions", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp QuestionListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, questionID, resp.Questions[0].QuestionID)
	})

	t.Run("delete question", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/game/delete_question",
			gin.H{"question_id": questionID}, cookie)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/game/list_questions", nil, cookie)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp QuestionListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Questions)
	})

	t.Run("delete missing question", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/game/delete_question",
			gin.H{"question_id": questionID}, cookie)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, healthStatusHealthy, resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, healthStatusHealthy, resp.Database.Status)
}
