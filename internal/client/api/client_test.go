package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lmsdesk/pkg/api"
)

func staticToken(token string) *TokenSourceMock {
	return &TokenSourceMock{
		TokenFunc: func(ctx context.Context) (string, error) {
			return token, nil
		},
	}
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080/api/v1/"
	client := NewClient(baseURL, nil)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080/api/v1", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient(baseURL, nil, WithTimeout(time.Second))
	assert.Equal(t, time.Second, client.httpClient.Timeout)
}

// TestClient_Do_Success проверяет разбор успешного конверта
func TestClient_Do_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Проверяем метод, путь и заголовки
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		_, _ = w.Write([]byte(`{"success":true,"data":[1,2],"pagination":{"total":7,"page":2,"limit":2},"message":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("token-123"))
	res, err := client.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/items",
		Query:  map[string][]string{"page": {"2"}},
		Op:     "list items",
	})

	require.NoError(t, err)
	require.NotNil(t, res.Pagination)
	assert.Equal(t, 7, res.Pagination.Total)
	assert.Equal(t, "ok", res.Message)

	var items []int
	require.NoError(t, res.Decode(&items))
	assert.Equal(t, []int{1, 2}, items)
}

// TestClient_Do_Classification проверяет классификацию неуспешных ответов
func TestClient_Do_Classification(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
		status      int
		wantKind    Kind
	}{
		{
			name:        "unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"success":false,"message":"Token expired"}`,
			wantKind:    KindAuthentication,
			wantMessage: "Token expired",
		},
		{
			name:        "forbidden",
			status:      http.StatusForbidden,
			body:        `{"success":false}`,
			wantKind:    KindAuthentication,
			wantMessage: "Failed to load",
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			body:        `{"success":false,"error":"course not found"}`,
			wantKind:    KindBusiness,
			wantMessage: "course not found",
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			body:        "Internal Server Error",
			wantKind:    KindTransport,
			wantMessage: "Failed to load",
		},
		{
			name:        "success false on 200",
			status:      http.StatusOK,
			body:        `{"success":false,"message":"Already bookmarked"}`,
			wantKind:    KindBusiness,
			wantMessage: "Already bookmarked",
		},
		{
			name:        "invalid json",
			status:      http.StatusOK,
			body:        "invalid json{",
			wantKind:    KindTransport,
			wantMessage: MsgBadResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, staticToken("token"))
			res, err := client.Do(context.Background(), Request{
				Method:   http.MethodGet,
				Path:     "/x",
				Op:       "load",
				Fallback: "Failed to load",
			})

			require.Error(t, err)
			assert.Nil(t, res)
			apiErr, ok := AsError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

// TestClient_Do_NoContent проверяет, что пустое тело 2xx считается успехом
func TestClient_Do_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("token"))
	res, err := client.Do(context.Background(), Request{Method: http.MethodDelete, Path: "/x"})

	require.NoError(t, err)
	assert.NotNil(t, res)
}

// TestClient_Do_Precondition проверяет, что без токена запрос не уходит в сеть
func TestClient_Do_Precondition(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	tests := []struct {
		tokens TokenSource
		name   string
	}{
		{name: "nil source", tokens: nil},
		{name: "empty token", tokens: staticToken("")},
		{name: "source error", tokens: &TokenSourceMock{
			TokenFunc: func(ctx context.Context) (string, error) {
				return "", errors.New("storage is closed")
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(server.URL, tt.tokens)
			_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/profile", Op: "fetch profile"})

			require.Error(t, err)
			assert.True(t, IsKind(err, KindPrecondition))
			assert.ErrorIs(t, err, ErrNoCredential)
		})
	}
	assert.False(t, called)
}

// TestClient_Do_AnonymousOptional проверяет запрос без токена для AuthOptional
func TestClient_Do_AnonymousOptional(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken(""))
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/courses", Auth: AuthOptional})
	require.NoError(t, err)
}

// TestClient_Do_Body проверяет отправку тела запроса
func TestClient_Do_Body(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "student@example.com", req.Email)

		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"jwt","expiresIn":3600}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	res, err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   api.LoginRequest{Email: "student@example.com", Password: "secret"},
		Auth:   AuthOptional,
	})
	require.NoError(t, err)

	var token api.TokenResponse
	require.NoError(t, res.Decode(&token))
	assert.Equal(t, "jwt", token.Token)
}

// TestClient_ContextCancellation проверяет отмену запроса через контекст
func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Имитируем долгий запрос
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("token"))

	// Создаем контекст с коротким таймаутом
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Do(ctx, Request{Method: http.MethodGet, Path: "/slow", Op: "slow", Fallback: "Failed"})

	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindTransport, apiErr.Kind)
	assert.Equal(t, MsgRequestTimeout, apiErr.Message)
	assert.Zero(t, apiErr.Status)
}

// TestClient_Timeout проверяет таймаут самого HTTP клиента
func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("token"), WithTimeout(50*time.Millisecond))
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/slow"})

	require.Error(t, err)
	assert.True(t, IsKind(err, KindTransport))
}

// TestClient_HTTPClientRedirect проверяет перенос Authorization при редиректе на тот же хост
func TestClient_HTTPClientRedirect(t *testing.T) {
	redirectCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/redirect" {
			redirectCount++
			http.Redirect(w, r, "/final", http.StatusFound)
			return
		}
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticToken("token"))
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/redirect"})

	require.NoError(t, err)
	assert.Equal(t, 1, redirectCount)
}

// TestClient_RedirectToOtherHost проверяет, что токен не уходит на чужой хост
func TestClient_RedirectToOtherHost(t *testing.T) {
	var foreignAuth []string
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		foreignAuth = append(foreignAuth, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer foreign.Close()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		http.Redirect(w, r, foreign.URL+"/final", http.StatusFound)
	}))
	defer origin.Close()

	client := NewClient(origin.URL, staticToken("secret-token"))
	_, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/redirect"})

	require.NoError(t, err)
	require.Len(t, foreignAuth, 1)
	assert.Empty(t, foreignAuth[0])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "authentication", KindAuthentication.String())
	assert.Equal(t, "business", KindBusiness.String())
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "precondition", KindPrecondition.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
