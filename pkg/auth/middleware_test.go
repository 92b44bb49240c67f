package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	tokens := NewJWTService("secret", time.Hour)
	session, err := tokens.Issue("user-1")
	assert.NoError(t, err)

	var gotUserID any
	protected := Middleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(UserIDKey)
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name         string
		prepare      func(r *http.Request)
		expectedCode int
		expectedUser any
	}{
		{
			name:         "No token",
			prepare:      func(r *http.Request) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Session cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.Token})
			},
			expectedCode: http.StatusOK,
			expectedUser: "user-1",
		},
		{
			name: "Bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+session.Token)
			},
			expectedCode: http.StatusOK,
			expectedUser: "user-1",
		},
		{
			name: "Invalid token",
			prepare: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer nope")
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = nil
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedUser, gotUserID)
		})
	}
}
