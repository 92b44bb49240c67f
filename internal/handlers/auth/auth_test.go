package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	pkgauth "github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)
	form := url.Values{"name": {"User"}, "email": {"user@nextmail.com"}, "password": {"123456"}}
	expectedForm := map[string]string{"name": "User", "email": "user@nextmail.com", "password": "123456"}

	tests := []struct {
		name             string
		prepareMock      func()
		expectedCode     int
		expectedLocation string
		expectedMessage  string
	}{
		{
			name: "Successful registration redirects to login",
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), expectedForm).Return(&domain.FormResult{
					Outcome:    domain.OutcomeRedirect,
					Success:    true,
					RedirectTo: "/login",
				}, nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name: "User already exists",
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), expectedForm).Return(domain.Conflict("User with this email already exists."), nil)
			},
			expectedCode:    http.StatusConflict,
			expectedMessage: "User with this email already exists.",
		},
		{
			name: "Database error",
			prepareMock: func() {
				service.EXPECT().Register(gomock.Any(), expectedForm).Return(domain.StoreFailed("Database Error: Failed to Register User."), nil)
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Database Error: Failed to Register User.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Register(rr, formRequest("/register", form))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))
			if tt.expectedMessage != "" {
				var state dto.FormStateDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&state))
				assert.Equal(t, tt.expectedMessage, state.Message)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)
	session := &pkgauth.Session{Token: "some-jwt-token", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}

	tests := []struct {
		name             string
		form             url.Values
		prepareMock      func()
		expectedCode     int
		expectedLocation string
		expectedMessage  string
		expectCookie     bool
	}{
		{
			name: "Successful login follows redirectTo",
			form: url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}, "redirectTo": {"/dashboard/invoices"}},
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(session, "", nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/dashboard/invoices",
			expectCookie:     true,
		},
		{
			name: "Off-site redirectTo falls back to the dashboard",
			form: url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}, "redirectTo": {"//evil.example"}},
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(session, "", nil)
			},
			expectedCode:     http.StatusSeeOther,
			expectedLocation: DefaultRedirect,
			expectCookie:     true,
		},
		{
			name: "Invalid credentials",
			form: url.Values{"email": {"user@nextmail.com"}, "password": {"wrong-password"}},
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, "Invalid credentials.", nil)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: "Invalid credentials.",
		},
		{
			name: "Unrecognized error",
			form: url.Values{"email": {"user@nextmail.com"}, "password": {"123456"}},
			prepareMock: func() {
				service.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, "", errors.New("boom"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			rr := httptest.NewRecorder()
			handler.Login(rr, formRequest("/login", tt.form))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, tt.expectedLocation, rr.Header().Get("Location"))

			var cookie *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == pkgauth.SessionCookie {
					cookie = c
				}
			}
			if tt.expectCookie {
				require.NotNil(t, cookie)
				assert.Equal(t, "some-jwt-token", cookie.Value)
				assert.True(t, cookie.HttpOnly)
			} else {
				assert.Nil(t, cookie)
			}

			if tt.expectedMessage != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestSafeRedirect(t *testing.T) {
	assert.Equal(t, "/dashboard/invoices", safeRedirect("/dashboard/invoices"))
	assert.Equal(t, DefaultRedirect, safeRedirect(""))
	assert.Equal(t, DefaultRedirect, safeRedirect("https://evil.example"))
	assert.Equal(t, DefaultRedirect, safeRedirect("//evil.example"))
	assert.Equal(t, DefaultRedirect, safeRedirect(`/\evil.example`))
}
