package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestCredentialsProvider_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hasher := auth.NewMockPasswordHasher(ctrl)
	tokens := auth.NewMockTokenService(ctrl)
	provider := NewCredentialsProvider(repo, hasher, tokens)

	form := map[string]string{"email": "user@nextmail.com", "password": "123456"}
	user := &domain.User{ID: testUserID, Email: "user@nextmail.com", Password: "hashed"}
	session := &auth.Session{Token: "token", UserID: testUserID, ExpiresAt: time.Unix(1700000000, 0)}

	tests := []struct {
		name            string
		provider        string
		form            map[string]string
		prepareMock     func()
		expectedSession *auth.Session
		expectedType    string
	}{
		{
			name:     "Valid credentials",
			provider: ProviderCredentials,
			form:     form,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), "user@nextmail.com").Return(user, nil)
				hasher.EXPECT().Compare("hashed", "123456").Return(true)
				tokens.EXPECT().Issue(testUserID).Return(session, nil)
			},
			expectedSession: session,
		},
		{
			name:         "Unsupported provider",
			provider:     "github",
			form:         form,
			prepareMock:  func() {},
			expectedType: auth.InvalidProvider,
		},
		{
			name:         "Short password never reaches the store",
			provider:     ProviderCredentials,
			form:         map[string]string{"email": "user@nextmail.com", "password": "123"},
			prepareMock:  func() {},
			expectedType: auth.CredentialsSignin,
		},
		{
			name:     "Unknown user",
			provider: ProviderCredentials,
			form:     form,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expectedType: auth.CredentialsSignin,
		},
		{
			name:     "Wrong password",
			provider: ProviderCredentials,
			form:     form,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				hasher.EXPECT().Compare("hashed", "123456").Return(false)
			},
			expectedType: auth.CredentialsSignin,
		},
		{
			name:     "Store failure",
			provider: ProviderCredentials,
			form:     form,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedType: auth.CallbackRouteError,
		},
		{
			name:     "Token signing failure",
			provider: ProviderCredentials,
			form:     form,
			prepareMock: func() {
				repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(user, nil)
				hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(true)
				tokens.EXPECT().Issue(testUserID).Return(nil, errors.New("empty key"))
			},
			expectedType: auth.Configuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, err := provider.SignIn(context.Background(), tt.provider, tt.form)

			assert.Equal(t, tt.expectedSession, got)
			if tt.expectedType == "" {
				assert.NoError(t, err)
				return
			}
			authErr, ok := auth.AsError(err)
			if assert.True(t, ok) {
				assert.Equal(t, tt.expectedType, authErr.Type)
			}
		})
	}
}
