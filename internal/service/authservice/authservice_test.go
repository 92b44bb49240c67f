package authservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const testUserID = "410544b2-4001-4271-9855-fec4b6442a42"

func NewMock(t *testing.T) (*Service, *MockRepo, *pg.MockTXManager, *auth.MockPasswordHasher, *MockSignInService) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	hasher := auth.NewMockPasswordHasher(ctrl)
	signIn := NewMockSignInService(ctrl)

	service := New(repo, txManager, hasher, signIn)
	service.newID = func() string { return testUserID }
	return service, repo, txManager, hasher, signIn
}

func expectTx(tx *pg.MockTXManager) *gomock.Call {
	return tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func TestRegister(t *testing.T) {
	service, repo, tx, hasher, _ := NewMock(t)

	validForm := map[string]string{"name": "User", "email": "user@nextmail.com", "password": "123456"}

	tests := []struct {
		name           string
		form           map[string]string
		prepareMock    func()
		expectedResult *domain.FormResult
	}{
		{
			name: "Successful registration",
			form: validForm,
			prepareMock: func() {
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), "user@nextmail.com").Return(false, nil)
				hasher.EXPECT().Hash("123456").Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), &domain.User{
					ID:       testUserID,
					Name:     "User",
					Email:    "user@nextmail.com",
					Password: "hashed",
				}).Return(nil)
			},
			expectedResult: &domain.FormResult{
				Outcome:    domain.OutcomeRedirect,
				Message:    MsgRegistered,
				Success:    true,
				RedirectTo: LoginPath,
			},
		},
		{
			name: "Existing email is a conflict and nothing is inserted",
			form: validForm,
			prepareMock: func() {
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), "user@nextmail.com").Return(true, nil)
			},
			expectedResult: domain.Conflict(MsgUserExists),
		},
		{
			name: "Unique violation from a concurrent registration is a conflict",
			form: validForm,
			prepareMock: func() {
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
				hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: %s", domain.ErrEmailTaken, "user@nextmail.com"))
			},
			expectedResult: domain.Conflict(MsgUserExists),
		},
		{
			name: "Serialization failure is retried and the retry sees the concurrent user",
			form: validForm,
			prepareMock: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(fmt.Errorf("can't commit transaction: %w", &pgconn.PgError{Code: "40001"}))
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), "user@nextmail.com").Return(true, nil)
			},
			expectedResult: domain.Conflict(MsgUserExists),
		},
		{
			name: "Serialization failures on every attempt",
			form: validForm,
			prepareMock: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{Code: "40001"}).Times(registerAttempts)
			},
			expectedResult: domain.StoreFailed(MsgRegisterDBError),
		},
		{
			name: "Existence check failure",
			form: validForm,
			prepareMock: func() {
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused"))
			},
			expectedResult: domain.StoreFailed(MsgRegisterDBError),
		},
		{
			name: "Insert failure",
			form: validForm,
			prepareMock: func() {
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
				hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedResult: domain.StoreFailed(MsgRegisterDBError),
		},
		{
			name: "Hash failure",
			form: validForm,
			prepareMock: func() {
				expectTx(tx)
				repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
				hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("password length exceeds 72 bytes"))
			},
			expectedResult: domain.StoreFailed(MsgRegisterFailed),
		},
		{
			name:        "Empty form reports every field",
			form:        map[string]string{},
			prepareMock: func() {},
			expectedResult: domain.ValidationFailed(map[string][]string{
				"name":     {MsgName},
				"email":    {MsgEmail},
				"password": {MsgPassword},
			}, MsgRegisterMissingFields),
		},
		{
			name:        "Malformed email",
			form:        map[string]string{"name": "User", "email": "not-an-email", "password": "123456"},
			prepareMock: func() {},
			expectedResult: domain.ValidationFailed(map[string][]string{
				"email": {MsgEmail},
			}, MsgRegisterMissingFields),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Register(context.Background(), tt.form)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestRegister_PasswordLength(t *testing.T) {
	service, repo, tx, hasher, _ := NewMock(t)

	t.Run("five characters", func(t *testing.T) {
		result, err := service.Register(context.Background(), map[string]string{
			"name": "User", "email": "user@nextmail.com", "password": "12345",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeValidationFailed, result.Outcome)
		assert.Equal(t, map[string][]string{"password": {MsgPassword}}, result.Errors)
	})

	t.Run("six characters", func(t *testing.T) {
		expectTx(tx)
		repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		hasher.EXPECT().Hash("123456").Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.Register(context.Background(), map[string]string{
			"name": "User", "email": "user@nextmail.com", "password": "123456",
		})

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeRedirect, result.Outcome)
		assert.True(t, result.Success)
	})

	t.Run("long passwords are not truncated before hashing", func(t *testing.T) {
		password := strings.Repeat("p", 64)
		expectTx(tx)
		repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		hasher.EXPECT().Hash(password).Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		result, err := service.Register(context.Background(), map[string]string{
			"name": "User", "email": "user@nextmail.com", "password": password,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeRedirect, result.Outcome)
	})
}

func TestAuthenticate(t *testing.T) {
	service, _, _, _, signIn := NewMock(t)

	form := map[string]string{"email": "user@nextmail.com", "password": "123456"}
	session := &auth.Session{Token: "token", UserID: testUserID, ExpiresAt: time.Unix(1700000000, 0)}
	unknown := errors.New("provider exploded")

	tests := []struct {
		name            string
		prepareMock     func()
		expectedSession *auth.Session
		expectedMessage string
		expectedError   error
	}{
		{
			name: "Successful sign in",
			prepareMock: func() {
				signIn.EXPECT().SignIn(gomock.Any(), ProviderCredentials, form).Return(session, nil)
			},
			expectedSession: session,
		},
		{
			name: "Bad credentials",
			prepareMock: func() {
				signIn.EXPECT().SignIn(gomock.Any(), ProviderCredentials, form).Return(nil, auth.NewError(auth.CredentialsSignin, nil))
			},
			expectedMessage: MsgInvalidCredentials,
		},
		{
			name: "Wrapped bad credentials",
			prepareMock: func() {
				signIn.EXPECT().SignIn(gomock.Any(), ProviderCredentials, form).
					Return(nil, fmt.Errorf("sign in: %w", auth.NewError(auth.CredentialsSignin, nil)))
			},
			expectedMessage: MsgInvalidCredentials,
		},
		{
			name: "Callback failure",
			prepareMock: func() {
				signIn.EXPECT().SignIn(gomock.Any(), ProviderCredentials, form).
					Return(nil, auth.NewError(auth.CallbackRouteError, errors.New("db down")))
			},
			expectedMessage: MsgSomethingWrong,
		},
		{
			name: "Unknown provider category",
			prepareMock: func() {
				signIn.EXPECT().SignIn(gomock.Any(), ProviderCredentials, form).Return(nil, auth.NewError(auth.InvalidProvider, nil))
			},
			expectedMessage: MsgSomethingWrong,
		},
		{
			name: "Unrecognized error propagates",
			prepareMock: func() {
				signIn.EXPECT().SignIn(gomock.Any(), ProviderCredentials, form).Return(nil, unknown)
			},
			expectedError: unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			got, message, err := service.Authenticate(context.Background(), form)

			assert.Equal(t, tt.expectedSession, got)
			assert.Equal(t, tt.expectedMessage, message)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
