package authservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/pg"
	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	LoginPath           = "/login"
	ProviderCredentials = "credentials"
)

const (
	MsgRegisterMissingFields = "Missing Fields. Failed to Register."
	MsgUserExists            = "User with this email already exists."
	MsgRegisterDBError       = "Database Error: Failed to Register User."
	MsgRegisterFailed        = "Failed to Register User."
	MsgRegistered            = "Registration successful. Please log in."

	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWrong     = "Something went wrong."
)

var ErrUserExists = errors.New("user already exists")

var errHash = errors.New("hash password")

// registerAttempts bounds retries after serialization failures. A retry that
// follows a concurrent registration of the same email sees its row and
// reports the conflict.
const registerAttempts = 3

type Repo interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

// SignInService verifies credentials for a provider and opens a session.
type SignInService interface {
	SignIn(ctx context.Context, provider string, form map[string]string) (*auth.Session, error)
}

type Service struct {
	userRepo  Repo
	txManager pg.TXManager
	hasher    auth.PasswordHasher
	signIn    SignInService
	newID     func() string
}

func New(repo Repo, txManager pg.TXManager, hasher auth.PasswordHasher, signIn SignInService) *Service {
	return &Service{
		userRepo:  repo,
		txManager: txManager,
		hasher:    hasher,
		signIn:    signIn,
		newID:     uuid.NewString,
	}
}

// Register stores a new user. The email check and the insert share one
// serializable transaction, retried when it loses to a concurrent one; the
// unique index on users.email is the final word on duplicates.
func (s *Service) Register(ctx context.Context, form map[string]string) (*domain.FormResult, error) {
	input, errs := registrationSchema.Parse(form)
	if errs != nil {
		zap.L().Info("registration form rejected", zap.Any("errors", errs))
		return domain.ValidationFailed(errs, MsgRegisterMissingFields), nil
	}

	var err error
	for attempt := 1; attempt <= registerAttempts; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			return s.createUser(ctx, input)
		})
		if !pg.IsSerializationFailure(err) {
			break
		}
		zap.L().Info("registration lost a concurrent transaction, retrying",
			zap.String("email", input.Email), zap.Int("attempt", attempt))
	}

	switch {
	case errors.Is(err, ErrUserExists), errors.Is(err, domain.ErrEmailTaken):
		zap.L().Info("user already exists", zap.String("email", input.Email))
		return domain.Conflict(MsgUserExists), nil
	case errors.Is(err, errHash):
		zap.L().Error("can't hash password: ", zap.Error(err))
		return domain.StoreFailed(MsgRegisterFailed), nil
	case err != nil:
		zap.L().Error("can't create user: ", zap.Error(err))
		return domain.StoreFailed(MsgRegisterDBError), nil
	}

	zap.L().Info("user successfully registered", zap.String("email", input.Email))
	return &domain.FormResult{
		Outcome:    domain.OutcomeRedirect,
		Message:    MsgRegistered,
		Success:    true,
		RedirectTo: LoginPath,
	}, nil
}

func (s *Service) createUser(ctx context.Context, input domain.RegistrationInput) error {
	exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("%w: %w", errHash, err)
	}
	return s.userRepo.Create(ctx, &domain.User{
		ID:       s.newID(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hash,
	})
}

// Authenticate signs the user in with the credentials provider. On success the
// message is empty and the session is returned. Known sign-in failures become a
// user-facing message; any other error is returned unchanged.
func (s *Service) Authenticate(ctx context.Context, form map[string]string) (*auth.Session, string, error) {
	session, err := s.signIn.SignIn(ctx, ProviderCredentials, form)
	if err == nil {
		return session, "", nil
	}

	authErr, ok := auth.AsError(err)
	if !ok {
		return nil, "", err
	}

	zap.L().Info("sign in failed", zap.String("type", authErr.Type))
	switch authErr.Type {
	case auth.CredentialsSignin:
		return nil, MsgInvalidCredentials, nil
	default:
		return nil, MsgSomethingWrong, nil
	}
}
