package authservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/invoicedash/pkg/auth"
	"go.uber.org/zap"
)

// CredentialsProvider signs users in with email and password.
type CredentialsProvider struct {
	users  Repo
	hasher auth.PasswordHasher
	tokens auth.TokenService
}

func NewCredentialsProvider(users Repo, hasher auth.PasswordHasher, tokens auth.TokenService) *CredentialsProvider {
	return &CredentialsProvider{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (p *CredentialsProvider) SignIn(ctx context.Context, provider string, form map[string]string) (*auth.Session, error) {
	if provider != ProviderCredentials {
		return nil, auth.NewError(auth.InvalidProvider, fmt.Errorf("unsupported provider %q", provider))
	}

	creds, errs := loginSchema.Parse(form)
	if errs != nil {
		return nil, auth.NewError(auth.CredentialsSignin, nil)
	}

	user, err := p.users.FindByEmail(ctx, creds.Email)
	if err != nil {
		return nil, auth.NewError(auth.CallbackRouteError, err)
	}
	if user == nil || !p.hasher.Compare(user.Password, creds.Password) {
		return nil, auth.NewError(auth.CredentialsSignin, nil)
	}

	session, err := p.tokens.Issue(user.ID)
	if err != nil {
		zap.L().Error("can't issue session token", zap.Error(err))
		return nil, auth.NewError(auth.Configuration, err)
	}

	zap.L().Info("user successfully authenticated", zap.String("user_id", user.ID))
	return session, nil
}
