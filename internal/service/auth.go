package service

import (
	"context"

	"github.com/delote/beauty-web/internal/apiclient"
	"github.com/delote/beauty-web/internal/model"
)

// Auth performs the session-bound reads. The token is an explicit argument
// on every call so the auth dependency shows up in signatures instead of
// hiding behind ambient state.
type Auth struct {
	api *apiclient.Client
}

func NewAuth(api *apiclient.Client) *Auth {
	return &Auth{api: api}
}

// CurrentUser fetches the authenticated admin's profile.
func (s *Auth) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	env, err := s.api.GetAuth(ctx, "/admin/me", token)
	if err != nil {
		return nil, err
	}
	user, err := apiclient.DecodeData[model.User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyToken checks the token against the API and returns the profile on
// success. An empty token resolves locally to invalid, without a network
// call.
func (s *Auth) VerifyToken(ctx context.Context, token string) (bool, *model.User) {
	if token == "" {
		return false, nil
	}
	env, err := s.api.GetAuth(ctx, "/admin/verify", token)
	if err != nil {
		return false, nil
	}
	user, err := apiclient.DecodeData[model.User](env)
	if err != nil {
		return true, nil
	}
	return true, &user
}

// CheckAuth is the boolean-only gate: one round trip, no profile fetch.
func (s *Auth) CheckAuth(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := s.api.GetAuth(ctx, "/admin/verify", token)
	return err == nil
}
