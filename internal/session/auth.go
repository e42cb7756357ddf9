package session

import (
	"context"

	"github.com/magabrotheeeer/staking-bank/internal/apiclient"
	"github.com/magabrotheeeer/staking-bank/internal/lib/sl"
	"github.com/magabrotheeeer/staking-bank/internal/lib/validation"
	"github.com/magabrotheeeer/staking-bank/internal/models"
	"github.com/magabrotheeeer/staking-bank/internal/state"
)

// Login сохраняет токен, запускает сессию и загружает данные роли.
func (s *Session) Login(ctx context.Context, email, password string) models.Result {
	const op = "session.Login"

	req := models.Credentials{Email: email, Password: password}
	if err := s.validate.Struct(req); err != nil {
		return models.Fail(validation.Message(err))
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		s.log.Error("login failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Login failed"))
	}
	if resp.Token == "" {
		return models.Fail("Login failed: no token received")
	}
	if err := s.tokens.SetToken(resp.Token); err != nil {
		s.log.Error("failed to persist token", sl.Op(op), sl.Err(err))
		return models.Fail("Login failed")
	}

	s.store.Dispatch(state.SessionStarted{User: resp.User})
	s.hydrate(ctx, resp.User)
	return models.OK("Login successful")
}

// Register создаёт аккаунт. Сессия не начинается: бэкенд ждёт подтверждения почты.
func (s *Session) Register(ctx context.Context, name, email, password string) models.Result {
	const op = "session.Register"

	req := models.Registration{Name: name, Email: email, Password: password}
	if err := s.validate.Struct(req); err != nil {
		return models.Fail(validation.Message(err))
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		s.log.Error("registration failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Registration failed"))
	}
	return models.OK(resp.Message)
}

// ForgotPassword сбрасывает пароль, состояние сессии не меняется.
func (s *Session) ForgotPassword(ctx context.Context, email, newPassword string) models.Result {
	const op = "session.ForgotPassword"

	req := models.PasswordReset{Email: email, Password: newPassword}
	if err := s.validate.Struct(req); err != nil {
		return models.Fail(validation.Message(err))
	}

	resp, err := s.api.ForgotPassword(ctx, req)
	if err != nil {
		s.log.Error("password reset failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Password reset failed"))
	}
	return models.OK(resp.Message)
}

// VerifyEmail подтверждает почту по токену из письма.
func (s *Session) VerifyEmail(ctx context.Context, token string) models.Result {
	const op = "session.VerifyEmail"

	if token == "" {
		return models.Fail("Verification token is missing")
	}
	resp, err := s.api.VerifyEmail(ctx, token)
	if err != nil {
		s.log.Error("email verification failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Email verification failed"))
	}
	return models.OK(resp.Message)
}

// UpdateUserProfile отправляет патч и сливает ответ сервера в пользователя.
func (s *Session) UpdateUserProfile(ctx context.Context, patch models.UserPatch) models.Result {
	const op = "session.UpdateUserProfile"

	if !s.store.Snapshot().Authenticated() {
		return models.Fail(msgNotAuthenticated)
	}

	resp, err := s.api.UpdateProfile(ctx, patch)
	if err != nil {
		s.log.Error("profile update failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Profile update failed"))
	}
	resp.Password = nil
	s.store.Dispatch(state.UserPatched{Patch: *resp})
	return models.OK("Profile updated")
}

// Logout локальный: удаляет токен и очищает все кешированные списки.
func (s *Session) Logout() models.Result {
	s.clearToken()
	s.store.Dispatch(state.SessionCleared{})
	return models.OK("Logged out")
}

// SubscribeNewsletter публичная подписка на рассылку.
func (s *Session) SubscribeNewsletter(ctx context.Context, email string) models.Result {
	const op = "session.SubscribeNewsletter"

	req := models.NewsletterRequest{Email: email}
	if err := s.validate.Struct(req); err != nil {
		return models.Fail(validation.Message(err))
	}

	resp, err := s.api.Subscribe(ctx, req)
	if err != nil {
		s.log.Error("newsletter subscription failed", sl.Op(op), sl.Err(err))
		return models.Fail(apiclient.Message(err, "Subscription failed"))
	}
	return models.OK(resp.Message)
}

const (
	msgNotAuthenticated = "Not authenticated"
	msgAdminRequired    = "Admin access required"
)
