package usecase

import (
	"context"
	"sponsorship/domain"
	"sponsorship/middleware"
	"testing"

	"github.com/stretchr/testify/suite"
)

type AuthUseCaseSuite struct {
	ucSuite
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseSuite))
}

func (s *AuthUseCaseSuite) SetupTest() {
	s.T().Setenv("BYTE_KEY", "test-signing-key")
	s.ucSuite.SetupTest()
}

func (s *AuthUseCaseSuite) register(username, password string) *domain.User {
	user, err := s.auth.Register(context.Background(), &domain.RegisterRequest{
		Username: username,
		Password: password,
		Role:     "Staff",
	})
	s.Require().NoError(err)
	return user
}

func (s *AuthUseCaseSuite) TestRegisterAndLogin() {
	user := s.register("mary", "correct-horse")
	s.Equal(domain.RoleStaff, user.Role)
	s.NotEqual("correct-horse", user.Password)

	resp, err := s.auth.Login(context.Background(), &domain.LoginRequest{Username: "mary", Password: "correct-horse"})
	s.Require().NoError(err)
	s.Equal(domain.RoleStaff, resp.Role)

	claims, err := middleware.VerifyJWT(resp.Token)
	s.Require().NoError(err)
	s.Equal(user.UserID, claims.UserID)
	s.Equal("mary", claims.Username)
}

func (s *AuthUseCaseSuite) TestLoginFailuresLookAlike() {
	s.register("mary", "correct-horse")
	ctx := context.Background()

	_, err := s.auth.Login(ctx, &domain.LoginRequest{Username: "mary", Password: "wrong-horse"})
	s.ErrorIs(err, domain.ErrInvalidCredentials)

	_, err = s.auth.Login(ctx, &domain.LoginRequest{Username: "nobody", Password: "whatever"})
	s.ErrorIs(err, domain.ErrInvalidCredentials)

	_, err = s.auth.Login(ctx, &domain.LoginRequest{})
	fields := s.fieldErrors(err)
	s.Contains(fields, "username")
	s.Contains(fields, "password")
}

func (s *AuthUseCaseSuite) TestRegisterValidation() {
	_, err := s.auth.Register(context.Background(), &domain.RegisterRequest{Username: "a!", Password: "short", Role: "root"})
	fields := s.fieldErrors(err)
	for _, key := range []string{"username", "password", "role"} {
		s.Contains(fields, key)
	}

	s.register("mary", "correct-horse")
	_, err = s.auth.Register(context.Background(), &domain.RegisterRequest{Username: "mary", Password: "another-pass", Role: "admin"})
	s.ErrorIs(err, domain.ErrDuplicate)
}

func (s *AuthUseCaseSuite) TestChangePassword() {
	ctx := context.Background()
	user := s.register("mary", "correct-horse")

	err := s.auth.ChangePassword(ctx, user.UserID, &domain.ChangePasswordRequest{OldPassword: "wrong", NewPassword: "battery-staple"})
	s.Contains(s.fieldErrors(err), "old_password")

	err = s.auth.ChangePassword(ctx, user.UserID, &domain.ChangePasswordRequest{OldPassword: "correct-horse", NewPassword: "correct-horse"})
	s.Contains(s.fieldErrors(err), "new_password")

	s.Require().NoError(s.auth.ChangePassword(ctx, user.UserID, &domain.ChangePasswordRequest{OldPassword: "correct-horse", NewPassword: "battery-staple"}))

	_, err = s.auth.Login(ctx, &domain.LoginRequest{Username: "mary", Password: "battery-staple"})
	s.NoError(err)
}
