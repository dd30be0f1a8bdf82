package delivery

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"sponsorship/domain"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// seedStaffer creates the account behind staffToken.
func (s *HandlerSuite) seedStaffer() {
	s.Require().NoError(s.db.Create(&domain.User{UserID: 2, Username: "staffer", Password: "hashed", Role: domain.RoleStaff}).Error)
}

func (s *HandlerSuite) TestGetProfileCreatesDefault() {
	s.seedStaffer()

	status, env := s.doJSON(http.MethodGet, "/profile", "", s.staffToken)
	s.Require().Equal(fiber.StatusOK, status, env.Message)
	profile := env.Data.(map[string]interface{})
	s.Equal(domain.DefaultAvatar, profile["avatar"])
	s.Equal(float64(2), profile["user_id"])

	status, _ = s.doJSON(http.MethodGet, "/profile", "", "")
	s.Equal(fiber.StatusUnauthorized, status)
}

func (s *HandlerSuite) TestUpdateProfile() {
	s.seedStaffer()

	status, env := s.doJSON(http.MethodPut, "/profile", `{"bio":"Caseworker"}`, s.staffToken)
	s.Require().Equal(fiber.StatusOK, status, env.Message)
	s.Equal("Your profile is updated successfully", env.Message)
	s.Equal("Caseworker", env.Data.(map[string]interface{})["bio"])

	status, _ = s.doJSON(http.MethodPut, "/profile", `{"bio":"`+strings.Repeat("b", 501)+`"}`, s.staffToken)
	s.Equal(fiber.StatusBadRequest, status)

	buf := &bytes.Buffer{}
	s.Require().NoError(png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 20, 20))))
	status, env = s.doFile(http.MethodPut, "/profile", "avatar", "me.png", buf.Bytes(), s.staffToken)
	s.Require().Equal(fiber.StatusOK, status, env.Message)
	s.True(strings.HasPrefix(env.Data.(map[string]interface{})["avatar"].(string), "avatars/"))

	status, _ = s.doFile(http.MethodPut, "/profile", "avatar", "me.txt", []byte("hello"), s.staffToken)
	s.Equal(fiber.StatusBadRequest, status)
}

func (s *HandlerSuite) TestProfileUnknownAccount() {
	status, _ := s.doJSON(http.MethodGet, "/profile", "", s.staffToken)
	s.Equal(fiber.StatusNotFound, status)
}
