package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mbelyaev/bookatable/internal/common"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Server) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	req := &registerRequest{}
	if err := c.Bind(req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	_, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return message(c, http.StatusBadRequest, msgUserExists)
		}
		s.logger.Error(ctx, "register failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	s.logger.Info(ctx, "user registered", "email", req.Email)
	return message(c, http.StatusCreated, "User registered successfully")
}

func (s *Server) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	req := &loginRequest{}
	if err := c.Bind(req); err != nil {
		return message(c, http.StatusBadRequest, "Invalid request body")
	}

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			return message(c, http.StatusBadRequest, msgInvalidCredentials)
		}
		s.logger.Error(ctx, "login failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (s *Server) handleMe(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Get(userIDContextKey).(string)

	user, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return message(c, http.StatusNotFound, msgUserNotFound)
		}
		s.logger.Error(ctx, "profile lookup failed", "error", err.Error())
		return message(c, http.StatusInternalServerError, msgServerError)
	}

	return c.JSON(http.StatusOK, userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	})
}
