package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"journal-api/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func (s *Server) login(c echo.Context) error {
	ctx := c.Request().Context()

	req := &loginRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please provide an email and password"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please provide an email and password"})
	}

	pair, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User does not exist"})
		case errors.Is(err, common.ErrorUnauthorized):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Password provided is invalid"})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, TokenPairResponse{
		Message:      "User login successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) register(c echo.Context) error {
	ctx := c.Request().Context()

	req := &registerRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide the necessary details"})
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Provide the necessary details"})
	}

	pair, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		// Duplicate registration answers 401, documented quirk kept for
		// client compatibility.
		if errors.Is(err, common.ErrorAlreadyExists) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "User already present"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, TokenPairResponse{
		Message:      "User registeration successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) logout(c echo.Context) error {
	ctx := c.Request().Context()

	req := &refreshTokenRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No refresh token provided"})
	}

	if err := s.users.Logout(ctx, req.RefreshToken); err != nil {
		switch {
		case errors.Is(err, common.ErrNoRefreshToken):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No refresh token provided"})
		case errors.Is(err, common.ErrNoSuchSession):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "No such refresh token present"})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "User logout successful"})
}

func (s *Server) generate(c echo.Context) error {
	ctx := c.Request().Context()

	req := &refreshTokenRequest{}
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No refresh token provided"})
	}

	accessToken, err := s.users.Renew(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoRefreshToken):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No refresh token provided"})
		case errors.Is(err, common.ErrNoSuchSession), errors.Is(err, common.ErrInvalidToken):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "No such refresh token present"})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, AccessTokenResponse{AccessToken: accessToken})
}

func (s *Server) forgotPassword(c echo.Context) error {
	ctx := c.Request().Context()

	req := &forgotPasswordRequest{}
	if err := c.Bind(req); err != nil || req.Email == "" {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No user with such email present"})
	}

	if err := s.users.ForgotPassword(ctx, req.Email); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "No user with such email present"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Password reset mail sent"})
}

func (s *Server) resetPassword(c echo.Context) error {
	ctx := c.Request().Context()

	req := &resetPasswordRequest{}
	if err := c.Bind(req); err != nil || req.Password == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No password provided"})
	}

	if err := s.users.ResetPassword(ctx, c.Param("token"), req.Password); err != nil {
		if errors.Is(err, common.ErrResetLinkInvalid) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Reset link invalid or expired"})
		}
		return s.internalError(c, err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "Password reset successful"})
}

// internalError logs the failure and answers with a generic 500 body, so no
// error path ever drops the response.
func (s *Server) internalError(c echo.Context, err error) error {
	s.logger.Error(c.Request().Context(), err.Error())
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}
