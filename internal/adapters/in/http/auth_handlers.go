package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/user"
	"commerce/internal/pkg/errs"
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

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type sessionResponse struct {
	Token string               `json:"token"`
	User  queries.UserResponse `json:"user"`
}

func userToResponse(aggregate *user.User) queries.UserResponse {
	return queries.UserResponse{
		ID:         aggregate.ID().String(),
		Name:       aggregate.Name(),
		Email:      aggregate.Email(),
		Role:       aggregate.Role().String(),
		IsVerified: aggregate.IsVerified(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func (s *Server) register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewRegisterUserCommand(kernel.NewUUID(), req.Name, req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.RegisterUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, sessionResponse{
		Token: result.Token,
		User:  userToResponse(result.User),
	})
}

func (s *Server) login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewLoginUserCommand(req.Email, req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.LoginUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, sessionResponse{
		Token: result.Token,
		User:  userToResponse(result.User),
	})
}

func (s *Server) currentUser(ctx echo.Context) error {
	query, err := queries.NewGetCurrentUserQuery(actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	profile, err := s.handlers.GetCurrentUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

func (s *Server) updatePassword(ctx echo.Context) error {
	var req updatePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewUpdatePasswordCommand(actorFrom(ctx), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdatePassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}

func (s *Server) forgotPassword(ctx echo.Context) error {
	var req forgotPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewForgotPasswordCommand(req.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	resetToken, err := s.handlers.ForgotPassword.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	// TODO: deliver the token by email once an outbound mailer exists and
	// drop it from the response.
	return ctx.JSON(http.StatusOK, map[string]string{
		"message":    "password reset token issued",
		"resetToken": resetToken,
	})
}

func (s *Server) resetPassword(ctx echo.Context) error {
	var req resetPasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	cmd, err := commands.NewResetPasswordCommand(ctx.Param("token"), req.Password)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ResetPassword.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"message": "password has been reset"})
}

// logout is stateless: tokens are not tracked server-side, so the client
// simply discards its copy. The endpoint exists for API compatibility.
func (s *Server) logout(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"message": "logged out"})
}
