package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetProfile     = "success get profile"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessUploadAvatar   = "avatar uploaded successfully"
	MessageSuccessChangePassword = "password changed successfully"
	MessageSuccessForgotPassword = "password reset email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedUploadAvatar   = "failed to upload avatar"
	MessageFailedChangePassword = "failed to change password"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrWrongCredentials   = errors.New("wrong email or password")
	ErrWrongOldPassword   = errors.New("old password is incorrect")
)

type (
	RegisterRequest struct {
		Name            string `json:"name" validate:"required,min=2,max=100"`
		Email           string `json:"email" validate:"required,email"`
		Password        string `json:"password" validate:"required,password"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
		Role            string `json:"role" validate:"required,oneof=creator commentator"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		Role          string `json:"role"`
		AvatarURL     string `json:"avatar_url,omitempty"`
		NotifyByEmail bool   `json:"notify_by_email"`
	}

	UpdateUserRequest struct {
		Name          string `json:"name" validate:"omitempty,min=2,max=100"`
		NotifyByEmail *bool  `json:"notify_by_email" validate:"omitempty"`
	}

	UploadAvatarRequest struct {
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar" validate:"required"`
	}

	ChangePasswordRequest struct {
		OldPassword     string `json:"old_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,password"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token           string `json:"token" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,password"`
		ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
	}
)
