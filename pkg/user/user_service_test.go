package user

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/pkg/jwt"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

type fakeS3 struct {
	url string
}

func (f *fakeS3) UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	return f.url, nil
}

func newTestUserService(db *gorm.DB) *userService {
	return &userService{
		userRepository: NewUserRepository(db),
		jwtService:     jwt.NewJWTService(),
		s3:             &fakeS3{url: "https://bucket.s3.example.com/avatars/test.jpg"},
		sendResetMail: func(toEmail, token string) error {
			return nil
		},
	}
}

func registerTestUser(t *testing.T, service *userService, email string) domain.RegisterResponse {
	t.Helper()

	res, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:            "Test User",
		Email:           email,
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		Role:            domain.RoleCreator,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	return res
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)
	service := newTestUserService(db)
	ctx := context.Background()

	res := registerTestUser(t, service, "new@example.com")
	if res.Email != "new@example.com" || res.Role != domain.RoleCreator {
		t.Errorf("register response = %+v", res)
	}

	_, err := service.Register(ctx, domain.RegisterRequest{
		Name:            "Dup",
		Email:           "new@example.com",
		Password:        "Passw0rd",
		ConfirmPassword: "Passw0rd",
		Role:            domain.RoleCommentator,
	})
	if !errors.Is(err, domain.ErrEmailAlreadyExists) {
		t.Errorf("duplicate register error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	service := newTestUserService(db)
	ctx := context.Background()

	registerTestUser(t, service, "login@example.com")

	res, err := service.Login(ctx, domain.LoginRequest{Email: "login@example.com", Password: "Passw0rd"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token == "" {
		t.Errorf("login returned empty token")
	}
	if res.Role != domain.RoleCreator {
		t.Errorf("login role = %q, want %q", res.Role, domain.RoleCreator)
	}

	_, err = service.Login(ctx, domain.LoginRequest{Email: "login@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrWrongCredentials) {
		t.Errorf("wrong password error = %v, want ErrWrongCredentials", err)
	}

	// same error for unknown email, no account enumeration
	_, err = service.Login(ctx, domain.LoginRequest{Email: "ghost@example.com", Password: "Passw0rd"})
	if !errors.Is(err, domain.ErrWrongCredentials) {
		t.Errorf("unknown email error = %v, want ErrWrongCredentials", err)
	}
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	service := newTestUserService(db)
	ctx := context.Background()

	registered := registerTestUser(t, service, "update@example.com")

	notify := false
	res, err := service.UpdateUser(ctx, domain.UpdateUserRequest{Name: "Renamed", NotifyByEmail: &notify}, registered.ID)
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if res.Name != "Renamed" {
		t.Errorf("name = %q, want Renamed", res.Name)
	}
	if res.NotifyByEmail {
		t.Errorf("notify_by_email not switched off")
	}
}

func TestChangePassword(t *testing.T) {
	db := setupTestDB(t)
	service := newTestUserService(db)
	ctx := context.Background()

	registered := registerTestUser(t, service, "change@example.com")

	err := service.ChangePassword(ctx, domain.ChangePasswordRequest{
		OldPassword:     "nope",
		NewPassword:     "NewPassw0rd",
		ConfirmPassword: "NewPassw0rd",
	}, registered.ID)
	if !errors.Is(err, domain.ErrWrongOldPassword) {
		t.Errorf("ChangePassword error = %v, want ErrWrongOldPassword", err)
	}

	err = service.ChangePassword(ctx, domain.ChangePasswordRequest{
		OldPassword:     "Passw0rd",
		NewPassword:     "NewPassw0rd",
		ConfirmPassword: "NewPassw0rd",
	}, registered.ID)
	if err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, err := service.Login(ctx, domain.LoginRequest{Email: "change@example.com", Password: "NewPassw0rd"}); err != nil {
		t.Errorf("login with new password returned error: %v", err)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var sentTo, sentToken string
	service := newTestUserService(db)
	service.sendResetMail = func(toEmail, token string) error {
		sentTo = toEmail
		sentToken = token
		return nil
	}

	registerTestUser(t, service, "forgot@example.com")

	// unknown email succeeds silently
	if err := service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "ghost@example.com"}); err != nil {
		t.Errorf("ForgotPassword for unknown email returned error: %v", err)
	}
	if sentTo != "" {
		t.Errorf("reset mail sent for unknown email")
	}

	if err := service.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "forgot@example.com"}); err != nil {
		t.Fatalf("ForgotPassword returned error: %v", err)
	}
	if sentTo != "forgot@example.com" || sentToken == "" {
		t.Fatalf("reset mail not sent, to=%q token=%q", sentTo, sentToken)
	}

	err := service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:           sentToken,
		NewPassword:     "Fresh0Pass",
		ConfirmPassword: "Fresh0Pass",
	})
	if err != nil {
		t.Fatalf("ResetPassword returned error: %v", err)
	}

	if _, err := service.Login(ctx, domain.LoginRequest{Email: "forgot@example.com", Password: "Fresh0Pass"}); err != nil {
		t.Errorf("login after reset returned error: %v", err)
	}

	err = service.ResetPassword(ctx, domain.ResetPasswordRequest{
		Token:           "not-a-token",
		NewPassword:     "Fresh0Pass",
		ConfirmPassword: "Fresh0Pass",
	})
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("bogus token error = %v, want ErrTokenInvalid", err)
	}
}

func TestUploadAvatar(t *testing.T) {
	db := setupTestDB(t)
	service := newTestUserService(db)
	ctx := context.Background()

	registered := registerTestUser(t, service, "avatar@example.com")

	url, err := service.UploadAvatar(ctx, domain.UploadAvatarRequest{
		Avatar: &multipart.FileHeader{Filename: "me.png"},
	}, registered.ID)
	if err != nil {
		t.Fatalf("UploadAvatar returned error: %v", err)
	}

	me, err := service.Me(ctx, registered.ID)
	if err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if me.AvatarURL != url {
		t.Errorf("avatar url = %q, want %q", me.AvatarURL, url)
	}
}
