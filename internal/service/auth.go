package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchfit/marketplace/internal/events"
	"github.com/stitchfit/marketplace/internal/hash"
	"github.com/stitchfit/marketplace/internal/mailer"
	auth "github.com/stitchfit/marketplace/internal/middleware/auth"
	"github.com/stitchfit/marketplace/internal/models"
	"github.com/stitchfit/marketplace/internal/repo"
	"github.com/stitchfit/marketplace/internal/transport"
)

const (
	resetCodeLen = 10
	resetCodeTTL = 10 * time.Minute
)

type AuthService struct {
	repo      *repo.GormRepo
	mail      mailer.Mailer
	producer  *events.Producer
	jwtSecret []byte
}

func NewAuthService(r *repo.GormRepo, m mailer.Mailer, p *events.Producer, secret []byte) *AuthService {
	return &AuthService{repo: r, mail: m, producer: p, jwtSecret: secret}
}

// Register creates the user plus the profile row for its role. Emails are
// lowercased before they ever reach storage; uniqueness is enforced inside
// the repo transaction.
func (svc *AuthService) Register(ctx context.Context, req transport.RegisterRequest, role models.Role) (*transport.RegisterResponse, error) {
	if err := checkPasswordRules(req.Password); err != nil {
		return nil, err
	}
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	hashed, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		UserID:       uuid.New(),
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashed,
		Role:         role,
	}
	if err := svc.repo.CreateUserWithProfile(ctx, user); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, fmt.Errorf("%w: email already exists", ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	svc.producer.PublishAsync(ctx, events.TopicUserEvents, user.UserID.String(), map[string]any{
		"type":    "user_registered",
		"user_id": user.UserID,
		"role":    user.Role,
	})

	return &transport.RegisterResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   string(user.Role),
	}, nil
}

func (svc *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.LoginResponse, error) {
	user, err := svc.repo.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("%w: invalid credentials", ErrValidation)
	}

	token, err := auth.Sign(svc.jwtSecret, user.UserID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &transport.LoginResponse{
		Token:  token,
		UserID: user.UserID,
		Role:   string(user.Role),
	}, nil
}

// ForgotPassword stages the new password behind a one-time code mailed to
// the user. The code expires ten minutes after creation.
func (svc *AuthService) ForgotPassword(ctx context.Context, req transport.ForgotPasswordRequest) error {
	if err := checkPasswordRules(req.NewPassword); err != nil {
		return err
	}

	email := strings.ToLower(req.Email)
	user, err := svc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Email", email)
		}
		return fmt.Errorf("load user: %w", err)
	}

	hashed, err := hash.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	code, err := newResetCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	reset := &models.PasswordReset{
		UserID:      user.UserID,
		Email:       email,
		Code:        code,
		NewPassword: hashed,
		DateExpires: time.Now().UTC().Add(resetCodeTTL),
		IsValid:     true,
	}
	if err := svc.repo.CreatePasswordReset(ctx, reset); err != nil {
		return fmt.Errorf("store reset request: %w", err)
	}

	body := fmt.Sprintf("<p>Your password reset code is <b>%s</b>. It expires in 10 minutes.</p>", code)
	if err := svc.mail.Send(email, "Password reset code", body); err != nil {
		return fmt.Errorf("%w: %v", ErrExternal, err)
	}
	return nil
}

// ResetPassword consumes the code: a valid, unexpired code applies the
// staged password; an expired code is deleted on detection.
func (svc *AuthService) ResetPassword(ctx context.Context, req transport.ResetPasswordRequest) error {
	email := strings.ToLower(req.Email)
	reset, err := svc.repo.GetPasswordReset(ctx, email, req.Code)
	if err != nil {
		if errors.Is(err, repo.ErrResetNotFound) {
			return fmt.Errorf("%w: invalid reset code", ErrValidation)
		}
		return fmt.Errorf("load reset request: %w", err)
	}

	if time.Now().UTC().After(reset.DateExpires) {
		if err := svc.repo.DeletePasswordReset(ctx, reset.ID); err != nil {
			return fmt.Errorf("purge expired reset: %w", err)
		}
		return fmt.Errorf("%w: reset code expired", ErrValidation)
	}

	if err := svc.repo.UpdatePasswordHash(ctx, reset.UserID, reset.NewPassword); err != nil {
		return fmt.Errorf("apply new password: %w", err)
	}
	if err := svc.repo.DeletePasswordReset(ctx, reset.ID); err != nil {
		return fmt.Errorf("consume reset: %w", err)
	}
	return nil
}

func checkPasswordRules(password string) error {
	if len(password) < 8 || len(password) > 12 {
		return fmt.Errorf("%w: password must be 8-12 characters", ErrValidation)
	}
	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("%w: password must contain an uppercase letter", ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: password must contain a digit", ErrValidation)
	}
	return nil
}

const resetCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func newResetCode() (string, error) {
	buf := make([]byte, resetCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = resetCodeAlphabet[int(buf[i])%len(resetCodeAlphabet)]
	}
	return string(buf), nil
}
