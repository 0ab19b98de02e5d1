package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"uxo-chatbot/internal/admin"
	repo "uxo-chatbot/internal/admin/repository"
	"uxo-chatbot/pkg/encrypter"
	"uxo-chatbot/pkg/scope"
)

// Create registers an admin account. Emails are stored lowercased.
func (uc *implUseCase) Create(ctx context.Context, input admin.CreateInput) (admin.Admin, error) {
	email := normalizeEmail(input.Email)
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return admin.Admin{}, admin.ErrInvalidEmail
	}
	if utf8.RuneCountInString(input.Password) < admin.MinPasswordLength {
		return admin.Admin{}, admin.ErrWeakPassword
	}

	existing, err := uc.repo.GetOneAdmin(ctx, repo.GetOneAdminOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.admin.usecase.Create GetOneAdmin: %v", err)
		return admin.Admin{}, err
	}
	if existing.ID != 0 {
		return admin.Admin{}, admin.ErrDuplicateEmail
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.admin.usecase.Create HashPassword: %v", err)
		return admin.Admin{}, err
	}

	a, err := uc.repo.CreateAdmin(ctx, repo.CreateAdminOptions{Email: email, PasswordHash: hash})
	if err != nil {
		uc.l.Errorf(ctx, "internal.admin.usecase.Create CreateAdmin: %v", err)
		return admin.Admin{}, err
	}
	uc.l.Infof(ctx, "internal.admin.usecase.Create: admin %d created", a.ID)
	return a, nil
}

// Login checks credentials and issues a bearer token. Unknown email and wrong
// password both return ErrInvalidCredentials.
func (uc *implUseCase) Login(ctx context.Context, input admin.LoginInput) (admin.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return admin.LoginOutput{}, admin.ErrInvalidCredentials
	}
	a, err := uc.repo.GetOneAdmin(ctx, repo.GetOneAdminOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "internal.admin.usecase.Login GetOneAdmin: %v", err)
		return admin.LoginOutput{}, err
	}
	if a.ID == 0 {
		return admin.LoginOutput{}, admin.ErrInvalidCredentials
	}

	if err := uc.encrypter.CheckPassword(a.PasswordHash, input.Password); err != nil {
		if !errors.Is(err, encrypter.ErrMismatch) {
			uc.l.Warnf(ctx, "internal.admin.usecase.Login CheckPassword: %v", err)
		}
		return admin.LoginOutput{}, admin.ErrInvalidCredentials
	}

	token, exp, err := uc.tokens.CreateToken(a.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.admin.usecase.Login CreateToken: %v", err)
		return admin.LoginOutput{}, err
	}
	return admin.LoginOutput{AccessToken: token, TokenType: scope.TokenType, ExpiresAt: exp}, nil
}

// Detail returns the admin with id or ErrAdminNotFound.
func (uc *implUseCase) Detail(ctx context.Context, id uint) (admin.Admin, error) {
	if id == 0 {
		return admin.Admin{}, admin.ErrAdminNotFound
	}
	a, err := uc.repo.GetOneAdmin(ctx, repo.GetOneAdminOptions{ID: id})
	if err != nil {
		return admin.Admin{}, err
	}
	if a.ID == 0 {
		return admin.Admin{}, admin.ErrAdminNotFound
	}
	return a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
