package usecase

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"carrental_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for credential records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user with exactly this email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// MarkVerified sets is_verified and clears the verification code in a single
	// update that only matches a pending record holding code. It returns
	// ErrUserNotFound for an unknown email and ErrInvalidCode when the code no
	// longer matches, including when a concurrent call consumed it first.
	MarkVerified(ctx context.Context, email, code string) (*entity.User, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) bool
}

// CodeGenerator produces verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// TokenIssuer mints signed session tokens for verified users.
type TokenIssuer interface {
	Issue(user *entity.User) (string, error)
	TTL() time.Duration
}

// Mailer delivers out-of-band notifications.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, htmlBody string) error
}

// RegisterInput carries the fields a client may submit at registration.
// Role is deliberately absent: every new account starts as entity.RoleUser.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token     string
	ExpiresIn time.Duration
	User      *entity.User
}

// AuthUsecase drives the Unregistered -> PendingVerification -> Verified lifecycle.
type AuthUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	codes  CodeGenerator
	tokens TokenIssuer
	mailer Mailer
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, codes CodeGenerator, tokens TokenIssuer, mailer Mailer) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		codes:  codes,
		tokens: tokens,
		mailer: mailer,
	}
}

// Register creates an unverified account and emails its verification code.
// A mail delivery failure is logged but does not undo the created record.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	code, err := u.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	user := &entity.User{
		Email:            in.Email,
		Password:         hashed,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Role:             entity.RoleUser,
		IsVerified:       false,
		VerificationCode: &code,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	text, body := verificationMail(user.LastName, code)
	if err := u.mailer.Send(ctx, user.Email, "Verify your account", text, body); err != nil {
		slog.WarnContext(ctx, "verification email not delivered", "user_id", user.ID, "error", err)
	}

	return user, nil
}

// Verify moves a pending account to verified when code matches exactly.
// The comparison is case-sensitive and untrimmed.
func (u *AuthUsecase) Verify(ctx context.Context, email, code string) (*entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.VerificationCode == nil || *user.VerificationCode != code {
		return nil, ErrInvalidCode
	}

	verified, err := u.users.MarkVerified(ctx, email, code)
	if err != nil {
		return nil, err
	}

	text, body := verifiedMail(verified.LastName)
	if err := u.mailer.Send(ctx, verified.Email, "Account Verified Successfully", text, body); err != nil {
		slog.WarnContext(ctx, "verification confirmation not delivered", "user_id", verified.ID, "error", err)
	}

	return verified, nil
}

// Login checks verification state first, then the password, and issues a token.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.IsPendingVerification() {
		return nil, ErrNotVerified
	}
	if !u.hasher.Compare(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, ExpiresIn: u.tokens.TTL(), User: user}, nil
}

func verificationMail(lastName, code string) (string, string) {
	text := fmt.Sprintf("Hello %s, your verification code is: %s", lastName, code)
	body := fmt.Sprintf(`<div>
    <h2>Hello %s,</h2>
    <p>Your verification code is: <strong>%s</strong></p>
    <p>Enter this code to verify your account.</p>
</div>`, html.EscapeString(lastName), code)
	return text, body
}

func verifiedMail(lastName string) (string, string) {
	text := fmt.Sprintf("Hello %s, your account has been verified.", lastName)
	body := fmt.Sprintf(`<div>
    <h2>Hello %s,</h2>
    <p>Your account has been verified successfully!</p>
</div>`, html.EscapeString(lastName))
	return text, body
}
