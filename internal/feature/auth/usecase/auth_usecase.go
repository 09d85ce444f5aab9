package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"wordford/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8
	// maxPasswordBytes is the longest password bcrypt accepts.
	maxPasswordBytes = 72
	// avatarCount is the number of stock critter avatars.
	avatarCount = 11
)

// dummyHash is compared against when the email is unknown so that an unknown
// email and a wrong password take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. A duplicate email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator issues a signed session token for a user.
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// SignupInput carries the fields of a new account.
type SignupInput struct {
	Email      string
	Password   string
	GivenName  string
	FamilyName string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users         UserRepository
	jwtGenerator  JWTGenerator
	hasher        PasswordHasher
	avatarBaseURL string
	pickAvatar    func() int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator, hasher PasswordHasher, avatarBaseURL string) *authUsecase {
	return &authUsecase{
		users:         users,
		jwtGenerator:  jwtGenerator,
		hasher:        hasher,
		avatarBaseURL: strings.TrimRight(avatarBaseURL, "/"),
		pickAvatar:    func() int { return rand.IntN(avatarCount) + 1 },
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return fmt.Errorf("%w: must be at most %d bytes long", ErrWeakPassword, maxPasswordBytes)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        strings.TrimSpace(in.Email),
		GivenName:    in.GivenName,
		FamilyName:   in.FamilyName,
		AvatarURL:    fmt.Sprintf("%s/critter_%d.svg", u.avatarBaseURL, u.pickAvatar()),
		Role:         entity.DefaultRole,
		PasswordHash: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はユーザーを認証し、成功時にJWTトークンを返します。
// Unknown email and wrong password both return ErrInvalidCredentials.
// Store failures other than not-found are returned wrapped.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	matched := u.hasher.Verify(password, passwordHash)
	if err != nil || !matched {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
