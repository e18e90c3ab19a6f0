package services

import (
	"context"

	"github.com/sbilibin2017/recipes/internal/logger"
	"github.com/sbilibin2017/recipes/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// AuthorReader defines read-only operations for authors.
type AuthorReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.AuthorDB, error)
}

// AuthorWriter defines write operations for authors.
type AuthorWriter interface {
	Save(ctx context.Context, author models.AuthorDB) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, authorID int64) (string, error)
}

// AuthService handles author registration and login.
type AuthService struct {
	reader AuthorReader
	writer AuthorWriter
	jwt    JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader AuthorReader, writer AuthorWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register validates the input and creates a new author with a bcrypt password hash.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterAuthorInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	author, err := svc.reader.GetByUsernameOrEmail(ctx, &in.Username, &in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check author exists", "err", err)
		return 0, err
	}
	if author != nil {
		logger.Log.Infow("author already exists", "username", in.Username, "email", in.Email)
		return 0, ErrAuthorAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, models.AuthorDB{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		// lost a race with a concurrent registration
		if isPgError(err, pgUniqueViolation) {
			return 0, ErrAuthorAlreadyExists
		}
		logger.Log.Errorw("failed to save author", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates an author and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	author, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get author", "err", err)
		return "", err
	}
	if author == nil {
		logger.Log.Infow("author does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(author.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, author.AuthorID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
