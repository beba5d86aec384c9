package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/handlers/credits"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const tokenTTL = 24 * time.Hour

var (
	ErrUserExists         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetRole(ctx context.Context, id int, role string) error
}

type Service struct {
	userRepo      Repo
	creditService credits.Service
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
}

func New(repo Repo, creditService credits.Service, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:      repo,
		creditService: creditService,
		hashService:   hashService,
		jwtService:    jwtService,
	}
}

// Register creates the user together with an empty credit balance.
func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrUserExists
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		Role:         domain.RoleUser,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	_, err = s.creditService.CreateBalance(ctx, newUser.ID)
	if err != nil {
		zap.L().Error("can't create balance: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Promote grants the admin role. Tokens issued before keep the old role
// until they expire.
func (s *Service) Promote(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == domain.RoleAdmin {
		return user, nil
	}
	if err := s.userRepo.SetRole(ctx, userID, domain.RoleAdmin); err != nil {
		zap.L().Error("can't promote user", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	user.Role = domain.RoleAdmin
	zap.L().Info("user promoted to admin", zap.Int("userID", userID))
	return user, nil
}
