package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bagabo/hotel-booking/internal/auth"
	"github.com/bagabo/hotel-booking/internal/domain"
	userDomain "github.com/bagabo/hotel-booking/internal/domain/user"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest holds the data needed to create an account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO is the response representation of a user. The password hash never
// leaves the service layer.
type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries a signed token and the authenticated user.
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserService handles registration, authentication and profile reads.
type UserService struct {
	users  userDomain.UserRepository
	jwt    *auth.JWTManager
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.UserRepository, jwt *auth.JWTManager, logger *zap.Logger) *UserService {
	return &UserService{users: users, jwt: jwt, logger: logger}
}

// Register creates a customer account. The email must be unused.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, domain.NewConflictError(domain.ReasonEmailTaken, "email is already registered")
	} else if !domain.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := userDomain.NewUser(req.Name, req.Email, string(hash), userDomain.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID().String()),
		zap.String("email", u.Email()),
	)

	return s.issueToken(u)
}

// Authenticate verifies credentials and returns a signed token. Unknown
// email and wrong password produce the same error so the response does not
// reveal which accounts exist.
func (s *UserService) Authenticate(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, fmt.Errorf("failed to compare password: %w", err)
	}

	return s.issueToken(u)
}

// GetProfile retrieves a user by ID.
func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(u)
	return &result, nil
}

// GetTotalUsers returns the total number of registered users.
func (s *UserService) GetTotalUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *UserService) issueToken(u *userDomain.User) (*AuthResponse, error) {
	token, err := s.jwt.Generate(u.ID(), string(u.Role()))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, User: toUserDTO(u)}, nil
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
	}
}
