package user

import (
	"fmt"
	"time"

	"groomly/models"
	"groomly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

// invalidCredentials is the single message returned for every credential
// failure so responses never reveal which part was wrong.
var invalidCredentials = &utils.AuthError{Message: "invalid email or password"}

// Register creates a new account, generates a token, and stores its hash.
func (s *DefaultUserService) Register(user models.User, password string) (*AuthResponse, error) {
	if user.Email == "" || password == "" {
		return nil, &utils.ValidationError{Message: "email and password are required"}
	}
	if user.Name == "" {
		return nil, &utils.ValidationError{Message: "name is required"}
	}
	if len(password) < 8 {
		return nil, &utils.ValidationError{Message: "password must be at least 8 characters long"}
	}
	switch user.Role {
	case models.RoleClient, models.RoleStylist:
	case "":
		user.Role = models.RoleClient
	default:
		return nil, &utils.ValidationError{Message: "role must be CLIENT or STYLIST"}
	}

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		utils.GetLogger().Error("failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, &utils.ValidationError{Message: "a user with this email already exists"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	user.PasswordHash = string(hashedPassword)

	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.Repo.Create(&user); err != nil {
		utils.GetLogger().Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return s.issueToken(&user)
}

// SignIn authenticates by email and password.
func (s *DefaultUserService) SignIn(email, password string) (*AuthResponse, error) {
	if email == "" || password == "" {
		return nil, invalidCredentials
	}

	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("failed to fetch user for sign-in", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}
	if user == nil {
		return nil, invalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials
	}

	return s.issueToken(user)
}

// issueToken generates a JWT, stores its hash on the user record, and saves
// the auth session.
func (s *DefaultUserService) issueToken(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(user.ID, tokenHash); err != nil {
		utils.GetLogger().Error("failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	now := time.Now()
	session := utils.AuthSession{
		UserID:        user.ID,
		Email:         user.Email,
		Role:          user.Role,
		TokenHash:     tokenHash,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := utils.SaveAuthSession(utils.GetAuthCacheClient(), session, tokenDuration); err != nil {
		utils.GetLogger().Warn("failed to save auth session", zap.Error(err))
	}

	return &AuthResponse{
		ID:    user.ID,
		Token: token,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// SignOut clears the stored token hash and the auth session.
func (s *DefaultUserService) SignOut(userID string) error {
	if err := s.Repo.UpdateTokenHash(userID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if err := utils.ClearAuthSession(utils.GetAuthCacheClient(), userID); err != nil {
		utils.GetLogger().Warn("failed to clear auth session", zap.Error(err))
	}
	return nil
}
