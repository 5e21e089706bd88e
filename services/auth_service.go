package services

import (
	"database/sql"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/enrollpay/enrollpay-backend/models"
	"github.com/enrollpay/enrollpay-backend/repository"
	"github.com/enrollpay/enrollpay-backend/utils"
)

// AuthService handles registration, login and token issuance
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// Register creates a new account. Students get a generated student
// number; a duplicate email surfaces as a specific conflict message.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = utils.RoleStudent
	}
	if role != utils.RoleStudent && role != utils.RoleCashier && role != utils.RoleAdmin {
		return nil, utils.NewValidationError("unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewInternalError("Failed to hash password")
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if role == utils.RoleStudent {
		user.StudentNumber = utils.GenerateStudentNumber()
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, utils.TranslateConflict(err, utils.ErrEmailTaken)
	}
	return user, nil
}

// Login checks credentials and returns a signed token
func (s *AuthService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
		}
		return nil, utils.NewInternalError(utils.ErrFailedToRetrieve)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, utils.NewUnauthorizedError(utils.ErrInvalidCredentials)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, utils.NewInternalError("Failed to sign token")
	}

	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
