package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"travel-diary/internal/entity"
	"travel-diary/internal/repo/persistent"
	"travel-diary/pkg/jwt"
	"travel-diary/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	RegisterUser(username, password, nickname, avatarURL string) (*entity.User, error)
	LoginUser(username, password string) (*entity.User, string, error)
	GetUserProfile(userID int64) (*entity.User, error)
	LoginModerator(username, password string) (*entity.Moderator, string, error)
}

type authUseCase struct {
	userRepo      persistent.UserRepository
	moderatorRepo persistent.ModeratorRepository
	jwtService    *jwt.Service
	logger        *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	moderatorRepo persistent.ModeratorRepository,
	jwtService *jwt.Service,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:      userRepo,
		moderatorRepo: moderatorRepo,
		jwtService:    jwtService,
		logger:        logger,
	}
}

func (uc *authUseCase) RegisterUser(username, password, nickname, avatarURL string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	nickname = strings.TrimSpace(nickname)
	if username == "" || nickname == "" || password == "" {
		return nil, fmt.Errorf("%w: username, password and nickname are required", entity.ErrValidation)
	}

	taken, err := uc.userRepo.ExistsByUsernameOrNickname(username, nickname)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: username or nickname already in use", entity.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:  username,
		Nickname:  nickname,
		Password:  string(hash),
		AvatarURL: avatarURL,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *authUseCase) LoginUser(username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		// Same message for unknown user and bad password
		return nil, "", fmt.Errorf("%w: invalid username or password", entity.ErrValidation)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", fmt.Errorf("%w: invalid username or password", entity.ErrValidation)
	}

	token, err := uc.jwtService.GenerateToken(strconv.FormatInt(user.ID, 10), "user")
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

func (uc *authUseCase) GetUserProfile(userID int64) (*entity.User, error) {
	return uc.userRepo.GetByID(userID)
}

func (uc *authUseCase) LoginModerator(username, password string) (*entity.Moderator, string, error) {
	moderator, err := uc.moderatorRepo.GetByUsername(username)
	if err != nil {
		return nil, "", fmt.Errorf("%w: invalid username or password", entity.ErrValidation)
	}
	if bcrypt.CompareHashAndPassword([]byte(moderator.Password), []byte(password)) != nil {
		return nil, "", fmt.Errorf("%w: invalid username or password", entity.ErrValidation)
	}

	token, err := uc.jwtService.GenerateToken(strconv.FormatInt(moderator.ID, 10), string(moderator.Role))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return moderator, token, nil
}
