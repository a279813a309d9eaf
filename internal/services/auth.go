package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"delivery_admin/internal/models"
)

// AuthService validates credentials and resolves WeChat logins to
// local users. Token issuance stays in the middleware package.
type AuthService struct {
	db     *gorm.DB
	users  *UserService
	wechat WechatExchanger
}

func NewAuthService(db *gorm.DB, users *UserService, wechat WechatExchanger) *AuthService {
	return &AuthService{db: db, users: users, wechat: wechat}
}

// Login checks username/password against the store. Missing user and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != models.StatusActive {
		return nil, ErrUserInactive
	}

	if err := s.users.TouchLastLogin(user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// WechatLogin exchanges the one-time code for an openid and resolves it
// to a local user, provisioning an active driver account on first login.
func (s *AuthService) WechatLogin(ctx context.Context, code string) (*models.User, error) {
	openid, err := s.wechat.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	var user models.User
	err = s.db.Where("wechat_openid = ?", openid).First(&user).Error
	if err == nil {
		if user.Status != models.StatusActive {
			return nil, ErrUserInactive
		}
		if err := s.users.TouchLastLogin(user.ID); err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.provisionWechatUser(openid)
}

func (s *AuthService) provisionWechatUser(openid string) (*models.User, error) {
	// The account has no usable password; login stays WeChat-only
	// until an administrator sets one.
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword(buf, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	suffix := openid
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	user := models.User{
		Username:     fmt.Sprintf("wx_%s_%s", suffix, hex.EncodeToString(buf[:4])),
		Password:     string(hash),
		WechatOpenid: openid,
		UserType:     models.UserTypeDriver,
		Status:       models.StatusActive,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
