package services

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"delivery_admin/internal/models"
)

// CreateUserInput carries the fields accepted on user creation.
type CreateUserInput struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
	RealName   string `json:"real_name"`
	Nickname   string `json:"nickname"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	UserType   string `json:"user_type"`
	Status     string `json:"status"`
	DriverCode string `json:"driver_code"`
}

// UpdateUserInput is a partial patch; nil fields are left untouched.
type UpdateUserInput struct {
	Password   *string `json:"password"`
	RealName   *string `json:"real_name"`
	Nickname   *string `json:"nickname"`
	Gender     *string `json:"gender"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Avatar     *string `json:"avatar"`
	UserType   *string `json:"user_type"`
	Status     *string `json:"status"`
	DriverCode *string `json:"driver_code"`
}

// UserFilter holds the optional search criteria; present fields are
// combined conjunctively.
type UserFilter struct {
	Username string `form:"username"`
	RealName string `form:"real_name"`
	Nickname string `form:"nickname"`
	Phone    string `form:"phone"`
	Email    string `form:"email"`
	Gender   string `form:"gender"`
	UserType string `form:"user_type"`
	Status   string `form:"status"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Create(input CreateUserInput) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", input.Username).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:   input.Username,
		Password:   string(hash),
		RealName:   input.RealName,
		Nickname:   input.Nickname,
		Gender:     input.Gender,
		Phone:      input.Phone,
		Email:      input.Email,
		Avatar:     input.Avatar,
		UserType:   input.UserType,
		Status:     input.Status,
		DriverCode: input.DriverCode,
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeSales
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}

	if err := s.db.Create(&user).Error; err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindAll(page, limit int) ([]models.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := s.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error
	return users, total, err
}

func (s *UserService) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Search(filter UserFilter) ([]models.User, int64, error) {
	q := s.db.Model(&models.User{})
	if filter.Username != "" {
		q = q.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.RealName != "" {
		q = q.Where("real_name LIKE ?", "%"+filter.RealName+"%")
	}
	if filter.Nickname != "" {
		q = q.Where("nickname LIKE ?", "%"+filter.Nickname+"%")
	}
	if filter.Phone != "" {
		q = q.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.Email != "" {
		q = q.Where("email LIKE ?", "%"+filter.Email+"%")
	}
	if filter.Gender != "" {
		q = q.Where("gender = ?", filter.Gender)
	}
	if filter.UserType != "" {
		q = q.Where("user_type = ?", filter.UserType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, int64(len(users)), nil
}

// FindDrivers lists every driver-type user for assignment dropdowns.
func (s *UserService) FindDrivers() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("user_type = ?", models.UserTypeDriver).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*models.User, error) {
	user, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if input.RealName != nil {
		user.RealName = *input.RealName
	}
	if input.Nickname != nil {
		user.Nickname = *input.Nickname
	}
	if input.Gender != nil {
		user.Gender = *input.Gender
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.UserType != nil {
		user.UserType = *input.UserType
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.DriverCode != nil {
		user.DriverCode = *input.DriverCode
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Remove deletes a user and returns the pre-deletion snapshot. A
// missing id is a no-op, not an error.
func (s *UserService) Remove(id uint) (*models.User, error) {
	user, err := s.FindByID(id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.User{}, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) BatchRemove(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.User{}, ids).Error
}

// TouchLastLogin stamps the last successful login time.
func (s *UserService) TouchLastLogin(id uint) error {
	now := time.Now()
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login_at", &now).Error
}
