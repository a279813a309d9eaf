package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"delivery_admin/internal/models"
)

type CreateDriverInput struct {
	UserID       uint   `json:"user_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	DriverCode   string `json:"driver_code"`
	VehiclePlate string `json:"vehicle_plate"`
	VehicleType  string `json:"vehicle_type"`
	Area         string `json:"area"`
}

type UpdateDriverInput struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	DriverCode   *string `json:"driver_code"`
	VehiclePlate *string `json:"vehicle_plate"`
	VehicleType  *string `json:"vehicle_type"`
	Area         *string `json:"area"`
	Status       *string `json:"status"`
}

type DriverFilter struct {
	Name         string `form:"name"`
	Phone        string `form:"phone"`
	DriverCode   string `form:"driver_code"`
	VehiclePlate string `form:"vehicle_plate"`
	Area         string `form:"area"`
	Status       string `form:"status"`
}

type DriverService struct {
	db *gorm.DB
}

func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{db: db}
}

func (s *DriverService) Create(input CreateDriverInput) (*models.Driver, error) {
	var existing models.Driver
	err := s.db.Where("user_id = ?", input.UserID).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	driver := models.Driver{
		UserID:       input.UserID,
		Name:         input.Name,
		Phone:        input.Phone,
		DriverCode:   input.DriverCode,
		VehiclePlate: input.VehiclePlate,
		VehicleType:  input.VehicleType,
		Area:         input.Area,
		Status:       models.StatusActive,
	}
	if err := s.db.Create(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) FindAll(page, limit int) ([]models.Driver, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Driver{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var drivers []models.Driver
	err := s.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&drivers).Error
	return drivers, total, err
}

func (s *DriverService) FindByID(id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) FindByUserID(userID uint) (*models.Driver, error) {
	var driver models.Driver
	if err := s.db.Where("user_id = ?", userID).First(&driver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &driver, nil
}

func (s *DriverService) Search(filter DriverFilter) ([]models.Driver, int64, error) {
	q := s.db.Model(&models.Driver{})
	if filter.Name != "" {
		q = q.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Phone != "" {
		q = q.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.DriverCode != "" {
		q = q.Where("driver_code LIKE ?", "%"+filter.DriverCode+"%")
	}
	if filter.VehiclePlate != "" {
		q = q.Where("vehicle_plate LIKE ?", "%"+filter.VehiclePlate+"%")
	}
	if filter.Area != "" {
		q = q.Where("area = ?", filter.Area)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var drivers []models.Driver
	if err := q.Order("created_at DESC").Find(&drivers).Error; err != nil {
		return nil, 0, err
	}
	return drivers, int64(len(drivers)), nil
}

func (s *DriverService) Update(id uint, input UpdateDriverInput) (*models.Driver, error) {
	driver, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		driver.Name = *input.Name
	}
	if input.Phone != nil {
		driver.Phone = *input.Phone
	}
	if input.DriverCode != nil {
		driver.DriverCode = *input.DriverCode
	}
	if input.VehiclePlate != nil {
		driver.VehiclePlate = *input.VehiclePlate
	}
	if input.VehicleType != nil {
		driver.VehicleType = *input.VehicleType
	}
	if input.Area != nil {
		driver.Area = *input.Area
	}
	if input.Status != nil {
		driver.Status = *input.Status
	}

	if err := s.db.Save(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

// UpdateLocation stamps the driver's last reported position.
func (s *DriverService) UpdateLocation(id uint, longitude, latitude float64, address string) (*models.Driver, error) {
	driver, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	driver.Longitude = longitude
	driver.Latitude = latitude
	driver.Address = address
	driver.LocatedAt = &now

	if err := s.db.Save(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *DriverService) Remove(id uint) (*models.Driver, error) {
	driver, err := s.FindByID(id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Driver{}, id).Error; err != nil {
		return nil, err
	}
	return driver, nil
}
