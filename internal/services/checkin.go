package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"delivery_admin/internal/models"
)

type CreateCheckinInput struct {
	DriverID    uint      `json:"driver_id" binding:"required"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	Address     string    `json:"address"`
	Note        string    `json:"note"`
	CheckinTime time.Time `json:"checkin_time"`
}

type UpdateCheckinInput struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
	Address   *string  `json:"address"`
	Note      *string  `json:"note"`
}

type CheckinFilter struct {
	DriverID uint   `form:"driver_id"`
	Address  string `form:"address"`
}

type CheckinService struct {
	db *gorm.DB
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{db: db}
}

func (s *CheckinService) Create(input CreateCheckinInput) (*models.CheckinRecord, error) {
	record := models.CheckinRecord{
		DriverID:    input.DriverID,
		Longitude:   input.Longitude,
		Latitude:    input.Latitude,
		Address:     input.Address,
		Note:        input.Note,
		CheckinTime: input.CheckinTime,
	}
	if record.CheckinTime.IsZero() {
		record.CheckinTime = time.Now()
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *CheckinService) FindAll(page, limit int) ([]models.CheckinRecord, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.CheckinRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.CheckinRecord
	err := s.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	return records, total, err
}

func (s *CheckinService) FindByID(id uint) (*models.CheckinRecord, error) {
	var record models.CheckinRecord
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *CheckinService) Search(filter CheckinFilter) ([]models.CheckinRecord, int64, error) {
	q := s.db.Model(&models.CheckinRecord{})
	if filter.DriverID != 0 {
		q = q.Where("driver_id = ?", filter.DriverID)
	}
	if filter.Address != "" {
		q = q.Where("address LIKE ?", "%"+filter.Address+"%")
	}

	var records []models.CheckinRecord
	if err := q.Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, int64(len(records)), nil
}

func (s *CheckinService) Update(id uint, input UpdateCheckinInput) (*models.CheckinRecord, error) {
	record, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if input.Longitude != nil {
		record.Longitude = *input.Longitude
	}
	if input.Latitude != nil {
		record.Latitude = *input.Latitude
	}
	if input.Address != nil {
		record.Address = *input.Address
	}
	if input.Note != nil {
		record.Note = *input.Note
	}

	if err := s.db.Save(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (s *CheckinService) Remove(id uint) (*models.CheckinRecord, error) {
	record, err := s.FindByID(id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.CheckinRecord{}, id).Error; err != nil {
		return nil, err
	}
	return record, nil
}
