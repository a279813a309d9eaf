package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"delivery_admin/internal/models"
)

const navigationBaseURL = "https://uri.amap.com/navigation?"

type CreateCustomerInput struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerAddress string  `json:"customer_address"`
	Area            string  `json:"area"`
	ContactPerson   string  `json:"contact_person"`
	ContactPhone    string  `json:"contact_phone"`
	Longitude       float64 `json:"longitude"`
	Latitude        float64 `json:"latitude"`
	UpdateBy        string  `json:"update_by"`
}

type UpdateCustomerInput struct {
	CustomerName    *string  `json:"customer_name"`
	CustomerAddress *string  `json:"customer_address"`
	Area            *string  `json:"area"`
	ContactPerson   *string  `json:"contact_person"`
	ContactPhone    *string  `json:"contact_phone"`
	Longitude       *float64 `json:"longitude"`
	Latitude        *float64 `json:"latitude"`
	Status          *string  `json:"status"`
	UpdateBy        *string  `json:"update_by"`
}

type CustomerFilter struct {
	CustomerNumber  string `form:"customer_number"`
	CustomerName    string `form:"customer_name"`
	CustomerAddress string `form:"customer_address"`
	Area            string `form:"area"`
	ContactPerson   string `form:"contact_person"`
}

type CustomerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{db: db}
}

// Create assigns the next sequential customer number and persists the
// row. The number is derived from the current maximum id, so two
// concurrent creations can observe the same maximum; the store's unique
// index on customer_number is the only guard.
func (s *CustomerService) Create(input CreateCustomerInput) (*models.Customer, error) {
	var last models.Customer
	next := 1
	err := s.db.Order("id DESC").First(&last).Error
	if err == nil {
		next = int(last.ID) + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := models.Customer{
		CustomerNumber:  fmt.Sprintf("C%03d", next),
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		Area:            input.Area,
		ContactPerson:   input.ContactPerson,
		ContactPhone:    input.ContactPhone,
		Longitude:       input.Longitude,
		Latitude:        input.Latitude,
		Status:          models.StatusActive,
		UpdateBy:        input.UpdateBy,
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) FindAll(page, limit int) ([]models.Customer, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Customer{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	err := s.db.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&customers).Error
	return customers, total, err
}

func (s *CustomerService) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Search(filter CustomerFilter) ([]models.Customer, int64, error) {
	q := s.db.Model(&models.Customer{})
	if filter.CustomerNumber != "" {
		q = q.Where("customer_number LIKE ?", "%"+filter.CustomerNumber+"%")
	}
	if filter.CustomerName != "" {
		q = q.Where("customer_name LIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.CustomerAddress != "" {
		q = q.Where("customer_address LIKE ?", "%"+filter.CustomerAddress+"%")
	}
	if filter.Area != "" {
		q = q.Where("area = ?", filter.Area)
	}
	if filter.ContactPerson != "" {
		q = q.Where("contact_person LIKE ?", "%"+filter.ContactPerson+"%")
	}

	var customers []models.Customer
	if err := q.Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, int64(len(customers)), nil
}

func (s *CustomerService) Update(id uint, input UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	// CustomerNumber is assigned at creation and never patched.
	if input.CustomerName != nil {
		customer.CustomerName = *input.CustomerName
	}
	if input.CustomerAddress != nil {
		customer.CustomerAddress = *input.CustomerAddress
	}
	if input.Area != nil {
		customer.Area = *input.Area
	}
	if input.ContactPerson != nil {
		customer.ContactPerson = *input.ContactPerson
	}
	if input.ContactPhone != nil {
		customer.ContactPhone = *input.ContactPhone
	}
	if input.Longitude != nil {
		customer.Longitude = *input.Longitude
	}
	if input.Latitude != nil {
		customer.Latitude = *input.Latitude
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.UpdateBy != nil {
		customer.UpdateBy = *input.UpdateBy
	}

	if err := s.db.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Remove(id uint) (*models.Customer, error) {
	customer, err := s.FindByID(id)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(&models.Customer{}, id).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// GenerateNavigationURL builds an amap multi-stop navigation link. The
// first customer becomes the destination, the rest become waypoints in
// input order. Unknown ids are skipped; an empty result is ErrNotFound.
func (s *CustomerService) GenerateNavigationURL(ids []uint) (string, error) {
	var customers []models.Customer
	if len(ids) > 0 {
		if err := s.db.Where("id IN ?", ids).Find(&customers).Error; err != nil {
			return "", err
		}
	}
	if len(customers) == 0 {
		return "", ErrNotFound
	}

	byID := make(map[uint]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	var b strings.Builder
	b.WriteString(navigationBaseURL)
	written := 0
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			continue
		}
		if written == 0 {
			fmt.Fprintf(&b, "to=%v,%v", c.Longitude, c.Latitude)
		} else {
			fmt.Fprintf(&b, "&mid=%v,%v", c.Longitude, c.Latitude)
		}
		written++
	}
	b.WriteString("&dev=0&t=0")
	return b.String(), nil
}
