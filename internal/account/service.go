package account

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"sync"

	"github.com/giftshop-next/internal/models"
)

var (
	// ErrProfileInvalid 资料字段校验失败
	ErrProfileInvalid = errors.New("profile invalid")
	// ErrEmailInvalid 邮箱格式非法
	ErrEmailInvalid = errors.New("email invalid")
	// ErrAddressInvalid 地址字段校验失败
	ErrAddressInvalid = errors.New("address invalid")
	// ErrPaymentMethodInvalid 支付方式字段校验失败
	ErrPaymentMethodInvalid = errors.New("payment method invalid")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("account record not found")
)

// UpdateProfileInput 资料更新输入（nil 字段保持不变）
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// Service 账户服务：资料、地址与支付方式的本地会话存储
type Service struct {
	mu             sync.RWMutex
	profile        models.Profile
	addresses      []models.Address
	paymentMethods []models.PaymentMethod
	nextID         int
}

// NewService 创建账户服务并载入演示会话数据
func NewService() *Service {
	return &Service{
		profile: models.Profile{
			ID:         "1",
			FirstName:  "Alex",
			LastName:   "Johnson",
			Email:      "alex.j@example.com",
			Phone:      "+1 (555) 123-4567",
			Membership: "Gold Member",
			Avatar:     "https://lh3.googleusercontent.com/aida-public/AB6AXuApiIdia871HIetL9pMcR77z1IUX7waSC6G05kwl6B4gG1jK7NSlpJYF0lXGbuaNgiMdgcCnwDqRdxFGuOAF82exL1Se0U2i0JerVXIt8BnXnGRR9A5zzyI5_yM2JZNBF64uJZIfp2W_Qo8LTKD05YoOukWWAERf-RAe2y7kBBoleLXpC3riwooVx6R8hsMYL6jG6lgazQD_ASDqDwNRRCqB7S9KRdZZQ2f7HG2Xwq5y8DkZjmBYT075ecauunAdXys4tOv0toQaIU",
		},
		addresses: []models.Address{
			{
				ID:     "1",
				Type:   "Home",
				Name:   "Alex Johnson",
				Street: "123 Maple Avenue, Apt 4B",
				City:   "San Francisco",
				State:  "CA",
				Zip:    "94105",
			},
		},
		paymentMethods: []models.PaymentMethod{
			{
				ID:          "1",
				Type:        "VISA",
				Last4:       "4288",
				ExpiryMonth: "12",
				ExpiryYear:  "25",
				Cardholder:  "Alex Johnson",
			},
		},
		nextID: 2,
	}
}

// Profile 读取资料
func (s *Service) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile 局部更新资料
func (s *Service) UpdateProfile(input UpdateProfileInput) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.profile
	if input.FirstName != nil {
		updated.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		updated.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.Email != nil {
		updated.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		updated.Phone = strings.TrimSpace(*input.Phone)
	}

	if updated.FirstName == "" || updated.LastName == "" {
		return models.Profile{}, ErrProfileInvalid
	}
	if _, err := mail.ParseAddress(updated.Email); err != nil {
		return models.Profile{}, ErrEmailInvalid
	}

	s.profile = updated
	return updated, nil
}

// Addresses 返回地址列表拷贝
func (s *Service) Addresses() []models.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	addresses := make([]models.Address, len(s.addresses))
	copy(addresses, s.addresses)
	return addresses
}

// UpsertAddress 新增或按 ID 更新地址
func (s *Service) UpsertAddress(address models.Address) (models.Address, error) {
	if strings.TrimSpace(address.Name) == "" ||
		strings.TrimSpace(address.Street) == "" ||
		strings.TrimSpace(address.City) == "" {
		return models.Address{}, ErrAddressInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if address.ID == "" {
		address.ID = s.allocateID()
		s.addresses = append(s.addresses, address)
		return address, nil
	}
	for i := range s.addresses {
		if s.addresses[i].ID == address.ID {
			s.addresses[i] = address
			return address, nil
		}
	}
	return models.Address{}, ErrNotFound
}

// RemoveAddress 删除地址
func (s *Service) RemoveAddress(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.addresses {
		if s.addresses[i].ID == id {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// PaymentMethods 返回支付方式列表拷贝
func (s *Service) PaymentMethods() []models.PaymentMethod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	methods := make([]models.PaymentMethod, len(s.paymentMethods))
	copy(methods, s.paymentMethods)
	return methods
}

// AddPaymentMethod 新增支付方式（仅存展示信息）
func (s *Service) AddPaymentMethod(method models.PaymentMethod) (models.PaymentMethod, error) {
	if len(method.Last4) != 4 || !isDigits(method.Last4) {
		return models.PaymentMethod{}, ErrPaymentMethodInvalid
	}
	if !isValidExpiry(method.ExpiryMonth, method.ExpiryYear) {
		return models.PaymentMethod{}, ErrPaymentMethodInvalid
	}
	if strings.TrimSpace(method.Cardholder) == "" {
		return models.PaymentMethod{}, ErrPaymentMethodInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	method.ID = s.allocateID()
	s.paymentMethods = append(s.paymentMethods, method)
	return method, nil
}

// RemovePaymentMethod 删除支付方式
func (s *Service) RemovePaymentMethod(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.paymentMethods {
		if s.paymentMethods[i].ID == id {
			s.paymentMethods = append(s.paymentMethods[:i], s.paymentMethods[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Service) allocateID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func isValidExpiry(month, year string) bool {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return false
	}
	if len(year) != 2 || !isDigits(year) {
		return false
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
