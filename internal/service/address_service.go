package service

import (
	"strings"

	"github.com/mxshop-next/internal/config"
	"github.com/mxshop-next/internal/models"
	"github.com/mxshop-next/internal/repository"
)

// AddressService 收货地址
type AddressService struct {
	repo   repository.AddressRepository
	mobile *MobilePattern
}

// NewAddressService 创建收货地址服务
func NewAddressService(cfg *config.Config, repo repository.AddressRepository) *AddressService {
	return &AddressService{
		repo:   repo,
		mobile: NewMobilePattern(cfg.VerifyCode.MobilePattern),
	}
}

// AddressInput 收货地址参数，更新时 nil 字段保持原值
type AddressInput struct {
	Province     *string
	City         *string
	District     *string
	Address      *string
	SignerName   *string
	SignerMobile *string
}

// List 用户收货地址
func (s *AddressService) List(userID uint) ([]models.UserAddress, error) {
	return s.repo.ListByUser(userID)
}

// Create 新增收货地址
func (s *AddressService) Create(userID uint, input AddressInput) (*models.UserAddress, error) {
	address := &models.UserAddress{UserID: userID}
	applyAddressInput(address, input)
	if err := s.validate(address); err != nil {
		return nil, err
	}
	if err := s.repo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Update 更新自己的收货地址
func (s *AddressService) Update(userID, id uint, input AddressInput) (*models.UserAddress, error) {
	address, err := s.repo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}
	applyAddressInput(address, input)
	if err := s.validate(address); err != nil {
		return nil, err
	}
	if err := s.repo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete 删除自己的收货地址
func (s *AddressService) Delete(userID, id uint) error {
	deleted, err := s.repo.DeleteByIDAndUser(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrAddressNotFound
	}
	return nil
}

func applyAddressInput(address *models.UserAddress, input AddressInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&address.Province, input.Province)
	set(&address.City, input.City)
	set(&address.District, input.District)
	set(&address.Address, input.Address)
	set(&address.SignerName, input.SignerName)
	set(&address.SignerMobile, input.SignerMobile)
}

func (s *AddressService) validate(address *models.UserAddress) error {
	required := []struct {
		field string
		value string
	}{
		{"province", address.Province},
		{"city", address.City},
		{"district", address.District},
		{"address", address.Address},
		{"signer_name", address.SignerName},
	}
	for _, item := range required {
		if item.value == "" {
			return fieldError(item.field, ErrAddressInvalid)
		}
	}
	if !s.mobile.Match(address.SignerMobile) {
		return fieldError("signer_mobile", ErrInvalidMobile)
	}
	return nil
}
