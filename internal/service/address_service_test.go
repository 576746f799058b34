package service

import (
	"errors"
	"testing"

	"github.com/mxshop-next/internal/repository"
)

func strPtr(s string) *string {
	return &s
}

func TestAddressService(t *testing.T) {
	db := openServiceTestDB(t)
	svc := NewAddressService(newServiceTestConfig(), repository.NewAddressRepository(db))

	input := AddressInput{
		Province:     strPtr("北京市"),
		City:         strPtr("北京市"),
		District:     strPtr("朝阳区"),
		Address:      strPtr("建国路 1 号"),
		SignerName:   strPtr("张三"),
		SignerMobile: strPtr("13800138000"),
	}
	address, err := svc.Create(1, input)
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	bad := input
	bad.SignerMobile = strPtr("10086")
	if _, err := svc.Create(1, bad); !errors.Is(err, ErrInvalidMobile) {
		t.Fatalf("expected ErrInvalidMobile, got %v", err)
	}
	bad = input
	bad.City = strPtr(" ")
	if _, err := svc.Create(1, bad); !errors.Is(err, ErrAddressInvalid) {
		t.Fatalf("expected ErrAddressInvalid, got %v", err)
	}

	updated, err := svc.Update(1, address.ID, AddressInput{Address: strPtr("建国路 2 号")})
	if err != nil {
		t.Fatalf("update address failed: %v", err)
	}
	if updated.Address != "建国路 2 号" || updated.SignerName != "张三" {
		t.Fatalf("partial update should keep other fields: %+v", updated)
	}
	if _, err := svc.Update(2, address.ID, input); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("other user must not update, got %v", err)
	}

	list, err := svc.List(1)
	if err != nil || len(list) != 1 || list[0].Address != "建国路 2 号" {
		t.Fatalf("unexpected list: %+v err=%v", list, err)
	}
	if err := svc.Delete(2, address.ID); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("other user must not delete, got %v", err)
	}
	if err := svc.Delete(1, address.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}
