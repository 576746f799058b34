package public

import (
	"net/http"

	handlershared "github.com/mxshop-next/internal/http/handlers/shared"
	"github.com/mxshop-next/internal/http/response"
	"github.com/mxshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressRequest 收货地址请求
type AddressRequest struct {
	Province     *string `json:"province"`
	City         *string `json:"city"`
	District     *string `json:"district"`
	Address      *string `json:"address"`
	SignerName   *string `json:"signer_name"`
	SignerMobile *string `json:"signer_mobile"`
}

// toInput PUT 为整体替换：未提交的字段按空值处理，由校验拦截
func (r AddressRequest) toInput(replace bool) service.AddressInput {
	input := service.AddressInput{
		Province:     r.Province,
		City:         r.City,
		District:     r.District,
		Address:      r.Address,
		SignerName:   r.SignerName,
		SignerMobile: r.SignerMobile,
	}
	if replace {
		for _, field := range []**string{
			&input.Province, &input.City, &input.District,
			&input.Address, &input.SignerName, &input.SignerMobile,
		} {
			if *field == nil {
				empty := ""
				*field = &empty
			}
		}
	}
	return input
}

// ListAddresses 当前用户收货地址
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addresses, err := h.AddressService.List(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.address_failed", err)
		return
	}
	response.Success(c, addresses)
}

// CreateAddress 新增收货地址
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	address, err := h.AddressService.Create(uid, req.toInput(true))
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.address_failed")
		return
	}
	response.Success(c, address)
}

// UpdateAddress 修改收货地址（PUT 整体替换，PATCH 部分更新）
func (h *Handler) UpdateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req AddressRequest
	if err := handlershared.BindOwned(c, &req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	address, err := h.AddressService.Update(uid, id, req.toInput(c.Request.Method == http.MethodPut))
	if err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.address_failed")
		return
	}
	response.Success(c, address)
}

// DeleteAddress 删除收货地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.AddressService.Delete(uid, id); err != nil {
		respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "error.address_failed")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
