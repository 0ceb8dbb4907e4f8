package storefront

import (
	"github.com/giftshop-next/internal/account"
	"github.com/giftshop-next/internal/http/response"
	"github.com/giftshop-next/internal/models"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 资料更新请求（缺省字段保持不变）
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

var accountErrorRules = []mappedHandlerError{
	{target: account.ErrProfileInvalid, code: response.CodeBadRequest, msg: "profile fields invalid"},
	{target: account.ErrEmailInvalid, code: response.CodeBadRequest, msg: "email invalid"},
	{target: account.ErrAddressInvalid, code: response.CodeBadRequest, msg: "address fields invalid"},
	{target: account.ErrPaymentMethodInvalid, code: response.CodeBadRequest, msg: "payment method invalid"},
	{target: account.ErrNotFound, code: response.CodeNotFound, msg: "record not found"},
}

// GetProfile 读取资料
func (h *Handler) GetProfile(c *gin.Context) {
	response.Success(c, h.Account.Profile())
}

// UpdateProfile 更新资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid profile payload")
		return
	}
	profile, err := h.Account.UpdateProfile(account.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to update profile")
		return
	}
	response.Success(c, profile)
}

// GetAddresses 地址列表
func (h *Handler) GetAddresses(c *gin.Context) {
	response.Success(c, h.Account.Addresses())
}

// UpsertAddress 新增或更新地址
func (h *Handler) UpsertAddress(c *gin.Context) {
	var address models.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		response.BadRequest(c, "invalid address payload")
		return
	}
	saved, err := h.Account.UpsertAddress(address)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to save address")
		return
	}
	response.Success(c, saved)
}

// RemoveAddress 删除地址
func (h *Handler) RemoveAddress(c *gin.Context) {
	if err := h.Account.RemoveAddress(c.Param("id")); err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to remove address")
		return
	}
	response.Success(c, nil)
}

// GetPaymentMethods 支付方式列表
func (h *Handler) GetPaymentMethods(c *gin.Context) {
	response.Success(c, h.Account.PaymentMethods())
}

// AddPaymentMethod 新增支付方式
func (h *Handler) AddPaymentMethod(c *gin.Context) {
	var method models.PaymentMethod
	if err := c.ShouldBindJSON(&method); err != nil {
		response.BadRequest(c, "invalid payment method payload")
		return
	}
	saved, err := h.Account.AddPaymentMethod(method)
	if err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to add payment method")
		return
	}
	response.Success(c, saved)
}

// RemovePaymentMethod 删除支付方式
func (h *Handler) RemovePaymentMethod(c *gin.Context) {
	if err := h.Account.RemovePaymentMethod(c.Param("id")); err != nil {
		respondWithMappedError(c, err, accountErrorRules, response.CodeInternal, "failed to remove payment method")
		return
	}
	response.Success(c, nil)
}
