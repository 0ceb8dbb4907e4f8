package models

// Profile 用户资料
type Profile struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Membership string `json:"membership"`
	Avatar     string `json:"avatar"`
}

// Address 收货地址
type Address struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// PaymentMethod 支付方式（仅展示用途，不做真实扣款）
type PaymentMethod struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Last4       string `json:"last4"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	Cardholder  string `json:"cardholder"`
}
