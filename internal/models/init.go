package models

// AllModels 返回需要迁移的全部业务模型，父表在前
func AllModels() []interface{} {
	return []interface{}{
		&Category{},
		&Product{},
		&ProductImage{},
		&User{},
		&VerifyCode{},
		&CartItem{},
		&Order{},
		&OrderItem{},
		&UserFav{},
		&UserMessage{},
		&UserAddress{},
	}
}
