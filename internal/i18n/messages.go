package i18n

var catalog = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":            "请求参数错误",
		"error.unauthorized":           "未登录或登录已失效",
		"error.forbidden":              "没有权限执行该操作",
		"error.not_found":              "资源不存在",
		"error.internal":               "服务器内部错误",
		"error.id_invalid":             "ID 格式错误",
		"error.auth_header_missing":    "缺少身份认证信息",
		"error.auth_header_invalid":    "认证头格式错误",
		"error.token_invalid":          "Token 无效或已过期",
		"error.jwt_secret_missing":     "服务端未配置 JWT 密钥",
		"error.user_disabled":          "账号已被禁用",
		"error.user_id_invalid":        "用户 ID 非法",
		"error.user_id_type_invalid":   "用户 ID 类型错误",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.login_too_many":         "登录尝试次数过多，请 %d 秒后重试",
		"error.sms_too_many":           "短信发送过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务暂不可用",

		"error.mobile_invalid":           "手机号格式非法",
		"error.mobile_registered":        "用户已存在",
		"error.mobile_taken":             "手机号已被使用",
		"error.verify_code_too_frequent": "距离上一次发送未超过60s",
		"error.verify_code_not_issued":   "验证码错误！",
		"error.verify_code_expired":      "验证码过期！",
		"error.verify_code_mismatch":     "验证码错误！",
		"error.verify_code_format":       "验证码格式错误",
		"error.sms_gateway_failed":       "短信发送失败",
		"error.sms_gateway_timeout":      "短信网关响应超时",
		"error.send_verify_code_failed":  "发送验证码失败",

		"error.username_required":     "请输入用户名",
		"error.username_taken":        "用户名已存在",
		"error.password_required":     "请输入密码",
		"error.register_failed":       "注册失败",
		"error.login_invalid":         "用户名或密码错误",
		"error.refresh_token_invalid": "刷新令牌无效或已过期",
		"error.user_not_found":        "用户不存在",
		"error.profile_update_failed": "更新个人信息失败",
		"error.gender_invalid":        "性别取值非法",
		"error.email_invalid":         "邮箱格式错误",
		"error.birthday_invalid":      "生日格式错误，应为 YYYY-MM-DD",

		"error.product_not_found":     "商品不存在",
		"error.product_fetch_failed":  "获取商品失败",
		"error.product_create_failed": "创建商品失败",
		"error.product_name_required": "商品名称不能为空",
		"error.product_price_invalid": "商品价格不能小于 0",
		"error.category_not_found":    "商品分类不存在",
		"error.category_cycle":        "商品分类层级非法",
		"error.category_fetch_failed": "获取商品分类失败",
		"error.ordering_invalid":      "不支持的排序字段",
		"error.price_filter_invalid":  "价格筛选参数错误",

		"error.cart_nums_invalid":   "商品数量不能小于一",
		"error.cart_item_not_found": "购物车中没有该商品",
		"error.cart_fetch_failed":   "获取购物车失败",
		"error.cart_update_failed":  "更新购物车失败",

		"error.cart_empty":          "购物车为空，无法下单",
		"error.order_not_found":     "订单不存在",
		"error.order_create_failed": "创建订单失败",
		"error.order_fetch_failed":  "获取订单失败",
		"error.order_delete_failed": "删除订单失败",
		"error.order_no_conflict":   "订单号生成冲突，请重试",

		"error.already_favorited":  "已经收藏",
		"error.favorite_not_found": "未收藏该商品",
		"error.favorite_failed":    "收藏操作失败",

		"error.message_not_found":        "留言不存在",
		"error.message_type_invalid":     "留言类型非法",
		"error.message_subject_required": "请输入留言主题",
		"error.message_body_required":    "请输入留言内容",
		"error.message_failed":           "留言操作失败",

		"error.address_not_found": "收货地址不存在",
		"error.address_invalid":   "收货地址信息不完整",
		"error.address_failed":    "收货地址操作失败",

		"error.captcha_required":        "请完成图形验证码",
		"error.captcha_invalid":         "图形验证码错误",
		"error.captcha_unavailable":     "图形验证码未启用",
		"error.captcha_generate_failed": "生成图形验证码失败",
	},
	LocaleEnUS: {
		"error.bad_request":            "Invalid request parameters",
		"error.unauthorized":           "Authentication required",
		"error.forbidden":              "You do not have permission to perform this action",
		"error.not_found":              "Resource not found",
		"error.internal":               "Internal server error",
		"error.id_invalid":             "Invalid id",
		"error.auth_header_missing":    "Authentication credentials were not provided",
		"error.auth_header_invalid":    "Invalid authorization header",
		"error.token_invalid":          "Token is invalid or expired",
		"error.jwt_secret_missing":     "JWT secret is not configured",
		"error.user_disabled":          "User account is disabled",
		"error.user_id_invalid":        "Invalid user id",
		"error.user_id_type_invalid":   "Invalid user id type",
		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.login_too_many":         "Too many login attempts, retry in %d seconds",
		"error.sms_too_many":           "Too many SMS requests, retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter unavailable",

		"error.mobile_invalid":           "Invalid mobile number",
		"error.mobile_registered":        "User already exists",
		"error.mobile_taken":             "Mobile number already in use",
		"error.verify_code_too_frequent": "Less than 60 seconds since the last code was sent",
		"error.verify_code_not_issued":   "Invalid verification code",
		"error.verify_code_expired":      "Verification code expired",
		"error.verify_code_mismatch":     "Invalid verification code",
		"error.verify_code_format":       "Malformed verification code",
		"error.sms_gateway_failed":       "Failed to send SMS",
		"error.sms_gateway_timeout":      "SMS gateway timed out",
		"error.send_verify_code_failed":  "Failed to send verification code",

		"error.username_required":     "Username is required",
		"error.username_taken":        "Username already exists",
		"error.password_required":     "Password is required",
		"error.register_failed":       "Registration failed",
		"error.login_invalid":         "Invalid username or password",
		"error.refresh_token_invalid": "Refresh token is invalid or expired",
		"error.user_not_found":        "User not found",
		"error.profile_update_failed": "Failed to update profile",
		"error.gender_invalid":        "Invalid gender",
		"error.email_invalid":         "Invalid email address",
		"error.birthday_invalid":      "Invalid birthday, expected YYYY-MM-DD",

		"error.product_not_found":     "Product not found",
		"error.product_fetch_failed":  "Failed to fetch products",
		"error.product_create_failed": "Failed to create product",
		"error.product_name_required": "Product name is required",
		"error.product_price_invalid": "Product price must not be negative",
		"error.category_not_found":    "Category not found",
		"error.category_cycle":        "Invalid category hierarchy",
		"error.category_fetch_failed": "Failed to fetch categories",
		"error.ordering_invalid":      "Unsupported ordering field",
		"error.price_filter_invalid":  "Invalid price filter",

		"error.cart_nums_invalid":   "Quantity must be at least one",
		"error.cart_item_not_found": "Product is not in the cart",
		"error.cart_fetch_failed":   "Failed to fetch cart",
		"error.cart_update_failed":  "Failed to update cart",

		"error.cart_empty":          "Cart is empty",
		"error.order_not_found":     "Order not found",
		"error.order_create_failed": "Failed to create order",
		"error.order_fetch_failed":  "Failed to fetch orders",
		"error.order_delete_failed": "Failed to delete order",
		"error.order_no_conflict":   "Order number collision, please retry",

		"error.already_favorited":  "Already favorited",
		"error.favorite_not_found": "Product is not in favorites",
		"error.favorite_failed":    "Favorite operation failed",

		"error.message_not_found":        "Message not found",
		"error.message_type_invalid":     "Invalid message type",
		"error.message_subject_required": "Subject is required",
		"error.message_body_required":    "Message is required",
		"error.message_failed":           "Message operation failed",

		"error.address_not_found": "Address not found",
		"error.address_invalid":   "Address is incomplete",
		"error.address_failed":    "Address operation failed",

		"error.captcha_required":        "Captcha is required",
		"error.captcha_invalid":         "Invalid captcha",
		"error.captcha_unavailable":     "Captcha is not enabled",
		"error.captcha_generate_failed": "Failed to generate captcha",
	},
}
