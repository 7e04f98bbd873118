package vnpay

// =====================================================
// VNPAY CONSTANTS
// =====================================================

const (
	// Response codes
	ResponseCodeSuccess               = "00"
	ResponseCodeSuspectedFraud        = "07"
	ResponseCodeNotRegistered         = "09"
	ResponseCodeAuthFailed            = "10"
	ResponseCodeOTPExpired            = "11"
	ResponseCodeCardLocked            = "12"
	ResponseCodeIncorrectOTP          = "13"
	ResponseCodeUserCancelled         = "24"
	ResponseCodeInsufficientBalance   = "51"
	ResponseCodeLimitExceeded         = "65"
	ResponseCodeBankMaintenance       = "75"
	ResponseCodeWrongPasswordTooOften = "79"
	ResponseCodeOther                 = "99"
)

var responseMessages = map[string]string{
	ResponseCodeSuccess:               "Giao dịch thành công",
	ResponseCodeSuspectedFraud:        "Giao dịch bị nghi ngờ gian lận",
	ResponseCodeNotRegistered:         "Thẻ/Tài khoản chưa đăng ký Internet Banking",
	ResponseCodeAuthFailed:            "Xác thực thông tin thẻ/tài khoản không đúng quá 3 lần",
	ResponseCodeOTPExpired:            "Đã hết hạn chờ thanh toán",
	ResponseCodeCardLocked:            "Thẻ/Tài khoản bị khóa",
	ResponseCodeIncorrectOTP:          "Nhập sai mật khẩu xác thực giao dịch (OTP)",
	ResponseCodeUserCancelled:         "Khách hàng hủy giao dịch",
	ResponseCodeInsufficientBalance:   "Số dư tài khoản không đủ",
	ResponseCodeLimitExceeded:         "Vượt quá hạn mức giao dịch trong ngày",
	ResponseCodeBankMaintenance:       "Ngân hàng thanh toán đang bảo trì",
	ResponseCodeWrongPasswordTooOften: "Nhập sai mật khẩu thanh toán quá số lần quy định",
}

// IsSuccess reports whether the gateway itself accepted the payment.
// Necessary but not sufficient: the order's payment status decides.
func IsSuccess(code string) bool {
	return code == ResponseCodeSuccess
}

// GetResponseMessage returns the Vietnamese reason for a response code
func GetResponseMessage(code string) string {
	if msg, exists := responseMessages[code]; exists {
		return msg
	}
	return "Lỗi không xác định"
}
