package vnpay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseCodes(t *testing.T) {
	assert.True(t, IsSuccess("00"))
	assert.False(t, IsSuccess("24"))
	assert.False(t, IsSuccess(""))

	assert.Equal(t, "Khách hàng hủy giao dịch", GetResponseMessage(ResponseCodeUserCancelled))
	assert.Equal(t, "Lỗi không xác định", GetResponseMessage("42"))
}
