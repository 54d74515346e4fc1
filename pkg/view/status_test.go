package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusText(t *testing.T) {
	assert.Equal(t, "قيد الانتظار", OrderStatusText("pending"))
	assert.Equal(t, "قيد المعالجة", OrderStatusText("processing"))
	assert.Equal(t, "مكتمل", OrderStatusText("completed"))
	assert.Equal(t, "ملغي", OrderStatusText("cancelled"))
	assert.Equal(t, "تم الشحن", OrderStatusText("shipped"))

	// total function: anything unknown gets the fallback, never panics
	assert.Equal(t, "غير معروف", OrderStatusText(""))
	assert.Equal(t, "غير معروف", OrderStatusText("refunded"))
}

func TestOrderStatusColors(t *testing.T) {
	c := OrderStatusColors("pending")
	assert.Equal(t, "bg-amber-100", c.Bg)
	assert.Equal(t, "text-amber-800", c.Text)

	fallback := OrderStatusColors("whatever")
	assert.Equal(t, "bg-gray-100", fallback.Bg)
	assert.Equal(t, "text-gray-800", fallback.Text)
}
