package view

// StatusColors are CSS class tokens the dashboard applies to status badges.
type StatusColors struct {
	Bg   string `json:"bg"`
	Text string `json:"text"`
}

type statusStyle struct {
	text   string
	colors StatusColors
}

var statusStyles = map[string]statusStyle{
	"pending":    {"قيد الانتظار", StatusColors{"bg-amber-100", "text-amber-800"}},
	"processing": {"قيد المعالجة", StatusColors{"bg-blue-100", "text-blue-800"}},
	"completed":  {"مكتمل", StatusColors{"bg-green-100", "text-green-800"}},
	"cancelled":  {"ملغي", StatusColors{"bg-red-100", "text-red-800"}},
	"shipped":    {"تم الشحن", StatusColors{"bg-indigo-100", "text-indigo-800"}},
}

var statusFallback = statusStyle{"غير معروف", StatusColors{"bg-gray-100", "text-gray-800"}}

// OrderStatusText returns the localized badge text; total over any input.
func OrderStatusText(status string) string {
	if s, ok := statusStyles[status]; ok {
		return s.text
	}
	return statusFallback.text
}

// OrderStatusColors returns the badge class tokens; total over any input.
func OrderStatusColors(status string) StatusColors {
	if s, ok := statusStyles[status]; ok {
		return s.colors
	}
	return statusFallback.colors
}
