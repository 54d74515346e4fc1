package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", now.Add(-30 * time.Second), "الآن"},
		{"minutes", now.Add(-5 * time.Minute), "منذ 5 دقيقة"},
		{"fifty nine minutes", now.Add(-59 * time.Minute), "منذ 59 دقيقة"},
		{"hours", now.Add(-3 * time.Hour), "منذ 3 ساعة"},
		{"days", now.Add(-26 * time.Hour), "منذ 1 يوم"},
		{"two days", now.Add(-50 * time.Hour), "منذ 2 يوم"},
		{"beyond window is a date", now.Add(-80 * time.Hour), "2025-06-12"},
		{"much older", now.AddDate(0, -2, 0), "2025-04-15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TimeAgo(tc.t, now))
		})
	}
}

func TestRecencyClass(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "text-green-600", RecencyClass(now.Add(-10*time.Minute), now))
	assert.Equal(t, "text-blue-600", RecencyClass(now.Add(-5*time.Hour), now))
	assert.Equal(t, "text-gray-600", RecencyClass(now.Add(-48*time.Hour), now))
	assert.Equal(t, "text-gray-400", RecencyClass(now.Add(-100*time.Hour), now))
}
