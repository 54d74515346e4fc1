package orders

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Sample orders fill the dashboard's true empty state so a new merchant sees
// a populated table instead of a blank screen. They are generated, never
// persisted, and responses carry source=sample so the UI can label them.

var sampleNames = []string{
	"محمد العتيبي", "سارة القحطاني", "عبدالله الشمري", "نورة الدوسري",
	"فهد الحربي", "ريم المطيري", "خالد الغامدي", "لطيفة العنزي",
	"سلطان الزهراني", "منيرة السبيعي", "تركي المالكي", "هند البقمي",
}

var sampleStatuses = []string{
	StatusPending, StatusPending, StatusProcessing, StatusProcessing,
	StatusCompleted, StatusCompleted, StatusCompleted, StatusCancelled,
}

// SampleOrders generates n plausible orders for a store. Deterministic for a
// fixed seed; creation times spread across the recent past so every
// relative-time tier shows up.
func SampleOrders(storeID string, n int, seed int64, currency string, now time.Time) []Order {
	if n <= 0 {
		n = 8
	}
	rng := rand.New(rand.NewSource(seed))

	out := make([]Order, n)
	for i := range out {
		name := sampleNames[rng.Intn(len(sampleNames))]
		created := now.Add(-time.Duration(rng.Intn(10*24*60)) * time.Minute)
		out[i] = Order{
			ID:            sampleID(rng),
			StoreID:       storeID,
			CustomerName:  name,
			CustomerEmail: sampleEmail(rng),
			CustomerPhone: fmt.Sprintf("+9665%08d", rng.Intn(100000000)),
			Status:        sampleStatuses[rng.Intn(len(sampleStatuses))],
			TotalCents:    int64(500 + rng.Intn(49500)),
			Currency:      currency,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
	}
	return out
}

// SampleEligible decides whether a list response may fall back to samples:
// only a genuinely empty, unfiltered first page qualifies. Errors never do.
func SampleEligible(in ListParams, total int64) bool {
	if total != 0 {
		return false
	}
	if in.Page > 1 {
		return false
	}
	status := strings.TrimSpace(in.Status)
	if status != "" && status != "all" {
		return false
	}
	return strings.TrimSpace(in.Search) == ""
}

func sampleID(rng *rand.Rand) string {
	b := make([]byte, 16)
	rng.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

func sampleEmail(rng *rand.Rand) string {
	return fmt.Sprintf("customer%03d@example.com", rng.Intn(1000))
}
