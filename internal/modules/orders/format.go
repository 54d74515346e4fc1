package orders

import (
	"strings"
	"time"

	"matajer.app/pkg/view"
)

const displayIDPrefix = "ok-"

// FormatOrderID shortens a raw order id for display: "ok-" + a two-letter
// store prefix + the last four id characters. Already-prefixed ids pass
// through unchanged, so the function is idempotent. Collisions are possible
// and accepted; the full id stays authoritative everywhere.
func FormatOrderID(id, storeName string) string {
	if strings.HasPrefix(strings.ToLower(id), displayIDPrefix) {
		return id
	}
	tail := id
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return displayIDPrefix + storePrefix(storeName) + tail
}

func storePrefix(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() >= 2 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "st"
	}
	return b.String()
}

// Formatter projects raw orders into display view models, memoized per order
// by id + update timestamp + currency. Recomputation is cheap and idempotent;
// the cache only saves re-deriving strings, it is not a correctness mechanism.
type Formatter struct {
	cache *viewCache
}

func NewFormatter(capacity int) *Formatter {
	return &Formatter{cache: newViewCache(capacity)}
}

// Format returns the cached projection when id, timestamp and currency all
// match, otherwise derives and caches a fresh one. Hits return the identical
// pointer, which keeps repeated renders of an unchanged order stable.
func (f *Formatter) Format(o Order, storeName string, now time.Time) *view.Order {
	key := cacheKey(o)
	if v, ok := f.cache.get(key); ok {
		return v
	}

	v := &view.Order{
		ID:            o.ID,
		DisplayID:     FormatOrderID(o.ID, storeName),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Status:        o.Status,
		StatusText:    view.OrderStatusText(o.Status),
		StatusColors:  view.OrderStatusColors(o.Status),
		Total:         view.Money(o.TotalCents, o.Currency),
		TotalCents:    o.TotalCents,
		Currency:      o.Currency,
		TimeAgo:       view.TimeAgo(o.CreatedAt, now),
		TimeClass:     view.RecencyClass(o.CreatedAt, now),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
	f.cache.add(key, v)
	return v
}

// FormatAll projects a page of orders in input order.
func (f *Formatter) FormatAll(raw []Order, storeName string, now time.Time) []view.Order {
	out := make([]view.Order, len(raw))
	for i, o := range raw {
		out[i] = *f.Format(o, storeName, now)
	}
	return out
}

func cacheKey(o Order) string {
	ts := o.UpdatedAt
	if ts.IsZero() {
		ts = o.CreatedAt
	}
	return o.ID + "|" + ts.UTC().Format(time.RFC3339Nano) + "|" + o.Currency
}
