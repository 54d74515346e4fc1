package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeProvider struct {
	sent []string
	err  error
}

func (f *fakeProvider) Send(ctx context.Context, phone, message string) error {
	f.sent = append(f.sent, phone)
	return f.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&WhatsappLog{}))
	return db
}

func enqueue(t *testing.T, db *gorm.DB, svc *Service) string {
	t.Helper()
	var logID string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		logID, err = svc.EnqueueTx(context.Background(), tx, Entry{
			StoreID: "s1", OrderID: "o1",
			Phone: "+966500000000", Message: "تم تحديث حالة طلبك",
		})
		return err
	})
	require.NoError(t, err)
	return logID
}

func TestDeliverMarksSent(t *testing.T) {
	db := newTestDB(t)
	prov := &fakeProvider{}
	svc := NewService(db, prov)

	logID := enqueue(t, db, svc)
	require.NoError(t, svc.Deliver(context.Background(), logID))

	var row WhatsappLog
	require.NoError(t, db.First(&row, "id = ?", logID).Error)
	assert.Equal(t, "sent", row.Status)
	assert.NotNil(t, row.SentAt)
	assert.Equal(t, []string{"+966500000000"}, prov.sent)
}

func TestDeliverRecordsFailure(t *testing.T) {
	db := newTestDB(t)
	prov := &fakeProvider{err: errors.New("gateway timeout")}
	svc := NewService(db, prov)

	logID := enqueue(t, db, svc)
	require.NoError(t, svc.Deliver(context.Background(), logID))

	var row WhatsappLog
	require.NoError(t, db.First(&row, "id = ?", logID).Error)
	assert.Equal(t, "failed", row.Status)
	require.NotNil(t, row.ErrorMessage)
	assert.Equal(t, "gateway timeout", *row.ErrorMessage)
	assert.Nil(t, row.SentAt)
}

func TestDeliverWithoutProviderLeavesQueued(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)

	logID := enqueue(t, db, svc)
	require.NoError(t, svc.Deliver(context.Background(), logID))

	var row WhatsappLog
	require.NoError(t, db.First(&row, "id = ?", logID).Error)
	assert.Equal(t, "queued", row.Status)
}
