package notification

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(ttl time.Duration) (*ToastHub, *clock.Mock) {
	mockClock := clock.NewMock()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewToastHub(ttl, mockClock, logger), mockClock
}

func TestToastHub_PushAndActive(t *testing.T) {
	hub, _ := newTestHub(4 * time.Second)

	hub.Push("已收藏", "已將活動加入收藏")
	hub.Push("提醒", "「Opening Keynote」將於 5m 後開始")

	active := hub.Active()
	require.Len(t, active, 2)
	assert.Equal(t, "已收藏", active[0].Title)
	assert.Equal(t, "提醒", active[1].Title)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestToastHub_ToastsExpire(t *testing.T) {
	hub, mockClock := newTestHub(4 * time.Second)

	hub.Push("first", "one")
	mockClock.Add(3 * time.Second)
	hub.Push("second", "two")

	require.Len(t, hub.Active(), 2)

	// 5s after the first push: the first toast is gone, the second remains.
	mockClock.Add(2 * time.Second)
	active := hub.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Title)

	mockClock.Add(5 * time.Second)
	assert.Empty(t, hub.Active())
}

func TestToastHub_ActiveOnEmptyHub(t *testing.T) {
	hub, _ := newTestHub(4 * time.Second)

	assert.Empty(t, hub.Active())
}
