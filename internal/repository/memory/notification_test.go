package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_Create_DedupsByKindAndDate(t *testing.T) {
	t.Parallel()
	repo := NewNotificationRepository()
	ctx := context.Background()

	first := &notification.Notification{
		ID:          "n1",
		Kind:        notification.KindLateEmployees,
		Message:     "2 employees haven't clocked in yet",
		EmployeeIDs: []int{1, 2},
		Timestamp:   time.Now(),
		Date:        "2024-03-04",
	}
	require.NoError(t, repo.Create(ctx, first))

	dup := &notification.Notification{
		ID:          "n2",
		Kind:        notification.KindLateEmployees,
		EmployeeIDs: []int{3},
		Timestamp:   time.Now(),
		Date:        "2024-03-04",
	}
	assert.ErrorIs(t, repo.Create(ctx, dup), notification.ErrDuplicateForDate)

	// A different calendar date is a different dedup key.
	nextDay := &notification.Notification{
		ID:        "n3",
		Kind:      notification.KindLateEmployees,
		Timestamp: time.Now(),
		Date:      "2024-03-05",
	}
	assert.NoError(t, repo.Create(ctx, nextDay))
}

func TestNotificationRepository_ExistsByKindAndDate(t *testing.T) {
	t.Parallel()
	repo := NewNotificationRepository()
	ctx := context.Background()

	exists, err := repo.ExistsByKindAndDate(ctx, notification.KindLateEmployees, "2024-03-04")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(ctx, &notification.Notification{
		ID:        "n1",
		Kind:      notification.KindLateEmployees,
		Timestamp: time.Now(),
		Date:      "2024-03-04",
	}))

	exists, err = repo.ExistsByKindAndDate(ctx, notification.KindLateEmployees, "2024-03-04")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestNotificationRepository_List_MostRecentFirst(t *testing.T) {
	t.Parallel()
	repo := NewNotificationRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &notification.Notification{
		ID: "n1", Kind: notification.KindLateEmployees, Date: "2024-03-04",
	}))
	require.NoError(t, repo.Create(ctx, &notification.Notification{
		ID: "n2", Kind: notification.KindLateEmployees, Date: "2024-03-05",
	}))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "n2", items[0].ID)
	assert.Equal(t, "n1", items[1].ID)
}
