package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/seed"
	"taskboard-backend/internal/testutil"
)

func TestRun(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	require.NoError(t, db.Create(&user.User{ID: "stale", Name: "Stale", Role: user.RoleMember}).Error)

	summary, err := seed.Run(context.Background(), db.DB)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Users)
	assert.Equal(t, 15, summary.Tasks)
	assert.Equal(t, 3, summary.ByStatus[task.StatusDone])
	assert.Equal(t, 3, summary.ByStatus[task.StatusInProgress])
	assert.Equal(t, 9, summary.ByStatus[task.StatusTodo])

	var users int64
	require.NoError(t, db.Model(&user.User{}).Count(&users).Error)
	assert.EqualValues(t, 5, users, "existing rows are cleared")

	var unassigned task.Task
	require.NoError(t, db.First(&unassigned, "id = ?", "task-14").Error)
	assert.Nil(t, unassigned.AssigneeID)

	var byJane int64
	require.NoError(t, db.Model(&task.Task{}).Where("creator_id = ?", "user-2").Count(&byJane).Error)
	assert.EqualValues(t, 1, byJane)

	// running twice is idempotent
	_, err = seed.Run(context.Background(), db.DB)
	require.NoError(t, err)
	var tasks int64
	require.NoError(t, db.Model(&task.Task{}).Count(&tasks).Error)
	assert.EqualValues(t, 15, tasks)
}
