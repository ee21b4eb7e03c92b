package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-backend/internal/domain/task"
	"taskboard-backend/internal/domain/user"
	"taskboard-backend/internal/platform/database"
	"taskboard-backend/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestTranslateError_Postgres(t *testing.T) {
	dup := database.TranslateError(&pq.Error{Code: "23505"})
	assert.ErrorIs(t, dup, database.ErrDuplicate)

	fk := database.TranslateError(&pq.Error{Code: "23503"})
	assert.ErrorIs(t, fk, database.ErrReferenced)

	other := &pq.Error{Code: "42P01"}
	assert.Equal(t, error(other), database.TranslateError(other))
}

func TestTranslateError_SQLiteConstraints(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	ctx := context.Background()

	email := strPtr("a@example.com")
	require.NoError(t, db.WithContext(ctx).Create(&user.User{ID: "u1", Name: "A", Email: email, Role: user.RoleMember}).Error)

	err := database.TranslateError(db.WithContext(ctx).Create(&user.User{ID: "u2", Name: "B", Email: email, Role: user.RoleMember}).Error)
	assert.ErrorIs(t, err, database.ErrDuplicate)

	err = database.TranslateError(db.WithContext(ctx).Create(&task.Task{
		ID: "t1", Title: "T", Description: "D",
		Status: task.StatusTodo, Priority: task.PriorityMedium,
		CreatorID: "missing",
	}).Error)
	assert.ErrorIs(t, err, database.ErrReferenced)
}

func TestTranslateError_SQLiteRestrictedDelete(t *testing.T) {
	db := testutil.OpenInMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, db.WithContext(ctx).Create(&user.User{ID: "u1", Name: "A", Role: user.RoleMember}).Error)
	require.NoError(t, db.WithContext(ctx).Create(&task.Task{
		ID: "t1", Title: "T", Description: "D",
		Status: task.StatusTodo, Priority: task.PriorityMedium,
		CreatorID: "u1",
	}).Error)

	err := database.TranslateError(db.WithContext(ctx).Delete(&user.User{}, "id = ?", "u1").Error)
	assert.ErrorIs(t, err, database.ErrReferenced)
	assert.NotErrorIs(t, err, database.ErrDuplicate)

	var count int64
	require.NoError(t, db.WithContext(ctx).Model(&user.User{}).Where("id = ?", "u1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTranslateError_PassThrough(t *testing.T) {
	assert.Nil(t, database.TranslateError(nil))
	plain := errors.New("boom")
	assert.Equal(t, plain, database.TranslateError(plain))
}
