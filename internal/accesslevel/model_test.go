package accesslevel

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/bulletin-board-backend/internal/pkg/apperror"
)

func levelPtr(l Level) *Level { return &l }

func TestNewAndSerialize(t *testing.T) {
	a, err := New(levelPtr(Admin), "admin-user")
	require.NoError(t, err)

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"accessLevelId": 2, "description": "admin-user"}`, string(raw))

	unsaved, err := New(nil, "viewer")
	require.NoError(t, err)
	raw, err = json.Marshal(unsaved)
	require.NoError(t, err)
	assert.JSONEq(t, `{"accessLevelId": null, "description": "viewer"}`, string(raw))
}

func TestNewValidation(t *testing.T) {
	_, err := New(levelPtr(Level(4)), "ok")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	assert.Equal(t, "accessLevelId invalid", err.Error())

	_, err = New(nil, "<em></em>")
	assert.ErrorIs(t, err, apperror.ErrInvalidArgument)
	assert.Equal(t, "description is invalid", err.Error())

	_, err = New(nil, strings.Repeat("d", 33))
	assert.ErrorIs(t, err, apperror.ErrRange)
	assert.Equal(t, "description too large", err.Error())
}

func TestSetDescriptionBoundary(t *testing.T) {
	a, err := New(nil, "viewer")
	require.NoError(t, err)

	assert.NoError(t, a.SetDescription(strings.Repeat("x", 32)))
	assert.ErrorIs(t, a.SetDescription(strings.Repeat("x", 33)), apperror.ErrRange)
	assert.Equal(t, strings.Repeat("x", 32), a.Description())
}
