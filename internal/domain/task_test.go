package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTask(t *testing.T) {
	task, err := FindTask("unittest")
	require.NoError(t, err)
	assert.Equal(t, TaskUnitTest, task.Name)

	_, err = FindTask("deploy")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestAllTasks_OnlyReleaseRequiresArgs(t *testing.T) {
	for _, task := range AllTasks() {
		assert.Equal(t, task.Name == TaskRelease, task.RequiresArgs, task.Name)
	}
}
