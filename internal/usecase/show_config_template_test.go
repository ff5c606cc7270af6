package usecase_test

import (
	"context"
	"testing"

	"github.com/draalcore/devtool/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	uc := usecase.NewShowConfigTemplate()

	out, err := uc.Execute(context.Background(), usecase.ShowConfigTemplateInput{})

	require.NoError(t, err)
	assert.Contains(t, out.Template, "[lint]")
	assert.Contains(t, out.Template, "[release]")
	assert.Contains(t, out.Template, "flake8")
}
