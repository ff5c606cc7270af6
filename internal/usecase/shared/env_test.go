package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draalcore/devtool/internal/domain"
)

func TestIsValidEnvVarName(t *testing.T) {
	assert.True(t, IsValidEnvVarName("DJANGO_TEST_RUNNER"))
	assert.True(t, IsValidEnvVarName("_x1"))
	assert.False(t, IsValidEnvVarName("1X"))
	assert.False(t, IsValidEnvVarName("A-B"))
	assert.False(t, IsValidEnvVarName(""))
}

func TestValidateEnvPairs(t *testing.T) {
	assert.NoError(t, ValidateEnvPairs(nil))
	assert.NoError(t, ValidateEnvPairs([]string{"A=1", "B=", "C=x=y"}))

	err := ValidateEnvPairs([]string{"A=1", "NOVALUE"})
	assert.ErrorIs(t, err, domain.ErrInvalidEnv)
	assert.Contains(t, err.Error(), "NOVALUE")

	assert.ErrorIs(t, ValidateEnvPairs([]string{"BAD-NAME=1"}), domain.ErrInvalidEnv)
}
