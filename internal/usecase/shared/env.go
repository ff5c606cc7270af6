package shared

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/draalcore/devtool/internal/domain"
)

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidEnvVarName returns true if the name is a valid environment variable name.
func IsValidEnvVarName(name string) bool {
	return envNamePattern.MatchString(name)
}

// ValidateEnvPairs checks that every entry is KEY=VALUE with a valid KEY.
func ValidateEnvPairs(pairs []string) error {
	for _, pair := range pairs {
		name, _, ok := strings.Cut(pair, "=")
		if !ok || !IsValidEnvVarName(name) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidEnv, pair)
		}
	}
	return nil
}
