package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_AlignsWithExistingYAMLKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"host":    "localhost",
		},
		"localState": map[string]any{
			"path": "companion.db",
		},
	}

	assert.Equal(t, "postgres.sslMode", canonicalizeEnvKey("POSTGRES_SSLMODE", existing))
	assert.Equal(t, "postgres.host", canonicalizeEnvKey("POSTGRES_HOST", existing))
	assert.Equal(t, "localState.path", canonicalizeEnvKey("LOCALSTATE_PATH", existing))
}

func TestCanonicalizeEnvKey_UnknownSegmentsFallBackToLowercase(t *testing.T) {
	existing := map[string]any{
		"smtp": map[string]any{
			"host": "mail.example.com",
		},
	}

	assert.Equal(t, "smtp.password", canonicalizeEnvKey("SMTP_PASSWORD", existing))
	assert.Equal(t, "unknown.key", canonicalizeEnvKey("UNKNOWN_KEY", existing))
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "localstate", normalizeToken("localState"))
	assert.Equal(t, "magiclinkttl", normalizeToken("magicLinkTtl"))
	assert.Equal(t, "abc123", normalizeToken("a-b_c123"))
}
