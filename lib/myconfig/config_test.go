package myconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", c.Web.Port)
	assert.Equal(t, "http://localhost:3000/api/weblarek", c.API.BaseURL)
	assert.Equal(t, 5*time.Second, c.API.Timeout)

	for _, field := range []string{"payment", "email", "phone", "address"} {
		rule, exists := c.ValidationRules[field]
		assert.True(t, exists, field)
		assert.True(t, rule.Required, field)
		assert.NotEmpty(t, rule.Message, field)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHOPFRONT_WEB_PORT", "9999")

	c, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "9999", c.Web.Port)
}
