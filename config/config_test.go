package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadServiceConfigDefaults(t *testing.T) {
	os.Unsetenv("GRAPHSERVER_NAME")
	svc := LoadServiceConfig("GRAPHSERVER")
	assert.Equal(t, "", svc.Name)
	assert.Equal(t, "development", svc.Environment)
	assert.Equal(t, "info", svc.LogLevel)
}

func TestLoadDatabaseConfigDefaultsToPostgres(t *testing.T) {
	os.Unsetenv("GRAPHSERVER_DB_URL")
	db := LoadDatabaseConfig("GRAPHSERVER_DB")
	assert.Contains(t, db.URL, "postgres://")
}

func TestValidatorAccumulatesErrors(t *testing.T) {
	v := NewValidator()
	v.RequireString("Name", "")
	v.RequireOneOf("Environment", "nonsense", []string{"development", "production"})
	assert.False(t, v.IsValid())
	assert.Len(t, v.Errors(), 2)
	assert.Error(t, v.Validate())
}

func TestValidatorPassesWhenAllRulesSatisfied(t *testing.T) {
	v := NewValidator()
	v.RequireString("Name", "graphserver")
	v.RequirePositiveInt("Port", 8080)
	assert.True(t, v.IsValid())
	assert.NoError(t, v.Validate())
}

func TestEnvConfigPrefixing(t *testing.T) {
	os.Setenv("GRAPHSERVER_FOO", "bar")
	defer os.Unsetenv("GRAPHSERVER_FOO")

	ec := NewEnvConfig("GRAPHSERVER")
	assert.Equal(t, "bar", ec.GetString("FOO", "default"))
	assert.Equal(t, "default", ec.GetString("MISSING", "default"))
}
