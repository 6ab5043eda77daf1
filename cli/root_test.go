package cli

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDatabaseURLPrefersViperOverDefault(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("database.url", "postgres://custom/db")
	assert.Equal(t, "postgres://custom/db", databaseURL())
}

func TestDatabaseURLFallsBackToConfigDefault(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	assert.Contains(t, databaseURL(), "postgres://")
}

func TestWorkerCountFallsBackToDefault(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	assert.Equal(t, 8, workerCount())
}

func TestWorkerCountHonorsViperOverride(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("workers", 16)
	assert.Equal(t, 16, workerCount())
}
