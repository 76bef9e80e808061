// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environement variables.
type Config struct {
	DBDriver      string `mapstructure:"DB_DRIVER"`
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`

	Language string `mapstructure:"LANGUAGE"`

	// SyncType combined with MultiServerEnabled selects the authoritative
	// write path: every mutation awaits its upsert when both match.
	SyncType           string `mapstructure:"SYNC_TYPE"`
	MultiServerEnabled bool   `mapstructure:"MULTI_SERVER_ENABLED"`

	SyncDelay  time.Duration `mapstructure:"SYNC_DELAY"`
	SyncPeriod time.Duration `mapstructure:"SYNC_PERIOD"`
	SyncDebug  bool          `mapstructure:"SYNC_DEBUG"`

	NotifierDriver string `mapstructure:"NOTIFIER_DRIVER"`
	RedisAddress   string `mapstructure:"REDIS_ADDRESS"`
	AMQPAddress    string `mapstructure:"AMQP_ADDRESS"`

	Levels string `mapstructure:"LEVELS"`

	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	AdminUsername       string        `mapstructure:"ADMIN_USERNAME"`
	AdminPasswordHash   string        `mapstructure:"ADMIN_PASSWORD_HASH"`

	Environement string `mapstructure:"GO_ENV"`
}

// Authoritative reports whether every write must be persisted synchronously
// before the mutation call returns.
func (c Config) Authoritative() bool {
	return c.SyncType == "mysql" && c.MultiServerEnabled
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("LANGUAGE", "en")
	viper.SetDefault("SYNC_DELAY", 500*time.Millisecond)
	viper.SetDefault("SYNC_PERIOD", 500*time.Millisecond)
	viper.SetDefault("SYNC_DEBUG", false)
	viper.SetDefault("LEVELS", "1:50000,2:250000,3:1000000")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
