package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr          string `mapstructure:"listen_addr"`
	FirebaseProjectID   string `mapstructure:"firebase_project_id"`
	FirebaseCredentials string `mapstructure:"firebase_credentials"`
	DefaultTeam         string `mapstructure:"default_team"`

	// Dev swaps Firebase/Firestore for in-memory backends so the API can run
	// without Google credentials.
	Dev bool `mapstructure:"dev"`
}

func New() *Config {
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		logrus.Fatalf("unmarshalling config: %v", err)
	}
	return cfg
}

func SetupCommon() {
	viper.SetDefault("listen_addr", ":5000")
	viper.SetDefault("default_team", "C.C.P.C.")
	viper.SetDefault("dev", false)
	viper.SetEnvPrefix("HACKHUB")

	viper.BindEnv("firebase_project_id")
	viper.BindEnv("firebase_credentials")
	viper.BindEnv("dev")
	viper.AutomaticEnv()
}
