package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go-simpler.org/env"
)

// Environment holds the values read from the process environment.
type Environment struct {
	AuroraPrivateKey string `env:"AURORA_PRIVATE_KEY"`
	ConfigPath       string `env:"DEPLOYER_CONFIG"`
}

// LoadEnvironment loads .env files (if any) into the process environment and
// binds the variables into an Environment. Variables already set in the
// process are never overridden by a .env file.
func LoadEnvironment(dotenvFiles ...string) (*Environment, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil {
		logrus.Debugf("No .env file loaded, using process environment: %v", err)
	} else {
		logrus.Debug(".env file loaded")
	}

	var e Environment
	if err := env.Load(&e, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if e.AuroraPrivateKey == "" {
		logrus.Warn("AURORA_PRIVATE_KEY is not set; Aurora profiles will carry an undefined credential")
	}
	return &e, nil
}
