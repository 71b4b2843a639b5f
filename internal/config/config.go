package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey     = "API_PORT"
	dbConnEnvKey      = "DB_CONNECTION_URL"
	jwtSecretEnvKey   = "JWT_SECRET"
	jwtAudienceEnvKey = "JWT_AUDIENCE"
	tokenPrefixEnvKey = "JWT_TOKEN_PREFIX"
	tokenExpiryEnvKey = "TOKEN_EXPIRE_MINUTES"
)

const (
	defaultTokenPrefix        = "Bearer"
	defaultTokenExpiryMinutes = 10080 // one week
)

type App struct {
	Port               string
	DBConnectionString string
	JWTSecret          string
	JWTAudience        string
	TokenPrefix        string
	TokenExpiry        time.Duration
}

func NewAppConfig() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	jwtAudience, ok := os.LookupEnv(jwtAudienceEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtAudienceEnvKey)
	}

	tokenPrefix, ok := os.LookupEnv(tokenPrefixEnvKey)
	if !ok {
		tokenPrefix = defaultTokenPrefix
	}

	expiryMinutes := defaultTokenExpiryMinutes
	if expiryStr, ok := os.LookupEnv(tokenExpiryEnvKey); ok {
		minutes, err := strconv.Atoi(expiryStr)
		if err != nil || minutes <= 0 {
			return App{}, fmt.Errorf("invalid %s value: %q", tokenExpiryEnvKey, expiryStr)
		}
		expiryMinutes = minutes
	}

	return App{
		Port:               port,
		DBConnectionString: dbConn,
		JWTSecret:          jwtSecret,
		JWTAudience:        jwtAudience,
		TokenPrefix:        tokenPrefix,
		TokenExpiry:        time.Duration(expiryMinutes) * time.Minute,
	}, nil
}
