package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr            string
	GinMode            string
	LogLevel           string
	DBDSN              string
	DBUser             string
	DBPassword         string
	DBHost             string
	DBName             string
	AutoMigrate        bool
	CORSAllowedOrigins []string
}

// LoadEnv reads configuration from the process environment, after loading
// a .env file from the working directory when one exists.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:            getenv("APP_ADDR", ":8080"),
		GinMode:            getenv("GIN_MODE", ""),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		DBDSN:              getenv("DB_DSN", ""),
		DBUser:             getenv("DB_USER", "root"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBHost:             getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:             getenv("DB_NAME", "vehicle_rental"),
		AutoMigrate:        getbool("DB_AUTO_MIGRATE", true),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
