package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBClusterConfig
	Redis RedisConfig
	JWT   JWTConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// DBClusterConfig holds one connection block per sede. The sedes are
// independent PostgreSQL servers, each with its own credentials.
type DBClusterConfig struct {
	Centro DBConfig
	Norte  DBConfig
	Sur    DBConfig

	// MigrationsDir, when set, points at the directory containing one
	// migration set per sede (db/migrations/<sede>). Empty disables the
	// migration runner.
	MigrationsDir string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Environment-only deployments carry no .env file.
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !strings.Contains(err.Error(), "no such file") {
				return nil, err
			}
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 8 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: getOrDefault("APP_PORT", "4000"),
			Env:  getOrDefault("APP_ENV", "development"),
		},
		DB: DBClusterConfig{
			Centro:        loadSedeDB("CENTRO"),
			Norte:         loadSedeDB("NORTE"),
			Sur:           loadSedeDB("SUR"),
			MigrationsDir: viper.GetString("MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     getOrDefault("REDIS_HOST", "localhost"),
			Port:     getOrDefault("REDIS_PORT", "6379"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       getOrDefault("JWT_SECRET", "dev_secret_change_this"),
			AccessExpiry: accessExpiry,
		},
	}

	return config, nil
}

// loadSedeDB reads the DB_*_<SEDE> block for one sede.
func loadSedeDB(sede string) DBConfig {
	return DBConfig{
		Host:     getOrDefault("DB_HOST_"+sede, "localhost"),
		Port:     getOrDefault("DB_PORT_"+sede, "5432"),
		User:     viper.GetString("DB_USER_" + sede),
		Password: viper.GetString("DB_PASS_" + sede),
		Name:     getOrDefault("DB_NAME_"+sede, "hospital_"+strings.ToLower(sede)),
	}
}

// ForSede maps a sede key to its DB block.
func (c DBClusterConfig) ForSede(key string) (DBConfig, bool) {
	switch key {
	case "centro":
		return c.Centro, true
	case "norte":
		return c.Norte, true
	case "sur":
		return c.Sur, true
	default:
		return DBConfig{}, false
	}
}

func getOrDefault(key, def string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return def
}
