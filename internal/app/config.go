package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес HTTP API.
	HTTPAddr string
	// MetricsAddr — адрес сервера метрик и health-проверок.
	MetricsAddr string
	// PostgresDSN — строка подключения к PostgreSQL.
	// Пустое значение включает in-memory хранилище.
	PostgresDSN string
	// PostgresAutoMigrate — применять миграции при старте.
	PostgresAutoMigrate bool
	// KafkaBrokers — адреса брокеров через запятую; пусто — без Kafka.
	KafkaBrokers string
	// LogLevel — уровень логирования logrus.
	LogLevel string
}

// DefaultConfig возвращает базовые значения конфигурации.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:            ":8080",
		MetricsAddr:         ":9090",
		PostgresDSN:         "",
		PostgresAutoMigrate: true,
		KafkaBrokers:        "",
		LogLevel:            "info",
	}
}

// LoadConfig читает конфигурацию из файла config.yml (если есть) и
// переменных окружения с префиксом TIENDA (TIENDA_HTTP_ADDR и т.д.).
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.auto_migrate", true)
	v.SetDefault("kafka.brokers", "")
	v.SetDefault("log.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("TIENDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return Config{
		HTTPAddr:            v.GetString("http.addr"),
		MetricsAddr:         v.GetString("metrics.addr"),
		PostgresDSN:         v.GetString("postgres.dsn"),
		PostgresAutoMigrate: v.GetBool("postgres.auto_migrate"),
		KafkaBrokers:        v.GetString("kafka.brokers"),
		LogLevel:            v.GetString("log.level"),
	}, nil
}
