package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `env-default:"local" yaml:"env"`                             // Env is the current environment: local, dev, prod.
	Postgres   PostgresConfig   `                    yaml:"postgres"    env-required:"true"` // Postgres holds the database configuration
	HTTPServer HTTPServerConfig `                    yaml:"http_server"`                     // HTTPServer holds the API listener configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

// HTTPServerConfig struct holds the configuration details for the HTTP API listener.
type HTTPServerConfig struct {
	Address     string        `yaml:"address"      env-default:":8080"` // Address is the listen address in host:port form.
	ReadTimeout time.Duration `yaml:"read_timeout" env-default:"5s"`    // ReadTimeout limits reading the full request.
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`   // IdleTimeout limits keep-alive connections.
}

// MustLoad loads the configuration from a YAML file and returns a Config struct.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		panic("config error: " + err.Error())
	}

	defReadTimeout := 5
	defIdleTimeout := 60

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("http_server.address", ":8080")
	viper.SetDefault("http_server.read_timeout", time.Duration(defReadTimeout*int(time.Second)))
	viper.SetDefault("http_server.idle_timeout", time.Duration(defIdleTimeout*int(time.Second)))

	return &Config{
		Env: viper.GetString("env"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Dbname:   viper.GetString("postgres.db_name"),
		},
		HTTPServer: HTTPServerConfig{
			Address:     viper.GetString("http_server.address"),
			ReadTimeout: viper.GetDuration("http_server.read_timeout"),
			IdleTimeout: viper.GetDuration("http_server.idle_timeout"),
		},
	}
}
