package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	DB         DBConfig
	Redis      RedisConfig
	LLM        LLMConfig
	Auth       AuthConfig
	Generation GenerationConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type LLMConfig struct {
	ServerURL string
	Model     string
	Timeout   time.Duration
}

type AuthConfig struct {
	Enabled   bool
	SecretKey string
}

// GenerationConfig carries the generation defaults that used to live as
// literals in request handling: the fallback content locator and
// distributions applied when a request omits them, plus the limits and
// cache policy of the pipeline.
type GenerationConfig struct {
	DefaultTenantID       string
	DefaultFilterKey      string
	DefaultFilterValue    string
	DefaultTotalQuestions int
	MaxTotalQuestions     int
	DefaultTypeDist       map[string]float64
	DefaultDifficultyDist map[string]float64
	DefaultBloomsDist     map[string]float64
	SummaryCacheTTL       time.Duration
	SummaryCacheEnabled   bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			ServerURL: viper.GetString("llm.server"),
			Model:     viper.GetString("llm.model"),
			Timeout:   viper.GetDuration("llm.timeout") * time.Second,
		},
		Auth: AuthConfig{
			Enabled:   viper.GetBool("auth.enabled"),
			SecretKey: viper.GetString("auth.secret_key"),
		},
		Generation: GenerationConfig{
			DefaultTenantID:       viper.GetString("generation.default_tenant_id"),
			DefaultFilterKey:      viper.GetString("generation.default_filter_key"),
			DefaultFilterValue:    viper.GetString("generation.default_filter_value"),
			DefaultTotalQuestions: viper.GetInt("generation.default_total_questions"),
			MaxTotalQuestions:     viper.GetInt("generation.max_total_questions"),
			DefaultTypeDist:       toFloatMap(viper.GetStringMapString("generation.default_type_distribution")),
			DefaultDifficultyDist: toFloatMap(viper.GetStringMapString("generation.default_difficulty_distribution")),
			DefaultBloomsDist:     toFloatMap(viper.GetStringMapString("generation.default_blooms_distribution")),
			SummaryCacheTTL:       viper.GetDuration("generation.summary_cache_ttl") * time.Second,
			SummaryCacheEnabled:   viper.GetBool("generation.summary_cache_enabled"),
		},
	}

	// Override with environment variables if set
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("AUTH_SECRET_KEY"); secret != "" {
		config.Auth.SecretKey = secret
	}

	return config, nil
}

// toFloatMap converts viper's string-valued maps into fraction maps.
// Unparseable values are dropped rather than defaulted, so a typo in the
// config surfaces as a validation error instead of a silent zero.
func toFloatMap(m map[string]string) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		out[k] = f
	}
	return out
}

func setDefaults() {
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 120)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("llm.model", "qwen3:0.6b")
	viper.SetDefault("llm.timeout", 120)
	viper.SetDefault("generation.default_tenant_id", "1305101920")
	viper.SetDefault("generation.default_filter_key", "toc_level_1_title")
	viper.SetDefault("generation.default_filter_value", "01_01920_ch01_ptg01_hires_001-026")
	viper.SetDefault("generation.default_total_questions", 10)
	viper.SetDefault("generation.max_total_questions", 100)
	viper.SetDefault("generation.default_type_distribution", map[string]string{
		"mcq": "0.4", "tf": "0.3", "fib": "0.3",
	})
	viper.SetDefault("generation.default_difficulty_distribution", map[string]string{
		"basic": "0.3", "intermediate": "0.3", "advanced": "0.4",
	})
	viper.SetDefault("generation.default_blooms_distribution", map[string]string{
		"remember": "0.3", "apply": "0.4", "analyze": "0.3",
	})
	viper.SetDefault("generation.summary_cache_ttl", 3600)
	viper.SetDefault("generation.summary_cache_enabled", true)
}

func (c *Config) GetDSN() string {
	// Oracle DSN format: user/password@host:port/service
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
