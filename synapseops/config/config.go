package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"

	ResolverRules = "rules"
	ResolverLex   = "lex"
)

type Config struct {
	Addr     string
	Store    string // "memory" or "postgres"
	Resolver string // "rules" or "lex"

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	LexBotID      string
	LexBotAliasID string
	LexLocaleID   string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
}

// fileConfig is the optional YAML overlay. Env vars win over the file,
// the file wins over built-in defaults.
type fileConfig struct {
	Addr     string `yaml:"addr"`
	Store    string `yaml:"store"`
	Resolver string `yaml:"resolver"`

	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBName     string `yaml:"db_name"`

	LexBotID      string `yaml:"lex_bot_id"`
	LexBotAliasID string `yaml:"lex_bot_alias_id"`
	LexLocaleID   string `yaml:"lex_locale_id"`

	AWSRegion          string `yaml:"aws_region"`
	AWSAccessKeyID     string `yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key"`

	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	MinIOBucket    string `yaml:"minio_bucket"`
}

func LoadConfig() Config {
	// Missing .env is fine, the system environment is used as-is.
	_ = godotenv.Load()

	cfg := Config{
		Addr:        ":8000",
		Store:       StoreMemory,
		Resolver:    ResolverRules,
		LexLocaleID: "en_US",
		MinIOBucket: "synapseops-transcripts",
	}
	loadFile(&cfg, getEnv("CONFIG_FILE", "config.yaml"))
	loadEnv(&cfg)
	return cfg
}

func loadFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return
	}
	override(&cfg.Addr, fc.Addr)
	override(&cfg.Store, fc.Store)
	override(&cfg.Resolver, fc.Resolver)
	override(&cfg.DBUser, fc.DBUser)
	override(&cfg.DBPassword, fc.DBPassword)
	override(&cfg.DBHost, fc.DBHost)
	override(&cfg.DBPort, fc.DBPort)
	override(&cfg.DBName, fc.DBName)
	override(&cfg.LexBotID, fc.LexBotID)
	override(&cfg.LexBotAliasID, fc.LexBotAliasID)
	override(&cfg.LexLocaleID, fc.LexLocaleID)
	override(&cfg.AWSRegion, fc.AWSRegion)
	override(&cfg.AWSAccessKeyID, fc.AWSAccessKeyID)
	override(&cfg.AWSSecretAccessKey, fc.AWSSecretAccessKey)
	override(&cfg.MinIOEndpoint, fc.MinIOEndpoint)
	override(&cfg.MinIOAccessKey, fc.MinIOAccessKey)
	override(&cfg.MinIOSecretKey, fc.MinIOSecretKey)
	override(&cfg.MinIOBucket, fc.MinIOBucket)
}

func loadEnv(cfg *Config) {
	override(&cfg.Addr, os.Getenv("ADDR"))
	override(&cfg.Store, os.Getenv("STORE"))
	override(&cfg.Resolver, os.Getenv("RESOLVER"))
	override(&cfg.DBUser, os.Getenv("DB_USER"))
	override(&cfg.DBPassword, os.Getenv("DB_PASSWORD"))
	override(&cfg.DBHost, os.Getenv("DB_HOST"))
	override(&cfg.DBPort, os.Getenv("DB_PORT"))
	override(&cfg.DBName, os.Getenv("DB_NAME"))
	override(&cfg.LexBotID, os.Getenv("LEX_BOT_ID"))
	override(&cfg.LexBotAliasID, os.Getenv("LEX_BOT_ALIAS_ID"))
	override(&cfg.LexLocaleID, os.Getenv("LEX_LOCALE_ID"))
	override(&cfg.AWSRegion, os.Getenv("AWS_REGION"))
	override(&cfg.AWSAccessKeyID, os.Getenv("AWS_ACCESS_KEY_ID"))
	override(&cfg.AWSSecretAccessKey, os.Getenv("AWS_SECRET_ACCESS_KEY"))
	override(&cfg.MinIOEndpoint, os.Getenv("MINIO_ENDPOINT"))
	override(&cfg.MinIOAccessKey, os.Getenv("MINIO_ACCESS_KEY"))
	override(&cfg.MinIOSecretKey, os.Getenv("MINIO_SECRET_KEY"))
	override(&cfg.MinIOBucket, os.Getenv("MINIO_BUCKET"))
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return fallback
}
