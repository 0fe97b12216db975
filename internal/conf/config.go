package conf

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"

	"scraper-dashboard/internal/pkg/logger"
)

const envPrefix = "DASHBOARD"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     logger.Config `mapstructure:"log"`
	Source  SourceConfig  `mapstructure:"source"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Query   QueryConfig   `mapstructure:"query"`
	Publish PublishConfig `mapstructure:"publish"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr은 HTTP 서버가 바인딩할 주소입니다.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SourceConfig는 컨텐츠 스냅샷을 어디서 읽을지 정합니다.
type SourceConfig struct {
	Kind         string `mapstructure:"kind"` // memory, file, s3
	Path         string `mapstructure:"path"`
	SettingsPath string `mapstructure:"settings_path"`
	Bucket       string `mapstructure:"bucket"`
	Key          string `mapstructure:"key"`
	SettingsKey  string `mapstructure:"settings_key"`
	Region       string `mapstructure:"region"`
}

// RedisConfig의 Addr이 비어 있으면 캐시를 사용하지 않습니다.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type QueryConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type PublishConfig struct {
	Bucket string `mapstructure:"bucket"`
	Key    string `mapstructure:"key"`
}

func (c *Config) Validate() error {
	return validation.Errors{
		"server": validation.ValidateStruct(&c.Server,
			validation.Field(&c.Server.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		),
		"query": validation.ValidateStruct(&c.Query,
			validation.Field(&c.Query.PageSize, validation.Required, validation.Min(1)),
		),
		"source": validation.ValidateStruct(&c.Source,
			validation.Field(&c.Source.Kind, validation.Required, validation.In("memory", "file", "s3")),
			validation.Field(&c.Source.Path, validation.When(c.Source.Kind == "file", validation.Required)),
			validation.Field(&c.Source.Bucket, validation.When(c.Source.Kind == "s3", validation.Required)),
		),
		"redis": validation.ValidateStruct(&c.Redis,
			validation.Field(&c.Redis.TTL, validation.When(c.Redis.Addr != "", validation.Required)),
		),
	}.Filter()
}

func setDefaults(v *viper.Viper) {
	def := logger.DefaultConfig()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.format", def.Format)
	v.SetDefault("log.output", def.Output)
	v.SetDefault("log.enablestacktrace", def.EnableStacktrace)
	v.SetDefault("log.file.filename", def.File.Filename)
	v.SetDefault("log.file.maxsize", def.File.MaxSize)
	v.SetDefault("log.file.maxage", def.File.MaxAge)
	v.SetDefault("log.file.maxbackups", def.File.MaxBackups)
	v.SetDefault("log.file.compress", def.File.Compress)
	v.SetDefault("source.kind", "memory")
	v.SetDefault("source.key", "snapshot.json")
	v.SetDefault("source.settings_key", "settings.json")
	v.SetDefault("source.region", "ap-northeast-2")
	v.SetDefault("source.path", "")
	v.SetDefault("source.settings_path", "")
	v.SetDefault("source.bucket", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("query.page_size", 12)
	v.SetDefault("publish.bucket", "")
	v.SetDefault("publish.key", "index.html")
}

// LoadConfig는 설정 파일과 DASHBOARD_ 접두사 환경변수를 읽어 설정을 만듭니다.
// path가 비어 있으면 기본값과 환경변수만 사용합니다.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}
