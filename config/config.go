package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server          ServerConfig          `yaml:"server"`
	Logging         LoggingConfig         `yaml:"logging"`
	Gemini          GeminiConfig          `yaml:"gemini"`
	GenerationQuota GenerationQuotaConfig `yaml:"generation_quota"`
	Mongo           MongoConfig           `yaml:"mongo"`
	Kafka           KafkaConfig           `yaml:"kafka"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GeminiConfig 는 텍스트/이미지 생성에 사용하는 모델 설정이다.
// APIKey 는 보통 비워 두고 GEMINI_API_KEY 환경변수로 주입한다.
type GeminiConfig struct {
	APIKey             string `yaml:"api_key"`
	TextModel          string `yaml:"text_model"`
	ImageModel         string `yaml:"image_model"`
	FallbackImageModel string `yaml:"fallback_image_model"`

	// Temperature 는 키가 없을 때만 기본값으로 채운다. 0 도 유효한 값이다.
	Temperature *float32 `yaml:"temperature"`

	// RequestTimeout 은 업스트림 호출 하나에 대한 타임아웃이다. 0 이면 제한 없음.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// GenerationQuotaConfig 는 텍스트 생성 LLM 호출에 대한 속도/일일 한도를 정의한다.
type GenerationQuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

// MongoConfig 는 AI 호출 로그 저장소 설정이다. URI 가 비어 있으면 로그를 저장하지 않는다.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// KafkaConfig 는 pin.generated 이벤트 발행 설정이다. BootstrapServers 가 비어 있으면 발행하지 않는다.
type KafkaConfig struct {
	BootstrapServers string `yaml:"bootstrap_servers"`
	Topic            string `yaml:"topic"`
}

const (
	DefaultTextModel          = "gemini-2.5-flash"
	DefaultImageModel         = "gemini-2.5-flash-image"
	DefaultFallbackImageModel = "imagen-3.0-generate-001"
	DefaultTemperature        = float32(0.7)
	DefaultServerAddr         = ":8080"
	DefaultMongoDatabase      = "pingenius"
	DefaultKafkaTopic         = "pin-genius.pin.events"
)

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	c, err := Parse(data)
	if err != nil {
		panic(err)
	}
	config = c
}

// Parse 는 yaml 설정을 읽어 기본값과 환경변수 오버라이드를 적용한다.
func Parse(data []byte) (*AppConfig, error) {
	var c AppConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	applyDefaults(&c)
	applyEnv(&c)
	return &c, nil
}

// Set 은 전역 설정을 교체한다. 테스트에서 config.yaml 없이 설정을 주입할 때 사용한다.
func Set(c AppConfig) {
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// GeminiAPIKey 는 호출 시점의 API 키를 반환한다.
// 환경변수가 설정 파일보다 우선하며, 키가 교체되어도 재시작 없이 다음 호출부터 반영된다.
func GeminiAPIKey() string {
	if v := strings.TrimSpace(os.Getenv("GEMINI_API_KEY")); v != "" {
		return v
	}
	return GetConfig().Gemini.APIKey
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Gemini.TextModel == "" {
		c.Gemini.TextModel = DefaultTextModel
	}
	if c.Gemini.ImageModel == "" {
		c.Gemini.ImageModel = DefaultImageModel
	}
	if c.Gemini.FallbackImageModel == "" {
		c.Gemini.FallbackImageModel = DefaultFallbackImageModel
	}
	if c.Gemini.Temperature == nil {
		temperature := DefaultTemperature
		c.Gemini.Temperature = &temperature
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = DefaultMongoDatabase
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = DefaultKafkaTopic
	}
}

func applyEnv(c *AppConfig) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Kafka.BootstrapServers = v
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
