package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingConfig is returned when a demo is started without its required settings.
var ErrMissingConfig = errors.New("missing required configuration")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Azure AI services
	Conversations     ConversationsConfig
	QuestionAnswering QuestionAnsweringConfig
	Speech            SpeechConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// ConversationsConfig is the conversational language understanding project used by the clock demo.
type ConversationsConfig struct {
	Endpoint       string
	Key            string
	ProjectName    string
	DeploymentName string
	Language       string
	Timeout        time.Duration
	Verbose        bool
}

// QuestionAnsweringConfig is the knowledge base used by the Q&A demo.
type QuestionAnsweringConfig struct {
	Endpoint            string
	Key                 string
	ProjectName         string
	DeploymentName      string
	Top                 int
	ConfidenceThreshold float64
	Timeout             time.Duration
	CacheSize           int
	CacheTTL            time.Duration
}

// SpeechConfig is the speech resource used by the speaking clock.
type SpeechConfig struct {
	Key                 string
	Region              string
	RecognitionLanguage string
	Voice               string
	InputFile           string // WAV file to transcribe instead of the microphone
	OutputFile          string // where to write synthesized audio instead of the speaker
}

// envBindings maps config keys to the environment variables the demos have always used.
var envBindings = map[string]string{
	"conversations.endpoint":             "LS_CONVERSATIONS_ENDPOINT",
	"conversations.key":                  "LS_CONVERSATIONS_KEY",
	"question_answering.endpoint":        "AI_SERVICE_ENDPOINT",
	"question_answering.key":             "AI_SERVICE_KEY",
	"question_answering.project_name":    "QA_PROJECT_NAME",
	"question_answering.deployment_name": "QA_DEPLOYMENT_NAME",
	"speech.key":                         "SPEECH_KEY",
	"speech.region":                      "SPEECH_REGION",
}

// Load loads configuration using Viper.
// A .env file in the working directory is read first, then config.yaml
// (searched in ./config, ., /etc/app/), then the environment.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Conversational language understanding
	cfg.Conversations.Endpoint = v.GetString("conversations.endpoint")
	cfg.Conversations.Key = v.GetString("conversations.key")
	cfg.Conversations.ProjectName = v.GetString("conversations.project_name")
	cfg.Conversations.DeploymentName = v.GetString("conversations.deployment_name")
	cfg.Conversations.Language = v.GetString("conversations.language")
	cfg.Conversations.Timeout = v.GetDuration("conversations.timeout")
	cfg.Conversations.Verbose = v.GetBool("conversations.verbose")

	// Question answering
	cfg.QuestionAnswering.Endpoint = v.GetString("question_answering.endpoint")
	cfg.QuestionAnswering.Key = v.GetString("question_answering.key")
	cfg.QuestionAnswering.ProjectName = v.GetString("question_answering.project_name")
	cfg.QuestionAnswering.DeploymentName = v.GetString("question_answering.deployment_name")
	cfg.QuestionAnswering.Top = v.GetInt("question_answering.top")
	cfg.QuestionAnswering.ConfidenceThreshold = v.GetFloat64("question_answering.confidence_threshold")
	cfg.QuestionAnswering.Timeout = v.GetDuration("question_answering.timeout")
	cfg.QuestionAnswering.CacheSize = v.GetInt("question_answering.cache_size")
	cfg.QuestionAnswering.CacheTTL = v.GetDuration("question_answering.cache_ttl")

	// Speech
	cfg.Speech.Key = v.GetString("speech.key")
	cfg.Speech.Region = v.GetString("speech.region")
	cfg.Speech.RecognitionLanguage = v.GetString("speech.recognition_language")
	cfg.Speech.Voice = v.GetString("speech.voice")
	cfg.Speech.InputFile = v.GetString("speech.input_file")
	cfg.Speech.OutputFile = v.GetString("speech.output_file")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("conversations.project_name", "Clock")
	v.SetDefault("conversations.deployment_name", "production")
	v.SetDefault("conversations.language", "en")
	v.SetDefault("conversations.timeout", "30s")
	v.SetDefault("conversations.verbose", true)

	v.SetDefault("question_answering.timeout", "30s")
	v.SetDefault("question_answering.cache_size", 256)
	v.SetDefault("question_answering.cache_ttl", "10m")

	v.SetDefault("speech.recognition_language", "en-US")
	v.SetDefault("speech.voice", "en-GB-LibbyNeural")
}

// loadEnvFile reads .env if present. Variables already set in the environment win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(".env"); err != nil {
		return fmt.Errorf("error reading .env: %w", err)
	}
	return nil
}

// ValidateConversations checks the settings the clock demo needs.
func (c *Config) ValidateConversations() error {
	return requireAll(map[string]string{
		"LS_CONVERSATIONS_ENDPOINT": c.Conversations.Endpoint,
		"LS_CONVERSATIONS_KEY":      c.Conversations.Key,
	})
}

// ValidateQuestionAnswering checks the settings the Q&A demo needs.
func (c *Config) ValidateQuestionAnswering() error {
	return requireAll(map[string]string{
		"AI_SERVICE_ENDPOINT": c.QuestionAnswering.Endpoint,
		"AI_SERVICE_KEY":      c.QuestionAnswering.Key,
		"QA_PROJECT_NAME":     c.QuestionAnswering.ProjectName,
		"QA_DEPLOYMENT_NAME":  c.QuestionAnswering.DeploymentName,
	})
}

// ValidateSpeech checks the settings the speaking clock needs.
func (c *Config) ValidateSpeech() error {
	return requireAll(map[string]string{
		"SPEECH_KEY":    c.Speech.Key,
		"SPEECH_REGION": c.Speech.Region,
	})
}

func requireAll(values map[string]string) error {
	var missing []string
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
}
