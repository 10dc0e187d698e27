package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	GigaChat  GigaChatConfig
	Knowledge KnowledgeConfig
	Chat      ChatConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type KnowledgeConfig struct {
	DataPath string
	// ReferenceUser is the account owner assumed by balance questions.
	// Single-customer demo assumption; there is no authenticated principal
	// to resolve instead.
	ReferenceUser string
}

type ChatConfig struct {
	// RemoteTimeout bounds the LLM round trip; expiry is treated the same
	// as any other remote failure.
	RemoteTimeout time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine: plain environment variables work for Docker/K8s.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	remoteTimeout, _ := strconv.Atoi(getEnv("CHAT_REMOTE_TIMEOUT", "8"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Knowledge: KnowledgeConfig{
			DataPath:      getEnv("KNOWLEDGE_DATA_PATH", "data/banco.json"),
			ReferenceUser: getEnv("KNOWLEDGE_REFERENCE_USER", "u1"),
		},
		Chat: ChatConfig{
			RemoteTimeout: time.Duration(remoteTimeout) * time.Second,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
