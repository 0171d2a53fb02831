package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config armazena todas as configurações do servidor de duelo.
type Config struct {
	Host        string `env:"HOST"         envDefault:"0.0.0.0"`
	Port        int    `env:"PORT"         envDefault:"3000"`
	StaticDir   string `env:"STATIC_DIR"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"duel-server"`
	ConsulAddr  string `env:"CONSUL_HTTP_ADDR"`
	NATSURL     string `env:"NATS_URL"`
	FeedSubject string `env:"FEED_SUBJECT" envDefault:"duel.events"`
}

// Address é o endereço de escuta "host:porta".
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load lê um .env opcional e depois as variáveis de ambiente.
// Variáveis já definidas no ambiente têm precedência sobre o arquivo.
func Load(dotenvFiles ...string) (Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else {
		log.Println("[Config] Variáveis de ambiente carregadas do .env")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}
