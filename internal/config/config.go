package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gzelashvili/PlayZone-ReservationService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server      Server      `toml:"server"`
	Database    Database    `toml:"database"`
	Logs        Logs        `toml:"logs"`
	Metrics     Metrics     `toml:"metrics"`
	MailService MailService `toml:"mail_service"`
	Booking     Booking     `toml:"booking"`
	Occupancy   Occupancy   `toml:"occupancy"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к БД
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// MailService настройки клиента почтового сервиса
type MailService struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Booking настройки бизнес-окна и сетки слотов.
// WindowEndMinute может превышать 1440 для окна, переходящего через полночь.
type Booking struct {
	WindowStartMinute int `toml:"window_start_minute"`
	WindowEndMinute   int `toml:"window_end_minute"`
	SlotWidthMinutes  int `toml:"slot_width_minutes"`
}

// Occupancy настройки live-трекера занятости
type Occupancy struct {
	TickSeconds    int `toml:"tick_seconds"`
	RefreshSeconds int `toml:"refresh_seconds"`
}

// Load читает конфигурацию из TOML файла и подставляет дефолты
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Booking.SlotWidthMinutes == 0 {
		c.Booking.SlotWidthMinutes = domain.DefaultSlotWidthMinutes
	}
	if c.Booking.WindowStartMinute == 0 && c.Booking.WindowEndMinute == 0 {
		c.Booking.WindowStartMinute = domain.DefaultWindowStartMinute
		c.Booking.WindowEndMinute = domain.DefaultWindowEndMinute
	}
	if c.Occupancy.TickSeconds == 0 {
		c.Occupancy.TickSeconds = 1
	}
	if c.Occupancy.RefreshSeconds == 0 {
		c.Occupancy.RefreshSeconds = 20
	}
}

func (c *Config) validate() error {
	if c.Booking.SlotWidthMinutes < domain.MinSlotWidthMinutes ||
		c.Booking.SlotWidthMinutes > domain.MaxSlotWidthMinutes {
		return fmt.Errorf("config: slot_width_minutes must be in [%d, %d]",
			domain.MinSlotWidthMinutes, domain.MaxSlotWidthMinutes)
	}
	if c.Booking.WindowStartMinute < 0 || c.Booking.WindowStartMinute >= domain.MinutesPerDay {
		return fmt.Errorf("config: window_start_minute must be in [0, %d)", domain.MinutesPerDay)
	}
	if c.Booking.WindowEndMinute <= c.Booking.WindowStartMinute {
		return fmt.Errorf("config: window_end_minute must be greater than window_start_minute")
	}
	if c.Booking.WindowEndMinute-c.Booking.WindowStartMinute > domain.MinutesPerDay {
		return fmt.Errorf("config: business window must not exceed a full day")
	}
	return nil
}
