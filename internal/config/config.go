package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Converter
	PostgreSQL
	HTTP
}

type App struct {
	TempDirectory   string
	SweepInterval   time.Duration
	TempMaxAge      time.Duration
	MaxFiles        int
	MaxFileSize     int64
	MaxRequestBytes int64
}

const requestOverhead = 1 << 20

// RequestBytesLimit returns the cap on a request body. Unless set
// explicitly it fits one file more than MaxFiles, so an oversized batch is
// still parsed and rejected by file count.
func (a App) RequestBytesLimit() int64 {
	if a.MaxRequestBytes > 0 {
		return a.MaxRequestBytes
	}

	return int64(a.MaxFiles+1)*a.MaxFileSize + requestOverhead
}

type Converter struct {
	Bin            string
	Args           []string
	Flags          []string
	Timeout        time.Duration
	MaxConcurrency int
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// Enabled reports whether conversion history should be stored.
func (p PostgreSQL) Enabled() bool {
	return p.Host != ""
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			TempDirectory:   cmd.String("temp-dir"),
			SweepInterval:   cmd.Duration("sweep-interval"),
			TempMaxAge:      cmd.Duration("temp-max-age"),
			MaxFiles:        cmd.Int("max-files"),
			MaxFileSize:     cmd.Int64("max-file-size"),
			MaxRequestBytes: cmd.Int64("max-request-bytes"),
		},
		Converter: Converter{
			Bin:            cmd.String("converter-bin"),
			Args:           cmd.StringSlice("converter-args"),
			Flags:          cmd.StringSlice("converter-flags"),
			Timeout:        cmd.Duration("converter-timeout"),
			MaxConcurrency: cmd.Int("converter-concurrency"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
			CORSOrigins:  cmd.StringSlice("cors-origins"),
		},
	}
}
