package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

const (
	envPrefix = "PDF_CONVERTER_"

	mebibyte           = 1 << 20
	defaultMaxFiles    = 5
	defaultMaxFileSize = 50 * mebibyte
)

func flags() []cli.Flag {
	var config string

	source := func(env, key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(
			cli.EnvVar(envPrefix+env),
			yaml.YAML(key, altsrc.NewStringPtrSourcer(&config)),
		)
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:    "temp-dir",
			Aliases: []string{"t"},
			Usage:   "Set scratch directory for uploads and artifacts",
			Value:   filepath.Join(os.TempDir(), "pdf_converter"),
			Sources: source("TEMP_DIR", "app.temp_dir"),
		},
		&cli.DurationFlag{
			Name:      "sweep-interval",
			Usage:     "Set interval between scratch directory sweeps",
			Value:     10 * time.Minute,
			Sources:   source("SWEEP_INTERVAL", "app.sweep_interval"),
			Validator: validatePositive[time.Duration],
		},
		&cli.DurationFlag{
			Name:      "temp-max-age",
			Usage:     "Remove scratch files older than this",
			Value:     1 * time.Hour,
			Sources:   source("TEMP_MAX_AGE", "app.temp_max_age"),
			Validator: validatePositive[time.Duration],
		},
		&cli.IntFlag{
			Name:      "max-files",
			Usage:     "Set maximum number of files per request",
			Value:     defaultMaxFiles,
			Sources:   source("MAX_FILES", "app.max_files"),
			Validator: validatePositive[int],
		},
		&cli.Int64Flag{
			Name:      "max-file-size",
			Usage:     "Set maximum size of a single file in bytes",
			Value:     defaultMaxFileSize,
			Sources:   source("MAX_FILE_SIZE", "app.max_file_size"),
			Validator: validatePositive[int64],
		},
		&cli.Int64Flag{
			Name:      "max-request-bytes",
			Usage:     "Set maximum size of a request body in bytes, 0 derives it from max-files and max-file-size",
			Sources:   source("MAX_REQUEST_BYTES", "app.max_request_bytes"),
			Validator: validateNonNegative[int64],
		},

		&cli.StringFlag{
			Name:    "converter-bin",
			Usage:   "Set converter executable",
			Value:   "java",
			Sources: source("CONVERTER_BIN", "converter.bin"),
		},
		&cli.StringSliceFlag{
			Name:    "converter-args",
			Usage:   "Set arguments passed before the input and output paths",
			Value:   []string{"-jar", "PDFToHTML.jar"},
			Sources: source("CONVERTER_ARGS", "converter.args"),
		},
		&cli.StringSliceFlag{
			Name:    "converter-flags",
			Usage:   "Set arguments passed after the input and output paths",
			Value:   []string{"-fm=EMBED_BASE64", "-im=EMBED_BASE64"},
			Sources: source("CONVERTER_FLAGS", "converter.flags"),
		},
		&cli.DurationFlag{
			Name:      "converter-timeout",
			Usage:     "Set maximum duration of a single conversion",
			Value:     2 * time.Minute,
			Sources:   source("CONVERTER_TIMEOUT", "converter.timeout"),
			Validator: validatePositive[time.Duration],
		},
		&cli.IntFlag{
			Name:      "converter-concurrency",
			Usage:     "Set maximum number of simultaneous conversions",
			Value:     runtime.NumCPU(),
			Sources:   source("CONVERTER_CONCURRENCY", "converter.concurrency"),
			Validator: validatePositive[int],
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host, conversion history is disabled when empty",
			Sources: source("PG_HOST", "postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: source("PG_PORT", "postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: source("PG_USERNAME", "postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: source("PG_PASSWORD", "postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "pdf_converter",
			Sources: source("PG_DBNAME", "postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("HTTP_HOST", "http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("HTTP_PORT", "http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("HTTP_IDLE_TIMEOUT", "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: source("HTTP_READ_TIMEOUT", "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   3 * time.Minute,
			Sources: source("HTTP_WRITE_TIMEOUT", "http.write_timeout"),
		},
		&cli.StringSliceFlag{
			Name:    "cors-origins",
			Usage:   "Set origins allowed to call the API, \"*\" allows any",
			Value:   []string{"*"},
			Sources: source("CORS_ORIGINS", "http.cors_origins"),
		},
	}
}

func validatePositive[T int | int64 | time.Duration](v T) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %v", v)
	}

	return nil
}

func validateNonNegative[T int | int64](v T) error {
	if v < 0 {
		return fmt.Errorf("must not be negative, got %v", v)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
