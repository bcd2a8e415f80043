// Package converter runs the external PDF to HTML tool and interprets its
// output.
package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/pdf_converter/internal/config"
	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const (
	defaultTimeout = 2 * time.Minute
	waitDelay      = 5 * time.Second
	maxOutputLog   = 2048
)

type Converter interface {
	Convert(ctx context.Context, job *domain.ConversionJob) (*domain.Artifact, error)
}

// executor abstracts process execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()

	return out.Bytes(), err
}

// Invoker runs `<bin> <args...> <input> <output> <flags...>` once per job.
// Arguments and flags are passed through unchanged.
type Invoker struct {
	log     *slog.Logger
	bin     string
	args    []string
	flags   []string
	timeout time.Duration
	exec    executor
}

func NewInvoker(log *slog.Logger, cfg config.Converter) *Invoker {
	return newInvoker(log, cfg, osExecutor{})
}

func newInvoker(log *slog.Logger, cfg config.Converter, exec executor) *Invoker {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Invoker{
		log:     log,
		bin:     cfg.Bin,
		args:    cfg.Args,
		flags:   cfg.Flags,
		timeout: timeout,
		exec:    exec,
	}
}

// Available reports whether the converter binary can be found.
func (i *Invoker) Available() error {
	if _, err := i.exec.LookPath(i.bin); err != nil {
		return fmt.Errorf("converter %q not found: %w", i.bin, err)
	}

	return nil
}

func (i *Invoker) Convert(ctx context.Context, job *domain.ConversionJob) (*domain.Artifact, error) {
	log := i.log.With(slog.String("job_id", job.ID))

	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	args := make([]string, 0, len(i.args)+len(i.flags)+2)
	args = append(args, i.args...)
	args = append(args, job.InputPath, job.OutputPath)
	args = append(args, i.flags...)

	log.DebugContext(ctx, "running converter", slog.String("bin", i.bin), slog.Any("args", args))

	start := time.Now()
	output, err := i.exec.CombinedOutput(ctx, i.bin, args...)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}

		return nil, fmt.Errorf("%w: %s exited: %w: %s", domain.ErrConversionFailed, i.bin, err, trim(output))
	}

	artifact, err := findArtifact(job)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "converter finished",
		slog.String("artifact", artifact.Path),
		slog.String("kind", string(artifact.Kind)),
		slog.Duration("took", time.Since(start)),
	)

	return artifact, nil
}

func findArtifact(job *domain.ConversionJob) (*domain.Artifact, error) {
	for _, path := range job.OutputCandidates() {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		kind := domain.ArtifactHTML
		if strings.EqualFold(filepath.Ext(path), ".zip") {
			kind = domain.ArtifactZIP
		}

		return &domain.Artifact{Kind: kind, Path: path}, nil
	}

	return nil, fmt.Errorf("%w: no output produced for %s", domain.ErrConversionFailed, filepath.Base(job.InputPath))
}

func trim(output []byte) string {
	s := strings.TrimSpace(string(output))
	if len(s) > maxOutputLog {
		s = s[len(s)-maxOutputLog:]
	}

	return s
}
