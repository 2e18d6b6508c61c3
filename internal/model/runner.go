package model

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/octobees/prompt-relay/api/internal/logger"
)

const stderrExcerpt = 512

// Runner hands a complete prompt to a local model and returns its answer.
type Runner interface {
	Run(ctx context.Context, prompt string) (string, error)
}

// CommandRunner spawns a fresh process per prompt, writing the prompt to
// stdin and collecting stdout once the process exits.
type CommandRunner struct {
	name string
	args []string
}

// NewCommandRunner validates the argv used to start the model process.
func NewCommandRunner(argv []string) (*CommandRunner, error) {
	if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
		return nil, errors.New("model: command must not be empty")
	}
	return &CommandRunner{name: argv[0], args: append([]string(nil), argv[1:]...)}, nil
}

// Run blocks until the process exits. Both output pipes are fully drained
// before it returns.
func (r *CommandRunner) Run(ctx context.Context, prompt string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.name, r.args...)
	cmd.Stdin = strings.NewReader(prompt)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return "", fmt.Errorf("run %s: %w", r.name, err)
	}
	if stdout.Len() > 0 {
		logger.FromContext(ctx).Warn("model process exited non-zero",
			zap.Int("exit_code", exitErr.ExitCode()),
			zap.String("stderr", excerpt(stderr.String())),
		)
		return stdout.String(), nil
	}
	if msg := excerpt(stderr.String()); msg != "" {
		return "", fmt.Errorf("%s exited with code %d: %s", r.name, exitErr.ExitCode(), msg)
	}
	return "", fmt.Errorf("%s exited with code %d", r.name, exitErr.ExitCode())
}

func excerpt(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrExcerpt {
		cut := stderrExcerpt
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut] + "..."
	}
	return s
}

var _ Runner = (*CommandRunner)(nil)
