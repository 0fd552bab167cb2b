package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/chirp/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

type runner func(ctx context.Context, stdin string, args ...string) (stdout string, stderr string, err error)

// Store keeps credentials in the user's password-store via the pass CLI.
type Store struct {
	run runner
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPass}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, value+"\n", "insert", "--multiline", "--force", key); err != nil {
		return passError("insert", key, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", key)
	if err != nil {
		if isMissingEntry(stderr) {
			return "", fmt.Errorf("pass entry %q: %w", key, ports.ErrSecretNotFound)
		}
		return "", passError("show", key, err, stderr)
	}

	// pass show prints the password on the first line; extra lines are metadata.
	first, _, _ := strings.Cut(stdout, "\n")
	return strings.TrimSuffix(first, "\r"), nil
}

// Delete removes the entry. A missing entry is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, stderr, err := s.run(ctx, "", "rm", "--force", key); err != nil {
		if isMissingEntry(stderr) {
			return nil
		}
		return passError("rm", key, err, stderr)
	}

	return nil
}

func isMissingEntry(stderr string) bool {
	return strings.Contains(stderr, "is not in the password store")
}

func runPass(ctx context.Context, stdin string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if errors.Is(err, exec.ErrNotFound) {
		return "", "", ErrUnavailable
	}
	if err != nil {
		return "", "", fmt.Errorf("locate pass: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func passError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}

	return fmt.Errorf("pass %s %q: %w (%s)", op, key, err, stderr)
}
