package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/kpauljoseph/wrapbench/pkg/logger"
)

var ErrCopyDeclined = errors.New("copy declined")

const DefaultAnswer = "Y"

// Copier offers to copy a finished experiment file to a fixed destination.
// A Copier with an empty destination does nothing.
type Copier struct {
	destination string
	in          io.Reader
	out         io.Writer
	assumeYes   bool
	interactive bool
	logger      *logger.Logger
}

type CopierOption func(*Copier)

func WithInput(r io.Reader) CopierOption {
	return func(c *Copier) {
		c.in = r
	}
}

func WithPromptOutput(w io.Writer) CopierOption {
	return func(c *Copier) {
		c.out = w
	}
}

func WithAssumeYes(yes bool) CopierOption {
	return func(c *Copier) {
		c.assumeYes = yes
	}
}

// WithInteractive overrides terminal detection on stdin.
func WithInteractive(interactive bool) CopierOption {
	return func(c *Copier) {
		c.interactive = interactive
	}
}

func WithLogger(l *logger.Logger) CopierOption {
	return func(c *Copier) {
		c.logger = l
	}
}

func NewCopier(destination string, options ...CopierOption) *Copier {
	fd := os.Stdin.Fd()
	c := &Copier{
		destination: destination,
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		logger:      logger.Discard(),
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

func (c *Copier) Enabled() bool {
	return c.destination != ""
}

func (c *Copier) Destination() string {
	return c.destination
}

// Confirm asks the operator whether to copy. An empty answer takes the
// default; without a terminal the default is taken without asking.
func (c *Copier) Confirm() (bool, error) {
	if c.assumeYes {
		return true, nil
	}
	if !c.interactive {
		c.logger.Debug("stdin is not a terminal, using default answer %q", DefaultAnswer)
		return isYes(DefaultAnswer), nil
	}

	fmt.Fprintf(c.out, "Copy output to %s? [Y/N] (default: %s): ", c.destination, DefaultAnswer)

	answer, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = DefaultAnswer
	}
	return isYes(answer), nil
}

func isYes(answer string) bool {
	return strings.ToUpper(answer) == "Y"
}

// MaybeCopy copies src to the destination after confirmation and returns
// the path written. It returns ErrCopyDeclined when the operator says no.
func (c *Copier) MaybeCopy(src string) (string, error) {
	if !c.Enabled() {
		return "", nil
	}

	ok, err := c.Confirm()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCopyDeclined
	}

	dst, err := CopyFile(src, c.destination)
	if err != nil {
		return "", err
	}
	c.logger.Debug("Copied %s to %s", src, dst)
	return dst, nil
}

// CopyFile copies src to dst keeping permission bits and modification time.
// When dst is an existing directory the file keeps its base name inside it.
func CopyFile(src, dst string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("failed to stat source: %w", err)
	}

	if dstInfo, err := os.Stat(dst); err == nil && dstInfo.IsDir() {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close destination: %w", err)
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("failed to set modification time: %w", err)
	}

	return dst, nil
}
