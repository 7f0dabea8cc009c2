package opener

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// DefaultCommand returns the platform's URL opener.
func DefaultCommand() (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// ExecOpener starts an external command with the URL as its last argument
// and does not wait for it.
type ExecOpener struct {
	command  string
	args     []string
	logger   *zap.Logger
	launched atomic.Int64
}

func NewExecOpener(command string, args []string, logger *zap.Logger) *ExecOpener {
	if command == "" {
		command, args = DefaultCommand()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecOpener{command: command, args: args, logger: logger}
}

func (o *ExecOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	argv := append(append([]string{}, o.args...), url)
	cmd := exec.Command(o.command, argv...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", o.command, err)
	}
	o.launched.Inc()

	go func() {
		if err := cmd.Wait(); err != nil {
			o.logger.Debug("opener exited with error", zap.String("command", o.command), zap.Error(err))
		}
	}()

	o.logger.Debug("opened URL", zap.String("command", o.command), zap.String("url", url))
	return nil
}

// Launched reports how many commands have been started.
func (o *ExecOpener) Launched() int64 {
	return o.launched.Load()
}
