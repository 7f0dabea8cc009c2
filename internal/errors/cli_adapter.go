package errors

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// CLIErrorAdapter handles error presentation and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *zap.Logger
	out     io.Writer
}

func NewCLIErrorAdapter(verbose bool, logger *zap.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
		out:     os.Stderr,
	}
}

// WithOutput sets where HandleError prints the user-facing message.
func (a *CLIErrorAdapter) WithOutput(w io.Writer) *CLIErrorAdapter {
	if w != nil {
		a.out = w
	}
	return a
}

// ExitCodeFor determines the appropriate exit code for an error.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	se, ok := As(err)
	if !ok {
		return 1
	}

	switch se.Category {
	case CategoryValidation:
		return 2
	case CategoryRange:
		return 3
	case CategoryState:
		return 4
	case CategoryConfig:
		return 7
	case CategoryInternal:
		return 10
	case CategoryFileSystem:
		return 11
	case CategoryExternal:
		return 0
	default:
		return 1
	}
}

// FormatError formats an error for user-friendly display.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}

	se, ok := As(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}
	if a.verbose {
		return se.Error()
	}

	msg := se.Message
	if ctx := formatContext(se.Context); ctx != "" {
		msg += " (" + ctx + ")"
	}

	switch se.Severity {
	case SeverityWarning:
		return "Warning: " + msg
	default:
		return "Error: " + msg
	}
}

// HandleError prints err to the adapter's output regardless of the log level,
// records it in the log when it warrants a structured entry, and returns the
// process exit code for it.
func (a *CLIErrorAdapter) HandleError(err error) int {
	if err == nil {
		return 0
	}

	code := a.ExitCodeFor(err)
	if a.shouldLog(err) {
		a.logError(err, code)
	}

	fmt.Fprintf(a.out, "%s\n", a.FormatError(err))
	return code
}

// shouldLog reports whether err gets a log entry besides the printed message.
func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}

	if se, ok := As(err); ok {
		return se.Category == CategoryInternal ||
			se.Category == CategoryFileSystem ||
			se.Severity == SeverityFatal
	}

	return true
}

func (a *CLIErrorAdapter) logError(err error, code int) {
	fields := []zap.Field{zap.Error(err), zap.Int("exit_code", code)}
	if se, ok := As(err); ok {
		fields = append(fields, zap.String("category", string(se.Category)))
		for k, v := range se.Context {
			fields = append(fields, zap.Any(k, v))
		}
		if se.Severity == SeverityWarning {
			a.logger.Warn(se.Message, fields...)
			return
		}
		a.logger.Error(se.Message, fields...)
		return
	}
	a.logger.Error("command failed", fields...)
}

func formatContext(ctx ContextFields) string {
	if len(ctx) == 0 {
		return ""
	}
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ctx[k]))
	}
	return strings.Join(parts, ", ")
}
