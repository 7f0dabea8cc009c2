package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/lojhan/svurl/internal/command"
	"github.com/lojhan/svurl/internal/config"
	svurlerrors "github.com/lojhan/svurl/internal/errors"
	"github.com/lojhan/svurl/internal/logging"
	"github.com/lojhan/svurl/internal/opener"
	"github.com/lojhan/svurl/internal/reply"
	"github.com/lojhan/svurl/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("svurl"),
		kong.Description("Save URLs from the command line, skip duplicates, and pick them back later."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}

	// Until the logger exists errors are only printed.
	bootstrap := svurlerrors.NewCLIErrorAdapter(cli.Verbose, nil).WithOutput(stderr)

	cfg, err := loadConfig(&cli)
	if err != nil {
		return bootstrap.HandleError(err)
	}

	logger, err := logging.New(cfg.Log, cli.Verbose, stderr)
	if err != nil {
		return bootstrap.HandleError(svurlerrors.ConfigInvalid(cli.Config, err))
	}
	defer logger.Sync()

	adapter := svurlerrors.NewCLIErrorAdapter(cli.Verbose, logger).WithOutput(stderr)

	s := store.New(cfg.Sets,
		store.WithLogger(logger),
		store.WithOpener(opener.NewExecOpener(cfg.Opener.Command, cfg.Opener.Args, logger)),
	)
	if err := s.Wait(); err != nil {
		return adapter.HandleError(err)
	}

	registry := command.NewRegistry()
	command.Register(registry, s)

	name, cmdArgs := cli.request(kctx.Command())
	logger.Debug("dispatching command", zap.String("command", name), zap.Strings("args", cmdArgs))

	result := registry.Dispatch(ctx, name, cmdArgs)
	if result.IsError() {
		return adapter.HandleError(result.Err)
	}

	if err := reply.NewSerializer(stdout).Serialize(stripErrors(result)); err != nil {
		return adapter.HandleError(svurlerrors.InternalError("failed to write output", err))
	}

	code := 0
	for _, err := range result.Errors() {
		if c := adapter.HandleError(err); c > code {
			code = c
		}
	}
	return code
}

func loadConfig(cli *CLI) (*config.Config, error) {
	path := cli.Config
	if path == "" {
		path = os.Getenv(config.ConfigEnvVar)
	}
	mustExist := path != ""
	if path == "" {
		path = config.DefaultConfigFile
	}

	cfg, err := config.Load(path, mustExist)
	if err != nil {
		return nil, err
	}

	overrides, err := config.ParseSetFlags(cli.Set)
	if err != nil {
		return nil, err
	}
	cfg.MergeSets(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, svurlerrors.ConfigInvalid(path, err)
	}
	return cfg, nil
}

// stripErrors drops nested error values; HandleError reports them on stderr.
func stripErrors(v reply.Value) reply.Value {
	if v.Type != reply.List {
		return v
	}
	kept := make([]reply.Value, 0, len(v.Array))
	for _, elem := range v.Array {
		if elem.IsError() {
			continue
		}
		kept = append(kept, stripErrors(elem))
	}
	v.Array = kept
	return v
}
