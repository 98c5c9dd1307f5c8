package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ZebulonRouseFrantzich/a3tool/internal/config"
	"github.com/ZebulonRouseFrantzich/a3tool/internal/resolve"
	"github.com/ZebulonRouseFrantzich/a3tool/internal/workspace"
	"github.com/spf13/cobra"
)

type resolveOptions struct {
	configPath  string
	flags       config.Config
	output      string
	lock        bool
	lockTimeout time.Duration
	check       bool
}

func newResolveCmd(global *globalOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the a³ analyzer binary path",
		Long: `Resolve the a³ analyzer binary path.

With --package-dir the newest installer archive for --target and the agent's
OS is unpacked into the workspace. With --launcher the pre-installed alauncher
is used. When both are given, the launcher is the fallback if no archive
matches. Flags override values from the Lua config file.

Exit codes: 0 resolved, 2 nothing resolved, 3 invalid request, 1 other errors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, global, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Lua config file (default $"+config.EnvConfigFile+")")
	f.StringVarP(&opts.flags.Workspace, "workspace", "w", "", "workspace to unpack installers into (default current directory)")
	f.StringVarP(&opts.flags.Target, "target", "t", "", "analysis target, e.g. arm, ppc, tricore")
	f.StringVarP(&opts.flags.PackageDir, "package-dir", "p", "", "directory holding a3_<target>_<os>_b<build>_release.zip archives")
	f.StringVarP(&opts.flags.Launcher, "launcher", "l", "", "pre-installed alauncher binary or its directory")
	f.StringVar(&opts.flags.OS, "os", "", "agent OS class: unix, windows or macos (default detected)")
	f.StringVarP(&opts.output, "output", "o", outputText, "output format: text, json or yaml")
	f.BoolVar(&opts.lock, "lock", false, "hold the workspace lock while resolving")
	f.DurationVar(&opts.lockTimeout, "lock-timeout", 10*time.Minute, "how long to wait for the workspace lock")
	f.BoolVar(&opts.check, "check", false, "fail if the resolved binary does not exist")

	return cmd
}

func runResolve(cmd *cobra.Command, global *globalOptions, opts *resolveOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !validOutput(opts.output) {
		return &ExitError{Code: ExitBadRequest, Err: fmt.Errorf("unknown output format %q", opts.output)}
	}

	cfg, err := loadConfig(ctx, opts)
	if err != nil {
		return &ExitError{Code: ExitBadRequest, Err: errors.New(config.FormatError(err, global.verbose))}
	}

	osClass, err := agentOSClass(ctx, cfg)
	if err != nil {
		return &ExitError{Code: ExitBadRequest, Err: err}
	}

	if cfg.Workspace == "" {
		if cfg.Workspace, err = os.Getwd(); err != nil {
			return fmt.Errorf("determine workspace: %w", err)
		}
	}

	logger := newLogger(cmd.ErrOrStderr(), global.verbose)

	if opts.lock && cfg.PackageDir != "" {
		lockCtx, cancel := context.WithTimeout(ctx, opts.lockTimeout)
		defer cancel()

		logger.Debug("waiting for workspace lock", "workspace", cfg.Workspace)
		lock, err := workspace.Wait(lockCtx, cfg.Workspace, workspace.DefaultPollInterval)
		if err != nil {
			return fmt.Errorf("lock workspace: %w", err)
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("releasing workspace lock failed", "error", err)
			}
		}()
	}

	r := resolve.New(resolve.Options{
		Workspace: cfg.Workspace,
		OS:        osClass,
		Logger:    logger,
	})
	res := r.ResolveChain(resolve.SelectModes(cfg.PackageDir, cfg.Launcher, cfg.Target)...)

	if res.OK() && opts.check {
		if _, err := os.Stat(res.ToolPath); err != nil {
			if err := writeReport(cmd.OutOrStdout(), res, opts.output); err != nil {
				return err
			}
			return &ExitError{Code: ExitNotFound, Err: fmt.Errorf("resolved tool path is not usable: %w", err)}
		}
	}

	if err := writeReport(cmd.OutOrStdout(), res, opts.output); err != nil {
		return err
	}

	if !res.OK() {
		code := ExitNotFound
		if res.Outcome == resolve.OutcomeUnsupportedOS || res.Outcome == resolve.OutcomeMalformedPath {
			code = ExitBadRequest
		}
		// structured reports already carry the error field
		return &ExitError{Code: code, Err: res.Err(), Silent: opts.output != outputText}
	}
	return nil
}

// loadConfig reads the config file (flag, then environment) and applies flag overrides.
func loadConfig(ctx context.Context, opts *resolveOptions) (config.Config, error) {
	var cfg config.Config

	path := opts.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigFile)
	}
	if path != "" {
		parsed, err := config.NewParser(detector).ParseFile(ctx, path)
		if err != nil {
			return cfg, err
		}
		cfg = *parsed
	}

	cfg = cfg.Merge(opts.flags)
	cfg, err := cfg.ExpandPaths()
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// agentOSClass returns the configured OS class or detects the host's.
func agentOSClass(ctx context.Context, cfg config.Config) (resolve.OSClass, error) {
	class, ok, err := cfg.OSClass()
	if err != nil {
		return class, err
	}
	if ok {
		return class, nil
	}

	info, err := detector.Detect(ctx)
	if err != nil {
		return resolve.Unix, fmt.Errorf("detect agent OS: %w", err)
	}
	return info.OSClass()
}
