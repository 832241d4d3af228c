package internal

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/commands"
	"github.com/mrexodia/devdocs-cli/pkg/config"
	"github.com/mrexodia/devdocs-cli/pkg/logger"
	"github.com/mrexodia/devdocs-cli/pkg/templates"
)

var (
	version   = "dev"
	gitCommit string
	buildTime string
	goVersion string
)

const (
	green  = "\033[0;32m"
	yellow = "\033[1;33m"
	red    = "\033[0;31m"
	reset  = "\033[0m"
)

// Global flag names shared by every subcommand.
const (
	FlagConfig    = "config"
	FlagDebug     = "debug"
	FlagTemplates = "templates"
)

func GetConfigPath(cmd *cobra.Command) string {
	if cmd != nil {
		if p, _ := cmd.Flags().GetString(FlagConfig); p != "" {
			return p
		}
	}
	return config.ResolveConfigPath()
}

// LoadConfig loads the config, applies global flag overrides, and configures logging.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(GetConfigPath(cmd))
	if err != nil {
		return nil, err
	}

	if cmd != nil {
		if v, _ := cmd.Flags().GetString(FlagTemplates); v != "" {
			cfg.Commands.TemplateVersion = v
		}
	}

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if cmd != nil {
		if debug, _ := cmd.Flags().GetBool(FlagDebug); debug {
			logger.SetLevel(logger.DEBUG)
		}
	}
	if cfg.Log.File != "" {
		if err := logger.EnableFileLogging(cfg.Log.File); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Runtime is the command stack built once per process: catalog, registry,
// dispatcher, and the bus that stands in for the host's message intake.
type Runtime struct {
	Config     *config.Config
	Catalog    *templates.Catalog
	Bus        *bus.MessageBus
	Registry   *commands.Registry
	Dispatcher *commands.Dispatcher
}

func NewRuntime(cfg *config.Config) (*Runtime, error) {
	cat, err := templates.ForVersion(cfg.Commands.TemplateVersion)
	if err != nil {
		return nil, err
	}

	mb := bus.NewMessageBus(bus.DefaultBufferSize)
	defs, err := commands.Definitions(cat, mb, cfg.Commands.CustomType)
	if err != nil {
		mb.Close()
		return nil, err
	}
	reg, err := commands.NewRegistryFrom(defs)
	if err != nil {
		mb.Close()
		return nil, err
	}

	logger.DebugCF("cli", "Command registry ready", map[string]any{
		"templates": cat.Version(),
		"commands":  reg.Len(),
	})

	return &Runtime{
		Config:     cfg,
		Catalog:    cat,
		Bus:        mb,
		Registry:   reg,
		Dispatcher: commands.NewDispatcher(reg),
	}, nil
}

// Console prints progress and user notifications in the style of the installer.
type Console struct {
	Out io.Writer
}

func (c Console) Info(msg string) {
	fmt.Fprintf(c.Out, "%s✓%s %s\n", green, reset, msg)
}

func (c Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "%s!%s %s\n", yellow, reset, msg)
}

func (c Console) Notify(message string, level commands.Level) {
	switch level {
	case commands.LevelWarning:
		c.Warn(message)
	case commands.LevelError:
		fmt.Fprintf(c.Out, "%s✗%s %s\n", red, reset, message)
	default:
		c.Info(message)
	}
}

// FormatVersion returns the version string with optional git commit
func FormatVersion() string {
	v := version
	if gitCommit != "" {
		v += fmt.Sprintf(" (git: %s)", gitCommit)
	}
	return v
}

// FormatBuildInfo returns build time and go version info
func FormatBuildInfo() (string, string) {
	build := buildTime
	goVer := goVersion
	if goVer == "" {
		goVer = runtime.Version()
	}
	return build, goVer
}
