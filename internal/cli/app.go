// Package cli implements the wrapctl command line tool, which loads a JSON
// or YAML document into a wrap.Collection and runs collection operations
// on it.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option are used to configure an App.
type Option func(*App)

// Name configures the name of the command.
func Name(name string) Option {
	return func(a *App) {
		a.name = name
	}
}

// Stdin replaces the reader documents are read from when no file is given.
func Stdin(r io.Reader) Option {
	return func(a *App) {
		a.stdin = r
	}
}

// Stdout replaces the writer results are written to.
func Stdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// Logger replaces the logger built from the log_level setting.
func Logger(logger *zap.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// App wires configuration, logging and the commands together.
type App struct {
	name   string
	stdin  io.Reader
	stdout io.Writer
	logger *zap.Logger

	v   *viper.Viper
	cfg Config
	log *zap.Logger
}

// New returns a fully initialized App.
func New(opts ...Option) *App {
	app := &App{
		name:   "wrapctl",
		stdin:  os.Stdin,
		stdout: os.Stdout,
		v:      newViper(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Run executes the command line given by args. An OS interrupt cancels
// the command context.
func (app *App) Run(args ...string) error {
	cmd := buildCmd(app)
	cmd.SetArgs(args)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return cmd.ExecuteContext(ctx)
}

func buildCmd(app *App) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          app.name,
		Short:        "Inspect JSON and YAML documents as ordered collections",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(app.v, cfgFile)
			if err != nil {
				return err
			}
			app.cfg = cfg

			log := app.logger
			if log == nil {
				log, err = newLogger(cfg.LogLevel)
				if err != nil {
					return err
				}
			}
			app.log = log.With(zap.String("command", cmd.Name()))
			app.log.Debug("loaded config", zap.Any("config", cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.log != nil {
				_ = app.log.Sync()
			}
		},
	}
	root.SetIn(app.stdin)
	root.SetOut(app.stdout)

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "YAML config file")
	flags.String("format", FormatAuto, "input format: auto, json or yaml")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.Int("indent", 0, "indentation width of json and yaml output")
	bindFlag(app.v, "format", flags.Lookup("format"))
	bindFlag(app.v, "log_level", flags.Lookup("log-level"))
	bindFlag(app.v, "indent", flags.Lookup("indent"))

	root.AddCommand(
		visualizeCmd(app),
		jsonCmd(app),
		yamlCmd(app),
		flattenCmd(app),
		keysCmd(app),
		searchCmd(app),
		atCmd(app),
		kindCmd(app),
	)
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
