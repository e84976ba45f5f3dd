package config

import (
	"fmt"
	"io"
	"strings"

	"reversi/game"
	"reversi/meta"
	"reversi/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Mode string

const (
	HumanVsHuman Mode = "human"
	HumanVsBot   Mode = "bot"
)

var (
	ErrConflictingModes = errors.New("--player cannot be combined with --bot or --depth")
	ErrInvalidMode      = errors.New("mode must be \"human\" or \"bot\"")
	ErrUnexpectedArgs   = errors.New("unexpected positional arguments")
)

type Config struct {
	Mode      Mode   `mapstructure:"mode"`
	Depth     int    `mapstructure:"depth"`
	Eval      string `mapstructure:"eval"`
	AlphaBeta bool   `mapstructure:"alpha_beta"`
	LogLevel  string `mapstructure:"log_level"`
	Help      bool   `mapstructure:"-"` // usage was printed, nothing else to do
}

// Level returns the parsed log level. Load has already validated it.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

// Load parses the command line and layers it over REVERSI_* environment
// variables, an optional config file and the defaults. Usage and flag errors
// are printed to out.
func Load(args []string, out io.Writer) (Config, error) {
	flags := pflag.NewFlagSet("reversi", pflag.ContinueOnError)
	flags.SetOutput(out)
	flags.Usage = func() {
		fmt.Fprintf(out, "Usage: reversi [flags]\n\nPlay Reversi in the terminal, against the bot by default.\n\nFlags:\n%s", flags.FlagUsages())
	}

	player := flags.BoolP("player", "p", false, "human vs human")
	bot := flags.BoolP("bot", "b", false, "human vs bot (default)")
	flags.IntP("depth", "d", meta.DEFAULT_DEPTH, "search depth of the bot, implies --bot")
	flags.StringP("eval", "e", meta.DEFAULT_EVALUATION, "bot evaluation: "+strings.Join(game.EvaluatorNames(), ", "))
	noPrune := flags.Bool("no-prune", false, "search without alpha-beta pruning")
	flags.String("log-level", meta.DEFAULT_LOG_LEVEL, "log level: debug, info, warn, error")
	configFile := flags.String("config", "", "optional config file")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{Help: true}, nil
		}
		return Config{}, errors.Wrap(err, "invalid arguments")
	}
	if flags.NArg() > 0 {
		return Config{}, errors.Wrapf(ErrUnexpectedArgs, "%q", flags.Args())
	}
	depthSet := flags.Changed("depth")
	if *player && (*bot || depthSet) {
		return Config{}, ErrConflictingModes
	}

	v := viper.New()
	v.SetDefault("mode", string(HumanVsBot))
	v.SetDefault("depth", meta.DEFAULT_DEPTH)
	v.SetDefault("eval", meta.DEFAULT_EVALUATION)
	v.SetDefault("alpha_beta", true)
	v.SetDefault("log_level", meta.DEFAULT_LOG_LEVEL)

	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.AutomaticEnv()

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "failed to read config file %s", *configFile)
		}
	}

	for key, name := range map[string]string{"depth": "depth", "eval": "eval", "log_level": "log-level"} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return Config{}, errors.Wrapf(err, "failed to bind --%s", name)
		}
	}
	switch {
	case *player:
		v.Set("mode", string(HumanVsHuman))
	case *bot || depthSet:
		v.Set("mode", string(HumanVsBot))
	}
	if *noPrune {
		v.Set("alpha_beta", false)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Mode != HumanVsHuman && c.Mode != HumanVsBot {
		return errors.Wrapf(ErrInvalidMode, "got %q", c.Mode)
	}
	if c.Depth < 1 {
		return errors.Wrapf(searcher.ErrInvalidDepth, "got %d", c.Depth)
	}
	if _, err := game.EvaluatorByName(c.Eval); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}
