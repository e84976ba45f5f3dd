// meta/meta.go
package meta

// DEFAULT_DEPTH defines the search depth of the bot when none is given.
const DEFAULT_DEPTH = 3

// DEFAULT_EVALUATION names the static evaluation used by the bot.
const DEFAULT_EVALUATION = "discs"

const DEFAULT_LOG_LEVEL = "warn"

// EXPERIMENT_LOG_LEVEL defines the log level of the experiment runner.
const EXPERIMENT_LOG_LEVEL = "info"

// EXPERIMENT_GAMES defines the number of games per matchup and starting side.
const EXPERIMENT_GAMES = 10

// EXPERIMENT_SEED seeds the random baseline agents.
const EXPERIMENT_SEED = 1

// ENV_PREFIX prefixes the environment variables read by the CLI.
const ENV_PREFIX = "REVERSI"
