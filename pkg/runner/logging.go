package runner

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clnrm/clnrm/pkg/config"
)

// SetupLoggingHandler configures a handler for logging.
// It allows a environment variable to be used to set the verbosity.
// It also addes a persistent flag to configure verbosity.
func SetupLoggingHandler(cmd *cobra.Command, verbosityEnvName string) slog.Handler {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn) // set this for now, but will be overwritten
	options := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	handler := slog.NewJSONHandler(os.Stderr, options)

	// Flags
	var verbosityFlag []string

	// Set verbosity in the "OnInitialize" function,
	// verbosity flag must be parsed before it can be used
	cobra.OnInitialize(func() {
		// Convert verbosity flag input to a slog.Level
		level.Set(getLogLevel(verbosityFlag))
	})

	cmd.PersistentFlags().StringSliceVarP(&verbosityFlag, "verbosity", "v",
		[]string{config.EnvOr(verbosityEnvName, "error")},
		`Logging verbosity level (also setable with environment variable `+verbosityEnvName+`)
Aliases: error=0, warn=4, info=8, debug=12`)
	x := cmd.PersistentFlags().Lookup("verbosity")
	x.NoOptDefVal = "warn"

	return handler
}

var verbosityAliases = map[string]int{
	"error": 0,
	"warn":  4,
	"info":  8,
	"debug": 12,
}

/*
slog.Level values from https://pkg.go.dev/log/slog#Level

	const (
		LevelDebug Level = -4
		LevelInfo  Level = 0
		LevelWarn  Level = 4
		LevelError Level = 8
	)

LevelError is set as the default logging level.

For slog, "lower" levels mean a chattier logger, so a user is intending to decrease the value of the slog logger's Level when they increase the value of the verbosity flag. Each verbosity value is subtracted from the default level as is, in slog's own units, where the defined levels are 4 apart: a verbosity of 4 (alias "warn") lowers the level from Error to Warn, and a verbosity of 1 to 3 stays between Error and Warn, so it shows no additional records. Repeated verbosity values are summed.
*/
func getLogLevel(verbosityFlag []string) slog.Level {
	// Start with the default level
	level := slog.LevelError

	// Iterate over flag values, subtracting from the slog level to increase verbosity
	for _, val := range verbosityFlag {
		if l, ok := verbosityAliases[val]; ok {
			// Set level to verbosity alias level
			level -= slog.Level(l)
		} else if l, err := strconv.Atoi(val); err == nil {
			// Set integer verbosity
			level -= slog.Level(l)
		} else {
			fmt.Printf("Error: invalid argument %q for \"-v, --verbosity\" flag\n", val) //nolint:revive
			os.Exit(1)
		}
	}

	return level
}
