// Package cmdutil holds the setup shared by the commands.
package cmdutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/config"
	"github.com/f1board/f1board/pkg/lookup"
	"github.com/f1board/f1board/pkg/schedule"
	"github.com/f1board/f1board/pkg/utils"
)

func ParseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the application and sql loggers from the log flags
// and installs the application logger as default.
func SetupLogger(w io.Writer) (logger, sqlLogger *log.Logger, err error) {
	opts := []log.Option{log.WithCaller(true), log.AddCallerSkip(1)}
	if config.LogFilter != "" {
		filter, err := log.WithFilter(config.LogFilter)
		if err != nil {
			return nil, nil, fmt.Errorf("log filter: %w", err)
		}
		opts = append(opts, filter)
	}
	switch config.LogFormat {
	case "json":
		logger = log.New(w, ParseLogLevel(config.LogLevel, log.InfoLevel), opts...)
		sqlLogger = log.New(w, ParseLogLevel(config.SQLLogLevel, log.InfoLevel), opts...)
	default:
		logger = log.DevLogger(w, ParseLogLevel(config.LogLevel, log.InfoLevel), opts...)
		sqlLogger = log.DevLogger(w, ParseLogLevel(config.SQLLogLevel, log.InfoLevel), opts...)
	}
	log.ResetDefault(logger)
	return logger, sqlLogger.Named("sql"), nil
}

// NewTables loads the lookup tables including overrides from the config.
func NewTables() (*lookup.Tables, error) {
	tables, err := lookup.LoadFile(config.LookupFile)
	if err != nil {
		return nil, err
	}
	if len(config.LocationRounds) > 0 {
		tables = tables.WithLocationRounds(config.LocationRounds)
	}
	return tables, nil
}

// NewFormatter creates a formatter for the configured date style and zone.
func NewFormatter() (*schedule.Formatter, error) {
	style, err := schedule.ParseDateStyle(config.DateStyle)
	if err != nil {
		return nil, err
	}
	local := time.Local
	if config.LocalZone != "" {
		if local, err = time.LoadLocation(config.LocalZone); err != nil {
			return nil, fmt.Errorf("local zone: %w", err)
		}
	}
	return schedule.NewFormatter(
		schedule.WithLocal(local),
		schedule.WithDateStyle(style),
	), nil
}

// NewBuilder wires tables, resolver and formatter.
func NewBuilder(reporters ...schedule.Reporter) (*schedule.Builder, error) {
	tables, err := NewTables()
	if err != nil {
		return nil, err
	}
	formatter, err := NewFormatter()
	if err != nil {
		return nil, err
	}
	return schedule.NewBuilder(
		schedule.WithTables(tables),
		schedule.WithFormatter(formatter),
		schedule.WithResolver(schedule.NewResolver(
			schedule.WithTable(tables.Timezones),
			schedule.WithReporter(reporters...),
		)),
	), nil
}

// ReadInput reads the file named by the first arg, stdin for "-" or no arg.
func ReadInput(args []string, stdin io.Reader) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// WaitForDB waits until the configured database accepts connections.
func WaitForDB(ctx context.Context) error {
	timeout, err := time.ParseDuration(config.WaitForServices)
	if err != nil {
		log.Warn("Invalid duration value. Setting default 60s", log.ErrorField(err))
		timeout = 60 * time.Second
	}
	addr := utils.ExtractFromDBURL(config.DB)
	if addr == "" {
		return fmt.Errorf("no database address in url")
	}
	return utils.WaitForTCP(ctx, addr, timeout)
}
