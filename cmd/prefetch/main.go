package prefetch

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	try "gopkg.in/matryer/try.v1"

	"github.com/datejp/dateinfo/calendar"
	"github.com/datejp/dateinfo/configs"
	"github.com/datejp/dateinfo/internal/di"
	"github.com/datejp/dateinfo/resolver"
	"github.com/datejp/dateinfo/utils/log"
)

const (
	usage   = "prefetch <from> <to>"
	short   = "Warm the holiday cache over a date range"
	long    = "This command resolves every date of the inclusive range and persists the determinations to the holiday cache"
	example = "dateinfo prefetch 2024-01-01 2024-12-31"

	defaultConfigFilePath = "./dateinfo.yml"
	configDesc            = "set the path for the dateinfo YAML configuration file"

	maxAttempts   = 3
	retryInterval = 500 * time.Millisecond
)

var (
	// Cmd is the prefetch command.
	Cmd = &cobra.Command{
		Use:          usage,
		Short:        short,
		Long:         long,
		Example:      example,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(2),
		RunE:         executePrefetch,
	}
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

func executePrefetch(_ *cobra.Command, args []string) error {
	from, err := calendar.Parse(args[0])
	if err != nil {
		return err
	}
	to, err := calendar.Parse(args[1])
	if err != nil {
		return err
	}
	if from.After(to) {
		return errors.Errorf("invalid range: %s is after %s", from.Key(), to.Key())
	}

	config, err := configs.Load(configFilePath)
	if err != nil {
		return err
	}
	log.SetLevelFromString(config.LogLevel)

	rsv := di.New(config).GetResolver()
	ctx := context.Background()

	var holidays, failures int
	for d := from; !d.After(to); d = d.AddDays(1) {
		key := d.Key()

		var result resolver.Result
		err := try.Do(func(attempt int) (bool, error) {
			result = rsv.Resolve(ctx, key)
			// transient network faults are worth another attempt,
			// every other outcome is final
			if result.Status == resolver.StatusError && result.Message == resolver.MessageNetwork {
				time.Sleep(retryInterval)
				return attempt < maxAttempts, errors.New(result.Message)
			}
			return false, nil
		})
		if err != nil || result.Status == resolver.StatusError {
			log.Warn("failed to prefetch %s: %s", key, result.Message)
			failures++
			continue
		}
		if result.Status == resolver.StatusHoliday {
			log.Info("%s is a holiday: %s", key, result.Name)
			holidays++
		}
	}

	total := calendar.DiffDays(from, to) + 1
	log.Info("prefetched %d days (%d holidays, %d failures)", total, holidays, failures)
	if failures > 0 {
		return errors.Errorf("failed to prefetch %d of %d days", failures, total)
	}
	return nil
}
