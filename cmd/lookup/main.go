package lookup

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datejp/dateinfo/configs"
	"github.com/datejp/dateinfo/frontend"
	"github.com/datejp/dateinfo/internal/di"
	"github.com/datejp/dateinfo/resolver"
	"github.com/datejp/dateinfo/utils/log"
)

const (
	usage   = "lookup <YYYY-MM-DD>"
	short   = "Print the date context of one calendar date"
	long    = "This command resolves and prints the full date context of one calendar date"
	example = "dateinfo lookup 2024-01-01"

	defaultConfigFilePath = "./dateinfo.yml"
	configDesc            = "set the path for the dateinfo YAML configuration file"
)

var (
	// Cmd is the lookup command.
	Cmd = &cobra.Command{
		Use:          usage,
		Short:        short,
		Long:         long,
		Example:      example,
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE:         executeLookup,
	}
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

func executeLookup(_ *cobra.Command, args []string) error {
	config, err := configs.Load(configFilePath)
	if err != nil {
		return err
	}
	log.SetLevelFromString(config.LogLevel)

	// the listener path is the same one an embedded presentation surface
	// uses, so the one-shot lookup exercises the full delivery protocol
	outcomes := make(chan frontend.HolidayOutcome, 1)
	service := di.New(config).GetDateService(func(outcome frontend.HolidayOutcome) {
		outcomes <- outcome
	})

	dc, err := service.ComputeDateContext(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("date:        %s (%s)\n", dc.Date, dc.Weekday)
	fmt.Printf("weekend:     %v\n", dc.Weekend)
	fmt.Printf("distance:    %s\n", dc.DiffLabel)
	fmt.Printf("year week:   %d (%d remaining)\n", dc.YearWeek.Index, dc.YearWeek.WeeksRemaining)
	fmt.Printf("fiscal week: %d (%d remaining)\n", dc.FiscalWeek.Index, dc.FiscalWeek.WeeksRemaining)

	outcome := <-outcomes
	switch outcome.Result.Status {
	case resolver.StatusHoliday:
		if outcome.Result.Type != "" {
			fmt.Printf("holiday:     %s (%s)\n", outcome.Result.Name, outcome.Result.Type)
		} else {
			fmt.Printf("holiday:     %s\n", outcome.Result.Name)
		}
		fmt.Printf("business:    false\n")
	case resolver.StatusNotHoliday:
		fmt.Printf("holiday:     no\n")
		fmt.Printf("business:    %v\n", outcome.BusinessDay)
	default:
		fmt.Printf("holiday:     unknown (%s)\n", outcome.Result.Message)
	}
	return nil
}
