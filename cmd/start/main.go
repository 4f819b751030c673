package start

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/datejp/dateinfo/configs"
	"github.com/datejp/dateinfo/frontend"
	"github.com/datejp/dateinfo/internal/di"
	"github.com/datejp/dateinfo/utils/log"
)

const (
	usage   = "start"
	short   = "Start the dateinfo frontend server"
	long    = "This command starts the dateinfo JSON-RPC frontend server"
	example = "dateinfo start --config dateinfo.yml"

	defaultConfigFilePath = "./dateinfo.yml"
	configDesc            = "set the path for the dateinfo YAML configuration file"

	shutdownGracePeriod = 5 * time.Second
)

var (
	// Cmd is the start command.
	Cmd = &cobra.Command{
		Use:          usage,
		Short:        short,
		Long:         long,
		Example:      example,
		SilenceUsage: true,
		RunE:         executeStart,
	}
	// configFilePath set flag for a path to the config file.
	configFilePath string
)

func init() {
	Cmd.Flags().StringVarP(&configFilePath, "config", "c", defaultConfigFilePath, configDesc)
}

func executeStart(*cobra.Command, []string) error {
	config, err := configs.Load(configFilePath)
	if err != nil {
		return err
	}
	log.SetLevelFromString(config.LogLevel)

	container := di.New(config)
	service := container.GetDateService(nil)

	server, err := frontend.NewServer(service)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/rpc", server)
	frontend.NewUtilityAPIHandlers(time.Now()).Register(mux)

	srv := &http.Server{Addr: ":" + config.ListenPort, Handler: mux}

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChannel
		log.Info("initiating graceful shutdown due to %v request", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("failed to shut down the frontend server: %v", err)
		}
	}()

	log.Info("launching the dateinfo frontend at :%s ...", config.ListenPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "failed to start the frontend server")
	}
	log.Info("exiting...")
	return nil
}
