package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yametech/celeritas/internal/config"
	"github.com/yametech/celeritas/internal/log"
	"github.com/yametech/celeritas/internal/proxy"
)

var (
	forwardLogLevel string
	forwardLogFile  string
)

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Run the forwarding front-end: splice bytes to a fixed upstream with no parsing",
	Example: "# celeritas forward --config celeritas.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := log.New(log.Options{
			Level:    forwardLogLevel,
			Filename: forwardLogFile,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		listenAddr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		upstreamAddr := net.JoinHostPort(cfg.Upstream.Host, strconv.Itoa(cfg.Upstream.Port))

		logger.Info("starting forwarding proxy",
			zap.String("listen", listenAddr),
			zap.String("upstream", upstreamAddr))

		f := proxy.NewForward(upstreamAddr, logger)
		return f.ListenAndServe(listenAddr)
	},
}

func init() {
	forwardCmd.Flags().StringVar(&forwardLogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	forwardCmd.Flags().StringVar(&forwardLogFile, "log-file", "", "Log file path; defaults to stdout")
	rootCmd.AddCommand(forwardCmd)
}
