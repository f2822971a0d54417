package main

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yametech/celeritas/internal/config"
	"github.com/yametech/celeritas/internal/log"
	"github.com/yametech/celeritas/internal/proxy"
	"github.com/yametech/celeritas/internal/raft"
	"github.com/yametech/celeritas/pkg/respcodec"
)

var (
	serveLogLevel    string
	serveLogFile     string
	serveMulticore   bool
	serveNumLoops    int
	serveKeepAlive   time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dispatch front-end: parse RESP2/RESP3 commands and answer them directly",
	Example: "# celeritas serve --config celeritas.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger, err := log.New(log.Options{
			Level:    serveLogLevel,
			Filename: serveLogFile,
		})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer logger.Sync()

		store := proxy.NewStore()
		srv := proxy.NewServer(store, raft.NullReplicator{}, logger)

		addr := "tcp://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
		logger.Info("starting dispatch server", zap.String("addr", addr))

		return proxy.ListenAndServe(addr, proxy.Options{
			Multicore:    serveMulticore,
			NumEventLoop: serveNumLoops,
			TCPKeepAlive: serveKeepAlive,
			Version:      respcodec.RESP3,
		}, srv)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "Log file path; defaults to stdout")
	serveCmd.Flags().BoolVar(&serveMulticore, "multicore", true, "Enable gnet multi-core event loops")
	serveCmd.Flags().IntVar(&serveNumLoops, "num-event-loop", 0, "Number of event loops (0 = number of CPUs)")
	serveCmd.Flags().DurationVar(&serveKeepAlive, "tcp-keepalive", 0, "TCP keep-alive interval (0 disables)")
	rootCmd.AddCommand(serveCmd)
}
