package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	zlogger "github.com/gjutils/gjutil/logger"
	"github.com/gjutils/gjutil/model"
	"github.com/gjutils/gjutil/util"
	"github.com/spf13/cobra"
)

var (
	cfgFile, configDir, backend string
	bSilent                     bool
	timeout                     time.Duration

	rootCmd = &cobra.Command{
		Use:   "gjutil",
		Short: "gjutil lists, mounts and copies objects in cloud storage buckets",
		Long: `gjutil talks to Google Cloud Storage through the storage client library, or to S3 through the
		AWS SDK for Go. Buckets are mounted with gcsfuse and objects are copied with gsutil or with a
		server side copy request.`,
		SilenceUsage: true,
	}

	appConfig model.AppConfig
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&configDir, "configDir", util.GetConfigDir(), "configuration directory")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "storage backend to use: gcs or s3 (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&bSilent, "silent", false, "Do not echo logs to the console (shown by default)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "give up after this long, eg; 10m (0 waits forever)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig() {
	v := newViper()
	if backend != "" {
		v.Set("backend", backend)
	}

	cfgPath := cfgFile
	if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(configDir, cfgFile)
	}

	cfg, err := loadConfigFile(v, cfgPath)
	cobra.CheckErr(err)
	appConfig = cfg

	logFile := appConfig.Log.File
	if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(configDir, logFile)
	}
	cobra.CheckErr(zlogger.SetLogFile(logFile, !bSilent))
}

// commandContext is cancelled on interrupt and, when --timeout is set, once
// the timeout passes.
func commandContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if timeout <= 0 {
		return ctx, stop
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, func() {
		cancel()
		stop()
	}
}
