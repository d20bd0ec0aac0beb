// Package main is the catalog command-line client. It drives the catalog
// controllers against a running API server and renders their state.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scholar-catalog/client"
	"scholar-catalog/controllers"
	"scholar-catalog/views"
)

var envKeyReplacer = strings.NewReplacer("-", "_")

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and edit the academic article catalog",
	Long: `catalog talks to the catalog API server. List and search articles, show
an article with its citations, create and edit articles, and add citations.

The list filter is a query string, the same one the API accepts, so a filter
can be copied between runs:

  catalog list 'query=deep&sort=date&order=desc&page=2'`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./catalog.yaml or ~/.config/catalog/catalog.yaml)")
	rootCmd.PersistentFlags().String("api-url", client.DefaultBaseURL, "catalog API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "timeout for each command")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log API calls to stderr")
	rootCmd.PersistentFlags().Int("width", views.DefaultWidth, "render width")

	_ = viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("width", rootCmd.PersistentFlags().Lookup("width"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog"))
		}
	}

	viper.SetEnvPrefix("CATALOG")
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger logs to stderr; debug output is enabled by --verbose.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newStore builds the controller store for one command run.
func newStore(cmd *cobra.Command, loc controllers.Location) *controllers.Store {
	logger := newLogger(cmd.ErrOrStderr())
	api := client.New(viper.GetString("api-url"), client.WithLogger(logger))
	return controllers.NewStore(api, loc, controllers.WithLogger(logger))
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return withTimeout(ctx)
}

// withTimeout applies the configured per-command timeout to ctx.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		return context.WithTimeout(ctx, timeout)
	}
	return context.WithCancel(ctx)
}

func renderer() views.Renderer {
	return views.NewRenderer(viper.GetInt("width"))
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
