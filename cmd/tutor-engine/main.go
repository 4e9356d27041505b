// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the tutor-engine CLI.
// It turns article text into lessons (outline, timeline, figures,
// places, terms, takeaways, facts, quiz, related topics) and keeps them
// in a local lesson store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/tutor-engine/internal/cache"
	"github.com/pdiddy/tutor-engine/internal/extract"
	"github.com/pdiddy/tutor-engine/internal/lesson"
	"github.com/pdiddy/tutor-engine/internal/logging"
	"github.com/pdiddy/tutor-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the tutor-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "tutor-engine",
	Short: "Turn articles into interactive lessons",
	Long: `tutor-engine reads plain-text articles and derives the material for an
interactive lesson: a section outline, a timeline, key figures, locations,
key terms, takeaways, quick facts, a multiple-choice quiz, and related
topics. Lessons are kept in a local SQLite store keyed by topic id and are
rebuilt only when the article text changes.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tutor-engine.yaml or ~/.config/tutor-engine/tutor-engine.yaml)")
	rootCmd.PersistentFlags().String("store-dir", "", "lesson store directory (overrides store.dir)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides log.level)")

	_ = viper.BindPFlag("store.dir", rootCmd.PersistentFlags().Lookup("store-dir"))
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	def := types.DefaultConfig()
	viper.SetDefault("cache.capacity", def.Cache.Capacity)
	viper.SetDefault("store.dir", def.Store.Dir)
	viper.SetDefault("batch.concurrency", def.Batch.Concurrency)
	viper.SetDefault("log.level", def.Log.Level)
	viper.SetDefault("log.format", def.Log.Format)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("tutor-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "tutor-engine"))
		}
	}

	viper.SetEnvPrefix("TUTOR_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the merged viper settings and validates them.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// app holds the wired components shared by subcommands.
type app struct {
	cfg   types.Config
	log   *slog.Logger
	cache *cache.LRU
	ex    *extract.Extractor
	store *lesson.SQLiteStore
	svc   *lesson.Service
}

// newApp loads configuration and wires the extractor, cache and logger.
// withStore also opens the lesson store; the caller must call close.
func newApp(withStore bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, _ := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	lru, err := cache.NewLRU(cfg.Cache.Capacity)
	if err != nil {
		return nil, err
	}
	ex := extract.New(extract.WithCache(lru), extract.WithLogger(log))

	a := &app{cfg: cfg, log: log, cache: lru, ex: ex}
	var store lesson.Store
	if withStore {
		a.store, err = lesson.NewSQLiteStore(cfg.Store)
		if err != nil {
			return nil, err
		}
		store = a.store
	}
	a.svc = lesson.NewService(lesson.NewBuilder(ex, log), store, log)
	return a, nil
}

// openStore loads configuration and opens only the lesson store.
func openStore() (*lesson.SQLiteStore, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return lesson.NewSQLiteStore(cfg.Store)
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
	s := a.cache.Stats()
	a.log.Debug("extraction cache", "hits", s.Hits, "misses", s.Misses, "entries", s.Len)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
