// Package main implements corrigo's MessagePack correction daemon: a
// long-running process that loads a spell.Spell once and answers
// CorrectionRequest messages over stdin/stdout, for editor integrations
// that don't want to re-exec the spell/bigspell drivers per line.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/corrigo-dev/corrigo/internal/config"
	"github.com/corrigo-dev/corrigo/pkg/ipc"
	"github.com/corrigo-dev/corrigo/pkg/spell"
)

const (
	version = "0.1.0-beta"
	appName = "corrigo"
)

// sigHandler exits the process cleanly on Ctrl+C or SIGTERM.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	unigramPath := flag.String("u", "dict/unigram.txt", "Path to the unigram frequency file")
	bigramPath := flag.String("b", "dict/bigram.txt", "Path to the optional bigram frequency file")
	soundexPath := flag.String("s", "dict/soundex.txt", "Path to the optional phonetic-code file")
	whitelistPath := flag.String("w", "", "Path to an optional whitelist file")
	configPath := flag.String("config", "", "Path to a corrigo.toml config file")
	hotCacheSize := flag.Int("hotcache", 4096, "Max misspellings held in the hot cache (0 disables it)")
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("v", false, "Toggle verbose mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	var cfg *config.Config
	var resolvedConfigPath string
	if *configPath != "" {
		loaded, err := config.InitConfig(*configPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		cfg, resolvedConfigPath = loaded, *configPath
	} else {
		cfg = config.DefaultConfig()
	}

	var opts []spell.Option
	if *whitelistPath != "" {
		opts = append(opts, spell.WithWhitelist(*whitelistPath))
	}
	if *bigramPath != "" {
		opts = append(opts, spell.WithBigram(*bigramPath))
	}
	if *soundexPath != "" {
		opts = append(opts, spell.WithSoundex(*soundexPath))
	}
	if *hotCacheSize > 0 {
		opts = append(opts, spell.WithHotCache(*hotCacheSize))
	}

	sp, err := spell.New(*unigramPath, opts...)
	if err != nil {
		log.Fatalf("failed to load corpus: %v", err)
	}
	defer sp.Close()

	showStartupInfo(*unigramPath)

	srv := ipc.NewServer(sp, cfg, resolvedConfigPath)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})
	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print(fmt.Sprintf("[%s] Statistical spelling correction over MessagePack IPC", appName))
	logger.Print("", "version", version)
	logger.Print("")
	logger.Print("use --help to see available options")
	logger.Print("")
}

func showStartupInfo(unigramPath string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println(" corrigo ")
	println("=========")
	log.Infof("version: %s", version)
	log.Infof("process id: [ %d ]", pid)
	log.Infof("unigram corpus: ( %s )", unigramPath)
	log.Info("status: ready")
	println("=========")

	log.SetLevel(currentLevel)
}
