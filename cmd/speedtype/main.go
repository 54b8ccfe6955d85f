// Package main provides the CLI entrypoint for speedtype.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/speedtype/internal/clock"
	"github.com/verte-zerg/speedtype/internal/config"
	"github.com/verte-zerg/speedtype/internal/generator"
	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/session"
	"github.com/verte-zerg/speedtype/internal/stats"
	"github.com/verte-zerg/speedtype/internal/tui"
	"github.com/verte-zerg/speedtype/internal/wordlist"
)

const (
	defaultDuration = int(model.DefaultDuration)
	defaultWords    = model.WordsPerList
	wordListLang    = "en"
)

var (
	testDuration int
	testWordList string
	testLogFile  string

	wordsCount int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "speedtype",
		Short:         "Terminal typing speed test",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().IntVar(&testDuration, "duration", defaultDuration, "test duration in seconds (30, 60 or 120)")
	rootCmd.Flags().StringVar(&testLogFile, "log-file", "", "write a debug log to this file")
	rootCmd.PersistentFlags().StringVar(&testWordList, "wordlist", "", "custom word list file, one word per line")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("speedtype needs an interactive terminal")
	}
	src, err := loadSource(cfg.WordListPath)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	sched := tui.NewScheduler()
	sess := session.New(src, clock.NewCountdown(sched), clock.NewCountdown(sched))
	sess.SetDuration(int(cfg.Duration))
	log.Printf("starting with duration %ds, %d vocabulary words", cfg.Duration, len(src.Vocabulary()))

	m := tui.NewModel(sess, sched)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if res, ok := m.Result(); ok {
		if err := stats.WriteResult(cmd.OutOrStdout(), res); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &testDuration, fileCfg.Test.Duration)
	applyStringConfig(cmd, "wordlist", &testWordList, fileCfg.Test.WordList)
	applyStringConfig(cmd, "log-file", &testLogFile, fileCfg.Test.LogFile)

	return model.Config{
		Duration:     model.Duration(testDuration),
		WordListPath: testWordList,
		LogFile:      testLogFile,
	}, nil
}

func validateConfig(cfg model.Config) error {
	if !model.ValidDuration(int(cfg.Duration)) {
		return fmt.Errorf("--duration must be one of 30, 60, 120")
	}
	return nil
}

func loadSource(path string) (*generator.Source, error) {
	words := wordlist.Vocabulary()
	if path != "" {
		loaded, err := wordlist.LoadWords(path)
		if err != nil {
			return nil, wordListLoadError(path, err)
		}
		words = wordlist.Filter(loaded, wordlist.FilterForLang(wordListLang))
		if len(words) == 0 {
			return nil, fmt.Errorf("word list %s has no lowercase words", path)
		}
		if skipped := len(loaded) - len(words); skipped > 0 {
			logErrf("skipped %d words that are not lowercase ASCII\n", skipped)
		}
	}
	return generator.NewSource(generator.New(), words), nil
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "speedtype")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print a generated word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().IntVarP(&wordsCount, "count", "n", defaultWords, "number of words")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	if wordsCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	src, err := loadSource(cfg.WordListPath)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(src.Generate(wordsCount), " ")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# speedtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# duration = %d           # Test duration in seconds: 30, 60 or 120
# wordlist = ""           # Custom word list, one lowercase word per line
# log-file = ""           # Debug log written while the TUI runs
`,
		defaultDuration,
	)
}

func wordListLoadError(path string, err error) error {
	lines := []string{
		fmt.Sprintf("failed to load word list: %v", err),
		fmt.Sprintf("expected word list at: %s", path),
		"Run without --wordlist to use the built-in vocabulary",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
