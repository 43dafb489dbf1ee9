// Package main provides the CLI entrypoint for wattype.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wattype/internal/config"
	"github.com/verte-zerg/wattype/internal/generator"
	"github.com/verte-zerg/wattype/internal/logging"
	"github.com/verte-zerg/wattype/internal/model"
	"github.com/verte-zerg/wattype/internal/replay"
	"github.com/verte-zerg/wattype/internal/session"
	"github.com/verte-zerg/wattype/internal/stats"
	"github.com/verte-zerg/wattype/internal/tui"
	"github.com/verte-zerg/wattype/internal/wordlist"
)

const (
	defaultWords  = 120
	defaultSmooth = 3
)

var (
	practiceWords    int
	practiceDuration time.Duration
	practiceSeed     int64
	practiceWordList string
	practiceSmooth   int
	practiceLogFile  string
	practiceDebug    bool

	passageSeed     int64
	passageWords    int
	passageWordList string

	replaySmooth int
	replayWidth  int
	replayGraph  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wattype",
		Short:        "Timed typing-speed practice in the terminal",
		SilenceUsage: true,
		RunE:         runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per passage")
	rootCmd.Flags().DurationVar(&practiceDuration, "duration", session.DefaultBudget, "time budget per session")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "passage seed for the first session (default: random)")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", "", "custom word list file, one word per line")
	rootCmd.Flags().IntVar(&practiceSmooth, "smooth", defaultSmooth, "moving average window for the speed graph")
	rootCmd.Flags().StringVar(&practiceLogFile, "log-file", "", "write a session log to this file (default with --debug: $XDG_STATE_HOME/wattype/wattype.log)")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPassageCmd())
	rootCmd.AddCommand(newReplayCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	logger := logging.New(cmd.ErrOrStderr(), practiceDebug)

	cfg, err := resolvePracticeConfig(cmd, config.DefaultConfigPath())
	if err != nil {
		return err
	}
	gen, err := loadGenerator(cfg.WordListPath, logger)
	if err != nil {
		return err
	}

	sessionLogger := logging.Discard()
	if path := sessionLogPath(practiceLogFile, practiceDebug); path != "" {
		fileLogger, closeLog, err := logging.OpenFile(path, practiceDebug)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeLog(); cerr != nil {
				logger.Warn("failed to close log file", "err", cerr)
			}
		}()
		sessionLogger = fileLogger
	}

	m := tui.NewModel(cfg, gen, sessionLogger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// sessionLogPath returns where the TUI session log goes. Debug mode without an
// explicit file logs to the state directory.
func sessionLogPath(logFile string, debug bool) string {
	if logFile == "" && debug {
		return config.DefaultLogPath()
	}
	return logFile
}

// resolvePracticeConfig merges the config file under the command-line flags.
func resolvePracticeConfig(cmd *cobra.Command, path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyIntConfig(cmd, "smooth", &practiceSmooth, fileCfg.Practice.Smooth)
	if fileCfg.Practice.Duration != nil {
		applyDurationConfig(cmd, "duration", &practiceDuration, &fileCfg.Practice.Duration.Duration)
	}

	cfg := model.Config{
		Words:        practiceWords,
		Duration:     practiceDuration,
		Seed:         practiceSeed,
		RandomSeed:   !cmd.Flags().Changed("seed"),
		WordListPath: practiceWordList,
		Smooth:       practiceSmooth,
	}
	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func loadGenerator(path string, logger *slog.Logger) (*generator.Generator, error) {
	if path == "" {
		return generator.Default(), nil
	}
	words, err := wordlist.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	gen, err := generator.New(words)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list: %w", err)
	}
	logger.Debug("using custom word list", "path", path, "words", gen.Size())
	return gen, nil
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
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func newPassageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passage",
		Short: "Print the passage generated for a seed",
		Args:  cobra.NoArgs,
		RunE:  runPassageCmd,
	}
	cmd.Flags().Int64Var(&passageSeed, "seed", 0, "passage seed")
	cmd.Flags().IntVar(&passageWords, "words", defaultWords, "number of words")
	cmd.Flags().StringVar(&passageWordList, "wordlist", "", "custom word list file")
	return cmd
}

func runPassageCmd(cmd *cobra.Command, _ []string) error {
	if passageWords < 0 {
		return fmt.Errorf("--words must be >= 0")
	}
	gen, err := loadGenerator(passageWordList, logging.New(cmd.ErrOrStderr(), false))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), gen.Generate(passageSeed, passageWords).String()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Run a scripted session and print its results",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplayCmd,
	}
	cmd.Flags().IntVar(&replaySmooth, "smooth", defaultSmooth, "moving average window for the speed graph")
	cmd.Flags().IntVar(&replayWidth, "width", 0, "output width (default: terminal width)")
	cmd.Flags().BoolVar(&replayGraph, "graph", false, "draw the speed graph below the results")
	return cmd
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	res, err := replay.Run(script, time.Unix(0, 0).UTC())
	if err != nil {
		return fmt.Errorf("failed to run script: %w", err)
	}
	width := replayWidth
	if width <= 0 {
		width = stats.TerminalWidth()
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderResults(out, res.Report(script.Seed), replaySmooth, width); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !replayGraph {
		return nil
	}
	if _, err := fmt.Fprintln(out, ""); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.PlotSeries(out, stats.TimelineSeries(&res.Timeline, replaySmooth), width, 0); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target, value *time.Duration) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wattype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d              # Words per passage
# duration = %q         # Time budget per session
# wordlist = ""            # Custom word list file, one word per line
# smooth = %d              # Moving average window for the speed graph
`,
		defaultWords,
		session.DefaultBudget.String(),
		defaultSmooth,
	)
}
