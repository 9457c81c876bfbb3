// Package main provides the CLI entrypoint for worgen.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/worgen/internal/config"
	"github.com/verte-zerg/worgen/internal/generator"
	"github.com/verte-zerg/worgen/internal/logger"
	"github.com/verte-zerg/worgen/internal/model"
	"github.com/verte-zerg/worgen/internal/progress"
	"github.com/verte-zerg/worgen/internal/stats"
	"github.com/verte-zerg/worgen/internal/wordlist"
)

const version = "1.2.0"

const defaultProgress = string(progress.ModeAuto)

var (
	genQuiet    bool
	genProgress string
	genSummary  bool
)

// usageError marks errors that are reported together with the usage text.
type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		logger.New(stderr, false).Errorf("%v", err)
		var uerr usageError
		if errors.As(err, &uerr) {
			logErrf(stderr, "\n%s", usageText(rootCmd.Name()))
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "worgen min-max filename1 min1-max1 [filename2 min2-max2 [filename3 min3-max3]]",
		Short:         "Generate word combinations out of one to three word lists",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          validateArgs,
		RunE:          runGenerateCmd,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	rootCmd.Flags().BoolVarP(&genQuiet, "quiet", "q", false, "suppress progress and informational messages")
	rootCmd.Flags().StringVar(&genProgress, "progress", defaultProgress, "progress display: auto, plain, bar or off")
	rootCmd.Flags().BoolVar(&genSummary, "summary", false, "print a table of the loaded word lists")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func validateArgs(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 3, 5, 7:
		return nil
	}
	return usageError{msg: fmt.Sprintf("expected 3, 5 or 7 arguments, got %d", len(args))}
}

func runGenerateCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "quiet", &genQuiet, fileCfg.Generate.Quiet)
	applyStringConfig(cmd, "progress", &genProgress, fileCfg.Generate.Progress)
	applyBoolConfig(cmd, "summary", &genSummary, fileCfg.Generate.Summary)

	mode, err := progress.ParseMode(genProgress)
	if err != nil {
		return usageError{msg: err.Error()}
	}
	if genQuiet {
		mode = progress.ModeOff
	}

	outBound, specs, err := parseSpecs(args)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	log := logger.New(stderr, !genQuiet)
	log.Infof("Will be producing %d-%d character long word combinations.", outBound.Min, outBound.Max)
	for _, spec := range specs {
		log.Infof("Reading %d-%d characters words from %s.", spec.Bound.Min, spec.Bound.Max, spec.Path)
	}

	lists, err := loadLists(specs, log)
	if err != nil {
		return err
	}
	if genSummary {
		for _, line := range stats.ListSummary(lists, outBound) {
			logErrf(stderr, "%s\n", line)
		}
	}

	gen := generator.New(cmd.OutOrStdout(), generator.WithProgress(progress.New(mode, stderr)))
	count, err := gen.Generate(lists, outBound)
	if err != nil {
		return err
	}
	log.Infof("Final count: %d word combinations.", count)
	return nil
}

// parseSpecs splits positional arguments into the output bound and the word list specs.
func parseSpecs(args []string) (model.Bound, []model.ListSpec, error) {
	outBound, err := model.ParseBound(args[0])
	if err != nil {
		return model.Bound{}, nil, usageError{msg: err.Error()}
	}
	specs := make([]model.ListSpec, 0, len(args)/2)
	for i := 1; i+1 < len(args); i += 2 {
		path := args[i]
		if strings.TrimSpace(path) == "" {
			return model.Bound{}, nil, usageError{msg: fmt.Sprintf("word list %d: filename is empty", len(specs)+1)}
		}
		bound, err := model.ParseBound(args[i+1])
		if err != nil {
			return model.Bound{}, nil, usageError{msg: fmt.Sprintf("word list %d: %v", len(specs)+1, err)}
		}
		specs = append(specs, model.ListSpec{Path: path, Bound: bound})
	}
	return outBound, specs, nil
}

func loadLists(specs []model.ListSpec, log logger.Logger) (model.Lists, error) {
	loaded := make([]model.WordList, 0, len(specs))
	for _, spec := range specs {
		list, err := wordlist.Load(spec.Path, spec.Bound, log)
		if err != nil {
			return model.Lists{}, err
		}
		loaded = append(loaded, list)
	}
	lists := model.Lists{Primary: loaded[0]}
	if len(loaded) > 1 {
		lists.Secondary = &loaded[1]
	}
	if len(loaded) > 2 {
		lists.Tertiary = &loaded[2]
	}
	return lists, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(cmd *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
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

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	editCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editCmd.Stdin = cmd.InOrStdin()
	editCmd.Stdout = cmd.OutOrStdout()
	editCmd.Stderr = cmd.ErrOrStderr()
	if err := editCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# worgen configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# quiet = false           # Suppress progress and informational messages
# progress = %q       # Progress display: auto, plain, bar or off
# summary = false         # Print a table of the loaded word lists
`,
		defaultProgress,
	)
}

func usageText(prog string) string {
	return fmt.Sprintf(`Version: %[1]s

usage: %[2]s min-max filename1 min1-max1 [filename2 min2-max2 [filename3 min3-max3]]
  min-max   : length limits for the output strings
  filename1 : name of the first word list file (required)
  min1-max1 : length limits for the words from the first file
  filename2 : name of the second word list file (optional)
  min2-max2 : length limits for the words from the second file
  filename3 : name of the third word list file (optional)
  min3-max3 : length limits for the words from the third file

  Lengths must be between 1 and %[3]d.

flags:
  -q, --quiet      suppress progress and informational messages
      --progress   progress display: auto, plain, bar or off
      --summary    print a table of the loaded word lists

  Example: %[2]s 8-12 wordlist1.txt 5-10 wordlist2.txt 3-5 > results.txt

              Generates word combinations from 8 to 12 characters long
              using 5-10 character long words from 'wordlist1.txt'
              followed by 3-5 character long words from 'wordlist2.txt'.
              Saves the results to 'results.txt'.
`, version, prog, model.MaxWordLen)
}

func logErrf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
