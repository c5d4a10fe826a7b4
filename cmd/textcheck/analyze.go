package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"textcheck/internal/analyzer"
	"textcheck/internal/config"
	"textcheck/internal/lang"
	"textcheck/internal/observ"
	"textcheck/internal/report"
	"textcheck/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] [file...]",
	Short: "Analyze text for encoding, script and tokenization anomalies",
	Long: `Analyze scans whitespace-tokenized UTF-8 text line by line and
reports every issue category with counts and bounded examples.
Reads stdin when no file is given.`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.String("lang", "", "language code (suppresses expected-script noise)")
	f.Int("max-examples", analyzer.DefaultMaxExamples, "distinct examples kept per category")
	f.Int("max-locations", analyzer.DefaultMaxLocations, "locations kept per example")
	f.Bool("show-all", false, "show all categories, including empty and suppressed ones")
	f.Bool("sid", false, "treat the first field of each line as a sentence ID")
	f.Int("long-token-min", analyzer.DefaultLongTokenMin, "codepoint threshold for long-token reporting")
	f.Bool("json", false, "emit the structured JSON dump instead of the text report")
	f.Bool("summary", false, "append a headline summary to the text report")
	f.Int("jobs", 1, "number of parallel shards (1 = strictly sequential)")
	f.Bool("progress", false, "show a live progress view while scanning files")
	f.String("snapshot-out", "", "write the finished aggregate to this snapshot file")
	f.StringArray("merge", nil, "merge a previously written snapshot before reporting")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	color.NoColor = !(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))

	warn := func(format string, a ...any) {
		if !quiet {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", a...)
		}
	}

	manifest, err := config.Discover(".")
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", config.FileName, err)
	}

	cfg, err := buildConfig(cmd, manifest)
	if err != nil {
		return err
	}
	cfg.Validate(warn)

	policy := lang.For(cfg.LangCode)
	if ov, ok := manifest.Lang[cfg.LangCode]; ok {
		if err := policy.Override(ov.AllowedChars, ov.Suppress, ov.BenignWords); err != nil {
			return err
		}
	}
	a := analyzer.NewWithPolicy(cfg, policy)

	timer := observ.NewTimer()
	jobs, _ := cmd.Flags().GetInt("jobs")
	progressFlag, _ := cmd.Flags().GetBool("progress")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scanPhase := timer.Begin("analyze")
	if len(args) == 0 {
		err = runInput(ctx, a, os.Stdin, jobs)
	} else if progressFlag && isTerminal(os.Stdout) {
		err = analyzeFilesWithProgress(ctx, a, args, jobs)
	} else {
		err = analyzeFiles(ctx, a, args, jobs)
	}
	timer.End(scanPhase, fmt.Sprintf("%d lines", a.Lines))
	if err != nil {
		return err
	}

	mergeFiles, _ := cmd.Flags().GetStringArray("merge")
	for _, path := range mergeFiles {
		if err := mergeSnapshot(a, path); err != nil {
			return err
		}
	}

	if out, _ := cmd.Flags().GetString("snapshot-out"); out != "" {
		snap := store.TakeSnapshot(a.Store, cfg.LangCode, a.Lines, a.Tokens, a.Characters)
		if err := snap.WriteFile(out); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	reportPhase := timer.Begin("report")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	summaryFlag, _ := cmd.Flags().GetBool("summary")
	if jsonFlag {
		err = report.WriteJSON(os.Stdout, a)
	} else {
		err = report.WriteText(os.Stdout, a, report.Options{
			ShowAll:     cfg.ShowAll,
			Summary:     summaryFlag,
			SentenceIDs: cfg.SentenceIDs,
		})
	}
	timer.End(reportPhase, "")
	if err != nil {
		return err
	}

	if timings && !quiet {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// buildConfig resolves flags, falling back to manifest defaults for
// flags the user did not set.
func buildConfig(cmd *cobra.Command, manifest *config.File) (analyzer.Config, error) {
	f := cmd.Flags()
	langCode, _ := f.GetString("lang")
	maxExamples, _ := f.GetInt("max-examples")
	maxLocations, _ := f.GetInt("max-locations")
	showAll, _ := f.GetBool("show-all")
	sid, _ := f.GetBool("sid")
	longTokenMin, _ := f.GetInt("long-token-min")
	jsonFlag, _ := f.GetBool("json")
	summaryFlag, _ := f.GetBool("summary")

	if manifest.HasDefaults {
		d := manifest.Defaults
		if !f.Changed("lang") && d.Language != "" {
			langCode = d.Language
		}
		if !f.Changed("max-examples") && d.MaxExamples > 0 {
			maxExamples = d.MaxExamples
		}
		if !f.Changed("max-locations") && d.MaxLocations > 0 {
			maxLocations = d.MaxLocations
		}
		if !f.Changed("long-token-min") && d.LongTokenMin > 0 {
			longTokenMin = d.LongTokenMin
		}
		if !f.Changed("show-all") && d.ShowAll {
			showAll = true
		}
	}

	return analyzer.Config{
		LangCode:     langCode,
		MaxExamples:  maxExamples,
		MaxLocations: maxLocations,
		ShowAll:      showAll,
		SentenceIDs:  sid,
		LongTokenMin: longTokenMin,
		WithProfile:  jsonFlag || summaryFlag,
	}, nil
}

func runInput(ctx context.Context, a *analyzer.Analyzer, r io.Reader, jobs int) error {
	if jobs > 1 {
		return a.RunParallel(ctx, r, jobs)
	}
	return a.Run(ctx, r)
}

func analyzeFiles(ctx context.Context, a *analyzer.Analyzer, files []string, jobs int) error {
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		err = runInput(ctx, a, f, jobs)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if ctx.Err() != nil {
			break
		}
	}
	return nil
}

func mergeSnapshot(a *analyzer.Analyzer, path string) error {
	snap, err := store.ReadSnapshotFile(path)
	if err != nil {
		return err
	}
	st, err := snap.Restore()
	if err != nil {
		return err
	}
	st.MaxExamples = a.Store.MaxExamples
	st.MaxLocations = a.Store.MaxLocations
	a.Store.Merge(st)
	a.Lines += snap.Lines
	a.Tokens += snap.Tokens
	a.Characters += snap.Characters
	return nil
}
