// Package main provides the CLI entrypoint for orsprogress.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/orsprogress/internal/algorithm"
	"github.com/verte-zerg/orsprogress/internal/config"
	"github.com/verte-zerg/orsprogress/internal/export"
	"github.com/verte-zerg/orsprogress/internal/model"
	"github.com/verte-zerg/orsprogress/internal/progress"
	"github.com/verte-zerg/orsprogress/internal/ratingfile"
	"github.com/verte-zerg/orsprogress/internal/ratings"
	"github.com/verte-zerg/orsprogress/internal/simulate"
	"github.com/verte-zerg/orsprogress/internal/stats"
	"github.com/verte-zerg/orsprogress/internal/store"
)

const (
	defaultAgeGroup      = "adult"
	defaultFormat        = "text"
	defaultPlotHeight    = 10
	defaultSimMeetings   = 8
	defaultSimNoise      = 2.0
	defaultSimFirstScore = 18.0
)

var (
	dbPath     string
	configPath string
	tablesPath string
	verbose    bool

	fileCfg config.FileConfig

	reportScores   string
	reportFile     string
	reportRater    string
	reportAgeGroup string
	reportExclude  bool
	reportFormat   string
	reportPlot     bool
	reportWidth    int
	reportHeight   int
	reportColor    bool

	pathAgeGroup string
	pathFirst    float64
	pathMeetings int
	pathFormat   string
	pathPlot     bool

	raterLabel    string
	raterAgeGroup string
	raterExclude  bool

	ratingDate string
	ratingFile string

	simAgeGroup  string
	simFirst     float64
	simMeetings  int
	simNoise     float64
	simSeed      int64
	simAmplitude float64
	simRater     string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "orsprogress",
		Short:             "ORS progress indicators and expected treatment response",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.DefaultDBPath(), "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&tablesPath, "tables", "", "TOML file with custom coefficient tables")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newPathCmd())
	rootCmd.AddCommand(newRaterCmd())
	rootCmd.AddCommand(newRatingCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = cfg
	applyStringConfig(cmd, "db", &dbPath, fileCfg.Store.Path)
	applyStringConfig(cmd, "tables", &tablesPath, fileCfg.Algorithm.Tables)
	log.Debug().Str("config", configPath).Str("db", dbPath).Str("tables", tablesPath).Msg("configuration loaded")
	return nil
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute progress indicators for a series of ratings",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().StringVar(&reportScores, "scores", "", "comma-separated scores, oldest first")
	cmd.Flags().StringVar(&reportFile, "file", "", "rating file (one score or id,date,score per line)")
	cmd.Flags().StringVar(&reportRater, "rater", "", "stored rater id")
	cmd.Flags().StringVar(&reportAgeGroup, "age-group", defaultAgeGroup, "age group for --scores and --file (adolescent, adult, child)")
	cmd.Flags().BoolVar(&reportExclude, "exclude", false, "mark the rater as excluded from stats")
	cmd.Flags().StringVar(&reportFormat, "format", defaultFormat, "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&reportPlot, "plot", false, "plot the expected trajectory against the ratings")
	addRenderFlags(cmd)
	return cmd
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&reportWidth, "width", 0, "plot width in columns (default: terminal width)")
	cmd.Flags().IntVar(&reportHeight, "height", defaultPlotHeight, "plot height in rows")
	cmd.Flags().BoolVar(&reportColor, "color", false, "force colored output")
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	applyReportConfig(cmd)
	format, err := export.ParseFormat(reportFormat)
	if err != nil {
		return err
	}
	if err := validateReportSource(); err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}

	rater, series, err := loadReportInput(cmd.Context())
	if err != nil {
		return err
	}
	report, err := engine.Compute(rater, series)
	if err != nil {
		return fmt.Errorf("failed to compute report: %w", err)
	}
	log.Debug().Int("ratings", report.RatingsCount).Str("algorithm", report.Algorithm.Version).Msg("report computed")

	out := cmd.OutOrStdout()
	switch format {
	case export.FormatJSON:
		return export.WriteJSON(out, export.FromReport(report))
	case export.FormatYAML:
		return export.WriteYAML(out, export.FromReport(report))
	default:
		opts := renderOptions()
		opts.Plot = reportPlot
		return stats.RenderReport(out, report, opts)
	}
}

func validateReportSource() error {
	sources := 0
	for _, v := range []string{reportScores, reportFile, reportRater} {
		if strings.TrimSpace(v) != "" {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of --scores, --file or --rater is required")
	}
	return nil
}

func loadReportInput(ctx context.Context) (model.Rater, *ratings.Series, error) {
	if reportRater != "" {
		st, err := openStore()
		if err != nil {
			return model.Rater{}, nil, err
		}
		defer closeStore(st)
		rec, series, err := st.LoadSeries(ctx, reportRater)
		if isNotFound(err) {
			return model.Rater{}, nil, fmt.Errorf("%w (list raters with: orsprogress rater list)", err)
		}
		if err != nil {
			return model.Rater{}, nil, fmt.Errorf("failed to load rater: %w", err)
		}
		return rec.Rater, series, nil
	}

	age, err := model.ParseAgeGroup(reportAgeGroup)
	if err != nil {
		return model.Rater{}, nil, err
	}
	rater, err := model.NewRater(age, reportExclude)
	if err != nil {
		return model.Rater{}, nil, err
	}

	var series *ratings.Series
	if reportFile != "" {
		items, err := ratingfile.Load(reportFile)
		if err != nil {
			return model.Rater{}, nil, err
		}
		series, err = ratings.FromRatings(items)
		if err != nil {
			return model.Rater{}, nil, err
		}
	} else {
		scores, err := ratingfile.ParseScores(reportScores)
		if err != nil {
			return model.Rater{}, nil, fmt.Errorf("invalid --scores value: %w", err)
		}
		series, err = ratings.FromScores(scores...)
		if err != nil {
			return model.Rater{}, nil, err
		}
	}
	series.Lock()
	return rater, series, nil
}

func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the expected treatment response for every meeting",
		Args:  cobra.NoArgs,
		RunE:  runPathCmd,
	}
	cmd.Flags().StringVar(&pathAgeGroup, "age-group", defaultAgeGroup, "age group (adolescent, adult, child)")
	cmd.Flags().Float64Var(&pathFirst, "first", 0, "intake score")
	cmd.Flags().IntVar(&pathMeetings, "meetings", 1, "planned number of meetings")
	cmd.Flags().StringVar(&pathFormat, "format", defaultFormat, "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&pathPlot, "plot", false, "plot the trajectory")
	addRenderFlags(cmd)
	_ = cmd.MarkFlagRequired("first")
	return cmd
}

func runPathCmd(cmd *cobra.Command, _ []string) error {
	applyStringConfig(cmd, "age-group", &pathAgeGroup, fileCfg.Report.AgeGroup)
	applyStringConfig(cmd, "format", &pathFormat, fileCfg.Report.Format)
	applyRenderConfig(cmd)
	format, err := export.ParseFormat(pathFormat)
	if err != nil {
		return err
	}
	age, err := model.ParseAgeGroup(pathAgeGroup)
	if err != nil {
		return err
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}
	path, err := engine.Path(model.Rater{AgeGroup: age}, pathFirst, pathMeetings)
	if err != nil {
		return fmt.Errorf("failed to compute path: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case export.FormatJSON:
		return export.WriteJSON(out, export.FromPath(path))
	case export.FormatYAML:
		return export.WriteYAML(out, export.FromPath(path))
	}
	if err := stats.RenderPathValues(out, path); err != nil {
		return err
	}
	if !pathPlot {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return stats.RenderPath(out, path, nil, renderOptions())
}

func newRaterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rater",
		Short: "Manage stored raters",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a rater and print its id",
		Args:  cobra.NoArgs,
		RunE:  runRaterAddCmd,
	}
	addCmd.Flags().StringVar(&raterLabel, "label", "", "display label")
	addCmd.Flags().StringVar(&raterAgeGroup, "age-group", defaultAgeGroup, "age group (adolescent, adult, child)")
	addCmd.Flags().BoolVar(&raterExclude, "exclude", false, "exclude the rater from stats")

	cmd.AddCommand(addCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored raters",
		Args:  cobra.NoArgs,
		RunE:  runRaterListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "exclude <rater-id>",
		Short: "Exclude a rater from stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaterExcludeCmd(cmd, args[0], true)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "include <rater-id>",
		Short: "Include a rater in stats again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRaterExcludeCmd(cmd, args[0], false)
		},
	})
	return cmd
}

func runRaterAddCmd(cmd *cobra.Command, _ []string) error {
	applyStringConfig(cmd, "age-group", &raterAgeGroup, fileCfg.Report.AgeGroup)
	age, err := model.ParseAgeGroup(raterAgeGroup)
	if err != nil {
		return err
	}
	rater, err := model.NewRater(age, raterExclude)
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	id, err := st.CreateRater(cmd.Context(), raterLabel, rater)
	if err != nil {
		return fmt.Errorf("failed to create rater: %w", err)
	}
	log.Debug().Str("id", id).Str("age_group", age.String()).Msg("rater created")
	return writeLine(cmd.OutOrStdout(), id)
}

func runRaterListCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	records, err := st.ListRaters(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list raters: %w", err)
	}
	if len(records) == 0 {
		log.Info().Msg("no raters yet, create one with: orsprogress rater add")
		return nil
	}
	return stats.RenderRaters(cmd.OutOrStdout(), records)
}

func runRaterExcludeCmd(cmd *cobra.Command, id string, exclude bool) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.SetExcludeFromStats(cmd.Context(), id, exclude); err != nil {
		return fmt.Errorf("failed to update rater: %w", err)
	}
	return nil
}

func newRatingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rating",
		Short: "Manage a rater's ratings",
	}

	addCmd := &cobra.Command{
		Use:   "add <rater-id> [score...]",
		Short: "Append ratings to a rater",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRatingAddCmd,
	}
	addCmd.Flags().StringVar(&ratingDate, "date", "", "completion date for the scores (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&ratingFile, "file", "", "import ratings from a rating file")

	cmd.AddCommand(addCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "list <rater-id>",
		Short: "List a rater's ratings",
		Args:  cobra.ExactArgs(1),
		RunE:  runRatingListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <rater-id> <rating-id>",
		Short: "Remove a rating",
		Args:  cobra.ExactArgs(2),
		RunE:  runRatingRmCmd,
	})
	return cmd
}

func runRatingAddCmd(cmd *cobra.Command, args []string) error {
	raterID := args[0]
	items, err := ratingsFromArgs(args[1:])
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("no ratings given (pass scores or --file)")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ids, err := st.AddRatings(cmd.Context(), raterID, items)
	if err != nil {
		return fmt.Errorf("failed to add ratings: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, id := range ids {
		if err := writeLine(out, strconv.FormatInt(id, 10)); err != nil {
			return err
		}
	}
	return nil
}

func ratingsFromArgs(scores []string) ([]model.Rating, error) {
	var date *string
	if ratingDate != "" {
		if _, err := time.Parse(time.DateOnly, ratingDate); err != nil {
			return nil, fmt.Errorf("invalid --date value: %w", err)
		}
		date = &ratingDate
	}

	var items []model.Rating
	if ratingFile != "" {
		loaded, err := ratingfile.Load(ratingFile)
		if err != nil {
			return nil, err
		}
		items = append(items, loaded...)
	}
	if len(scores) > 0 {
		parsed, err := ratingfile.ParseScores(strings.Join(scores, " "))
		if err != nil {
			return nil, err
		}
		for _, score := range parsed {
			r, err := model.NewRating(nil, date, score)
			if err != nil {
				return nil, err
			}
			items = append(items, r)
		}
	}
	return items, nil
}

func runRatingListCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if _, err := st.GetRater(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to load rater: %w", err)
	}
	items, err := st.ListRatings(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to list ratings: %w", err)
	}
	return stats.RenderRatings(cmd.OutOrStdout(), items)
}

func runRatingRmCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid rating id %q: %w", args[1], err)
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.DeleteRating(cmd.Context(), args[0], id); err != nil {
		return fmt.Errorf("failed to remove rating: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize progress across every stored rater",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	addRenderFlags(cmd)
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	applyRenderConfig(cmd)
	engine, err := newEngine()
	if err != nil {
		return err
	}
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	cohort, err := stats.BuildCohort(cmd.Context(), st, engine)
	if err != nil {
		return fmt.Errorf("failed to build stats: %w", err)
	}
	for _, s := range cohort.Skipped {
		log.Warn().Str("rater", s.RaterID).Str("reason", s.Reason).Msg("rater skipped")
	}
	return stats.RenderCohort(cmd.OutOrStdout(), cohort, renderOptions())
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate a synthetic rating series",
		Args:  cobra.NoArgs,
		RunE:  runSimulateCmd,
	}
	cmd.Flags().StringVar(&simAgeGroup, "age-group", defaultAgeGroup, "age group (adolescent, adult, child)")
	cmd.Flags().Float64Var(&simFirst, "first", defaultSimFirstScore, "intake score")
	cmd.Flags().IntVar(&simMeetings, "meetings", defaultSimMeetings, "number of ratings")
	cmd.Flags().Float64Var(&simNoise, "noise", defaultSimNoise, "maximum deviation from the expected trajectory")
	cmd.Flags().Int64Var(&simSeed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().Float64Var(&simAmplitude, "sawtooth", 0, "generate an alternating series with this amplitude instead")
	cmd.Flags().StringVar(&simRater, "rater", "", "store the generated ratings for this rater id")
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	applyStringConfig(cmd, "age-group", &simAgeGroup, fileCfg.Report.AgeGroup)
	if err := validateSimulate(); err != nil {
		return err
	}
	age, err := model.ParseAgeGroup(simAgeGroup)
	if err != nil {
		return err
	}

	gen := simulate.New(simSeed)
	var scores []float64
	if simAmplitude > 0 {
		scores = gen.Sawtooth(simFirst, simAmplitude, simMeetings)
	} else {
		provider, err := algorithm.LoadProvider(tablesPath)
		if err != nil {
			return err
		}
		c, err := provider.Lookup(age, simMeetings)
		if err != nil {
			return err
		}
		scores = gen.AlongTrajectory(progress.NewTrajectory(simFirst, simMeetings, c), simMeetings, simNoise)
	}

	if simRater != "" {
		st, err := openStore()
		if err != nil {
			return err
		}
		defer closeStore(st)
		items := make([]model.Rating, len(scores))
		for i, score := range scores {
			items[i] = model.Rating{Score: score}
		}
		if _, err := st.AddRatings(cmd.Context(), simRater, items); err != nil {
			return fmt.Errorf("failed to add ratings: %w", err)
		}
		log.Info().Str("rater", simRater).Int("ratings", len(scores)).Msg("simulated ratings stored")
	}

	parts := make([]string, len(scores))
	for i, score := range scores {
		parts[i] = export.Fixed(score, 1)
	}
	return writeLine(cmd.OutOrStdout(), strings.Join(parts, ","))
}

func validateSimulate() error {
	if simMeetings <= 0 {
		return fmt.Errorf("--meetings must be > 0")
	}
	if err := model.ValidateScore(simFirst); err != nil {
		return fmt.Errorf("invalid --first value: %w", err)
	}
	if simNoise < 0 {
		return fmt.Errorf("--noise must be >= 0")
	}
	if simAmplitude < 0 {
		return fmt.Errorf("--sawtooth must be >= 0")
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
	path := configPath
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
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newEngine() (*progress.Engine, error) {
	provider, err := algorithm.LoadProvider(tablesPath)
	if err != nil {
		return nil, err
	}
	if tablesPath != "" {
		log.Debug().Str("path", tablesPath).Msg("using custom coefficient tables")
	}
	return progress.NewEngine(provider), nil
}

func openStore() (*store.Store, error) {
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, nil
}

func closeStore(st *store.Store) {
	if err := st.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close db")
	}
}

func renderOptions() stats.RenderOptions {
	return stats.RenderOptions{
		Width:      reportWidth,
		Height:     reportHeight,
		ForceColor: reportColor,
	}
}

func applyReportConfig(cmd *cobra.Command) {
	applyStringConfig(cmd, "age-group", &reportAgeGroup, fileCfg.Report.AgeGroup)
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)
	applyRenderConfig(cmd)
}

func applyRenderConfig(cmd *cobra.Command) {
	applyIntConfig(cmd, "width", &reportWidth, fileCfg.Report.Width)
	applyIntConfig(cmd, "height", &reportHeight, fileCfg.Report.Height)
	applyBoolConfig(cmd, "color", &reportColor, fileCfg.Report.Color)
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
	return fmt.Sprintf(`# orsprogress configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# age-group = %q       # Default age group (adolescent, adult, child)
# format = %q           # Output format (text, json, yaml)
# width = 0                # Plot width in columns, 0 uses the terminal width
# height = %d              # Plot height in rows
# color = false            # Force colored output

[algorithm]
# tables = ""              # TOML file with custom coefficient tables

[store]
# path = %q
`,
		defaultAgeGroup,
		defaultFormat,
		defaultPlotHeight,
		config.DefaultDBPath(),
	)
}

func writeLine(w io.Writer, line string) error {
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
