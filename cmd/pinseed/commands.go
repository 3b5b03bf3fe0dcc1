package main

import (
	"Pinseed/config"
	"Pinseed/internal/dataset"
	"Pinseed/internal/idmap"
	"Pinseed/internal/synth"
	"Pinseed/pkg/database"
	"Pinseed/pkg/snowflake"
	"Pinseed/service"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v2"
)

func generateCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate the synthetic dataset as csv files",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "users", Usage: "number of users"},
			&cli.IntFlag{Name: "interactions", Usage: "interaction trials, an upper bound on rows"},
			&cli.IntFlag{Name: "queries", Usage: "number of search queries"},
			&cli.Float64Flag{Name: "avg-boards", Usage: "mean boards per user"},
			&cli.Float64Flag{Name: "avg-pins", Usage: "mean pins per board"},
			&cli.Uint64Flag{Name: "seed", Usage: "random seed"},
			&cli.StringFlag{Name: "out", Usage: "output directory"},
			&cli.StringFlag{Name: "mode", Usage: "free-text mode tag written to metadata"},
			&cli.TimestampFlag{Name: "now", Usage: "reference time, defaults to the current time", Layout: time.RFC3339},
			&cli.BoolFlag{Name: "publish", Usage: "upload the files to oss"},
		},
		Action: func(c *cli.Context) error {
			conf := *cfg
			gen := conf.Generator
			if c.IsSet("users") {
				gen.Users = c.Int("users")
			}
			if c.IsSet("interactions") {
				gen.Interactions = c.Int("interactions")
			}
			if c.IsSet("queries") {
				gen.Queries = c.Int("queries")
			}
			if c.IsSet("avg-boards") {
				gen.AvgBoards = c.Float64("avg-boards")
			}
			if c.IsSet("avg-pins") {
				gen.AvgPins = c.Float64("avg-pins")
			}
			if c.IsSet("seed") {
				gen.Seed = c.Uint64("seed")
			}
			if c.IsSet("out") {
				gen.OutputDir = c.String("out")
			}
			if c.IsSet("mode") {
				gen.Mode = c.String("mode")
			}
			if err := gen.Validate(); err != nil {
				return err
			}
			var now time.Time
			if ts := c.Timestamp("now"); ts != nil {
				now = *ts
			}

			app := InitGenerator(conf)
			opts := synth.OptionsFromConfig(gen, snowflake.GenRunID(), now)
			res, err := app.GenerateService.Run(c.Context, opts, gen.OutputDir, c.Bool("publish"))
			if err != nil {
				return err
			}

			w := c.App.Writer
			meta := res.Metadata
			fmt.Fprintf(w, "run %s (seed %d) written to %s\n", meta.RunID, meta.Seed, gen.OutputDir)
			fmt.Fprintf(w, "  users:        %d\n", meta.TotalUsers)
			fmt.Fprintf(w, "  boards:       %d\n", meta.TotalBoards)
			fmt.Fprintf(w, "  pins:         %d\n", meta.TotalPins)
			fmt.Fprintf(w, "  interactions: %d\n", meta.TotalInteractions)
			fmt.Fprintf(w, "  searches:     %d\n", meta.TotalSearches)
			stats := meta.SampleStats
			fmt.Fprintf(w, "avg pins per user %.2f, avg saves per pin %.2f, most popular category %s, avg trending score %.2f\n",
				stats.AvgPinsPerUser, stats.AvgSavesPerPin, stats.MostPopularCategory, stats.AvgTrendingScore)
			for _, key := range res.Published {
				fmt.Fprintf(w, "published %s\n", key)
			}
			return nil
		},
	}
}

func loadCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "load",
		Usage: "load the csv files into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Usage: "directory holding the csv files"},
			&cli.StringFlag{Name: "idmap", Usage: "identity map store: memory | redis"},
		},
		Action: func(c *cli.Context) error {
			conf := *cfg
			if c.IsSet("input") {
				conf.Loader.InputDir = c.String("input")
			}
			if c.IsSet("idmap") {
				conf.Loader.IDMap = c.String("idmap")
			}

			app, err := InitApp(conf)
			if err != nil {
				return err
			}
			if err := database.Migrate(app.DB); err != nil {
				return err
			}
			summary, err := app.LoadService.Run(c.Context, conf.Loader.InputDir)
			if summary != nil {
				printLoadSummary(c.App.Writer, summary)
			}
			return err
		},
	}
}

func migrateCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or update the tables",
		Action: func(c *cli.Context) error {
			app, err := InitApp(*cfg)
			if err != nil {
				return err
			}
			if err := database.Migrate(app.DB); err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, "migrated")
			return nil
		},
	}
}

func profilesCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "profiles",
		Usage: "rebuild user profiles from the loaded interactions",
		Action: func(c *cli.Context) error {
			app, err := InitApp(*cfg)
			if err != nil {
				return err
			}
			n, err := app.ProfileService.Rebuild(c.Context)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%d profiles written\n", n)
			return nil
		},
	}
}

func statsCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "print row counts of every table",
		Action: func(c *cli.Context) error {
			app, err := InitApp(*cfg)
			if err != nil {
				return err
			}
			totals, err := app.StatsService.Totals(c.Context)
			if err != nil {
				return err
			}
			w := c.App.Writer
			fmt.Fprintf(w, "users:               %d\n", totals.Users)
			fmt.Fprintf(w, "boards:              %d\n", totals.Boards)
			fmt.Fprintf(w, "pins:                %d\n", totals.Pins)
			fmt.Fprintf(w, "interactions:        %d\n", totals.Interactions)
			fmt.Fprintf(w, "searches:            %d\n", totals.Searches)
			fmt.Fprintf(w, "profiles:            %d\n", totals.Profiles)
			fmt.Fprintf(w, "recommendation logs: %d\n", totals.RecommendationLogs)
			fmt.Fprintf(w, "avg engagement rate: %.2f%%\n", totals.AvgEngagementRate)
			fmt.Fprintf(w, "avg click-through:   %.2f%%\n", totals.AvgClickThroughRate)
			return nil
		},
	}
}

func printLoadSummary(w io.Writer, summary *service.LoadSummary) {
	fmt.Fprintf(w, "run %s\n", summary.RunID)
	fmt.Fprintf(w, "%-13s %8s %8s %8s %10s %8s\n", "entity", "rows", "created", "existing", "unresolved", "failed")
	for _, entity := range dataset.Entities {
		s, ok := summary.Stages[entity]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-13s %8d %8d %8d %10d %8d\n", entity, s.Rows, s.Created, s.Existing, s.Unresolved, s.Failed)
	}
	for _, kind := range idmap.Kinds {
		if n, ok := summary.Mapped[kind]; ok {
			fmt.Fprintf(w, "mapped %-6s %d\n", kind, n)
		}
	}
	if summary.Totals == nil {
		return
	}
	counts := summary.Totals.Counts()
	fmt.Fprintln(w, "store totals:")
	for _, entity := range dataset.Entities {
		fmt.Fprintf(w, "  %-13s %d\n", entity, counts[entity])
	}
}
