package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/domino14/bjstrat/chromosome"
	"github.com/domino14/bjstrat/config"
	"github.com/domino14/bjstrat/dataloaders"
	"github.com/domino14/bjstrat/strategy"
)

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	root := &cobra.Command{
		Use:           "bjstrat",
		Short:         "Decode and display evolved blackjack strategy chromosomes",
		Version:       GitVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}
			setupLogging(cfg.GetBool(config.ConfigDebug))
			log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())
			return nil
		},
	}
	config.Flags(root.PersistentFlags())

	root.AddCommand(
		&cobra.Command{
			Use:   "show [chromosome.csv]",
			Short: "Display the mean values of each strategy table",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return show(cmd.OutOrStdout(), cfg, args)
			},
		},
		&cobra.Command{
			Use:   "evolve [chromosome.csv]",
			Short: "Threshold a mean chromosome into a strategy, save it and display its decisions",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return evolve(cmd.OutOrStdout(), cfg, args)
			},
		},
		&cobra.Command{
			Use:   "basic",
			Short: "Write and display the basic strategy chromosome",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return basic(cmd.OutOrStdout(), cfg)
			},
		},
		&cobra.Command{
			Use:   "sample [chromosome.csv]",
			Short: "Draw a strategy from a mean chromosome, save it and display its decisions",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return sample(cmd.OutOrStdout(), cfg, args)
			},
		},
		&cobra.Command{
			Use:   "compare <a.csv> <b.csv>",
			Short: "Display the cells where two strategies disagree",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return compare(cmd.OutOrStdout(), cfg, args[0], args[1])
			},
		},
	)
	return root
}

func chromosomePath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.GetString(config.ConfigChromosomePath)
}

// renderDecisions displays int(v/a) for every cell. Binarized
// chromosomes are shown with a=1 so each cell is the decision itself.
func renderDecisions(w io.Writer, c chromosome.Chromosome, a float64, titleFormat string) error {
	s, err := chromosome.Decode(c)
	if err != nil {
		return err
	}
	q, err := strategy.DecisionQuantizer(a)
	if err != nil {
		return err
	}
	return strategy.NewRenderer(q).RenderStrategy(w, s, strategy.Views(titleFormat))
}

func show(w io.Writer, cfg *config.Config, args []string) error {
	c, err := dataloaders.LoadChromosome(chromosomePath(cfg, args))
	if err != nil {
		return err
	}
	s, err := chromosome.Decode(c)
	if err != nil {
		return err
	}
	return strategy.NewRenderer(strategy.HundredthsQuantizer).RenderStrategy(w, s, strategy.MeanViews())
}

func evolve(w io.Writer, cfg *config.Config, args []string) error {
	c, err := dataloaders.LoadChromosome(chromosomePath(cfg, args))
	if err != nil {
		return err
	}
	a := cfg.GetFloat64(config.ConfigThreshold)
	evolved := chromosome.Threshold(c, a)
	out := cfg.GetString(config.ConfigEvolvedPath)
	if err := dataloaders.SaveChromosome(out, evolved); err != nil {
		return err
	}
	log.Info().Str("path", out).Float64("threshold", a).Msg("wrote evolved chromosome")
	return renderDecisions(w, evolved, 1, "Mean %s")
}

func basic(w io.Writer, cfg *config.Config) error {
	c := strategy.BasicStrategy()
	out := cfg.GetString(config.ConfigBasicPath)
	if err := dataloaders.SaveChromosome(out, c); err != nil {
		return err
	}
	log.Info().Str("path", out).Msg("wrote basic strategy chromosome")
	return renderDecisions(w, c, 1, "Basic %s")
}

func sampler(cfg *config.Config) (*frand.RNG, error) {
	seed := cfg.GetString(config.ConfigSeed)
	if seed == "" {
		return nil, nil
	}
	bts, err := hex.DecodeString(seed)
	if err != nil {
		return nil, fmt.Errorf("bad seed: %w", err)
	}
	if len(bts) != 32 {
		return nil, fmt.Errorf("bad seed: got %d bytes, want 32", len(bts))
	}
	return frand.NewCustom(bts, 1024, 12), nil
}

func sample(w io.Writer, cfg *config.Config, args []string) error {
	c, err := dataloaders.LoadChromosome(chromosomePath(cfg, args))
	if err != nil {
		return err
	}
	rng, err := sampler(cfg)
	if err != nil {
		return err
	}
	sampled := chromosome.Sample(c, rng)
	out := cfg.GetString(config.ConfigSamplePath)
	if err := dataloaders.SaveChromosome(out, sampled); err != nil {
		return err
	}
	log.Info().Str("path", out).Msg("wrote sampled chromosome")
	return renderDecisions(w, sampled, 1, "Sampled %s")
}

func compare(w io.Writer, cfg *config.Config, pathA, pathB string) error {
	x, err := dataloaders.LoadChromosome(pathA)
	if err != nil {
		return err
	}
	y, err := dataloaders.LoadChromosome(pathB)
	if err != nil {
		return err
	}
	a := cfg.GetFloat64(config.ConfigThreshold)
	diff, ds, err := strategy.Compare(x, y, a)
	if err != nil {
		return err
	}
	if err := renderDecisions(w, diff, 1, "Disagreements: %s"); err != nil {
		return err
	}
	_, err = io.WriteString(w, strategy.FormatDisagreements(ds))
	return err
}
