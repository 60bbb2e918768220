package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alishahwee/pagerank/corpus"
	"github.com/alishahwee/pagerank/rank"
)

var (
	damping       float64
	samples       int
	tolerance     float64
	maxIterations int
	verbose       bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "pagerank CORPUS_DIR",
		Short: "Estimate PageRank of an HTML corpus by sampling and by iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().Float64Var(&damping, "damping", 0.85, "probability of following a link over teleporting, in [0,1]")
	cmd.Flags().IntVar(&samples, "samples", 10000, "number of surfer steps for the sampling estimator")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0.001, "per-page convergence threshold for the iterative estimator")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "iteration cap for the iterative estimator, 0 for unbounded")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "log corpus loading")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(dir string) error {
	if damping < 0 || damping > 1 {
		return errors.Errorf("damping must be in [0,1], got %v", damping)
	}
	if samples < 1 {
		return errors.Errorf("samples must be at least 1, got %d", samples)
	}

	logger := logrus.New()
	if !verbose {
		logger.SetLevel(logrus.WarnLevel)
	}

	g, err := corpus.NewLoader(logger).Load(dir)
	if err != nil {
		return err
	}

	sampler := rank.NewSampler(damping, samples, rand.NewSource(time.Now().UnixNano()))
	sampled, err := sampler.Run(g)
	if err != nil {
		return err
	}
	fmt.Printf("PageRank Results from Sampling (n = %d)\n", samples)
	printRanks(sampled, g)

	iterated, err := rank.IterateWithConfig(g, rank.Config{
		Damping:       damping,
		Tolerance:     tolerance,
		MaxIterations: maxIterations,
	})
	if err != nil {
		return err
	}
	fmt.Println("PageRank Results from Iteration")
	printRanks(iterated, g)

	return nil
}

func printRanks(dist rank.Distribution, g corpus.Graph) {
	for _, p := range g.Pages() {
		fmt.Printf("  %s: %.4f\n", p, dist[p])
	}
}
