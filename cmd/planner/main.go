// Command planner solves a Rover-domain numeric planning problem and
// writes the §6 solution file format. Usage:
//
//	planner <method> <problem-file> <solution-file>
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/nikts27/thesis-rover-planner/problem"
	"github.com/nikts27/thesis-rover-planner/search"
	"github.com/nikts27/thesis-rover-planner/solution"
)

// Exit codes mirror the §7 error kinds. 0 is success.
const (
	exitUsage      = 1
	exitParse      = 2
	exitValidation = 3
	exitResource   = 4
	exitTimeout    = 5
	exitNoSolution = 6
)

const argsUsage = "<method> <problem-file> <solution-file>"

func main() {
	app := &cli.App{
		Name:      "planner",
		Usage:     "solve a Rover-domain numeric planning problem",
		ArgsUsage: argsUsage,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "timeout",
				Value: search.DefaultTimeout,
				Usage: "wall-clock search budget (0 disables the check)",
			},
			&cli.Int64Flag{
				Name:  "node-limit",
				Value: search.DefaultNodeLimit,
				Usage: "node generation cap (0 means unlimited)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit(fmt.Sprintf("usage: planner %s", argsUsage), exitUsage)
	}
	methodName, problemPath, solutionPath := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	method, ok := parseMethod(methodName)
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown method %q, want \"best\" or \"astar\"", methodName), exitUsage)
	}

	log, err := zap.NewProduction()
	if err != nil {
		log = zap.NewNop()
	}
	defer log.Sync()

	pr, err := parseProblem(problemPath, log)
	if err != nil {
		return err
	}

	d := search.New(log,
		search.WithMethod(method),
		search.WithTimeout(c.Duration("timeout")),
		search.WithNodeLimit(c.Int64("node-limit")),
	)

	plan, stats, err := d.Run(pr.State, pr.Goal)
	log.Info("search finished",
		zap.String("method", method.String()),
		zap.Int64("nodesGenerated", stats.NodesGenerated),
		zap.Int64("nodesExpanded", stats.NodesExpanded),
		zap.Duration("elapsed", time.Duration(stats.Elapsed)))
	if err != nil {
		return exitForSearchError(err)
	}

	sf, err := os.Create(solutionPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("solution file: %v", err), exitUsage)
	}
	defer sf.Close()

	if err := solution.Write(sf, plan); err != nil {
		return cli.Exit(fmt.Sprintf("solution file: %v", err), exitUsage)
	}

	log.Info("solution written",
		zap.String("path", solutionPath),
		zap.Int("length", plan.Length),
		zap.Int64("totalEnergy", plan.TotalEnergy))
	return nil
}

func parseMethod(name string) (search.Method, bool) {
	switch name {
	case "best":
		return search.Satisficing, true
	case "astar":
		return search.Optimal, true
	default:
		return search.Satisficing, false
	}
}

// parseProblem opens, parses, and validates problemPath, wrapping every
// failure with the §7 exit code for its error kind.
func parseProblem(problemPath string, log *zap.Logger) (*problem.ParseResult, error) {
	pf, err := os.Open(problemPath)
	if err != nil {
		return nil, cli.Exit(fmt.Sprintf("problem file: %v", err), exitParse)
	}
	defer pf.Close()

	pr, err := problem.Parse(pf, problem.WithLogger(log))
	if err != nil {
		return nil, cli.Exit(err.Error(), exitParse)
	}
	if err := problem.Validate(pr, log); err != nil {
		return nil, cli.Exit(err.Error(), exitValidation)
	}
	return pr, nil
}

func exitForSearchError(err error) error {
	switch {
	case errors.Is(err, search.ErrTimeout):
		return cli.Exit(err.Error(), exitTimeout)
	case errors.Is(err, search.ErrNodeLimitExceeded):
		return cli.Exit(err.Error(), exitResource)
	case errors.Is(err, search.ErrNoSolution):
		return cli.Exit(err.Error(), exitNoSolution)
	default:
		return cli.Exit(err.Error(), exitValidation)
	}
}
