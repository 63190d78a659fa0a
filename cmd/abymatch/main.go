// Copyright 2026 Abydos Authors.
// All rights reserved.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/fossabot/abydos/dict"
	"github.com/fossabot/abydos/dist"
	"github.com/fossabot/abydos/match"
	"github.com/fossabot/abydos/mra"
	"github.com/fossabot/abydos/render"
)

const (
	actionPage  = "page"
	actionPrint = "print"

	algoEditex = "editex"
	algoLev    = "lev"
	algoMRA    = "mra"
	algoTypo   = "typo"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage %v: [flag]... <QUERY> [FILE]\n"+
			"Ranks candidate names by their similarity to QUERY.\n"+
			"Candidates are read one per line from FILE or stdin.\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	action := enumFlag{val: actionPrint, allowed: []string{actionPage, actionPrint}}
	algo := enumFlag{val: algoEditex, allowed: []string{algoEditex, algoLev, algoMRA, algoTypo}}
	layout := enumFlag{val: "QWERTY", allowed: dist.LayoutNames()}
	metric := enumFlag{val: string(dist.Euclidean), allowed: dist.MetricNames()}
	var costs floatsFlag

	flag.Var(&action, "action", fmt.Sprintf("Action to perform with results (%v)", action.allowedList()))
	flag.Var(&algo, "algo", fmt.Sprintf("Algorithm to score with (%v)", algo.allowedList()))
	flag.Var(&costs, "cost", "Override the algorithm's edit costs (repeatable; the count depends on -algo)")
	flag.Var(&layout, "layout", fmt.Sprintf("Keyboard layout for -algo typo (%v)", layout.allowedList()))
	limit := flag.Int("limit", 0, "Maximum number of matches to report (0 is unlimited)")
	local := flag.Bool("local", false, "Use local alignment for -algo editex")
	flag.Var(&metric, "metric", fmt.Sprintf("Key distance metric for -algo typo (%v)", metric.allowedList()))
	minSim := flag.Float64("min-sim", 0, "Drop matches scoring below this similarity in [0, 1]")
	norm := flag.Bool("norm", true, "Lowercase and strip accents before scoring")
	flag.Parse()

	os.Exit(func() int {
		var query string
		var names []string
		switch flag.NArg() {
		case 1:
			query = flag.Arg(0)
			var err error
			if names, err = dict.Read(os.Stdin); err != nil {
				fmt.Fprintln(os.Stderr, "Failed reading stdin:", err)
				return 1
			}
		case 2:
			query = flag.Arg(0)
			var err error
			if names, err = dict.LoadFile(flag.Arg(1)); err != nil {
				fmt.Fprintln(os.Stderr, "Failed reading names:", err)
				return 1
			}
		default:
			flag.Usage()
			return 2
		}

		scorer, desc, err := newScorer(algo.val, costs, layout.val, dist.Metric(metric.val), *local)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Bad scoring config:", err)
			return 2
		}

		opts := []match.Option{match.MinSim(*minSim), match.Limit(*limit)}
		if !*norm {
			opts = append(opts, match.Norm(nil))
		}
		matches, err := match.NewRanker(scorer, opts...).Rank(context.Background(), query, names)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed ranking names:", err)
			return 1
		}

		switch action.val {
		case actionPage:
			rep := &render.Report{Query: query, Algorithm: desc, Matches: matches}
			if err := render.OpenFile(rep); err != nil {
				fmt.Fprintln(os.Stderr, "Failed opening page:", err)
				return 1
			}
		case actionPrint:
			for _, m := range matches {
				fmt.Printf("%s\t%.4f\n", m.Name, m.Score)
			}
		}

		return 0
	}())
}

// newScorer constructs the scoring function selected by -algo, along with a
// short description for the results page.
func newScorer(algo string, costs []float64, layout string, metric dist.Metric,
	local bool) (match.Scorer, string, error) {
	switch algo {
	case algoEditex:
		var opts []dist.EditexOption
		switch len(costs) {
		case 0:
		case 3:
			for _, c := range costs {
				if c != math.Trunc(c) {
					return nil, "", fmt.Errorf("editex cost %v isn't an integer", c)
				}
			}
			opts = append(opts, dist.EditexCosts(int(costs[0]), int(costs[1]), int(costs[2])))
		default:
			return nil, "", fmt.Errorf("editex wants 3 -cost values (match, group, mismatch); got %d", len(costs))
		}
		if local {
			opts = append(opts, dist.EditexLocal())
		}
		e, err := dist.NewEditex(opts...)
		if err != nil {
			return nil, "", err
		}
		desc := algo
		if local {
			desc += " (local)"
		}
		return match.ScoreFunc(e.Sim), desc, nil

	case algoLev:
		var opts []dist.LevOption
		switch len(costs) {
		case 0:
		case 3:
			opts = append(opts, dist.LevCosts(costs[0], costs[1], costs[2]))
		default:
			return nil, "", fmt.Errorf("lev wants 3 -cost values (ins, del, sub); got %d", len(costs))
		}
		l, err := dist.NewLev(opts...)
		if err != nil {
			return nil, "", err
		}
		return match.ScoreFunc(l.Sim), algo, nil

	case algoMRA:
		if len(costs) > 0 {
			return nil, "", errors.New("mra doesn't take -cost values")
		}
		return match.ScoreFunc(mra.Sim), algo, nil

	case algoTypo:
		opts := []dist.TypoOption{dist.TypoLayout(layout), dist.TypoMetric(metric)}
		switch len(costs) {
		case 0:
		case 4:
			opts = append(opts, dist.TypoCosts(costs[0], costs[1], costs[2], costs[3]))
		default:
			return nil, "", fmt.Errorf("typo wants 4 -cost values (ins, del, sub, shift); got %d", len(costs))
		}
		t, err := dist.NewTypo(opts...)
		if err != nil {
			return nil, "", err
		}
		return t.Sim, fmt.Sprintf("%s (%s, %s)", algo, layout, metric), nil
	}
	return nil, "", fmt.Errorf("unknown algorithm %q", algo)
}
