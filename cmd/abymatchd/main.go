// Copyright 2026 Abydos Authors.
// All rights reserved.

// Package main implements a web server for fuzzy name matching.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fossabot/abydos/dict"
	"github.com/fossabot/abydos/dist"
	"github.com/fossabot/abydos/match"
	"github.com/fossabot/abydos/mra"
	"github.com/fossabot/abydos/phonetic"
)

const (
	maxReqBytes  = 64 * 1024
	matchTimeout = 10 * time.Second

	apiPrefix = "/api/v1/"

	algoEditex = "editex"
	algoLev    = "lev"
	algoMRA    = "mra"
	algoTypo   = "typo"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage %v: [flag]...\n"+
			"Runs a web server for fuzzy name matching.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	configPath := flag.String("config", "", "Path to YAML config file (uses defaults if empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("Failed loading config: ", err)
	}
	scorer, err := newScorer(cfg)
	if err != nil {
		log.Fatal("Bad scoring config: ", err)
	}
	block, err := newBlock(cfg.Block)
	if err != nil {
		log.Fatal("Bad blocking config: ", err)
	}
	dc, err := newDict(cfg)
	if err != nil {
		log.Fatal("Failed opening dictionary: ", err)
	}

	opts := []match.Option{match.MinSim(cfg.MinSim), match.Limit(cfg.Limit)}
	if cfg.Workers > 0 {
		opts = append(opts, match.Workers(cfg.Workers))
	}
	if block != nil {
		opts = append(opts, match.Block(block))
	}
	ranker := match.NewRanker(scorer, opts...)

	var rm *rateMap
	if cfg.RateQPS > 0 {
		rm = newRateMap(cfg.RateQPS, cfg.RateBurst, cfg.RateCacheSize)
	}

	http.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "ok\n")
	})

	http.HandleFunc(apiPrefix+"match", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), matchTimeout)
		defer cancel()
		caddr := clientAddr(req)
		matches, err := handleMatch(ctx, w, req, rm, ranker, dc)
		if err != nil {
			sendError(w, caddr, err)
			return
		}
		log.Printf("Returning %d match(es) to %s", len(matches), caddr)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(matches); err != nil {
			log.Printf("Failed sending matches to %s: %v", caddr, err)
		}
	})

	http.HandleFunc(apiPrefix+"names", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), matchTimeout)
		defer cancel()
		caddr := clientAddr(req)
		name, err := handleAddName(ctx, w, req, rm, dc)
		if err != nil {
			sendError(w, caddr, err)
			return
		}
		log.Printf("Added %q for %s", name, caddr)
		w.WriteHeader(http.StatusNoContent)
	})

	http.HandleFunc(apiPrefix+"names/", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), matchTimeout)
		defer cancel()
		caddr := clientAddr(req)
		name, err := handleRemoveName(ctx, req, rm, dc)
		if err != nil {
			sendError(w, caddr, err)
			return
		}
		log.Printf("Removed %q for %s", name, caddr)
		w.WriteHeader(http.StatusNoContent)
	})

	// Handle the hosting environment specifying the port to listen on.
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	log.Print("Listening on ", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		log.Fatal("Failed listening: ", err)
	}
}

// httpError implements the error interface but also wraps an HTTP status code
// and message that should be returned to the user.
type httpError struct {
	code int    // HTTP status code
	msg  string // message to display to user; if empty, generated from code
	err  error  // actual underlying error to log
}

func (e *httpError) Error() string { return e.err.Error() }

// httpErrorf returns an *httpError with the supplied status code and an err
// field constructed from format and args. The user-visible message will just
// be generated from code.
func httpErrorf(code int, format string, args ...any) *httpError {
	return &httpError{code: code, err: fmt.Errorf(format, args...)}
}

// sendError logs err and writes an error response to w.
func sendError(w http.ResponseWriter, caddr string, err error) {
	var msg string
	code := http.StatusInternalServerError
	if herr, ok := err.(*httpError); ok {
		code = herr.code
		msg = herr.msg
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	log.Printf("Sending %d to %s: %v", code, caddr, err)
	http.Error(w, msg, code)
}

// handleMatch ranks the dictionary against the query in a
// POST /api/v1/match request.
func handleMatch(ctx context.Context, w http.ResponseWriter, req *http.Request,
	rm *rateMap, ranker *match.Ranker, dc dict.Dict) ([]match.Match, error) {
	if req.Method != http.MethodPost {
		return nil, httpErrorf(http.StatusMethodNotAllowed, "bad method %q", req.Method)
	}
	if err := checkRate(rm, req); err != nil {
		return nil, err
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxReqBytes)
	var data struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		return nil, &httpError{http.StatusBadRequest, "", err}
	}
	if data.Query == "" {
		return nil, httpErrorf(http.StatusBadRequest, "empty query")
	}

	names, err := dc.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading names: %w", err)
	}
	log.Printf("Matching %q against %d name(s) for %s", data.Query, len(names), clientAddr(req))
	matches, err := ranker.Rank(ctx, data.Query, names)
	if err != nil {
		return nil, err
	}
	if data.Limit > 0 && len(matches) > data.Limit {
		matches = matches[:data.Limit]
	}
	return matches, nil
}

// handleAddName adds the name in a POST /api/v1/names request to the
// dictionary and returns it.
func handleAddName(ctx context.Context, w http.ResponseWriter, req *http.Request,
	rm *rateMap, dc dict.Dict) (string, error) {
	if req.Method != http.MethodPost {
		return "", httpErrorf(http.StatusMethodNotAllowed, "bad method %q", req.Method)
	}
	if err := checkRate(rm, req); err != nil {
		return "", err
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxReqBytes)
	var data struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		return "", &httpError{http.StatusBadRequest, "", err}
	}
	if data.Name == "" {
		return "", httpErrorf(http.StatusBadRequest, "empty name")
	}
	if err := dc.Add(ctx, data.Name); err != nil {
		return "", fmt.Errorf("adding %q: %w", data.Name, err)
	}
	return data.Name, nil
}

// handleRemoveName removes the name in a DELETE /api/v1/names/<name> request
// from the dictionary and returns it.
func handleRemoveName(ctx context.Context, req *http.Request,
	rm *rateMap, dc dict.Dict) (string, error) {
	if req.Method != http.MethodDelete {
		return "", httpErrorf(http.StatusMethodNotAllowed, "bad method %q", req.Method)
	}
	if err := checkRate(rm, req); err != nil {
		return "", err
	}

	name := strings.TrimPrefix(req.URL.Path, apiPrefix+"names/")
	if name == "" {
		return "", httpErrorf(http.StatusBadRequest, "empty name")
	}
	if err := dc.Remove(ctx, name); err != nil {
		return "", fmt.Errorf("removing %q: %w", name, err)
	}
	return name, nil
}

// checkRate returns an *httpError with StatusTooManyRequests if req's client
// is sending requests faster than the configured rate. A nil rm allows
// everything.
func checkRate(rm *rateMap, req *http.Request) error {
	if rm == nil {
		return nil
	}
	caddr := clientAddr(req)
	ip, _, err := net.SplitHostPort(caddr)
	if err != nil {
		ip = caddr
	}
	if !rm.attempt(ip, time.Now()) {
		return &httpError{
			code: http.StatusTooManyRequests,
			msg:  "Please wait a few seconds and try again",
			err:  errors.New("too many requests"),
		}
	}
	return nil
}

// clientAddr returns the client's address (which may be either "ip" or "ip:port").
func clientAddr(req *http.Request) string {
	// Behind a reverse proxy, connections come from localhost,
	// so get the client IP from the X-Forwarded-For header.
	if hdr := req.Header.Get("X-Forwarded-For"); hdr != "" {
		// X-Forwarded-For: <client>, <proxy1>, <proxy2>
		return strings.SplitN(hdr, ", ", 2)[0]
	}
	return req.RemoteAddr
}

// newScorer constructs the scoring function selected by cfg.
func newScorer(cfg *config) (match.Scorer, error) {
	switch cfg.Algo {
	case algoEditex:
		var opts []dist.EditexOption
		switch len(cfg.Costs) {
		case 0:
		case 3:
			for _, c := range cfg.Costs {
				if c != math.Trunc(c) {
					return nil, fmt.Errorf("editex cost %v isn't an integer", c)
				}
			}
			opts = append(opts, dist.EditexCosts(int(cfg.Costs[0]), int(cfg.Costs[1]), int(cfg.Costs[2])))
		default:
			return nil, fmt.Errorf("editex wants 3 costs (match, group, mismatch); got %d", len(cfg.Costs))
		}
		if cfg.Local {
			opts = append(opts, dist.EditexLocal())
		}
		e, err := dist.NewEditex(opts...)
		if err != nil {
			return nil, err
		}
		return match.ScoreFunc(e.Sim), nil

	case algoLev:
		var opts []dist.LevOption
		switch len(cfg.Costs) {
		case 0:
		case 3:
			opts = append(opts, dist.LevCosts(cfg.Costs[0], cfg.Costs[1], cfg.Costs[2]))
		default:
			return nil, fmt.Errorf("lev wants 3 costs (ins, del, sub); got %d", len(cfg.Costs))
		}
		l, err := dist.NewLev(opts...)
		if err != nil {
			return nil, err
		}
		return match.ScoreFunc(l.Sim), nil

	case algoMRA:
		if len(cfg.Costs) > 0 {
			return nil, errors.New("mra doesn't take costs")
		}
		return match.ScoreFunc(mra.Sim), nil

	case algoTypo:
		opts := []dist.TypoOption{dist.TypoLayout(cfg.Layout), dist.TypoMetric(dist.Metric(cfg.Metric))}
		switch len(cfg.Costs) {
		case 0:
		case 4:
			opts = append(opts, dist.TypoCosts(cfg.Costs[0], cfg.Costs[1], cfg.Costs[2], cfg.Costs[3]))
		default:
			return nil, fmt.Errorf("typo wants 4 costs (ins, del, sub, shift); got %d", len(cfg.Costs))
		}
		t, err := dist.NewTypo(opts...)
		if err != nil {
			return nil, err
		}
		return t.Sim, nil
	}
	return nil, fmt.Errorf("unknown algorithm %q", cfg.Algo)
}

// newBlock returns the blocking key function named by name,
// or nil if name is empty.
func newBlock(name string) (func(string) []string, error) {
	one := func(enc func(string) string) func(string) []string {
		return func(s string) []string { return []string{enc(s)} }
	}
	switch name {
	case "":
		return nil, nil
	case "caverphone":
		return one(phonetic.Caverphone), nil
	case "dm":
		return phonetic.DaitchMokotoff, nil
	case "fonem":
		return one(phonetic.Fonem), nil
	case "henry":
		return one(phonetic.HenryEarly), nil
	case "mra":
		return one(mra.Encode), nil
	case "norphone":
		return one(phonetic.Norphone), nil
	case "sfinxbis":
		return phonetic.SfinxBis, nil
	}
	return nil, fmt.Errorf("unknown blocking encoder %q", name)
}

// newDict opens the dictionary configured by cfg.
func newDict(cfg *config) (dict.Dict, error) {
	if cfg.Redis.Addr != "" {
		key := cfg.Redis.Key
		if key == "" {
			key = defaultRedisKey
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return dict.NewRedis(client, key), nil
	}
	if cfg.NamesFile != "" {
		names, err := dict.LoadFile(cfg.NamesFile)
		if err != nil {
			return nil, err
		}
		return dict.NewMemory(names...), nil
	}
	return dict.NewMemory(cfg.Names...), nil
}
