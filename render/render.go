// Copyright 2026 Abydos Authors.
// All rights reserved.

// Package render generates HTML pages listing match results.
package render

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/pkg/browser"

	"github.com/fossabot/abydos/match"
)

// Report holds everything shown on a rendered results page.
type Report struct {
	Query     string        // query as supplied by the user
	Algorithm string        // human-readable scoring description, e.g. "editex (normalized)"
	Matches   []match.Match // ranked results, best first
}

// OpenFile writes an HTML page listing the report's matches to a temporary
// file and opens it in a browser.
func OpenFile(rep *Report, opts ...Option) error {
	tf, err := os.CreateTemp("",
		fmt.Sprintf("abymatch-%s-*.html", time.Now().Format("20060102-150405")))
	if err != nil {
		return err
	}
	log.Print("Writing page to ", tf.Name())
	if err := Write(tf, rep, opts...); err != nil {
		return err
	}
	return browser.OpenFile(tf.Name())
}

// OpenHTTP starts a local HTTP server at addr and opens an HTML page listing
// the report's matches in a browser. This is more convoluted than OpenFile,
// but it works when the browser doesn't have direct filesystem access
// (e.g. the command is running in a VM).
func OpenHTTP(ctx context.Context, addr string, rep *Report, opts ...Option) error {
	var b bytes.Buffer
	if err := Write(&b, rep, opts...); err != nil {
		return err
	}

	// Bind to the port first.
	ls, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ls.Close()

	// Get the real address in case the port wasn't specified and launch the browser.
	url := fmt.Sprintf("http://%s/", ls.Addr().String())
	log.Print("Listening at ", url)
	if err := browser.OpenURL(url); err != nil {
		return err
	}

	// Report that we're done after we've served the page a single time.
	done := make(chan struct{})
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			w.Header().Set("Content-Type", "text/html")
			w.Write(b.Bytes())
			close(done)
		} else {
			http.NotFound(w, r)
		}
	})

	// Run the server in a goroutine.
	var srv http.Server
	start := make(chan error)
	go func() { start <- srv.Serve(ls) }()
	for {
		select {
		case err := <-start:
			// Serve immediately returns ErrServerClosed after Shutdown is called,
			// but we also need to handle earlier errors.
			if err != nil && err != http.ErrServerClosed {
				return err
			}
		case <-done:
			// Shutdown blocks until all connections are closed.
			log.Print("Shutting down after serving page")
			return srv.Shutdown(ctx)
		}
	}
}

// Write writes an HTML page listing the report's matches to w.
func Write(w io.Writer, rep *Report, opts ...Option) error {
	cfg := getConfig(opts...)
	tmpl, err := template.New("").Parse(reportTmpl)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, struct {
		Query     string
		Algorithm string
		Matches   []match.Match
		Version   string
	}{
		Query:     rep.Query,
		Algorithm: rep.Algorithm,
		Matches:   rep.Matches,
		Version:   cfg.version,
	})
}

// Option can be passed to configure the page.
type Option func(*config)

// Version sets an optional abymatch version to include in the page.
func Version(v string) Option { return func(cfg *config) { cfg.version = v } }

type config struct {
	version string // abymatch version
}

func getConfig(opts ...Option) config {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

//go:embed report.tmpl
var reportTmpl string
