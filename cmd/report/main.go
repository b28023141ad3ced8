// Command report prints the survey charts in a terminal and downloads the
// CSV/JSON exports from a running server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Jrmarques7/ISABELA-TCC/client"
	"github.com/Jrmarques7/ISABELA-TCC/log"
	"github.com/Jrmarques7/ISABELA-TCC/model"
	"github.com/Jrmarques7/ISABELA-TCC/report"
)

type options struct {
	url      string
	user     string
	password string
	csvDir   string
	jsonDir  string
	clear    bool
	yes      bool
}

func parseFlags(args []string) (opts options, err error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)
	fs.StringVar(&opts.url, "url", envOr("REPORT_URL", "http://localhost:3000"), "server base URL")
	fs.StringVar(&opts.user, "user", envOr("ADMIN_USER", "admin"), "admin user")
	fs.StringVar(&opts.password, "password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	fs.StringVar(&opts.csvDir, "csv", "", "write the CSV export into this directory")
	fs.StringVar(&opts.jsonDir, "json", "", "write the JSON export into this directory")
	fs.BoolVar(&opts.clear, "clear", false, "delete every response")
	fs.BoolVar(&opts.yes, "yes", false, "confirm -clear")
	err = fs.Parse(args)
	return
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, opts, os.Stdout, time.Now()); err != nil {
		log.Fatal("report:", err)
	}
}

func run(ctx context.Context, opts options, out io.Writer, now time.Time) error {
	c := client.New(opts.url).WithCredentials(opts.user, opts.password)

	if opts.clear {
		if !opts.yes {
			return errors.New("-clear removes every response and cannot be undone; repeat with -yes")
		}
		if err := c.DeleteAll(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "Todas as respostas foram removidas")
		return nil
	}

	stats, err := c.Stats(ctx)
	if err != nil {
		return err
	}
	responses, err := c.List(ctx)
	if err != nil {
		return err
	}

	if opts.csvDir != "" || opts.jsonDir != "" {
		return exportFiles(opts, responses, out, now)
	}

	printStats(out, stats, now)
	return report.RenderText(out, report.Build(responses))
}

func printStats(out io.Writer, stats model.Stats, now time.Time) {
	fmt.Fprintf(out, "Total de respostas: %d\n", stats.Total)
	if stats.UltimaResposta != nil {
		fmt.Fprintf(out, "Última resposta: %s (%s)\n",
			stats.UltimaResposta.Local().Format("2006-01-02 15:04"),
			humanize.RelTime(*stats.UltimaResposta, now, "ago", "from now"))
	}
}

func exportFiles(opts options, responses []model.SurveyResponse, out io.Writer, now time.Time) error {
	exports := []struct {
		dir, ext string
		fn       func(io.Writer, []model.SurveyResponse) error
	}{
		{opts.csvDir, "csv", report.ExportCSV},
		{opts.jsonDir, "json", report.ExportJSON},
	}

	for _, e := range exports {
		if e.dir == "" {
			continue
		}
		path := filepath.Join(e.dir, report.Filename(e.ext, now))
		if err := writeExport(path, responses, e.fn); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s: %d respostas\n", path, len(responses))
	}
	return nil
}

func writeExport(path string, responses []model.SurveyResponse, fn func(io.Writer, []model.SurveyResponse) error) error {
	if len(responses) == 0 {
		return report.ErrNoData
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = fn(f, responses); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
