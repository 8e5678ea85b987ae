package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rivo/tview"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/filetug/filehub/pkg/catalog"
	"github.com/filetug/filehub/pkg/catalogapi"
	"github.com/filetug/filehub/pkg/filehub"
	"github.com/filetug/filehub/pkg/hublog"
	"github.com/filetug/filehub/pkg/hubsettings"
	"github.com/filetug/filehub/pkg/hubstate"
	"github.com/filetug/filehub/pkg/profiling"
	"github.com/filetug/filehub/pkg/storagestats"
)

const loadErrorText = "Error loading files or storage data."

type cliOptions struct {
	apiURL     string
	print      bool
	narrow     bool
	filter     catalog.FilterInput
	cpuProfile string
	memProfile string
	pprofAddr  string
}

func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var o cliOptions
	fs := flag.NewFlagSet("filehub", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.apiURL, "api", "", "catalog API base `url` (overrides FILEHUB_API_URL)")
	fs.BoolVar(&o.print, "print", false, "print the filtered listing and storage figures, then exit")
	fs.BoolVar(&o.narrow, "narrow", false, "with -print, let the server pre-filter the listing by name, type and size")
	fs.StringVar(&o.filter.SearchText, "search", "", "case-insensitive name `substring`")
	fs.StringVar(&o.filter.Category, "type", "", "file `type`: PDF, Image, Text or Video")
	fs.StringVar(&o.filter.MinSizeMB, "min-size", "", "minimum size in `MB`")
	fs.StringVar(&o.filter.MaxSizeMB, "max-size", "", "maximum size in `MB`")
	fs.StringVar(&o.filter.DateFrom, "from", "", "uploaded on or after `date` (YYYY-MM-DD)")
	fs.StringVar(&o.filter.DateTo, "to", "", "uploaded on or before `date` (YYYY-MM-DD)")
	fs.StringVar(&o.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	fs.StringVar(&o.memProfile, "memprofile", "", "write memory profile to `file`")
	fs.StringVar(&o.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	err := fs.Parse(args)
	return o, err
}

var (
	loadSettings       = hubsettings.Load
	newLogger          = hublog.New
	httpListenAndServe = http.ListenAndServe
	osExit             = os.Exit
	saveAPIURL         = hubstate.SaveAPIURL
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func main() {
	osExit(run(os.Args[1:]))
}

func run(args []string) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	settings, err := loadSettings()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to load settings: %v\n", err)
		return 1
	}
	if o.apiURL != "" {
		settings.APIURL = o.apiURL
	}
	base, err := catalogapi.ParseBaseURL(settings.APIURL)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	logger, err := newLogger(hublog.Config{Level: settings.LogLevel, File: settings.LogFile})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync()
	}()

	if o.pprofAddr != "" {
		go func() {
			if err := httpListenAndServe(o.pprofAddr, nil); err != nil {
				logger.Error("pprof server error", zap.Error(err))
			}
		}()
	}
	if o.cpuProfile != "" {
		defer profiling.DoCPUProfiling(o.cpuProfile, logger)()
	}
	if o.memProfile != "" {
		defer profiling.DoMemProfiling(o.memProfile, logger)()
	}

	client := catalogapi.NewClient(base,
		catalogapi.WithLogger(logger),
		catalogapi.WithTimeout(settings.HTTPTimeout),
	)

	if o.print {
		return printListing(context.Background(), client, o.filter, o.narrow, stdout, logger)
	}

	hubstate.SetLogger(logger)
	saveAPIURL(client.BaseURL())
	app := newApp(client, filehub.Options{
		APIURL:      client.BaseURL(),
		DownloadDir: settings.DownloadDir,
		Logger:      logger,
	})
	if err = runApp(app); err != nil {
		logger.Error("viewer stopped with error", zap.Error(err))
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	return 0
}

var setupApp = filehub.SetupApp

type application interface{ Run() error }

var newApp = func(c catalogapi.Catalog, opts filehub.Options) application {
	app := tview.NewApplication()
	setupApp(app, c, opts)
	return app
}

var runApp = func(app application) error {
	return app.Run()
}

// printListing fetches both data sets and writes the filtered listing.
// Either fetch failing is one failure: nothing but the error line is printed.
// With narrow set the total counts the server's pre-filtered listing.
func printListing(ctx context.Context, c catalogapi.Catalog, in catalog.FilterInput, narrow bool, w io.Writer, logger *zap.Logger) int {
	spec := catalog.ParseFilterInput(in, time.Local)
	var opts catalogapi.ListOptions
	if narrow {
		opts = catalogapi.NarrowListing(spec)
	}
	records, err := c.ListFiles(ctx, opts)
	var stats storagestats.Stats
	if err == nil {
		stats, err = c.StorageStats(ctx)
	}
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		_, _ = fmt.Fprintln(stderr, loadErrorText)
		return 1
	}

	visible := catalog.Filter(records, spec)

	p := message.NewPrinter(language.English)
	if !spec.IsEmpty() {
		_, _ = fmt.Fprintf(w, "Filter: %s\n\n", describeFilter(spec.Input(time.Local)))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tTYPE\tSIZE (MB)\tREFS\tUPLOADED")
	for _, r := range visible {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			r.OriginalFilename, r.FileType, storagestats.BytesToMB(r.Size),
			r.ReferenceCount, r.UploadedAt.Local().Format("2006-01-02 15:04"))
	}
	_ = tw.Flush()

	d := storagestats.Format(stats)
	if narrow {
		_, _ = p.Fprintf(w, "\n%d of %d files (narrowed by server)\n", len(visible), len(records))
	} else {
		_, _ = p.Fprintf(w, "\n%d of %d files\n", len(visible), len(records))
	}
	_, _ = fmt.Fprintf(w, "Total requested: %s MB\n", d.TotalRequested)
	_, _ = fmt.Fprintf(w, "Unique storage used: %s MB\n", d.UniqueUsed)
	_, _ = fmt.Fprintf(w, "Storage saved: %s MB (%s%%)\n", d.Saved, strconv.FormatFloat(d.SavedPercent(), 'f', -1, 64))
	return 0
}

func describeFilter(in catalog.FilterInput) string {
	var parts []string
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, fmt.Sprintf("%s=%q", name, value))
		}
	}
	add("search", in.SearchText)
	add("type", in.Category)
	add("min-size", in.MinSizeMB)
	add("max-size", in.MaxSizeMB)
	add("from", in.DateFrom)
	add("to", in.DateTo)
	return strings.Join(parts, " ")
}
