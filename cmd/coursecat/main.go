package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coursecat"
	"github.com/fwojciec/coursecat/catalog"
	"github.com/fwojciec/coursecat/goquery"
	"github.com/fwojciec/coursecat/htmltomarkdown"
	cchttp "github.com/fwojciec/coursecat/http"
	ccslog "github.com/fwojciec/coursecat/slog"
	"github.com/fwojciec/coursecat/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Catalog base URL. Set before calling Run().
	BaseURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	CourseService   coursecat.CourseService
	ResponseArchive coursecat.ResponseArchive
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		BaseURL: defaultBaseURL(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursecat"),
		kong.Description("Search and store the university course catalog."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"term": defaultTerm()},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursecat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set COURSECAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.CourseService = sqlite.NewCourseService(m.DB)
	m.ResponseArchive = sqlite.NewResponseArchive(m.DB)

	searcher := cchttp.NewSearcher(cchttp.WithBaseURL(m.BaseURL))
	defer searcher.Close()

	deps.Courses = m.CourseService
	deps.Archive = m.ResponseArchive
	deps.Index = searcher
	deps.Searcher = searcher
	deps.Decoder = goquery.NewDecoder(goquery.NewQueries())
	deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(m.BaseURL))

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Searcher = ccslog.NewLoggingSearcher(deps.Searcher, logger)
		deps.Decoder = ccslog.NewLoggingDecoder(deps.Decoder, logger)
	}

	if node := kongCtx.Selected(); node != nil && node.Name == "sync" {
		deps.Syncer = &catalog.Syncer{
			Searcher:    deps.Searcher,
			Decoder:     deps.Decoder,
			Courses:     deps.Courses,
			Archive:     deps.Archive,
			Concurrency: cli.Sync.Concurrency,
			Logger: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("COURSECAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "coursecat.db"
	}
	dir := filepath.Join(home, ".coursecat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "coursecat.db")
}

func defaultBaseURL() string {
	if u := os.Getenv("COURSECAT_BASE_URL"); u != "" {
		return u
	}
	return cchttp.DefaultBaseURL
}

// defaultTerm is the catalog term used when --term is not given.
func defaultTerm() string {
	if term := os.Getenv("COURSECAT_TERM"); term != "" {
		return term
	}
	return "2251"
}
