package main

import (
	"context"
	"io"

	"github.com/fwojciec/coursecat"
	"github.com/fwojciec/coursecat/catalog"
)

// Indexer fetches the catalog index page.
type Indexer interface {
	Index(ctx context.Context) (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Searcher  coursecat.Searcher
	Decoder   coursecat.Decoder
	Courses   coursecat.CourseService
	Archive   coursecat.ResponseArchive
	Converter coursecat.Converter
	Index     Indexer
	Syncer    *catalog.Syncer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log searches and decodes to stderr"`

	Search  SearchCmd  `cmd:"" help:"Search the catalog for a subject or course"`
	Decode  DecodeCmd  `cmd:"" help:"Decode a saved search response"`
	Sync    SyncCmd    `cmd:"" help:"Fetch and store every course of the given subjects"`
	List    ListCmd    `cmd:"" help:"List stored courses"`
	Show    ShowCmd    `cmd:"" help:"Show a stored course with its sections"`
	Index   IndexCmd   `cmd:"" help:"Print the catalog index page"`
	Archive ArchiveCmd `cmd:"" help:"List archived responses that failed to decode"`
}

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Subject string `arg:"" help:"Subject code, e.g. CSC"`
	Number  uint32 `arg:"" optional:"" help:"Course number, e.g. 226"`
	Term    uint32 `short:"t" default:"${term}" help:"Catalog term id"`
	Format  string `short:"f" enum:"table,json" default:"table" help:"Output format (table, json)"`
	Save    bool   `short:"s" help:"Store the decoded courses"`
}

// DecodeCmd is the "decode" subcommand.
type DecodeCmd struct {
	File   string `arg:"" help:"Response file, or - for stdin"`
	Format string `short:"f" enum:"table,json" default:"table" help:"Output format (table, json)"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Subjects    []string `arg:"" help:"Subject codes"`
	Term        uint32   `short:"t" default:"${term}" help:"Catalog term id"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent search limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Term    uint32 `short:"t" default:"${term}" help:"Catalog term id"`
	Subject string `short:"s" help:"Only list this subject"`
	Format  string `short:"f" enum:"table,json" default:"table" help:"Output format (table, json)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Subject string `arg:"" help:"Subject code"`
	Code    uint32 `arg:"" help:"Course number"`
	Term    uint32 `short:"t" default:"${term}" help:"Catalog term id"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// ArchiveCmd is the "archive" subcommand.
type ArchiveCmd struct {
	Export string `short:"e" placeholder:"ID" help:"Write the archived response with this id, readable by decode"`
	Format string `short:"f" enum:"table,json" default:"table" help:"Output format (table, json)"`
}
