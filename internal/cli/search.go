package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"livraria/internal/catalog"
	"livraria/internal/config"
	"livraria/internal/googlebooks"
	"livraria/internal/requestcache"
)

// SearchCommand searches the Google Books catalog from the terminal.
type SearchCommand struct {
	Query   string
	Timeout time.Duration
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

// ParseFlags parses command line flags
func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.DurationVar(&cmd.Timeout, "timeout", 10*time.Second, "Timeout for the search request")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options] <query>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search the book catalog. Falls back to the bundled dataset when the\n")
		fmt.Fprintf(os.Stderr, "catalog API is unreachable or rate limited.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search tolkien\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search \"george orwell\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("search query is required")
	}
	cmd.Query = fs.Arg(0)

	return nil
}

// Run executes the search command
func (cmd *SearchCommand) Run() error {
	client := googlebooks.NewClient(config.DefaultGoogleBooksBaseURL, cmd.Timeout)
	cache := requestcache.New(0, 0)
	service := catalog.NewService(client, cache, catalog.Options{})

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	result := service.Search(ctx, cmd.Query)

	if len(result.Books) == 0 {
		fmt.Printf("No books found for %q\n", cmd.Query)
		return nil
	}

	if result.Source == catalog.SourceFallback {
		fmt.Println("Catalog API unavailable, showing bundled results:")
	}

	fmt.Printf("Found %d books for %q:\n\n", len(result.Books), cmd.Query)
	for _, book := range result.Books {
		fmt.Printf("  %s - %s", book.Title, book.AuthorLine())
		if book.PublishedDate != "" {
			fmt.Printf(" (%s)", book.PublishedDate)
		}
		fmt.Println()
	}

	return nil
}
