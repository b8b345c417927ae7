package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"library-catalog/internal/app"
	"library-catalog/internal/config"
	"library-catalog/library"
)

func main() {
	reset := flag.Bool("reset", false, "Clear the stored library before importing")
	booksFile := flag.String("books", "", "Tab-separated file of id, title, author (default: demo data)")
	dbPath := flag.String("db", "", "SQLite database path")
	store := flag.String("store", "", "Storage backend (sqlite, redis, memory)")
	flag.Parse()

	cfg, err := config.Load(config.Flags{DBPath: *dbPath, Store: *store})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	log := app.NewLogger(cfg, os.Stderr)

	manager, err := app.Open(cfg, nil, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening library: %v\n", err)
		os.Exit(1)
	}
	defer manager.Close()

	if *reset {
		fmt.Println("Clearing stored library...")
		if err := manager.ClearAll(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing library: %v\n", err)
			os.Exit(1)
		}
	}

	if *booksFile == "" {
		if err := manager.LoadDemo(); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading demo data: %v\n", err)
			os.Exit(1)
		}
	} else {
		f, err := os.Open(*booksFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading books file: %v\n", err)
			os.Exit(1)
		}
		ok, failed := importBooks(manager, f, os.Stdout)
		f.Close()
		fmt.Printf("\nImport complete!\n")
		fmt.Printf("Successfully imported: %d books\n", ok)
		fmt.Printf("Skipped: %d\n", failed)
	}

	printSummary(os.Stdout, manager.Books())
}

// importBooks adds one book per "id<TAB>title[<TAB>author]" line. Blank lines
// and lines starting with # are ignored.
func importBooks(mgr *library.LibraryManager, r io.Reader, out io.Writer) (ok, failed int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		for len(fields) < 3 {
			fields = append(fields, "")
		}
		bookID, title, author := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), strings.TrimSpace(fields[2])

		fmt.Fprintf(out, "Importing: %s by %s... ", title, author)
		if err := mgr.AddBook(bookID, title, author); err != nil {
			fmt.Fprintf(out, "SKIPPED - %v\n", err)
			failed++
			continue
		}
		fmt.Fprintf(out, "SUCCESS (ID: %s)\n", bookID)
		ok++
	}
	return ok, failed
}

func printSummary(out io.Writer, books []*library.Book) {
	if len(books) == 0 {
		fmt.Fprintln(out, "No books in library.")
		return
	}
	fmt.Fprintln(out, "\nBooks:")
	fmt.Fprintf(out, "%-10s %-50s %-30s %s\n", "ID", "Title", "Author", "Available")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, book := range books {
		fmt.Fprintf(out, "%-10s %-50s %-30s %t\n", truncateString(book.ID, 10), truncateString(book.Title, 50), truncateString(book.Author, 30), book.Available)
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
