package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"library-catalog/internal/app"
	"library-catalog/internal/config"
	"library-catalog/internal/id"
	"library-catalog/library"
)

// session is what every subcommand runs against.
type session struct {
	flags  config.Flags
	logger *slog.Logger
	mgr    *library.LibraryManager
}

func main() {
	s := &session{}
	root := newRootCmd(s)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "Track books, members and checkouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.open()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if s.mgr == nil {
				return nil
			}
			return s.mgr.Close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&s.flags.Env, "env", "", "Environment (development, staging, production)")
	pf.StringVar(&s.flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&s.flags.LogFormat, "log-format", "", "Log format (json, pretty)")
	pf.StringVar(&s.flags.Store, "store", "", "Storage backend (sqlite, redis, memory)")
	pf.StringVar(&s.flags.DBPath, "db", "", "SQLite database path (default: library.db)")
	pf.StringVar(&s.flags.RedisAddr, "redis-addr", "", "Redis address (default: localhost:6379)")
	pf.StringVar(&s.flags.StoreKey, "store-key", "", "Key the library state is stored under")
	pf.StringVar(&s.flags.EnvFile, "env-file", ".env", "Path to .env file")

	root.AddCommand(
		newAddBookCmd(s),
		newAddMemberCmd(s),
		newListCmd(s),
		newSearchCmd(s),
		newCheckoutCmd(s),
		newMemberCmd(s),
		newDemoCmd(s),
		newClearCmd(s),
	)
	return root
}

// open loads config and the library. Books are not rendered on open; each
// command decides what to show.
func (s *session) open() error {
	cfg, err := config.Load(s.flags)
	if err != nil {
		return err
	}
	s.logger = app.NewLogger(cfg, os.Stderr)
	view := &deferredRenderer{}
	mgr, err := app.Open(cfg, view, s.logger)
	if err != nil {
		return err
	}
	view.target = app.NewRenderer(os.Stdout)
	s.mgr = mgr
	return nil
}

// deferredRenderer drops output until target is set, which keeps the
// render-on-load out of every command's output.
type deferredRenderer struct {
	target library.Renderer
}

func (r *deferredRenderer) RenderBooks(books []*library.Book) {
	if r.target != nil {
		r.target.RenderBooks(books)
	}
}

func (r *deferredRenderer) RenderMember(m *library.Member) {
	if r.target != nil {
		r.target.RenderMember(m)
	}
}

func newAddBookCmd(s *session) *cobra.Command {
	var generate bool
	cmd := &cobra.Command{
		Use:   "add-book ID TITLE [AUTHOR]",
		Short: "Add a book to the catalog",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookID, err := resolveID(args[0], "B", generate)
			if err != nil {
				return err
			}
			author := ""
			if len(args) == 3 {
				author = args[2]
			}
			return report(s.mgr.AddBook(bookID, args[1], author))
		},
	}
	cmd.Flags().BoolVar(&generate, "generate-id", false, "Generate an id when ID is '-'")
	return cmd
}

func newAddMemberCmd(s *session) *cobra.Command {
	var generate bool
	cmd := &cobra.Command{
		Use:   "add-member ID NAME [EMAIL]",
		Short: "Register a library member",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			memberID, err := resolveID(args[0], "M", generate)
			if err != nil {
				return err
			}
			email := ""
			if len(args) == 3 {
				email = args[2]
			}
			if err := report(s.mgr.RegisterMember(memberID, args[1], email)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered member %s\n", memberID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&generate, "generate-id", false, "Generate an id when ID is '-'")
	return cmd
}

func newListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s.mgr.SearchBooks("")
			return nil
		},
	}
}

func newSearchCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "search [TEXT]",
		Short: "Find books by title or author",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.mgr.SearchBooks(strings.Join(args, " "))
			return nil
		},
	}
}

func newCheckoutCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "checkout BOOK_ID MEMBER_ID",
		Short: "Check a book out to a member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(s.mgr.CheckoutBook(args[0], args[1]))
		},
	}
}

func newMemberCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "member ID",
		Short: "Show a member and their fees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.mgr.ShowMember(args[0])
			return nil
		},
	}
}

func newDemoCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load demo books and members into an empty library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.mgr.LoadDemo()
		},
	}
}

func newClearCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored books and members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.mgr.ClearAll()
		},
	}
}

func resolveID(arg, prefix string, generate bool) (string, error) {
	if !generate || arg != "-" {
		return arg, nil
	}
	return id.Generate(prefix)
}

// report turns rejected operations into a short message on stdout and keeps
// the exit status at zero; only internal failures are returned.
func report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, library.ErrInternal) {
		return err
	}
	fmt.Println(err)
	return nil
}
