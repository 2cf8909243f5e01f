// Command moneytracker is a terminal client for the Money Tracker API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"moneytracker/internal/aggregate"
	"moneytracker/internal/categories"
	"moneytracker/internal/client"
	"moneytracker/internal/dashboard"
	"moneytracker/internal/logger"
	"moneytracker/internal/models"
)

const usage = `usage: moneytracker <command> [flags]

commands:
  home                      totals, this month and the latest records
  history [flags]           filtered history grouped by day
  stats [-period month]     period totals, expense breakdown and monthly series
  add [flags]               record a transaction
  delete <id>               delete a transaction
  categories [-type kind]   list the category catalog
`

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "moneytracker: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 {
		fmt.Fprint(out, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := client.LoadConfig()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	store := client.New(cfg)
	catalog := categories.Default()
	locale := language.Make(envOr("LOCALE", "en"))
	loader := dashboard.NewLoader(store, catalog, locale)
	now := time.Now()

	switch cmd, rest := args[0], args[1:]; cmd {
	case "home":
		printHome(out, loader.Home(ctx, now))
	case "history":
		return history(ctx, loader, now, rest, out)
	case "stats":
		fs := flag.NewFlagSet("stats", flag.ContinueOnError)
		period := fs.String("period", string(aggregate.PeriodMonth), "week, month or year")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		printStats(out, loader.Stats(ctx, now, aggregate.Period(*period)))
	case "add":
		return add(ctx, store, catalog, rest, out)
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("usage: moneytracker delete <id>")
		}
		if err := store.Delete(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintf(out, "deleted %s\n", rest[0])
	case "categories":
		fs := flag.NewFlagSet("categories", flag.ContinueOnError)
		kind := fs.String("type", "", "income or expense")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		cats := catalog.All()
		if *kind != "" {
			cats = catalog.ByKind(models.TransactionKind(*kind))
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE")
		for _, c := range cats {
			fmt.Fprintf(w, "%d\t%s %s\t%s\n", c.ID, c.Icon, c.Name, c.Kind)
		}
		return w.Flush()
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func history(ctx context.Context, loader *dashboard.Loader, now time.Time, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	kind := fs.String("type", string(aggregate.KindAll), "all, income or expense")
	categoryID := fs.Int("category", 0, "category id (0 for any)")
	query := fs.String("q", "", "description search")
	sortKey := fs.String("sort", string(aggregate.SortByDate), "date, amount or description")
	order := fs.String("order", string(aggregate.Descending), "asc or desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	criteria := aggregate.Criteria{Kind: aggregate.KindFilter(*kind), SearchText: *query}
	if *categoryID != 0 {
		criteria.CategoryID = categoryID
	}

	view := loader.History(ctx, now, criteria, aggregate.SortKey(*sortKey), aggregate.SortDirection(*order))
	printTotals(out, "Filtered", view.Totals)
	for _, b := range view.Buckets {
		fmt.Fprintf(out, "\n%s\n", b.Label)
		if err := printEntries(out, b.Entries); err != nil {
			return err
		}
	}
	return nil
}

func add(ctx context.Context, store *client.StoreClient, catalog *categories.Catalog, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	kind := fs.String("type", string(models.TransactionKindExpense), "income or expense")
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	categoryID := fs.Int("category", 0, "category id")
	description := fs.String("desc", "", "description")
	date := fs.String("date", "", "date as YYYY-MM-DD or RFC3339 (default now)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amt, err := decimal.NewFromString(strings.TrimSpace(*amount))
	if err != nil {
		return fmt.Errorf("invalid amount %q", *amount)
	}
	if _, err := catalog.Lookup(*categoryID); err != nil {
		return fmt.Errorf("unknown category %d", *categoryID)
	}

	k := models.TransactionKind(*kind)
	payload := client.TransactionPayload{
		Type:        &k,
		Amount:      &amt,
		CategoryID:  categoryID,
		Description: description,
	}
	if *date != "" {
		d, err := parseDate(*date)
		if err != nil {
			return err
		}
		payload.Date = &d
	}

	tx, err := store.Create(ctx, payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "created %s\n", tx.ID)
	return nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

func printHome(out io.Writer, v dashboard.HomeView) {
	printTotals(out, "Overall", v.Totals)
	printTotals(out, "This month", v.Month)
	fmt.Fprintln(out, "\nRecent")
	_ = printEntries(out, v.Recent)
}

func printStats(out io.Writer, v dashboard.StatsView) {
	printTotals(out, cases.Title(language.English).String(string(v.Period)), v.Totals)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "\nCATEGORY\tTOTAL\tSHARE\t")
	for _, s := range v.Breakdown {
		name := s.Category.Name
		if name == "" {
			name = fmt.Sprintf("#%d", s.CategoryID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s%%\t\n", name, s.Total.StringFixed(2), s.Percentage.StringFixed(1))
	}
	fmt.Fprintln(w, "\nMONTH\tINCOME\tEXPENSES\t")
	for _, m := range v.Series {
		fmt.Fprintf(w, "%d-%02d\t%s\t%s\t\n", m.Year, int(m.Month), m.Income.StringFixed(2), m.Expenses.StringFixed(2))
	}
	_ = w.Flush()
}

func printTotals(out io.Writer, title string, t aggregate.Totals) {
	fmt.Fprintf(out, "%s: income %s  expenses %s  balance %s  (%d records)\n",
		title, t.Income.StringFixed(2), t.Expenses.StringFixed(2), t.Balance.StringFixed(2), t.Count)
}

func printEntries(out io.Writer, entries []dashboard.Entry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range entries {
		sign := "-"
		if e.Kind == models.TransactionKindIncome {
			sign = "+"
		}
		label := e.Category.Name
		if !e.KnownCategory {
			label = fmt.Sprintf("#%d", e.CategoryID)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s%s\t%s\t%s\n",
			e.Date.Local().Format("2006-01-02 15:04"), label, sign, e.Amount.StringFixed(2), e.Description, e.ID)
	}
	return w.Flush()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
