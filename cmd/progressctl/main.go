// Command progressctl inspects and edits the learner's saved progress from a
// terminal, against the same store the server uses.
//
// Usage:
//
//	progressctl stats
//	progressctl answer -q r07-01 -c 3
//	progressctl status -q r07-01
//	progressctl reset [--yes]
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kakomon-drill/backend/internal/catalog"
	"github.com/kakomon-drill/backend/internal/domain/category"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
	"github.com/kakomon-drill/backend/internal/infrastructure/config"
	"github.com/kakomon-drill/backend/internal/service"
	"github.com/kakomon-drill/backend/internal/store"
)

var errUsage = errors.New("usage: progressctl <stats|answer|status|reset> [flags]")

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	ctx := context.Background()

	kv, err := store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		SQLitePath:  cfg.SQLitePath,
		RedisAddr:   cfg.RedisAddr,
		RedisPrefix: cfg.RedisKeyPrefix,
	})
	if err != nil {
		logger.Error("failed to open progress store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	var src catalog.Source = catalog.NewFileSource(cfg.CatalogPath)
	if cfg.CatalogURL != "" {
		src = catalog.NewHTTPSource(cfg.CatalogURL)
	}

	app := &cli{
		progress: store.NewProgressStore(kv, logger),
		catalog:  src,
		logger:   logger,
		in:       os.Stdin,
		out:      os.Stdout,
	}
	err = app.run(ctx, os.Args[1:])
	kv.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "progressctl:", err)
		os.Exit(2)
	}
}

type cli struct {
	progress service.ProgressStore
	catalog  catalog.Source
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	tracker, err := service.NewTracker(ctx, c.progress, c.logger)
	if err != nil {
		return err
	}

	cmd, args := args[0], args[1:]
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(c.out)

	switch cmd {
	case "stats":
		if err := fs.Parse(args); err != nil {
			return err
		}
		return c.stats(ctx, tracker)

	case "answer":
		id := fs.StringP("question", "q", "", "question ID, e.g. r07-01")
		choice := fs.IntP("choice", "c", 0, "1-based choice number")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" || *choice == 0 {
			return errors.New("answer needs -q and -c")
		}
		return c.answer(ctx, tracker, *id, *choice)

	case "status":
		id := fs.StringP("question", "q", "", "question ID, e.g. r07-01")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *id == "" {
			return errors.New("status needs -q")
		}
		return c.status(tracker, *id)

	case "reset":
		yes := fs.BoolP("yes", "y", false, "skip the confirmation prompt")
		if err := fs.Parse(args); err != nil {
			return err
		}
		confirm := c.promptConfirm
		if *yes {
			confirm = func(string) bool { return true }
		}
		return c.reset(ctx, tracker, confirm)
	}
	return errUsage
}

func (c *cli) stats(ctx context.Context, tracker *service.Tracker) error {
	s := tracker.Statistics()
	fmt.Fprintf(c.out, "answered  %d\n", s.TotalAnswered)
	fmt.Fprintf(c.out, "correct   %d\n", s.CorrectCount)
	fmt.Fprintf(c.out, "incorrect %d\n", s.IncorrectCount)
	fmt.Fprintf(c.out, "accuracy  %d%%\n", s.Accuracy)
	fmt.Fprintf(c.out, "streak    %d (best %d)\n", s.CurrentStreak, s.MaxStreak)

	questions, err := c.catalog.Questions(ctx)
	if err != nil {
		return fmt.Errorf("category and year breakdowns: %w", err)
	}

	byCategory := tracker.CategoryStatistics(questions)
	codes := make([]string, 0, len(byCategory))
	for _, q := range questions {
		if _, ok := byCategory[q.Category]; ok && !contains(codes, q.Category) {
			codes = append(codes, q.Category)
		}
	}
	fmt.Fprintln(c.out)
	for _, code := range codes {
		g := byCategory[code]
		fmt.Fprintf(c.out, "%-10s %3d/%-3d answered  %3d%% correct\n", category.Name(code), g.Answered, g.Total, g.Accuracy())
	}

	byYear := tracker.YearStatistics(questions)
	years := make([]string, 0, len(byYear))
	for code := range byYear {
		years = append(years, code)
	}
	fmt.Fprintln(c.out)
	for _, code := range questionbank.SortYears(years) {
		g := byYear[code]
		fmt.Fprintf(c.out, "%-10s %3d/%-3d answered  %3d%% correct\n", questionbank.YearName(code), g.Answered, g.Total, g.Accuracy())
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (c *cli) answer(ctx context.Context, tracker *service.Tracker, id string, choice int) error {
	q, err := catalog.Question(ctx, c.catalog, id)
	if err != nil {
		return err
	}
	rec, err := tracker.Submit(ctx, q, choice)
	if err != nil {
		return err
	}
	if rec.IsCorrect {
		fmt.Fprintf(c.out, "%s: correct\n", id)
	} else {
		fmt.Fprintf(c.out, "%s: incorrect, the answer is %d\n", id, q.CorrectAnswer)
	}
	return nil
}

func (c *cli) status(tracker *service.Tracker, id string) error {
	rec, ok := tracker.AnswerStatus(id)
	if !ok {
		fmt.Fprintf(c.out, "%s: unanswered\n", id)
		return nil
	}
	result := "incorrect"
	if rec.IsCorrect {
		result = "correct"
	}
	fmt.Fprintf(c.out, "%s: chose %d, %s\n", id, rec.Choice, result)
	return nil
}

func (c *cli) reset(ctx context.Context, tracker *service.Tracker, confirm service.ConfirmFunc) error {
	done, err := tracker.ResetAll(ctx, confirm)
	if err != nil {
		return err
	}
	if done {
		fmt.Fprintln(c.out, "all progress deleted")
	} else {
		fmt.Fprintln(c.out, "reset cancelled")
	}
	return nil
}

// promptConfirm asks on c.out and reads a y/N answer from c.in.
func (c *cli) promptConfirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
