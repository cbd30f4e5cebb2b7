// Package app wires the store and the scheduling engine together for
// the CLI. Callers get an explicit handle; nothing in the engine
// relies on ambient globals.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/radprep/internal/exam"
	"github.com/abhisek/radprep/internal/grading"
	"github.com/abhisek/radprep/internal/ranker"
	"github.com/abhisek/radprep/internal/scheduler"
	"github.com/abhisek/radprep/internal/session"
	"github.com/abhisek/radprep/internal/store"
	"github.com/abhisek/radprep/internal/tracker"
)

// Options configures an App.
type Options struct {
	// DBPath is the SQLite database file.
	DBPath string
	// SectionsPath optionally loads a custom section table from JSON.
	// Empty means the standard CORE table.
	SectionsPath string

	Scheduling  scheduler.Config
	Tracking    tracker.Config
	RankWeights ranker.Weights
	Composition session.Config
}

// DefaultOptions returns Options with every policy at its default.
func DefaultOptions(dbPath string) Options {
	return Options{
		DBPath:      dbPath,
		Scheduling:  scheduler.DefaultConfig(),
		Tracking:    tracker.DefaultConfig(),
		RankWeights: ranker.DefaultWeights(),
		Composition: session.DefaultConfig(),
	}
}

// App is the assembled engine: one store plus the services built on it.
type App struct {
	Store     *store.Store
	Table     *exam.Table
	Scheduler *scheduler.Service
	Tracker   *tracker.Tracker
	Ranker    *ranker.Ranker
	Composer  *session.Composer
	Grading   grading.Policy
}

// Open builds an App from options, loading persisted state.
func Open(ctx context.Context, opts Options) (*App, error) {
	table := exam.CoreTable()
	if opts.SectionsPath != "" {
		var err error
		table, err = exam.LoadTable(opts.SectionsPath)
		if err != nil {
			return nil, err
		}
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	sched, err := scheduler.NewService(ctx, table, opts.Scheduling, st.ItemRepo())
	if err != nil {
		st.Close()
		return nil, err
	}

	track, err := tracker.New(ctx, table, opts.Tracking, st.EventRepo(), st.AggregateRepo())
	if err != nil {
		st.Close()
		return nil, err
	}

	rk := ranker.New(table, track, opts.RankWeights)

	return &App{
		Store:     st,
		Table:     table,
		Scheduler: sched,
		Tracker:   track,
		Ranker:    rk,
		Composer:  session.NewComposer(table, sched, rk, track, opts.Composition),
		Grading:   grading.DefaultPolicy(),
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// RecordResponse grades a raw response, updates the item's scheduling
// state, and feeds the performance tracker. This is the single write
// path for learner responses.
func (a *App) RecordResponse(ctx context.Context, resp grading.Response) (scheduler.Item, error) {
	it, err := a.Scheduler.ItemState(resp.ItemID)
	if err != nil {
		return scheduler.Item{}, err
	}

	grade := a.Grading.Grade(resp, it.Difficulty)
	updated, err := a.Scheduler.RecordResponse(ctx, resp.ItemID, grade, time.Now().UTC())
	if err != nil {
		return scheduler.Item{}, err
	}

	err = a.Tracker.Record(ctx, tracker.Record{
		ItemID:    updated.ID,
		Section:   updated.Section,
		Correct:   resp.Correct,
		Grade:     int(grade),
		LatencyMs: resp.LatencyMs,
		At:        *updated.LastReviewedAt,
	})
	if err != nil {
		return scheduler.Item{}, err
	}
	return updated, nil
}
