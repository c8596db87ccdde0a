package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Poller drives the fetch → validate → format → notify cycle on a fixed
// interval. It owns the cursor: the Unix timestamp below which homework
// changes have already been reported. Only a successful cycle advances it.
type Poller struct {
	source   StatusSource
	notifier *Notifier
	clock    Clock
	interval time.Duration
	cursor   int64

	// Throttles the "no new statuses" debug line so consecutive empty
	// cycles do not repeat it every 10 minutes.
	emptyLog rate.Sometimes
}

func NewPoller(source StatusSource, notifier *Notifier, clock Clock, interval time.Duration) *Poller {
	return &Poller{
		source:   source,
		notifier: notifier,
		clock:    clock,
		interval: interval,
		cursor:   clock.Now().Unix(),
		emptyLog: rate.Sometimes{Interval: time.Hour},
	}
}

// Run polls until the context is canceled. A failed cycle never stops the
// loop; there is no backoff and no retry limit.
func (p *Poller) Run(ctx context.Context) {
	for {
		p.runCycle(ctx)
		p.clock.Sleep(ctx, p.interval)
		if ctx.Err() != nil {
			return
		}
	}
}

// runCycle performs one poll. Every record the API reports as changed since
// the cursor is notified, in the order received. Any error is handled at
// this boundary: logged, reported best-effort, and dropped so the next cycle
// runs with the cursor unchanged.
func (p *Poller) runCycle(ctx context.Context) {
	resp, err := p.source.Fetch(ctx, p.cursor)
	if err != nil {
		p.reportFailure(ctx, err)
		return
	}

	homeworks, err := checkResponse(resp)
	if err != nil {
		p.reportFailure(ctx, err)
		return
	}

	if len(homeworks) == 0 {
		p.emptyLog.Do(func() {
			DebugLogger.Println("No new homework statuses")
		})
	}
	for _, homework := range homeworks {
		message, err := parseStatus(homework)
		if err != nil {
			p.reportFailure(ctx, err)
			return
		}
		p.notifier.Notify(ctx, message)
	}

	p.advanceCursor(resp)
}

// advanceCursor takes the next cursor from the response's current_date, or
// substitutes wall-clock time when the server omitted it.
func (p *Poller) advanceCursor(resp any) {
	next, ok := currentDate(resp)
	if !ok {
		WarningLogger.Printf(`API response has no "current_date" key, falling back to local time`)
		next = p.clock.Now().Unix()
	}
	p.cursor = next
}

func (p *Poller) reportFailure(ctx context.Context, err error) {
	ErrorLogger.Printf("Polling cycle failed: %v", err)
	p.notifier.Notify(ctx, fmt.Sprintf("Сбой в работе программы: %v", err))
}
