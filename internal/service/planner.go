// Package service ties the roster parser and seat resolver to storage,
// colour assignment and event publishing.
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/bus-seat-roster/internal/model"
	"github.com/iliyamo/bus-seat-roster/internal/queue"
	"github.com/iliyamo/bus-seat-roster/internal/roster"
	"github.com/iliyamo/bus-seat-roster/internal/seating"
)

var (
	// ErrEmptyInput is returned for blank roster text.
	ErrEmptyInput = errors.New("roster text is empty")
	// ErrNoPassengers is returned when no line of the text is a passenger.
	ErrNoPassengers = errors.New("no passenger lines found")
)

// RosterStore holds the current committed roster.
type RosterStore interface {
	Replace(ctx context.Context, r *model.Roster) error
	Current(ctx context.Context) (*model.Roster, error)
	Clear(ctx context.Context) error
}

// EventPublisher announces committed rosters.
type EventPublisher interface {
	PublishRosterCommitted(ctx context.Context, ev queue.RosterCommittedEvent) error
}

// Plan is everything a seating screen shows for one roster.
type Plan struct {
	RosterID   string                    `json:"roster_id,omitempty"`
	CreatedAt  *time.Time                `json:"created_at,omitempty"`
	Passengers []model.Passenger         `json:"passengers"`
	Summary    seating.Summary           `json:"summary"`
	Locations  []seating.LocationStats   `json:"locations"`
	Groups     []seating.LocationGroup   `json:"groups"`
	Chart      []seating.SeatView        `json:"chart"`
	Legend     []seating.LocationColor   `json:"legend"`
	Labels     map[model.Location]string `json:"labels"`
}

// Planner parses, resolves and commits rosters.  Only a roster that passes
// seat validation ever replaces the stored one.  Planner is safe for
// concurrent use.
type Planner struct {
	Publisher  EventPublisher                  // optional
	Invalidate func(ctx context.Context) error // optional; drops cached responses

	parser   *roster.Parser
	resolver *seating.Resolver
	store    RosterStore
	now      func() time.Time

	mu     sync.Mutex
	colors *seating.ColorAssigner
}

// NewPlanner constructs a Planner and panics if a dependency is nil.
func NewPlanner(parser *roster.Parser, store RosterStore) *Planner {
	if parser == nil || store == nil {
		panic("nil dependency passed to NewPlanner")
	}
	return &Planner{
		parser:   parser,
		resolver: seating.NewResolver(),
		store:    store,
		now:      func() time.Time { return time.Now().UTC() },
		colors:   seating.NewColorAssigner(nil),
	}
}

// Preview parses and resolves text without committing it.
func (p *Planner) Preview(text string) (*Plan, error) {
	resolved, err := p.resolve(text)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	colors := p.colors.Clone()
	p.mu.Unlock()
	colors.Assign(resolved)
	return p.plan(nil, resolved, colors), nil
}

// Commit parses and resolves text and, on success, makes it the current
// roster.  A failed parse or validation leaves the current roster as it
// was.
func (p *Planner) Commit(ctx context.Context, text string) (*Plan, error) {
	resolved, err := p.resolve(text)
	if err != nil {
		return nil, err
	}
	r := &model.Roster{
		ID:         uuid.NewString(),
		Passengers: resolved,
		CreatedAt:  p.now(),
	}

	p.mu.Lock()
	if err := p.store.Replace(ctx, r); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	p.colors.Assign(resolved)
	plan := p.plan(r, resolved, p.colors)
	p.mu.Unlock()

	log.Printf("planner: committed roster %s (%d passengers, %d temporary)",
		r.ID, plan.Summary.Total, plan.Summary.TemporaryAssignments)
	p.invalidate(ctx)
	p.publish(ctx, plan)
	return plan, nil
}

// Current returns the committed roster's plan.  It returns
// repository.ErrRosterNotFound when nothing is committed.
func (p *Planner) Current(ctx context.Context) (*Plan, error) {
	r, err := p.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	// after a restart the roster comes from the database but colours don't
	p.colors.Assign(r.Passengers)
	return p.plan(r, r.Passengers, p.colors), nil
}

// Reset drops the current roster and forgets location colours.
func (p *Planner) Reset(ctx context.Context) error {
	p.mu.Lock()
	err := p.store.Clear(ctx)
	if err == nil {
		p.colors.Reset()
	}
	p.mu.Unlock()
	if err != nil {
		return err
	}
	log.Printf("planner: roster reset")
	p.invalidate(ctx)
	return nil
}

// Vocabulary exposes the parser's keyword tables.
func (p *Planner) Vocabulary() *roster.Vocabulary { return p.parser.Vocabulary() }

func (p *Planner) resolve(text string) ([]model.Passenger, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	parsed := p.parser.Parse(text)
	if len(parsed) == 0 {
		return nil, ErrNoPassengers
	}
	return p.resolver.Resolve(parsed)
}

func (p *Planner) plan(r *model.Roster, passengers []model.Passenger, colors *seating.ColorAssigner) *Plan {
	vocab := p.parser.Vocabulary()
	labels := make(map[model.Location]string, len(model.Locations))
	for _, loc := range model.Locations {
		labels[loc] = vocab.LocationLabel(loc)
	}
	plan := &Plan{
		Passengers: passengers,
		Summary:    seating.Summarize(passengers),
		Locations:  seating.LocationBreakdown(passengers),
		Groups:     seating.GroupByLocation(passengers),
		Chart:      seating.Chart(passengers, colors),
		Legend:     colors.Legend(),
		Labels:     labels,
	}
	if r != nil {
		created := r.CreatedAt
		plan.RosterID = r.ID
		plan.CreatedAt = &created
	}
	return plan
}

func (p *Planner) invalidate(ctx context.Context) {
	if p.Invalidate == nil {
		return
	}
	if err := p.Invalidate(ctx); err != nil {
		log.Printf("planner: cache invalidation failed: %v", err)
	}
}

// publish announces a commit.  Failures are logged; the roster is already
// committed and stays so.
func (p *Planner) publish(ctx context.Context, plan *Plan) {
	if p.Publisher == nil {
		return
	}
	byLoc := make(map[string]int, len(plan.Locations))
	for _, l := range plan.Locations {
		byLoc[string(l.Location)] = l.Total
	}
	ev := queue.RosterCommittedEvent{
		RosterID:             plan.RosterID,
		Passengers:           plan.Summary.Total,
		Paid:                 plan.Summary.Paid,
		Pending:              plan.Summary.Pending,
		TemporaryAssignments: plan.Summary.TemporaryAssignments,
		UnassignedPassengers: plan.Summary.UnassignedPassengers,
		EmptySeats:           plan.Summary.EmptySeats,
		ByLocation:           byLoc,
		CommittedAt:          plan.CreatedAt.Format(time.RFC3339),
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := p.Publisher.PublishRosterCommitted(ctx, ev); err != nil {
		log.Printf("planner: publish roster %s failed: %v", plan.RosterID, err)
	}
}
