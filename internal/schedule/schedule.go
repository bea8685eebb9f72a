package schedule

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
	"time"

	gitpastErrors "github.com/bashhack/gitpast/internal/errors"
)

const (
	// MinEventsPerDay is the lower bound a day's maximum event count is clamped to.
	MinEventsPerDay = 1

	// MaxEventsPerDay is the upper bound a day's maximum event count is clamped to.
	MaxEventsPerDay = 20

	// MinutesPerDay bounds the random within-day offset: [0, MinutesPerDay-1].
	MinutesPerDay = 24 * 60

	// AnchorHour is the hour of day every DaySlot is anchored at.
	AnchorHour = 20

	// MessageLayout formats a commit event into its ledger paragraph and commit message.
	MessageLayout = "Contribution: 2006-01-02 15:04"
)

// RandomSource supplies uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// runtimeSource draws from the automatically seeded math/rand/v2 generator,
// so every run produces a different schedule.
type runtimeSource struct{}

func (runtimeSource) IntN(n int) int {
	return rand.IntN(n)
}

// Policy holds the parameters that shape a schedule.
type Policy struct {
	// DaysFrom is the start of the window, in days before the reference instant.
	DaysFrom int

	// DaysTo is the end of the window, in days before the reference instant.
	DaysTo int

	// ExcludeWeekends skips Saturdays and Sundays entirely.
	ExcludeWeekends bool

	// ActivityProbability is the percent chance (0-100) that an eligible day has events.
	// Values at or above 100 make every eligible day active.
	ActivityProbability int

	// MaxEventsPerDay is the upper bound of events on an active day.
	// It is clamped to [MinEventsPerDay, MaxEventsPerDay].
	MaxEventsPerDay int
}

// Validate checks the window bounds: DaysFrom >= DaysTo >= 0.
func (p Policy) Validate() error {
	if p.DaysFrom < 0 {
		return gitpastErrors.NewConfigError("days_from", p.DaysFrom,
			gitpastErrors.Wrap(gitpastErrors.ErrInvalidConfiguration, "days_from must not be negative"))
	}
	if p.DaysTo < 0 {
		return gitpastErrors.NewConfigError("days_to", p.DaysTo,
			gitpastErrors.Wrap(gitpastErrors.ErrInvalidConfiguration, "days_to must not be negative"))
	}
	if p.DaysFrom < p.DaysTo {
		return gitpastErrors.NewConfigError("days_from", p.DaysFrom,
			gitpastErrors.Wrap(gitpastErrors.ErrInvalidConfiguration, "days_from must be greater than or equal to days_to"))
	}
	return nil
}

// NumberOfDays is the distance between the window bounds.
// The window itself spans NumberOfDays()+1 days.
func (p Policy) NumberOfDays() int {
	return p.DaysFrom - p.DaysTo
}

// ClampEventsPerDay silently brings n into [MinEventsPerDay, MaxEventsPerDay].
func ClampEventsPerDay(n int) int {
	return min(max(n, MinEventsPerDay), MaxEventsPerDay)
}

// ReferenceInstant anchors now at AnchorHour:00:00 on the same calendar day,
// in now's location.
func ReferenceInstant(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), AnchorHour, 0, 0, 0, now.Location())
}

// DaySlot is one calendar day of the window.
type DaySlot struct {
	// Offset counts days from the earliest day of the window (0-based).
	Offset int

	// Date is the day anchored at AnchorHour.
	Date time.Time
}

// Weekday returns the day of the week numbered Monday=0 .. Sunday=6.
func (d DaySlot) Weekday() int {
	return (int(d.Date.Weekday()) + 6) % 7
}

// IsWeekend reports whether the slot falls on a Saturday or Sunday.
func (d DaySlot) IsWeekend() bool {
	return d.Weekday() >= 5
}

// At returns the wall-clock instant minute minutes after midnight of the slot's day.
func (d DaySlot) At(minute int) time.Time {
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, minute, 0, 0, d.Date.Location())
}

// CommitEvent is a single scheduled commit.
type CommitEvent struct {
	Day       DaySlot
	Timestamp time.Time
}

// Message is the text used both as the ledger paragraph and the commit message.
func (e CommitEvent) Message() string {
	return e.Timestamp.Format(MessageLayout)
}

func (e CommitEvent) String() string {
	return fmt.Sprintf("day %d: %s", e.Day.Offset, e.Message())
}

// DayPlan is the outcome of evaluating one DaySlot.
// Events is empty for days that are ineligible or not drawn as active.
type DayPlan struct {
	Slot   DaySlot
	Events []CommitEvent
}

// Active reports whether the day received any events.
func (d DayPlan) Active() bool {
	return len(d.Events) > 0
}

// Generator turns a Policy into a schedule of commit events.
// It is not safe for concurrent use when its RandomSource is not.
type Generator struct {
	rnd RandomSource
}

// NewGenerator creates a Generator drawing from rnd.
// A nil rnd selects the non-deterministic runtime source.
func NewGenerator(rnd RandomSource) *Generator {
	if rnd == nil {
		rnd = runtimeSource{}
	}
	return &Generator{rnd: rnd}
}

// Days walks the window forward from DaysFrom days before reference
// to DaysTo days before it, one slot per calendar day.
func (g *Generator) Days(p Policy, reference time.Time) iter.Seq[DaySlot] {
	start := ReferenceInstant(reference).AddDate(0, 0, -p.DaysFrom)
	n := p.NumberOfDays()

	return func(yield func(DaySlot) bool) {
		for offset := 0; offset <= n; offset++ {
			slot := DaySlot{Offset: offset, Date: start.AddDate(0, 0, offset)}
			if !yield(slot) {
				return
			}
		}
	}
}

// Plan evaluates every day of the window in ascending order.
// Random draws happen lazily, so each iteration yields a fresh schedule.
func (g *Generator) Plan(p Policy, reference time.Time) iter.Seq[DayPlan] {
	return func(yield func(DayPlan) bool) {
		for slot := range g.Days(p, reference) {
			if !yield(g.planDay(p, slot)) {
				return
			}
		}
	}
}

// Events flattens Plan into the ordered stream of commit events.
func (g *Generator) Events(p Policy, reference time.Time) iter.Seq[CommitEvent] {
	return func(yield func(CommitEvent) bool) {
		for plan := range g.Plan(p, reference) {
			for _, ev := range plan.Events {
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// Generate collects a complete schedule.
func (g *Generator) Generate(p Policy, reference time.Time) []CommitEvent {
	return slices.Collect(g.Events(p, reference))
}

func (g *Generator) planDay(p Policy, slot DaySlot) DayPlan {
	plan := DayPlan{Slot: slot}

	if p.ExcludeWeekends && slot.IsWeekend() {
		return plan
	}
	if g.rnd.IntN(100) >= p.ActivityProbability {
		return plan
	}

	count := MinEventsPerDay + g.rnd.IntN(ClampEventsPerDay(p.MaxEventsPerDay))

	plan.Events = make([]CommitEvent, 0, count)
	for range count {
		minute := g.rnd.IntN(MinutesPerDay)
		plan.Events = append(plan.Events, CommitEvent{
			Day:       slot,
			Timestamp: slot.At(minute),
		})
	}

	slices.SortStableFunc(plan.Events, func(a, b CommitEvent) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	return plan
}
