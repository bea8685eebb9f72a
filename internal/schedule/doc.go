// Package schedule generates the activity schedule gitpast turns into commits.
//
// A Policy describes a window of days (DaysFrom..DaysTo days before a
// reference instant), whether weekends are eligible, the percent chance that an
// eligible day is active, and the maximum number of events on an active day.
//
// For every day of the window, walking forward from the earliest day:
//
//  1. weekends are skipped when ExcludeWeekends is set;
//  2. the day is active when a draw in [0, 100) is below ActivityProbability;
//  3. an active day receives between 1 and ClampEventsPerDay(MaxEventsPerDay) events;
//  4. each event lands on a random minute of that calendar day.
//
// Events of a day are sorted by timestamp, so the schedule as a whole is
// chronological.
//
// Randomness comes from an injected RandomSource. NewGenerator(nil) uses the
// runtime-seeded math/rand/v2 generator, which makes every run different; tests
// pass a seeded *rand.Rand or a scripted source.
//
//	g := schedule.NewGenerator(nil)
//	for ev := range g.Events(policy, time.Now()) {
//	    fmt.Println(ev.Message())
//	}
package schedule
