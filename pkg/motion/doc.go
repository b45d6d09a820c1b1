// Package motion holds the timer plumbing shared by every animated widget.
//
// Widgets never start goroutines. They ask a Timer for a tea.Cmd that
// delivers a TickMsg after a delay, and they accept a TickMsg only while its
// id and generation tag still match. Superseding a timer or stopping it bumps
// the tag, so ticks that are already in flight arrive stale and are dropped:
//
//	m.timer.Supersede()
//	return m, m.timer.Schedule(time.Second, kindTick)
//
// The same id/tag scheme is what bubbles uses for its spinner and timer.
package motion
