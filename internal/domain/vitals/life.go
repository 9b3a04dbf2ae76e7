// Package vitals tracks the player's life counter.
package vitals

// DefaultMax is the highest life value a heal can reach
const DefaultMax = 9

// Life is a bounded life counter. Reaching zero is reported exactly once
// until the counter is reset.
type Life struct {
	current int
	total   int
	max     int
	dead    bool
}

// NewLife creates a life counter starting at total, capped at max
func NewLife(total, max int) *Life {
	if max <= 0 {
		max = DefaultMax
	}
	if total > max {
		total = max
	}
	l := &Life{total: total, max: max}
	l.Reset()
	return l
}

// Reset restores the starting value and re-arms the death report
func (l *Life) Reset() {
	l.current = l.total
	l.dead = l.current <= 0
}

// Damage removes one life. Returns true only on the transition to zero.
func (l *Life) Damage() bool {
	if l.current <= 0 {
		return false
	}
	l.current--
	if l.current == 0 && !l.dead {
		l.dead = true
		return true
	}
	return false
}

// Heal adds amount, capped at the maximum. A dead counter stays dead.
func (l *Life) Heal(amount int) {
	if l.dead || amount <= 0 {
		return
	}
	l.current += amount
	if l.current > l.max {
		l.current = l.max
	}
}

// Current returns the current life value
func (l *Life) Current() int { return l.current }

// Total returns the configured starting value
func (l *Life) Total() int { return l.total }

// Max returns the heal cap
func (l *Life) Max() int { return l.max }

// Dead reports whether the counter has reached zero
func (l *Life) Dead() bool { return l.dead }
