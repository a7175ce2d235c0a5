package hours

import "time"

// Evaluator decides whether a schedule is open at an instant in a fixed time zone.
type Evaluator struct {
	location *time.Location
	now      func() time.Time
}

// Option customises an Evaluator.
type Option func(*Evaluator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// NewEvaluator creates an evaluator for the given time zone. A nil location means UTC.
func NewEvaluator(location *time.Location, opts ...Option) *Evaluator {
	if location == nil {
		location = time.UTC
	}

	e := &Evaluator{
		location: location,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Location returns the evaluation time zone.
func (e *Evaluator) Location() *time.Location {
	return e.location
}

// IsOpen evaluates the schedule at the current instant.
func (e *Evaluator) IsOpen(s Schedule) (bool, error) {
	return e.IsOpenAt(s, e.now())
}

// IsOpenAt evaluates the schedule at t. Malformed descriptors return a *MalformedError.
func (e *Evaluator) IsOpenAt(s Schedule, t time.Time) (bool, error) {
	local := t.In(e.location)

	desc, ok := s.For(local.Weekday())
	if !ok || IsClosed(desc) {
		return false, nil
	}

	r, err := ParseRange(desc)
	if err != nil {
		return false, err
	}

	return r.Contains(Clock(local.Hour()*minutesPerHour + local.Minute())), nil
}
