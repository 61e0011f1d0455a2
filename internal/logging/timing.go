package logging

import "time"

// TimingContext holds timing information for manual Start/End tracking
type TimingContext struct {
	name      string
	startTime time.Time
}

// Time executes fn and logs its duration at debug level.
//
// Example:
//
//	logging.Time("load catalog", func() {
//	    catalog, err = resources.Load(path)
//	})
func Time(name string, fn func()) {
	if !IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(name, time.Since(start))
}

// Start begins a timing measurement. Pair it with End.
func Start(name string) TimingContext {
	return TimingContext{
		name:      name,
		startTime: time.Now(),
	}
}

// End logs the duration since the matching Start.
func End(ctx TimingContext) {
	if !IsEnabled() {
		return
	}
	logDuration(ctx.name, time.Since(ctx.startTime))
}

func logDuration(name string, d time.Duration) {
	Get().Debug(name,
		"duration", d.String(),
		"ms", d.Milliseconds(),
	)
}
