package patrol

import (
	"cmp"
	"math"
	"slices"
	"time"

	"patrol/internal/domain/entity"
)

// DefaultOnTimeSLA is how quickly an assignment must be completed after its baseline to count as on time.
const DefaultOnTimeSLA = 15 * time.Minute

// MetricsPolicy tunes the aggregator.
type MetricsPolicy struct {
	OnTimeSLA time.Duration
}

// DefaultMetricsPolicy returns the policy used by the dashboard.
func DefaultMetricsPolicy() MetricsPolicy {
	return MetricsPolicy{OnTimeSLA: DefaultOnTimeSLA}
}

// ComputeMetrics aggregates patrol performance of the active guards over [windowStart, windowEnd)
// with the default policy.
func ComputeMetrics(guards []*entity.Guard, scans []*entity.Scan, windowStart, windowEnd time.Time) entity.Metrics {
	return DefaultMetricsPolicy().Compute(guards, scans, windowStart, windowEnd)
}

// Compute aggregates patrol performance of the active guards over [windowStart, windowEnd).
func (p MetricsPolicy) Compute(guards []*entity.Guard, scans []*entity.Scan, windowStart, windowEnd time.Time) entity.Metrics {
	sla := p.OnTimeSLA
	if sla <= 0 {
		sla = DefaultOnTimeSLA
	}
	slaSeconds := int(sla / time.Second)

	active := ActiveGuards(guards)
	activeIDs := make(map[entity.GuardID]struct{}, len(active))
	for _, g := range active {
		activeIDs[g.ID] = struct{}{}
	}

	var m entity.Metrics
	windowScans := make([]*entity.Scan, 0, len(scans))
	for _, s := range scans {
		if s == nil || !inWindow(s.ScannedAt, windowStart, windowEnd) {
			continue
		}
		if _, ok := activeIDs[s.GuardID]; !ok {
			continue
		}
		windowScans = append(windowScans, s)
		if s.Succeeded() {
			m.SuccessfulScansCount++
		}
	}
	m.WindowScansCount = len(windowScans)

	byKey := groupByKey(windowScans)

	assignmentKeys := make(map[entity.AssignmentKey]struct{})
	responses := make([]int, 0)
	for _, g := range active {
		for _, cp := range g.Assignments() {
			baseline, ok := Baseline(g, cp, windowStart, windowEnd)
			if !ok {
				continue
			}
			key := entity.AssignmentKey{GuardID: g.ID, CheckpointID: cp}
			assignmentKeys[key] = struct{}{}
			m.TotalAssignments++

			first := firstSuccessAtOrAfter(byKey[key], baseline)
			if first == nil {
				continue
			}
			m.CompletedAssignments++
			seconds := responseSeconds(first.ScannedAt.Sub(baseline))
			responses = append(responses, seconds)
			if seconds <= slaSeconds {
				m.OnTimeAssignments++
			}
		}
	}

	var completion, onTime, quality float64
	if m.TotalAssignments > 0 {
		completion = percent(m.CompletedAssignments, m.TotalAssignments)
	}
	if m.CompletedAssignments > 0 {
		onTime = percent(m.OnTimeAssignments, m.CompletedAssignments)
	}

	attempts, good := 0, 0
	for _, s := range windowScans {
		if _, ok := assignmentKeys[s.Key()]; !ok {
			continue
		}
		attempts++
		if s.Succeeded() {
			good++
		}
	}
	switch {
	case attempts > 0:
		quality = percent(good, attempts)
	case m.TotalAssignments == 0:
		quality = 100
	default:
		quality = 0
	}

	if len(responses) > 0 {
		sum := 0
		for _, r := range responses {
			sum += r
		}
		m.AvgResponseTimeSeconds = int(math.Round(float64(sum) / float64(len(responses))))
	}

	m.CompletionRate = round1(completion)
	m.OnTimeRate = round1(onTime)
	m.QualityRate = round1(quality)
	m.EfficiencyScore = round1(clamp(0.5*completion+0.3*onTime+0.2*quality, 0, 100))

	return m
}

// DayWindow is a half-open time range [Start, End).
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// DayWindows returns today's window (local midnight to now) and yesterday's full day in loc.
func DayWindows(now time.Time, loc *time.Location) (today, yesterday DayWindow) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	prev := midnight.AddDate(0, 0, -1)

	return DayWindow{Start: midnight, End: now}, DayWindow{Start: prev, End: midnight}
}

// StatsInput is the data behind the dashboard stats card.
type StatsInput struct {
	Now              time.Time
	Location         *time.Location
	Guards           []*entity.Guard
	TotalCheckpoints int
	TotalScans       int
	Scans            []*entity.Scan // must cover at least yesterday and today
}

// BuildDashboardStats computes today's metrics and the day-over-day deltas against yesterday.
func (p MetricsPolicy) BuildDashboardStats(in StatsInput) entity.DashboardStats {
	todayW, yesterdayW := DayWindows(in.Now, in.Location)
	today := p.Compute(in.Guards, in.Scans, todayW.Start, todayW.End)
	yesterday := p.Compute(in.Guards, in.Scans, yesterdayW.Start, yesterdayW.End)

	return entity.DashboardStats{
		PatrolsToday:                 today.SuccessfulScansCount,
		MissedPatrols:                max(0, today.TotalAssignments-today.CompletedAssignments),
		ActiveGuards:                 len(ActiveGuards(in.Guards)),
		TotalCheckpoints:             in.TotalCheckpoints,
		TotalGuards:                  len(in.Guards),
		TotalScans:                   in.TotalScans,
		CompletionRate:               today.CompletionRate,
		AvgResponseTimeSeconds:       today.AvgResponseTimeSeconds,
		EfficiencyScore:              today.EfficiencyScore,
		OnTimeRate:                   today.OnTimeRate,
		QualityRate:                  today.QualityRate,
		CompletionRateChange:         round1(today.CompletionRate - yesterday.CompletionRate),
		EfficiencyScoreChange:        round1(today.EfficiencyScore - yesterday.EfficiencyScore),
		AvgResponseTimeChangeSeconds: today.AvgResponseTimeSeconds - yesterday.AvgResponseTimeSeconds,
	}
}

// GuardPerformance returns today's metrics per active guard, best efficiency first.
func (p MetricsPolicy) GuardPerformance(guards []*entity.Guard, scans []*entity.Scan, now time.Time, loc *time.Location) []entity.GuardPerformance {
	todayW, _ := DayWindows(now, loc)

	lastScan := make(map[entity.GuardID]time.Time)
	for _, s := range scans {
		if s == nil {
			continue
		}
		if t, ok := lastScan[s.GuardID]; !ok || s.ScannedAt.After(t) {
			lastScan[s.GuardID] = s.ScannedAt
		}
	}

	active := ActiveGuards(guards)
	out := make([]entity.GuardPerformance, 0, len(active))
	for _, g := range active {
		row := entity.GuardPerformance{
			GuardID:   g.ID,
			GuardName: g.Name,
			Metrics:   p.Compute([]*entity.Guard{g}, scans, todayW.Start, todayW.End),
		}
		if t, ok := lastScan[g.ID]; ok {
			row.LastScanAt = &t
		}
		out = append(out, row)
	}

	slices.SortStableFunc(out, func(a, b entity.GuardPerformance) int {
		switch {
		case a.Metrics.EfficiencyScore > b.Metrics.EfficiencyScore:
			return -1
		case a.Metrics.EfficiencyScore < b.Metrics.EfficiencyScore:
			return 1
		default:
			return cmp.Compare(a.GuardID, b.GuardID)
		}
	})

	return out
}

// Timeline limits.
const (
	DefaultTimelineLimit = 20
	MaxTimelineLimit     = 100
)

// Timeline returns the most recent scans, newest first, enriched with guard and checkpoint names.
func Timeline(scans []*entity.Scan, guards []*entity.Guard, checkpoints []*entity.Checkpoint, limit int) []entity.TimelineEntry {
	limit = ClampLimit(limit, DefaultTimelineLimit, MaxTimelineLimit)
	names := newDirectory(guards, checkpoints)

	sorted := newestFirst(scans)
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]entity.TimelineEntry, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, entity.TimelineEntry{
			Scan:           *s,
			GuardName:      names.guardName(s.GuardID),
			CheckpointName: names.checkpointName(s.CheckpointID),
		})
	}

	return out
}

// ClampLimit returns def for non-positive limits and caps the rest at maxLimit.
func ClampLimit(limit, def, maxLimit int) int {
	if limit <= 0 {
		return def
	}

	return min(limit, maxLimit)
}

func groupByKey(scans []*entity.Scan) map[entity.AssignmentKey][]*entity.Scan {
	out := make(map[entity.AssignmentKey][]*entity.Scan)
	for _, s := range scans {
		out[s.Key()] = append(out[s.Key()], s)
	}
	for _, group := range out {
		slices.SortStableFunc(group, func(a, b *entity.Scan) int {
			return a.ScannedAt.Compare(b.ScannedAt)
		})
	}

	return out
}

// firstSuccessAtOrAfter expects scans sorted ascending by time.
func firstSuccessAtOrAfter(scans []*entity.Scan, baseline time.Time) *entity.Scan {
	for _, s := range scans {
		if s.ScannedAt.Before(baseline) || !s.Succeeded() {
			continue
		}

		return s
	}

	return nil
}

func newestFirst(scans []*entity.Scan) []*entity.Scan {
	out := make([]*entity.Scan, 0, len(scans))
	for _, s := range scans {
		if s != nil {
			out = append(out, s)
		}
	}
	slices.SortStableFunc(out, func(a, b *entity.Scan) int {
		return b.ScannedAt.Compare(a.ScannedAt)
	})

	return out
}

func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func responseSeconds(d time.Duration) int {
	return max(0, int(math.Round(float64(d.Milliseconds())/1000)))
}

func percent(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
