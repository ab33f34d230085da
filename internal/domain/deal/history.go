package deal

import (
	"fmt"
	"time"
)

// weekLabel formats a snapshot date as M/D/YY.
func weekLabel(t time.Time) string {
	return fmt.Sprintf("%d/%d/%02d", int(t.Month()), t.Day(), t.Year()%100)
}

// SynthesizeWeeklyHistory fabricates a four-week progression ending at the
// current stage: entries cover "this week" through "3 weeks ago",
// most-recent first, with week labels seven days apart counting back from
// ref. The result is a plausible monotonically-non-increasing regression
// into the past, NOT a record of actual transitions: no true per-week
// history exists in the data model, so there is nothing to infer from.
//
// Both the CSV importer and the status-change update path call this, so the
// two always agree.
func SynthesizeWeeklyHistory(current Stage, ref time.Time) WeeklyHistory {
	k := -1
	for i, s := range Progression {
		if s == current {
			k = i
			break
		}
	}

	if k == -1 {
		// On Hold / Dead / Withdrawn: fixed regression through the two
		// earliest active stages.
		return WeeklyHistory{
			{Week: weekLabel(ref), Stage: current},
			{Week: weekLabel(ref.AddDate(0, 0, -7)), Stage: StageActiveDiscussions},
			{Week: weekLabel(ref.AddDate(0, 0, -14)), Stage: StageProspecting},
			{Week: weekLabel(ref.AddDate(0, 0, -21)), Stage: StageProspecting},
		}
	}

	history := make(WeeklyHistory, 0, 4)
	for i := 0; i < 4; i++ {
		idx := k - i
		if idx < 0 {
			idx = 0 // clamp at Prospecting
		}
		history = append(history, WeeklyEntry{
			Week:  weekLabel(ref.AddDate(0, 0, -7*i)),
			Stage: Progression[idx],
		})
	}
	return history
}
