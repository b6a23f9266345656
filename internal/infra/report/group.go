package report

import (
	domain "github.com/jmazoveracode/veracode-target-urls/internal/domain/targets"
)

// Group is the records of one application, in discovery order.
type Group struct {
	Application string
	Records     []domain.TargetRecord
}

// GroupByApplication partitions records by application name. Group order is
// first-seen order of the application names; record order inside a group is
// the records' original relative order. Grouping the same set twice yields
// the same result.
func GroupByApplication(recs []domain.TargetRecord) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, rec := range recs {
		i, ok := index[rec.ApplicationName]
		if !ok {
			i = len(groups)
			index[rec.ApplicationName] = i
			groups = append(groups, Group{Application: rec.ApplicationName})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}
	return groups
}
