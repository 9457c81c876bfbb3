package stats

import (
	"strconv"

	"github.com/verte-zerg/worgen/internal/model"
)

// EstimateBytes approximates the output size of count lines whose length lies in bound.
// Each line is counted at the midpoint length plus its newline.
func EstimateBytes(count int64, bound model.Bound) int64 {
	return count * int64((bound.Min+bound.Max)/2+1)
}

// ListSummary renders the loaded lists and the output bound as an aligned table.
func ListSummary(lists model.Lists, out model.Bound) []string {
	headers := []string{"List", "File", "Bounds", "Words"}
	all := lists.All()
	rows := make([][]string, 0, len(all)+1)
	for i, list := range all {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			list.Path,
			list.Bound.String(),
			strconv.Itoa(list.Count()),
		})
	}
	rows = append(rows, []string{"out", "-", out.String(), "-"})
	return formatTable(headers, rows, map[int]bool{3: true})
}
