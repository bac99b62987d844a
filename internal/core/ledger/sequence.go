package ledger

import "sort"

// Sequence returns a new slice with the rows ordered ascending by
// transaction date at day granularity, breaking ties by the row ref string.
// The tie-break makes the order total, so repeated runs over the same input
// always produce the same sequence.
//
// Missing dates (the zero time) sort before everything else instead of
// failing; malformed upstream data must not abort the ledger render.
func Sequence(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool {
		di, dj := dayOf(out[i].Date), dayOf(out[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].Ref.String() < out[j].Ref.String()
	})
	return out
}
