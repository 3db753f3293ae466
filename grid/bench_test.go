package grid_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/warehouse/grid"
)

// BenchmarkParse measures Parse on a 500×500 open floor.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	const n = 500
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	rows[0] = "@" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "+"

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = grid.Parse(rows)
	}
}
