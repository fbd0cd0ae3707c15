package hashtable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// TableStat - Statistics on the overall usage and distribution over slots
//   - Records is the number of stored key-value pairs
//   - Slots is the number of slots in the backing store
//   - LoadFactor is the ratio of records to slots
//   - Accesses is the number of operations performed so far
//   - Collisions is the number of mismatched chain entries inspected so far
//   - CollisionRate is collisions per operation
//   - LongestChain is the length of the most populated slot chain
//   - ChainDistribution is the number of records stored in each slot, nil unless requested
type TableStat struct {
	Records           int
	Slots             int
	LoadFactor        float64
	Accesses          uint64
	Collisions        uint64
	CollisionRate     float64
	LongestChain      int
	ChainDistribution []int
}

// Stat - Walks through the entire set of slots and produces a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length Slots with number of records per slot, false will set TableStat.ChainDistribution to nil
func (C *ChainedHashTable[K, V]) Stat(includeDistribution bool) (tableStat TableStat) {
	tableStat = TableStat{
		Records:       C.count,
		Slots:         len(C.slots),
		LoadFactor:    C.LoadFactor(),
		Accesses:      C.accesses,
		Collisions:    C.collisions,
		CollisionRate: C.CollisionRate(),
	}

	if includeDistribution {
		tableStat.ChainDistribution = make([]int, len(C.slots))
	}

	for i, chain := range C.slots {
		if len(chain) > tableStat.LongestChain {
			tableStat.LongestChain = len(chain)
		}
		if includeDistribution {
			tableStat.ChainDistribution[i] = len(chain)
		}
	}

	return
}

// Display - Writes the current slot and chain layout to w for inspection.
// Each slot is rendered on one row with its chain in insertion order.
func (C *ChainedHashTable[K, V]) Display(w io.Writer) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Slot", "Chain"})
	tw.SetAutoFormatHeaders(false)

	for i, chain := range C.slots {
		if len(chain) == 0 {
			tw.Append([]string{strconv.Itoa(i), "empty"})
			continue
		}

		links := make([]string, len(chain))
		for j, e := range chain {
			links[j] = fmt.Sprintf("(%v, %v)", e.key, e.value)
		}
		tw.Append([]string{strconv.Itoa(i), strings.Join(links, " -> ")})
	}

	tw.SetFooter([]string{
		fmt.Sprintf("records %d", C.count),
		fmt.Sprintf("load factor %.3f", C.LoadFactor()),
	})
	tw.Render()
}
