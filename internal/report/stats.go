package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/dshills/inputq/internal/event"
	"github.com/dshills/inputq/internal/queue"
)

// WriteStats prints queue counters as a table.
func WriteStats(w io.Writer, s queue.Stats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Counter", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"pushed", humanize.Comma(int64(s.Pushed))})
	table.Append([]string{"popped", humanize.Comma(int64(s.Popped))})
	table.Append([]string{"dropped", humanize.Comma(int64(s.Dropped))})
	table.Append([]string{"evicted", humanize.Comma(int64(s.Evicted))})
	table.Append([]string{"ignored", humanize.Comma(int64(s.Ignored))})
	table.Append([]string{"queued", humanize.Comma(int64(s.Queued))})
	table.Append([]string{"high water", fmt.Sprintf("%s / %s (%s)",
		humanize.Comma(int64(s.HighWater)),
		humanize.Comma(int64(usable(s.Capacity))),
		percent(s.HighWater, usable(s.Capacity)))})

	table.Render()
}

// DrainStats summarizes what the consumer did with drained events.
type DrainStats struct {
	Batches      uint64
	Events       uint64
	AvgLatency   time.Duration
	MaxLatency   time.Duration
	QueueErrors  uint64
	ScriptErrors uint64
	Uptime       time.Duration
}

// WriteDrainStats prints consumer counters and queue latency as a table.
// Latency is the time from the callback to the drain.
func WriteDrainStats(w io.Writer, s DrainStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Drain", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	perBatch := "0"
	if s.Batches > 0 {
		perBatch = humanize.FtoaWithDigits(float64(s.Events)/float64(s.Batches), 1)
	}

	table.Append([]string{"batches", humanize.Comma(int64(s.Batches))})
	table.Append([]string{"events", humanize.Comma(int64(s.Events))})
	table.Append([]string{"events per batch", perBatch})
	table.Append([]string{"avg latency", s.AvgLatency.Round(time.Microsecond).String()})
	table.Append([]string{"max latency", s.MaxLatency.Round(time.Microsecond).String()})
	table.Append([]string{"queue errors", humanize.Comma(int64(s.QueueErrors))})
	table.Append([]string{"script errors", humanize.Comma(int64(s.ScriptErrors))})
	table.Append([]string{"uptime", s.Uptime.Round(time.Millisecond).String()})

	table.Render()
}

// usable is the number of events a queue of the given capacity can hold.
func usable(capacity int) int {
	if capacity < 1 {
		return 0
	}
	return capacity - 1
}

func percent(n, of int) string {
	if of == 0 {
		return "0%"
	}
	return humanize.FtoaWithDigits(float64(n)*100/float64(of), 1) + "%"
}

// WriteKindCounts prints how many events of each kind were handled, in
// kind order. Kinds with no events are omitted.
func WriteKindCounts(w io.Writer, counts map[event.Kind]uint64) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Events"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	var total uint64
	for _, k := range event.Kinds() {
		n := counts[k]
		if n == 0 {
			continue
		}
		total += n
		table.Append([]string{k.String(), humanize.Comma(int64(n))})
	}
	table.SetFooter([]string{"total", humanize.Comma(int64(total))})

	table.Render()
}
