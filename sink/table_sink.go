package sink

import (
	"context"
	"fmt"
	"io"
	"planning-poker/contract"
	"planning-poker/domain"
	"slices"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

const (
	voteHidden  = "✓"
	voteMissing = "…"
)

// TableSink renders the session as a table, one row per participant
// sorted by id, each time the state is replaced.
type TableSink struct {
	out     io.Writer
	colours bool
}

func NewTableSink(out io.Writer, colours bool) *TableSink {
	return &TableSink{out: out, colours: colours}
}

func (t *TableSink) Consume(_ context.Context, state contract.State[domain.Participant]) error {
	if _, err := fmt.Fprintln(t.out, t.header(state)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	table := tablewriter.NewWriter(t.out)
	table.SetHeader([]string{"Participant", "User", "Vote"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	ids := lo.Keys(state.Participants)
	slices.Sort(ids)
	for _, id := range ids {
		p := state.Participants[id]
		table.Append([]string{id, p.UserName, formatVote(p.Points)})
	}
	table.Render()
	return nil
}

func (t *TableSink) header(state contract.State[domain.Participant]) string {
	status := "CLOSED"
	style := color.New(color.BgBlack, color.FgYellow)
	if state.Opened {
		status = "OPENED"
		style = color.New(color.BgBlack, color.FgGreen)
	}
	header := fmt.Sprintf("Session %s, %d participant(s)", status, len(state.Participants))
	if t.colours {
		return style.Render(header)
	}
	return header
}

func formatVote(p domain.Points) string {
	switch {
	case p.Value != nil:
		return strconv.Itoa(*p.Value)
	case p.Voted:
		return voteHidden
	default:
		return voteMissing
	}
}
