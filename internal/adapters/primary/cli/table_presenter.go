package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/MaximeSarrato/crafty/internal/adapters/primary/presenter"
	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

type tablePresenter struct {
	formatter *presenter.TimelineFormatter
	out       io.Writer
}

func newTablePresenter(formatter *presenter.TimelineFormatter, out io.Writer) *tablePresenter {
	return &tablePresenter{formatter: formatter, out: out}
}

func (p *tablePresenter) Present(timeline *domain.Timeline) {
	views := p.formatter.Format(timeline)
	if len(views) == 0 {
		fmt.Fprintln(p.out, "No messages yet.")
		return
	}

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Author", "Text", "Publication time"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, v := range views {
		table.Append([]string{v.Author, v.Text, v.PublicationTime})
	}
	table.Render()
}
