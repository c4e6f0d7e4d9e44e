package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/shortenit/shortenit-cli/internal/api/modeldto"
)

const titleColWidth = 50

// List renders the stored links as a table.
type List struct {
	client APIClient
	out    io.Writer
}

// NewList wires a List orchestrator.
func NewList(client APIClient, out io.Writer) *List {
	return &List{client: client, out: out}
}

// Execute fetches the recent page, or every record when showAll is set, and
// renders the table. Zero records is a success with a creation hint.
func (c *List) Execute(ctx context.Context, showAll bool) error {
	s := newSpinner(c.out, "Fetching URLs...")
	var (
		records []modeldto.URLRecord
		err     error
	)
	if showAll {
		records, err = c.client.ListAllURLs(ctx)
	} else {
		records, err = c.client.ListURLs(ctx)
	}
	if err != nil {
		stopFail(s, "Failed to fetch URLs")
		reportError(c.out, err)
		return reported(err)
	}
	if showAll {
		stopOK(s, fmt.Sprintf("Retrieved all %d URLs", len(records)))
	} else {
		stopOK(s, fmt.Sprintf("Retrieved recent %d URLs", len(records)))
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, color.YellowString("\nNo URLs found. Create one with: shortenit short <url>"))
		fmt.Fprintln(c.out)
		return nil
	}

	fmt.Fprintln(c.out)
	c.renderTable(records)
	if !showAll {
		fmt.Fprintln(c.out, color.New(color.Faint).Sprint(`Use "shortenit list --all" to see all URLs`))
	}
	fmt.Fprintln(c.out)
	return nil
}

func (c *List) renderTable(records []modeldto.URLRecord) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Short Code", "Title", "Clicks", "Created At", "Active"})
	table.SetColWidth(titleColWidth)
	table.SetAutoWrapText(true)
	for _, record := range records {
		table.Append([]string{
			record.Code,
			record.Title,
			strconv.Itoa(record.ClickCount),
			record.CreatedAt.Format("02/01/2006"),
			strconv.FormatBool(record.IsActive),
		})
	}
	table.Render()
}
