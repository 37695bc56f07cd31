package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"mesa-campaigns/internal/adapter/usecase"
	"mesa-campaigns/internal/core/domain"
	"mesa-campaigns/internal/view"
)

type reportOptions struct {
	group  string
	status string
	search string
	page   int
	size   int
	expand bool
}

func newReportCmd(a *app) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the campaign board as a table",
		Long: `Load campaigns and the product catalog once and print the board.

Examples:
  campaignctl report --status active
  campaignctl report --group subject --expand
  campaignctl report -q shoes --size 50 --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sel, err := opts.selection()
			if err != nil {
				return err
			}

			source, closeSource, err := a.newSource(cmd.Context(), a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer closeSource()

			svc := usecase.NewDashboardUseCase(source, a.logger)
			// a failed source is reported through the board state
			_ = svc.Refresh(cmd.Context())

			board := svc.Board(cmd.Context(), sel)
			if board.State == domain.StateFailed {
				return errors.New(board.Error)
			}
			return RenderBoard(cmd.OutOrStdout(), board, opts.expand)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.group, "group", "g", "", "group by article, subject or type")
	flags.StringVarP(&opts.status, "status", "s", "all", "status filter: all, active, paused or archived")
	flags.StringVarP(&opts.search, "search", "q", "", "case-insensitive campaign name search")
	flags.IntVar(&opts.page, "page", 1, "page of the flat list")
	flags.IntVar(&opts.size, "size", domain.DefaultPageSize, "rows per page of the flat list")
	flags.BoolVar(&opts.expand, "expand", false, "print the campaigns of every group")
	return cmd
}

func (o reportOptions) selection() (domain.Selection, error) {
	group, err := domain.ParseGroupBy(o.group)
	if err != nil {
		return domain.Selection{}, err
	}
	status, err := domain.ParseStatusFilter(o.status)
	if err != nil {
		return domain.Selection{}, err
	}
	if o.page < 1 {
		return domain.Selection{}, fmt.Errorf("invalid page %d", o.page)
	}
	sel := domain.Selection{GroupBy: group, Status: status, Search: o.search, Page: o.page, PageSize: o.size}
	return sel, sel.Validate()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

func newTable[T any](cols []view.Column[T], rows []T) *table.Table {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(view.Headers(cols)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col < len(cols) && cols[col].Align == "right":
				return numberStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(view.Cells(cols, r)...)
	}
	return t
}

// RenderBoard prints b as terminal tables. Grouped boards print the group
// rows and, with expand, the campaigns of every group below them.
func RenderBoard(w io.Writer, b domain.Board, expand bool) error {
	c := b.Counts
	summary := fmt.Sprintf("%s: %d  %s: %d  %s: %d  %s: %d",
		domain.FilterAll.Label(), c.All,
		domain.FilterActive.Label(), c.Active,
		domain.FilterPaused.Label(), c.Paused,
		domain.FilterArchived.Label(), c.Archived)
	if _, err := fmt.Fprintln(w, titleStyle.Render(summary)); err != nil {
		return err
	}

	g := b.Selection.GroupBy
	if g == domain.GroupNone || g == "" {
		p := b.Pagination
		_, err := fmt.Fprintf(w, "%s\nСтраница %d из %d, кампаний: %d\n",
			newTable(view.CampaignColumns(domain.GroupNone), b.Rows), p.Page, max(p.Pages, 1), p.Total)
		return err
	}

	if _, err := fmt.Fprintln(w, newTable(view.GroupColumns(g), b.Groups)); err != nil {
		return err
	}
	if !expand {
		return nil
	}
	children := view.CampaignColumns(g)
	for _, r := range b.Groups {
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", titleStyle.Render(r.Label), newTable(children, r.Campaigns)); err != nil {
			return err
		}
	}
	return nil
}
