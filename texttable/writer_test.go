package texttable

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"gopkg.in/inf.v0"

	"github.com/cqltour/go-cqltour"
)

var usersCols = []cqltour.Column{
	{Name: "id", Kind: cqltour.KindOther},
	{Name: "name", Kind: cqltour.KindOther},
	{Name: "age", Kind: cqltour.KindNumeric},
}

func TestWriter_RenderView(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		writer  *Writer
		view    cqltour.View
		want    string
		wantErr bool
	}{
		{
			name:   "two rows",
			writer: NewWriter(),
			view: &cqltour.RowsView{
				Cols: usersCols,
				Rows: [][]any{
					{"123", "jon", 32},
					{"456", "mary", 25},
				},
			},
			want: "" +
				"+---+----+---+\n" +
				"|id |name|age|\n" +
				"+---+----+---+\n" +
				"|123|jon | 32|\n" +
				"|456|mary| 25|\n" +
				"+---+----+---+",
		},
		{
			name:   "header widths dominate",
			writer: NewWriter(),
			view: &cqltour.RowsView{
				Cols: usersCols,
				Rows: [][]any{{"1", "Al", 5}},
			},
			want: "" +
				"+--+----+---+\n" +
				"|id|name|age|\n" +
				"+--+----+---+\n" +
				"|1 |Al  |  5|\n" +
				"+--+----+---+",
		},
		{
			name:   "no rows renders placeholder",
			writer: NewWriter(),
			view:   &cqltour.RowsView{Cols: usersCols},
			want:   "Nothing",
		},
		{
			name:   "no rows with custom placeholder",
			writer: NewWriter().WithPlaceholder("(empty result)"),
			view:   &cqltour.RowsView{},
			want:   "(empty result)",
		},
		{
			name:   "value wider than header pads the header",
			writer: NewWriter(),
			view: &cqltour.RowsView{
				Cols: usersCols,
				Rows: [][]any{{"123", "Anastasios", 32}},
			},
			want: "" +
				"+---+----------+---+\n" +
				"|id |name      |age|\n" +
				"+---+----------+---+\n" +
				"|123|Anastasios| 32|\n" +
				"+---+----------+---+",
		},
		{
			name:   "nil value rendered as nil value string",
			writer: NewWriter().WithNilValue("NULL"),
			view: &cqltour.RowsView{
				Cols: usersCols,
				Rows: [][]any{{"123", nil, 32}},
			},
			want: "" +
				"+---+----+---+\n" +
				"|id |name|age|\n" +
				"+---+----+---+\n" +
				"|123|NULL| 32|\n" +
				"+---+----+---+",
		},
		{
			name:   "decimal values right aligned",
			writer: NewWriter(),
			view: &cqltour.RowsView{
				Cols: []cqltour.Column{
					{Name: "item"},
					{Name: "price", Kind: cqltour.KindNumeric},
				},
				Rows: [][]any{
					{"coffee", inf.NewDec(250, 2)},
					{"espresso machine", inf.NewDec(18999, 2)},
				},
			},
			want: "" +
				"+----------------+------+\n" +
				"|item            |price |\n" +
				"+----------------+------+\n" +
				"|coffee          |  2.50|\n" +
				"|espresso machine|189.99|\n" +
				"+----------------+------+",
		},
		{
			name: "column formatter",
			writer: NewWriter().WithColumnFormatterFunc(2, func(value any) (string, error) {
				if value == nil {
					return "?", nil
				}
				return "*", nil
			}),
			view: &cqltour.RowsView{
				Cols: usersCols,
				Rows: [][]any{{"123", "jon", 32}, {"456", "mary", nil}},
			},
			want: "" +
				"+---+----+---+\n" +
				"|id |name|age|\n" +
				"+---+----+---+\n" +
				"|123|jon |  *|\n" +
				"|456|mary|  ?|\n" +
				"+---+----+---+",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.writer.RenderView(ctx, tt.view)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Writer.RenderView() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Writer.RenderView() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

// Column formatters are keyed by index, so they apply to numeric
// columns too and their text is still right aligned afterwards.
func TestWriter_RenderView_formatterKeepsAlignment(t *testing.T) {
	w := NewWriter().WithColumnFormatterFunc(1, func(value any) (string, error) {
		return "x", nil
	})
	view := &cqltour.RowsView{
		Cols: []cqltour.Column{
			{Name: "a"},
			{Name: "num", Kind: cqltour.KindNumeric},
		},
		Rows: [][]any{{"1", 100000}},
	}
	got, err := w.RenderView(context.Background(), view)
	require.NoError(t, err)
	require.Equal(t, ""+
		"+-+---+\n"+
		"|a|num|\n"+
		"+-+---+\n"+
		"|1|  x|\n"+
		"+-+---+",
		got)
}

func TestWriter_RenderView_structure(t *testing.T) {
	view := &cqltour.RowsView{
		Cols: usersCols,
		Rows: [][]any{
			{"123", "jon", 32},
			{"456", "mary", 25},
			{"789", "Anastasios", 103},
		},
	}
	table, err := NewWriter().RenderView(context.Background(), view)
	require.NoError(t, err)

	lines := strings.Split(table, "\n")
	require.Len(t, lines, view.NumRows()+4, "separator, header, separator, rows, separator")
	require.Equal(t, lines[0], lines[2])
	require.Equal(t, lines[0], lines[len(lines)-1])

	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		require.Equal(t, width, utf8.RuneCountInString(line), "line %d", i)
		if i == 0 || i == 2 || i == len(lines)-1 {
			continue
		}
		require.Equal(t, len(view.Columns())+1, strings.Count(line, "|"), "line %d", i)
	}

	// No cell text is ever truncated
	for row := 0; row < view.NumRows(); row++ {
		for col := range view.Columns() {
			require.Contains(t, lines[row+3], fmt.Sprint(view.Cell(row, col)))
		}
	}
}

func TestWriter_WriteView(t *testing.T) {
	view := &cqltour.RowsView{
		Cols: usersCols,
		Rows: [][]any{{"123", "jon", 32}},
	}
	var buf bytes.Buffer
	err := NewWriter().WriteView(context.Background(), &buf, view)
	require.NoError(t, err)
	require.Equal(t, ""+
		"+---+----+---+\n"+
		"|id |name|age|\n"+
		"+---+----+---+\n"+
		"|123|jon | 32|\n"+
		"+---+----+---+\n",
		buf.String())

	buf.Reset()
	err = NewWriter().WriteView(context.Background(), &buf, &cqltour.RowsView{})
	require.NoError(t, err)
	require.Equal(t, "Nothing\n", buf.String())
}

func TestWriter_RenderView_canceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	view := &cqltour.RowsView{
		Cols: usersCols,
		Rows: [][]any{{"123", "jon", 32}},
	}
	_, err := NewWriter().RenderView(ctx, view)
	require.ErrorIs(t, err, context.Canceled)

	// The empty view shortcut never formats cells
	got, err := NewWriter().RenderView(ctx, &cqltour.RowsView{})
	require.NoError(t, err)
	require.Equal(t, "Nothing", got)
}
