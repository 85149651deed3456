// Package renderer turns reports into markdown or terminal output.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/harryiam/stockunlock"
	md "github.com/nao1215/markdown"
)

// ValuesMarkdown renders the value series as a markdown table.
func ValuesMarkdown(r *stockunlock.ValueReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio value for %s", r.Symbol))

	if len(r.Points) == 0 {
		doc.PlainText("No value points to display.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for _, point := range r.Points {
		table.Rows = append(table.Rows, []string{
			point.Date.String(),
			formatValue(point.Value, r.Currency),
		})
	}
	doc.Table(table)

	return doc.String()
}

// TransactionsMarkdown renders the ledger transactions as a markdown table.
func TransactionsMarkdown(l *stockunlock.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions for %s", l.Symbol()))

	if l.Len() == 0 {
		doc.PlainText("The ledger is empty.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Action", "Quantity", "Price"},
		Rows:   [][]string{},
	}
	for tx := range l.Transactions() {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.Action.String(),
			fmt.Sprintf("%d", tx.Quantity),
			tx.Price.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
