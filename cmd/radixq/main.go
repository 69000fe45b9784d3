// Command radixq runs a small demonstration of the radix-bucketed priority
// queue: it pushes a fixed set of elements, renders the resulting bucket
// structure as a table, then drains the queue and prints the elements in
// priority order.
package main

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tlahoda/radixq"
	"github.com/tlahoda/radixq/priority"
)

// demoQueue is the slice of the Queue surface the demo needs, letting one
// code path drive either direction.
type demoQueue interface {
	Push(key priority.Key, v string) error
	PopAll() *radixq.List[string]
	All() iter.Seq2[priority.Key, string]
	Len() int
}

var demo = []struct {
	key priority.Key
	val string
}{
	{"30", "3"},
	{"20", "2a"},
	{"600", "6c"},
	{"1", "1"},
	{"20", "2b"},
	{"600", "6a"},
	{"500", "5"},
	{"40", "4"},
	{"20", "2c"},
	{"600", "6b"},
}

func newRootCmd() *cobra.Command {
	var descending bool

	cmd := &cobra.Command{
		Use:   "radixq",
		Short: "Demonstrate the radix-bucketed priority queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var q demoQueue
			if descending {
				q = radixq.NewMax[string]()
			} else {
				q = radixq.NewMin[string]()
			}
			return run(cmd.OutOrStdout(), q)
		},
	}

	cmd.Flags().BoolVar(&descending, "descending", false,
		"pop numerically largest priorities first")

	return cmd
}

func run(out io.Writer, q demoQueue) error {
	for _, d := range demo {
		if err := q.Push(d.key, d.val); err != nil {
			return fmt.Errorf("push %q: %w", d.key, err)
		}
	}

	fmt.Fprintf(out, "queue structure (%d elements):\n", q.Len())
	renderStructure(out, q)

	fmt.Fprintln(out, "\ndrained in priority order:")
	for v := range q.PopAll().All() {
		fmt.Fprintln(out, v)
	}

	return nil
}

func renderStructure(out io.Writer, q demoQueue) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Digits", "Priority", "Element"})
	table.SetAutoMergeCells(true)
	table.SetRowLine(false)

	for key, v := range q.All() {
		table.Append([]string{
			fmt.Sprintf("%d", key.Digits()),
			string(key),
			v,
		})
	}

	table.Render()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
