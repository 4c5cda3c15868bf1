// The mclstat tool drives a few representative operations over a
// freshly constructed mcl.Context and prints the resulting region
// cursors, the way viewcore prints mapping and goroutine counts for a
// core file. It never reads or writes a real interpreter's region; it
// exists to make the substrate's behavior visible from a terminal.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mcl"
)

func exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func newContext(slots int) *mcl.Context {
	buf := make([]byte, slots*mcl.WordSize)
	ctx, kind := mcl.Init(buf, nil)
	if kind != mcl.OK {
		exitf("mcl.Init: %s\n", kind)
	}
	return ctx
}

func main() {
	var slots int

	rootCmd := &cobra.Command{
		Use:   "mclstat",
		Short: "Inspect the mcl memory and execution-context substrate",
	}
	rootCmd.PersistentFlags().IntVar(&slots, "slots", 256, "number of pointer-sized slots in the backing region")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "overview",
		Short: "print region cursors for a freshly initialized context",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := newContext(slots)
			t := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
			fmt.Fprintf(t, "slots\t%d\n", slots)
			fmt.Fprintf(t, "word size\t%d\n", mcl.WordSize)
			fmt.Fprintf(t, "heap space\t%d bytes\n", ctx.HeapSpace())
			fmt.Fprintf(t, "stack height\t%d slots\n", ctx.StackHeight())
			fmt.Fprintf(t, "stack space\t%d slots\n", ctx.StackSpace())
			t.Flush()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "alloc [text...]",
		Short: "allocate one string object per argument and report heap space consumed",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				args = []string{"hello", "mcl"}
			}
			ctx := newContext(slots)
			before := ctx.HeapSpace()
			t := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
			fmt.Fprintf(t, "text\tlen\theap space after\n")
			kind := ctx.TryRun(func() mcl.ErrKind {
				for _, arg := range args {
					s := ctx.StringNew(arg)
					ctx.Push(s.Addr())
					fmt.Fprintf(t, "%q\t%d\t%d\n", arg, ctx.Len(s), ctx.HeapSpace())
				}
				return mcl.OK
			})
			t.Flush()
			if kind != mcl.OK {
				exitf("alloc failed: %s\n", kind)
			}
			fmt.Printf("consumed %d heap bytes for %d strings\n", before-ctx.HeapSpace(), len(args))
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "frames [depth]",
		Short: "push nested frames and print the outward frame-seek chain",
		Run: func(cmd *cobra.Command, args []string) {
			depth := 3
			if len(args) > 0 {
				if _, err := fmt.Sscanf(args[0], "%d", &depth); err != nil {
					exitf("bad depth %q: %v\n", args[0], err)
				}
			}
			ctx := newContext(slots)
			for i := 0; i < depth; i++ {
				ctx.FramePush()
			}
			t := tabwriter.NewWriter(os.Stdout, 0, 0, 1, ' ', 0)
			fmt.Fprintf(t, "level\taddr\tfound\n")
			for level := 0; ; level++ {
				addr, ok := ctx.FrameSeek(level)
				fmt.Fprintf(t, "%d\t%d\t%v\n", level, addr, ok)
				if !ok {
					break
				}
			}
			t.Flush()
			for i := 0; i < depth; i++ {
				ctx.FramePop()
			}
		},
	})

	if err := rootCmd.Execute(); err != nil {
		exitf("%v\n", err)
	}
}
