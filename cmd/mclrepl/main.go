// The mclrepl tool is an interactive console over the mcl substrate: a
// tiny fixed vocabulary that drives the pointer stack and heap one
// command at a time, with a stats command that prints the cursors, so a
// person can watch a region's shape change by hand. It is not a language
// evaluator: it has no expression grammar, no variables, and no command
// table beyond the vocabulary below — the same relationship ogle's
// interactive shell has to internal/core.
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"mcl"
)

const usage = `commands:
  push <n>          push the raw value n onto the pointer stack
  pop               pop and print the top of the pointer stack
  alloc <n>         allocate a string of n 'x' bytes, push its address
  string <text>     allocate a string object holding text, push its address
  frame push        open a new frame
  frame pop         close the current frame, releasing its entries
  frame seek <n>     print the address named by frame level n
  try               run an empty TryRun and print its result (the rest of the line is ignored)
  raise <kind>      raise OutOfMemory, RuntimeError, or SyntaxError
  stats             print heap space and stack height
  help              print this message
  quit              exit
`

func main() {
	rl, err := readline.New("mcl> ")
	if err != nil {
		fmt.Println("mclrepl:", err)
		return
	}
	defer rl.Close()

	const slots = 256
	ctx, kind := mcl.Init(make([]byte, slots*mcl.WordSize), nil)
	if kind != mcl.OK {
		fmt.Println("mclrepl: mcl.Init:", kind)
		return
	}

	fmt.Print(usage)
	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			fmt.Println("mclrepl:", err)
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" {
			return
		}
		if fields[0] == "help" {
			fmt.Print(usage)
			continue
		}
		dispatch(ctx, fields)
	}
}

// dispatch runs one command, recovering from any raise or programming
// fault so a bad command never kills the console.
func dispatch(ctx *mcl.Context, fields []string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("fault:", r)
		}
	}()

	switch fields[0] {
	case "push":
		n, err := parseArg(fields, 1)
		if err != nil {
			return
		}
		ctx.Push(uint32(n))
		fmt.Println("ok")

	case "pop":
		fmt.Println(ctx.Pop())

	case "alloc":
		n, err := parseArg(fields, 1)
		if err != nil {
			return
		}
		kind := ctx.TryRun(func() mcl.ErrKind {
			s := ctx.StringNewWithLen([]byte(strings.Repeat("x", n)), n)
			ctx.Push(s.Addr())
			return mcl.OK
		})
		printOutcome(kind)

	case "string":
		if len(fields) < 2 {
			fmt.Println("usage: string <text>")
			return
		}
		text := strings.Join(fields[1:], " ")
		kind := ctx.TryRun(func() mcl.ErrKind {
			s := ctx.StringNew(text)
			ctx.Push(s.Addr())
			return mcl.OK
		})
		printOutcome(kind)

	case "frame":
		if len(fields) < 2 {
			fmt.Println("usage: frame push|pop|seek <n>")
			return
		}
		switch fields[1] {
		case "push":
			ctx.FramePush()
			fmt.Println("ok")
		case "pop":
			ctx.FramePop()
			fmt.Println("ok")
		case "seek":
			n, err := parseArg(fields, 2)
			if err != nil {
				return
			}
			addr, ok := ctx.FrameSeek(n)
			fmt.Println(addr, ok)
		default:
			fmt.Println("usage: frame push|pop|seek <n>")
		}

	case "try":
		kind := ctx.TryRun(func() mcl.ErrKind {
			return mcl.OK
		})
		printOutcome(kind)

	case "raise":
		if len(fields) < 2 {
			fmt.Println("usage: raise out_of_memory|runtime_error|syntax_error")
			return
		}
		k, ok := parseErrKind(fields[1])
		if !ok {
			fmt.Println("unknown kind:", fields[1])
			return
		}
		kind := ctx.TryRun(func() mcl.ErrKind {
			if k == mcl.RuntimeError || k == mcl.SyntaxError {
				// Collaborator contract: push the error message
				// immediately before raising.
				msg := ctx.StringNew("raised from mclrepl")
				ctx.Push(msg.Addr())
			}
			ctx.Raise(k)
			return mcl.OK
		})
		printOutcome(kind)

	case "stats":
		fmt.Printf("heap space: %d bytes\nstack height: %d slots\nstack space: %d slots\n",
			ctx.HeapSpace(), ctx.StackHeight(), ctx.StackSpace())

	default:
		fmt.Println("unknown command:", fields[0], "(type help)")
	}
}

func printOutcome(kind mcl.ErrKind) {
	if kind == mcl.OK {
		fmt.Println("ok")
		return
	}
	fmt.Println("error:", kind)
}

func parseArg(fields []string, i int) (int, error) {
	if i >= len(fields) {
		fmt.Println("missing numeric argument")
		return 0, fmt.Errorf("missing argument")
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		fmt.Println("not a number:", fields[i])
		return 0, err
	}
	return n, nil
}

func parseErrKind(s string) (mcl.ErrKind, bool) {
	switch strings.ToLower(s) {
	case "out_of_memory", "outofmemory", "oom":
		return mcl.OutOfMemory, true
	case "runtime_error", "runtimeerror":
		return mcl.RuntimeError, true
	case "syntax_error", "syntaxerror":
		return mcl.SyntaxError, true
	default:
		return 0, false
	}
}
