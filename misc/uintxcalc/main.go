package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"
	log "github.com/golang/glog"
	uintx "github.com/shabbyrobe/go-uintx"
)

// uintxcalc evaluates a single UintX operation from the command line. It is
// handy for checking a result by hand against another implementation:
//
//	uintxcalc --word=8 0xFFFFFFFF mul 0xFFFFFFFF
//	uintxcalc --word=16 --max-words=2 0xFFFF add 1
//	uintxcalc --dump 0x1234 lsh 100

type cli struct {
	Word     int    `help:"Word width in bits: 8, 16, 32 or 64." default:"64"`
	MaxWords int    `help:"Maximum number of words a value may hold." default:"128"`
	Dump     bool   `help:"Dump the words of the result."`
	Verbose  int    `short:"v" type:"counter" help:"Log verbosity, repeat for more."`
	LHS      string `arg:"" name:"lhs" help:"Left operand; decimal, or 0x, 0o or 0b prefixed."`
	Op       string `arg:"" name:"op" help:"Operation: add, sub, mul, quo, rem, and, or, xor, lsh, rsh, cmp or not. Symbols such as + and << also work."`
	RHS      string `arg:"" name:"rhs" optional:"" help:"Right operand. A bit count for lsh and rsh."`
}

var opSymbols = map[string]string{
	"+":   "add",
	"-":   "sub",
	"*":   "mul",
	"/":   "quo",
	"%":   "rem",
	"&":   "and",
	"|":   "or",
	"^":   "xor",
	"<<":  "lsh",
	">>":  "rsh",
	"<=>": "cmp",
	"~":   "not",
}

func main() {
	// glog writes to files unless told otherwise:
	_ = flag.Set("logtostderr", "true")
	_ = flag.CommandLine.Parse(nil)
	defer log.Flush()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error(err)
		log.Flush()
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("uintxcalc"),
		kong.Description("Evaluate an operation on arbitrary-width unsigned integers"),
		kong.Writers(out, out),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if c.Verbose > 0 {
		_ = flag.Set("v", strconv.Itoa(c.Verbose))
	}
	if op, ok := opSymbols[c.Op]; ok {
		c.Op = op
	}
	if c.MaxWords < 1 {
		return fmt.Errorf("uintxcalc: --max-words must be >= 1, found %d", c.MaxWords)
	}

	switch c.Word {
	case 8:
		return eval[uint8](&c, out)
	case 16:
		return eval[uint16](&c, out)
	case 32:
		return eval[uint32](&c, out)
	case 64:
		return eval[uint64](&c, out)
	default:
		return fmt.Errorf("uintxcalc: unsupported word size %d", c.Word)
	}
}

func operand[W uintx.Word](name, s string, opts []uintx.Option) (uintx.UintX[W], error) {
	v, accurate, err := uintx.FromString[W](s, opts...)
	if err != nil {
		return v, fmt.Errorf("uintxcalc: %s: %w", name, err)
	}
	if !accurate {
		log.Warningf("%s %q truncated to %s", name, s, v)
	}
	return v, nil
}

func eval[W uintx.Word](c *cli, out io.Writer) error {
	opts := []uintx.Option{uintx.MaxWords(c.MaxWords)}

	lhs, err := operand[W]("lhs", c.LHS, opts)
	if err != nil {
		return err
	}

	if c.Op == "not" {
		return emit(c, out, lhs.Not(), false)
	}
	if c.RHS == "" {
		return fmt.Errorf("uintxcalc: %s needs a right operand", c.Op)
	}

	if c.Op == "lsh" || c.Op == "rsh" {
		n, err := strconv.ParseUint(c.RHS, 0, 32)
		if err != nil {
			return fmt.Errorf("uintxcalc: shift: %w", err)
		}
		if c.Op == "rsh" {
			return emit(c, out, lhs.Rsh(uint(n)), false)
		}
		v, overflow := lhs.LshOverflow(uint(n))
		return emit(c, out, v, overflow)
	}

	rhs, err := operand[W]("rhs", c.RHS, opts)
	if err != nil {
		return err
	}

	var result uintx.UintX[W]
	var overflow bool

	switch c.Op {
	case "add":
		result, overflow = lhs.AddOverflow(rhs)
	case "sub":
		result, overflow = lhs.SubOverflow(rhs)
	case "mul":
		result, overflow = lhs.MulOverflow(rhs)
	case "quo":
		result = lhs.Quo(rhs)
	case "rem":
		result = lhs.Rem(rhs)
	case "and":
		result = lhs.And(rhs)
	case "or":
		result = lhs.Or(rhs)
	case "xor":
		result = lhs.Xor(rhs)
	case "cmp":
		_, err := fmt.Fprintln(out, lhs.Cmp(rhs))
		return err
	default:
		return fmt.Errorf("uintxcalc: unknown op %q", c.Op)
	}

	log.V(1).Infof("%s %s %s", lhs, c.Op, rhs)
	return emit(c, out, result, overflow)
}

func emit[W uintx.Word](c *cli, out io.Writer, v uintx.UintX[W], overflow bool) error {
	log.V(2).Infof("result: %d words of %d bits, max %d", v.WordCount(), c.Word, v.MaxWords())

	line := v.String()
	if overflow {
		line += " (overflow)"
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return err
	}
	if c.Dump {
		spew.Fdump(out, v.Words(uintx.Descending))
	}
	return nil
}
