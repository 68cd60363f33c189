package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"martianoff/galaseq/contract"
	"martianoff/galaseq/fn"
	"martianoff/galaseq/match"
	"martianoff/galaseq/opt"
	"martianoff/galaseq/pred"
	"martianoff/galaseq/seq"
)

// stage transforms a sequence of records.
type stage func(seq.Seq[string]) seq.Seq[string]

// argKind describes the argument an op expects.
type argKind int

const (
	noArg argKind = iota
	countArg
	sizeArg
	regexArg
	textArg
)

func (k argKind) String() string {
	switch k {
	case countArg:
		return "N"
	case sizeArg:
		return "N>0"
	case regexArg:
		return "RE"
	case textArg:
		return "S"
	default:
		return ""
	}
}

// Op describes a supported operation.
type Op struct {
	Name string
	Arg  string
	Help string
}

type opDef struct {
	name  string
	arg   argKind
	help  string
	build func(arg string, p *Pipeline) (stage, error)
}

func simple(f stage) func(string, *Pipeline) (stage, error) {
	return func(string, *Pipeline) (stage, error) { return f, nil }
}

func mapLines(f func(string) string) func(string, *Pipeline) (stage, error) {
	return simple(mapStage(f))
}

func withCount(f func(n int) stage) func(string, *Pipeline) (stage, error) {
	return func(arg string, _ *Pipeline) (stage, error) {
		n, err := parseInt(arg, pred.NonNegative[int]())
		if err != nil {
			return nil, err
		}
		return f(n), nil
	}
}

func withRegex(f func(p pred.Predicate[string]) stage) func(string, *Pipeline) (stage, error) {
	return func(arg string, _ *Pipeline) (stage, error) {
		compiled := opt.Try(func() (pred.Predicate[string], error) {
			return pred.MatchesRe(arg), nil
		})
		p, err := compiled.Get()
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		return f(p), nil
	}
}

func parseInt(arg string, checks ...pred.Predicate[int]) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", arg)
	}
	return contract.ValueOf(n, "argument").Ensure(checks...)
}

func joinChunk(p *Pipeline) func([]string) string {
	return func(lines []string) string {
		return strings.Join(lines, p.chunkSep)
	}
}

var ops = []opDef{
	{name: "unique", help: "drop repeated records, keeping the first", build: simple(seq.Unique[string])},
	{name: "sort", help: "sort records ascending", build: simple(seq.Sort[string])},
	{name: "sort-desc", help: "sort records descending", build: simple(seq.SortDesc[string])},
	{name: "reverse", help: "reverse record order", build: simple(seq.Seq[string].Reverse)},
	{name: "take", arg: countArg, help: "keep the first N records", build: withCount(func(n int) stage {
		return func(s seq.Seq[string]) seq.Seq[string] { return s.Take(n) }
	})},
	{name: "drop", arg: countArg, help: "skip the first N records", build: withCount(func(n int) stage {
		return func(s seq.Seq[string]) seq.Seq[string] { return s.Drop(n) }
	})},
	{name: "tail", arg: countArg, help: "keep the last N records", build: withCount(func(n int) stage {
		return func(s seq.Seq[string]) seq.Seq[string] { return s.Tail(n) }
	})},
	{name: "grep", arg: regexArg, help: "keep records matching RE", build: withRegex(func(p pred.Predicate[string]) stage {
		return func(s seq.Seq[string]) seq.Seq[string] { return s.TakeIf(p.Func()) }
	})},
	{name: "grep-v", arg: regexArg, help: "drop records matching RE", build: withRegex(func(p pred.Predicate[string]) stage {
		return func(s seq.Seq[string]) seq.Seq[string] { return s.DropIf(p.Func()) }
	})},
	{name: "prefix", arg: textArg, help: "prepend S to every record", build: func(arg string, _ *Pipeline) (stage, error) {
		return mapStage(func(l string) string { return arg + l }), nil
	}},
	{name: "suffix", arg: textArg, help: "append S to every record", build: func(arg string, _ *Pipeline) (stage, error) {
		return mapStage(func(l string) string { return l + arg }), nil
	}},
	{name: "upper", help: "upper-case records", build: mapLines(strings.ToUpper)},
	{name: "lower", help: "lower-case records", build: mapLines(strings.ToLower)},
	{name: "trim", help: "trim surrounding white space", build: mapLines(strings.TrimSpace)},
	{name: "nonempty", help: "drop empty records", build: simple(func(s seq.Seq[string]) seq.Seq[string] {
		return s.Filter(pred.NotEmpty[string]().Func())
	})},
	{name: "enumerate", help: "number records from 1", build: simple(func(s seq.Seq[string]) seq.Seq[string] {
		return seq.Map(seq.EnumerateFrom(s, 1), fn.Unpack(func(i int, l string) string {
			return strconv.Itoa(i) + "\t" + l
		}))
	})},
	{name: "chunk", arg: sizeArg, help: "join every N records into one", build: func(arg string, p *Pipeline) (stage, error) {
		n, err := parseInt(arg, pred.Positive[int]())
		if err != nil {
			return nil, err
		}
		return func(s seq.Seq[string]) seq.Seq[string] {
			return seq.Map(seq.Chunk(s, n), joinChunk(p))
		}, nil
	}},
	{name: "split-at", arg: textArg, help: "join the records between delimiter records equal to S", build: func(arg string, p *Pipeline) (stage, error) {
		return func(s seq.Seq[string]) seq.Seq[string] {
			return seq.Map(seq.SplitAt(s, pred.Eq(arg).Func()), joinChunk(p))
		}, nil
	}},
}

func mapStage(f func(string) string) stage {
	return func(s seq.Seq[string]) seq.Seq[string] { return seq.Map(s, f) }
}

// Ops lists the supported operations in a stable order.
func Ops() []Op {
	return seq.Map(seq.FromSlice(ops), func(d opDef) Op {
		return Op{Name: d.name, Arg: d.arg.String(), Help: d.help}
	}).ToSlice()
}

// lookupOp finds the definition of a step's op and validates its argument.
var lookupOp = func() func(Step) (mo.Result[opDef], error) {
	m := match.New[Step, mo.Result[opDef]]()
	for _, d := range ops {
		m.WhenIf(func(s Step) bool { return s.Op == d.name }).Then(func(s Step) mo.Result[opDef] {
			if err := checkArg(d, s); err != nil {
				return mo.Err[opDef](err)
			}
			return mo.Ok(d)
		})
	}
	return m.Func()
}()

func checkArg(d opDef, s Step) error {
	if d.arg == noArg {
		return contract.Ensure(s.Arg == "", func() error {
			return fmt.Errorf("%s takes no argument, got %q", d.name, s.Arg)
		})
	}
	return contract.Ensure(s.Arg != "" || d.arg == textArg, func() error {
		return fmt.Errorf("%s requires an argument (%s:%s)", d.name, d.name, d.arg)
	})
}
