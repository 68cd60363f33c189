package pipeline

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"martianoff/galaseq/fnerr"
	"martianoff/galaseq/seq"
)

// Pipeline is a compiled list of steps.
type Pipeline struct {
	steps    []Step
	stages   []stage
	chunkSep string
	logger   *log.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithChunkSeparator sets the string joining the records of chunk and
// split-at groups.
func WithChunkSeparator(sep string) Option {
	return func(p *Pipeline) {
		p.chunkSep = sep
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// New validates and compiles steps. All invalid steps are reported in a
// *fnerr.MultiError.
func New(steps []Step, opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		steps:    steps,
		chunkSep: " ",
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	var errs []error
	for i, s := range steps {
		st, err := p.compile(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("step %d (%s): %w", i+1, s, err))
			continue
		}
		p.stages = append(p.stages, st)
	}
	if len(errs) > 0 {
		return nil, &fnerr.MultiError{Errors: errs}
	}
	return p, nil
}

func (p *Pipeline) compile(s Step) (stage, error) {
	found, err := lookupOp(s)
	if err != nil {
		return nil, fmt.Errorf("unknown op %q: %w", s.Op, err)
	}
	d, err := found.Get()
	if err != nil {
		return nil, err
	}
	return d.build(s.Arg, p)
}

// Steps returns the steps the pipeline was built from.
func (p *Pipeline) Steps() []Step {
	return p.steps
}

// Apply chains the stages onto in. Nothing is read from in until the result
// is consumed.
func (p *Pipeline) Apply(in seq.Seq[string]) seq.Seq[string] {
	out := in
	for i, st := range p.stages {
		p.logger.Debug("stage", "n", i+1, "step", p.steps[i])
		out = st(out)
	}
	return out
}

// Lines returns the lines of r without line terminators as a single-pass
// sequence. The returned function reports the read error, if any, once the
// sequence has been consumed.
func Lines(r io.Reader) (seq.Seq[string], func() error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return seq.FromPull(func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}), sc.Err
}

// Write writes the records of s to w, each followed by sep, and returns the
// number of records written.
func Write(w io.Writer, s seq.Seq[string], sep string) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for rec := range s {
		if _, err := bw.WriteString(rec + sep); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Run reads lines from r, applies p and writes the records to w.
func (p *Pipeline) Run(r io.Reader, w io.Writer, sep string) (int, error) {
	in, readErr := Lines(r)
	n, err := Write(w, p.Apply(in), sep)
	if rerr := readErr(); rerr != nil {
		return n, rerr
	}
	return n, err
}
