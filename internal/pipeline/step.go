// Package pipeline builds line-processing pipelines for seqtool on top of
// package seq.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"

	"martianoff/galaseq/access"
	"martianoff/galaseq/match"
	"martianoff/galaseq/opt"
)

// Step is one operation of a pipeline with its optional argument.
type Step struct {
	Op  string `mapstructure:"op" yaml:"op"`
	Arg string `mapstructure:"arg" yaml:"arg,omitempty"`
}

func (s Step) String() string {
	if s.Arg == "" {
		return s.Op
	}
	return s.Op + ":" + s.Arg
}

// ParseStep parses "op" or "op:arg". Everything after the first colon is
// the argument, kept verbatim, so arguments may contain colons and spaces.
func ParseStep(spec string) (Step, error) {
	op, arg, _ := strings.Cut(spec, ":")
	op = strings.TrimSpace(op)
	if op == "" {
		return Step{}, fmt.Errorf("empty step in %q", spec)
	}
	return Step{Op: op, Arg: arg}, nil
}

// ParseSteps parses each entry with ParseStep.
func ParseSteps(specs []string) ([]Step, error) {
	steps := make([]Step, 0, len(specs))
	for _, spec := range specs {
		s, err := ParseStep(spec)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}

// Definition is a pipeline read from a file.
type Definition struct {
	Separator      opt.Opt[string]
	ChunkSeparator opt.Opt[string]
	Steps          []Step
}

// LoadFile reads a pipeline definition from a YAML file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Parse reads a pipeline definition of the form
//
//	pipeline:
//	  separator: ","
//	  chunk_separator: " "
//	  steps:
//	    - op: grep
//	      arg: "^a"
//	    - take:3
//
// Steps are either mappings with op and arg keys or "op:arg" strings.
func Parse(data []byte) (*Definition, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if access.Get(doc, "pipeline").IsEmpty() {
		return nil, errors.New("missing pipeline section")
	}

	sep, err := access.GetAs[string](doc, "pipeline", "separator")
	if err != nil {
		return nil, err
	}
	chunkSep, err := access.GetAs[string](doc, "pipeline", "chunk_separator")
	if err != nil {
		return nil, err
	}
	raw, err := access.GetAs[[]any](doc, "pipeline", "steps")
	if err != nil {
		return nil, err
	}

	def := &Definition{Separator: sep, ChunkSeparator: chunkSep}
	for i, item := range raw.GetOr(nil) {
		s, err := decodeStep(item).Get()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		def.Steps = append(def.Steps, s)
	}
	return def, nil
}

var decodeStep = match.New[any, mo.Result[Step]]().
	When(match.Type[any, string]()).Then(func(v any) mo.Result[Step] {
		s, err := ParseStep(v.(string))
		return mo.TupleToResult(s, err)
	}).
	When(match.Type[any, map[string]any]()).Then(func(v any) mo.Result[Step] {
		s, err := access.GetAs[Step](v)
		if err != nil {
			return mo.Err[Step](err)
		}
		if s.MustGet().Op == "" {
			return mo.Err[Step](errors.New("missing op"))
		}
		return mo.Ok(s.MustGet())
	}).
	Otherwise().Then(func(v any) mo.Result[Step] {
		return mo.Err[Step](fmt.Errorf("unsupported step %v of type %T", v, v))
	}).
	MustMatch
