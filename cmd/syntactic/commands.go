package main

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/midbel/cli"
	"golang.org/x/sync/errgroup"

	"github.com/funvibe/syntactic/internal/config"
	"github.com/funvibe/syntactic/internal/samples"
	"github.com/funvibe/syntactic/pkg/interp"
)

var listCmd = cli.Command{
	Name:    config.ListCmdName,
	Alias:   []string{"ls"},
	Summary: "list the sample programs",
	Usage:   "list",
	Handler: &ListCommand{},
}

var showCmd = cli.Command{
	Name:    config.ShowCmdName,
	Alias:   []string{"print"},
	Summary: "render sample programs",
	Usage:   "show [-s inline|tree] [<sample>...]",
	Handler: &ShowCommand{},
}

var drawCmd = cli.Command{
	Name:    config.DrawCmdName,
	Alias:   []string{"tree"},
	Summary: "draw sample programs as trees",
	Usage:   "draw [-a] [-t] <sample>...",
	Handler: &DrawCommand{},
}

var evalCmd = cli.Command{
	Name:    config.EvalCmdName,
	Alias:   []string{"run"},
	Summary: "evaluate sample programs",
	Usage:   "eval [<sample>...]",
	Handler: &EvalCommand{},
}

var checkCmd = cli.Command{
	Name:    config.CheckCmdName,
	Summary: "check that every sample can be shown, evaluated and compared",
	Usage:   "check [-j jobs]",
	Handler: &CheckCommand{},
}

type ListCommand struct{}

func (c ListCommand) Run(args []string) error {
	set := cli.NewFlagSet("list")
	if err := set.Parse(args); err != nil {
		return err
	}
	p := newPrinter()
	width := 0
	for _, name := range samples.Names() {
		width = max(width, len(name))
	}
	for _, s := range samples.All() {
		pad := strings.Repeat(" ", width-len(s.Name))
		fmt.Fprintf(stdout, "%s%s  %s  %s\n", p.name(s.Name), pad, p.typ(s.Program.Node().Sig().String()), s.Summary)
	}
	return nil
}

type ShowCommand struct {
	Style string
}

func (c ShowCommand) Run(args []string) error {
	set := cli.NewFlagSet("show")
	set.StringVar(&c.Style, "s", settings.Render.Style, "render style (inline or tree)")
	if err := set.Parse(args); err != nil {
		return err
	}
	if c.Style != config.StyleInline && c.Style != config.StyleTree {
		return fmt.Errorf("%s: unknown style", c.Style)
	}
	names := set.Args()
	if len(names) == 0 {
		names = settings.Samples
	}
	list, err := lookup(names)
	if err != nil {
		return err
	}
	p := newPrinter()
	for _, s := range list {
		if c.Style == config.StyleTree {
			fmt.Fprintln(stdout, p.name(s.Name))
			fmt.Fprintln(stdout, p.tree(s.Program.Node(), settings.Render.UseUnicode(), settings.Render.Types))
			continue
		}
		fmt.Fprintf(stdout, "%s = %s\n", p.name(s.Name), interp.RenderSome(s.Program))
	}
	return nil
}

type DrawCommand struct {
	ASCII bool
	Types bool
}

func (c DrawCommand) Run(args []string) error {
	set := cli.NewFlagSet("draw")
	set.BoolVar(&c.ASCII, "a", !settings.Render.UseUnicode(), "draw with ASCII characters")
	set.BoolVar(&c.Types, "t", settings.Render.Types, "show the signature of every subtree")
	if err := set.Parse(args); err != nil {
		return err
	}
	if set.NArg() == 0 {
		return fmt.Errorf("no sample given")
	}
	list, err := lookup(set.Args())
	if err != nil {
		return err
	}
	p := newPrinter()
	for i, s := range list {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintln(stdout, p.tree(s.Program.Node(), !c.ASCII, c.Types))
	}
	return nil
}

type EvalCommand struct{}

func (c EvalCommand) Run(args []string) error {
	set := cli.NewFlagSet("eval")
	if err := set.Parse(args); err != nil {
		return err
	}
	list, err := lookup(set.Args())
	if err != nil {
		return err
	}
	p := newPrinter()
	for _, s := range list {
		v, err := interp.EvalSome(s.Program)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		fmt.Fprintf(stdout, "%s = %s\n", p.name(s.Name), p.value(fmt.Sprint(v)))
	}
	return nil
}

type CheckCommand struct {
	Jobs int
}

type checkResult struct {
	name     string
	evidence string
	err      error
}

func (c CheckCommand) Run(args []string) error {
	set := cli.NewFlagSet("check")
	set.IntVar(&c.Jobs, "j", runtime.NumCPU(), "number of samples checked in parallel")
	if err := set.Parse(args); err != nil {
		return err
	}
	all := samples.All()
	results := make([]checkResult, len(all))

	var g errgroup.Group
	g.SetLimit(max(c.Jobs, 1))
	for i, s := range all {
		g.Go(func() error {
			debugf("checking %s", s.Name)
			results[i] = check(s)
			return nil
		})
	}
	g.Wait()

	p := newPrinter()
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(stdout, "%s %s: %v\n", p.fail("FAIL"), r.name, r.err)
			continue
		}
		fmt.Fprintf(stdout, "%s %s %s\n", p.value("ok"), p.name(r.name), p.typ(r.evidence))
	}
	if failed > 0 {
		fmt.Fprintf(stdout, "%d of %d samples failed\n", failed, len(results))
		return errFail
	}
	return nil
}

// check proves Show for the sample, evaluates it and verifies that the
// value has the result type and that the program equals itself.
func check(s samples.Sample) checkResult {
	res := checkResult{name: s.Name}
	ev, err := s.Evidence()
	if err != nil {
		res.err = err
		return res
	}
	res.evidence = ev.String()

	v, err := interp.EvalSome(s.Program)
	if err != nil {
		res.err = err
		return res
	}
	if t := reflect.TypeOf(v); t != s.Program.ResultType() {
		res.err = fmt.Errorf("value %v has type %v, want %v", v, t, s.Program.ResultType())
		return res
	}
	if !interp.EqualSome(s.Program, s.Program) {
		res.err = fmt.Errorf("program is not equal to itself")
	}
	return res
}

func lookup(names []string) ([]samples.Sample, error) {
	if len(names) == 0 {
		return samples.All(), nil
	}
	var list []samples.Sample
	for _, name := range names {
		s, ok := samples.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown sample (known: %s)", name, strings.Join(samples.Names(), ", "))
		}
		list = append(list, s)
	}
	return list, nil
}
