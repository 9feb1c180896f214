package main

import (
	"charm.land/lipgloss/v2"

	"github.com/funvibe/syntactic/internal/samples"
	"github.com/funvibe/syntactic/pkg/interp"
	"github.com/funvibe/syntactic/pkg/syntax"
)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	symStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	typeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

type printer struct {
	color bool
}

func newPrinter() printer {
	return printer{color: settings.Render.UseColor(terminal)}
}

func (p printer) paint(style lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return style.Render(s)
}

func (p printer) name(s string) string  { return p.paint(nameStyle, s) }
func (p printer) typ(s string) string   { return p.paint(typeStyle, s) }
func (p printer) value(s string) string { return p.paint(valueStyle, s) }
func (p printer) fail(s string) string  { return p.paint(failStyle, s) }

func (p printer) tree(n syntax.Node[samples.Lang], unicode, types bool) string {
	opts := interp.DrawOptions{Unicode: unicode, Types: types}
	if p.color {
		opts.Style = func(s string) string { return symStyle.Render(s) }
	}
	return interp.DrawTree(n, opts)
}
