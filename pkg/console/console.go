package console

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/pterm/pterm"
)

// Largura máxima, em caracteres, de uma barra de participação
const barWidth = 40

// Console writes the dashboard output through pterm printers bound to a
// single writer.
type Console struct {
	out     io.Writer
	info    *pterm.PrefixPrinter
	warning *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
	success *pterm.PrefixPrinter
}

// NewConsole returns a Console that writes to standard output.
func NewConsole() *Console {
	return NewConsoleWithWriter(os.Stdout)
}

// NewConsoleWithWriter returns a Console that writes to w.
func NewConsoleWithWriter(w io.Writer) *Console {
	return &Console{
		out:     w,
		info:    pterm.Info.WithWriter(w),
		warning: pterm.Warning.WithWriter(w),
		failure: pterm.Error.WithWriter(w),
		success: pterm.Success.WithWriter(w),
	}
}

func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) LogInfo(format string, a ...interface{}) {
	c.info.Printfln(format, a...)
}

func (c *Console) LogWarning(format string, a ...interface{}) {
	c.warning.Printfln(format, a...)
}

func (c *Console) LogError(format string, a ...interface{}) {
	c.failure.Printfln(format, a...)
}

func (c *Console) LogSuccess(format string, a ...interface{}) {
	c.success.Printfln(format, a...)
}

// spinnerStatus acompanha uma operação longa; a última mensagem fica
// registrada mesmo quando o spinner não pôde ser iniciado.
type spinnerStatus struct {
	spinner *pterm.SpinnerPrinter
	message string
}

// Status starts a spinner showing message until Stop is called.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, err := pterm.DefaultSpinner.
		WithWriter(c.out).
		WithRemoveWhenDone(true).
		Start(message)
	if err != nil {
		spinner = nil
	}
	return &spinnerStatus{spinner: spinner, message: message}
}

func (s *spinnerStatus) Update(message string) {
	s.message = message
	if s.spinner != nil {
		s.spinner.UpdateText(message)
	}
}

func (s *spinnerStatus) Stop() {
	if s.spinner != nil {
		_ = s.spinner.Stop()
	}
}

// tableProgress mostra no título o nome da próxima tabela a carregar.
type tableProgress struct {
	bar   *pterm.ProgressbarPrinter
	items []string
	done  int
}

// Progress starts a progress bar over the named appendix tables.
func (c *Console) Progress(items []string) types.ProgressHandle {
	p := &tableProgress{items: items}
	bar, err := pterm.DefaultProgressbar.
		WithWriter(c.out).
		WithTotal(len(items)).
		WithTitle(p.title()).
		WithShowCount(true).
		WithRemoveWhenDone(true).
		Start()
	if err == nil {
		p.bar = bar
	}
	return p
}

func (p *tableProgress) title() string {
	if p.done < len(p.items) {
		return "Loading " + p.items[p.done]
	}
	return "Tables loaded"
}

func (p *tableProgress) Increment() {
	p.done++
	if p.bar != nil {
		p.bar.UpdateTitle(p.title())
		p.bar.Increment()
	}
}

func (p *tableProgress) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
	}
}

// Table collects a header and rows for a boxed pterm table.
type Table struct {
	data pterm.TableData
}

// CreateTable returns an empty table.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{data: pterm.TableData{{}}}
}

// AddColumn appends a header cell. Options are accepted for interface
// compatibility and ignored.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.data[0] = append(t.data[0], name)
}

func (t *Table) AddRow(cells ...interface{}) {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	t.data = append(t.data, row)
}

// Render returns the boxed table, or an empty string when it has no columns.
func (t *Table) Render() string {
	if len(t.data[0]) == 0 {
		return ""
	}
	rendered, err := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(t.data).
		Srender()
	if err != nil {
		return ""
	}
	return rendered
}

// DisplayShareBars prints one bar per share, scaled to the largest absolute
// value, with each share's percentage of the total.
func (c *Console) DisplayShareBars(title string, shares []types.ShareBar) {
	data, ok := shareTable(shares)
	if !ok {
		c.warning.Printfln("%s: all amounts are Rp 0", title)
		return
	}
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		c.failure.Printfln("%s: %v", title, err)
		return
	}
	panel := pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(rendered)
	fmt.Fprintln(c.out, "\n"+panel)
}

// shareTable monta as linhas das barras; ok é falso quando não há valor
// diferente de zero para servir de escala.
func shareTable(shares []types.ShareBar) (data pterm.TableData, ok bool) {
	var peak, total float64
	for _, s := range shares {
		peak = math.Max(peak, math.Abs(s.Value))
		total += s.Value
	}
	if peak == 0 {
		return nil, false
	}

	data = pterm.TableData{{"Item", "Amount", "", "Share"}}
	for _, s := range shares {
		bar := strings.Repeat("█", int(math.Abs(s.Value)/peak*barWidth))
		style := pterm.FgBlue
		if s.Value < 0 {
			style = pterm.FgRed
		}
		share := pterm.FgYellow.Sprint("N/A")
		if total != 0 {
			share = fmt.Sprintf("%.1f%%", s.Value/total*100)
		}
		data = append(data, []string{s.Label, s.Display, style.Sprint(bar), share})
	}
	return data, true
}
