// Package batch converts many infix expressions concurrently.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/duke-git/lancet/v2/strutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"yqhp/postfix/internal/expression"
)

// DefaultWorkers is used when Options.Workers is not positive.
const DefaultWorkers = 4

// Expression is one input expression and the line it was read from.
type Expression struct {
	Line int
	Text string
}

// Item is the outcome of converting one expression.
type Item struct {
	Line    int    `json:"line" yaml:"line"`
	Infix   string `json:"infix" yaml:"infix"`
	Postfix string `json:"postfix" yaml:"postfix"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the conversion failed.
func (i Item) Failed() bool {
	return i.Error != ""
}

// Summary counts conversion outcomes.
type Summary struct {
	Total     int `json:"total" yaml:"total"`
	Converted int `json:"converted" yaml:"converted"`
	Failed    int `json:"failed" yaml:"failed"`
}

// Report is the full result of a batch run.
type Report struct {
	Results []Item  `json:"results" yaml:"results"`
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summarize counts converted and failed items.
func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		if item.Failed() {
			s.Failed++
		} else {
			s.Converted++
		}
	}
	return s
}

// LineError wraps a conversion error with the line it came from.
type LineError struct {
	Line int
	Err  error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadExpressions reads one expression per line. Blank lines and lines
// starting with # are skipped.
func ReadExpressions(r io.Reader) ([]Expression, error) {
	var exprs []Expression
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strutil.IsBlank(text) {
			continue
		}
		text = strutil.Trim(text)
		if strings.HasPrefix(text, "#") {
			continue
		}
		exprs = append(exprs, Expression{Line: line, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read expressions: %w", err)
	}
	return exprs, nil
}

// FromStrings numbers expressions from 1 in slice order.
func FromStrings(texts []string) []Expression {
	exprs := make([]Expression, len(texts))
	for i, text := range texts {
		exprs[i] = Expression{Line: i + 1, Text: text}
	}
	return exprs
}

// Options configures a Processor.
type Options struct {
	Workers  int
	FailFast bool
}

// Processor converts expressions with bounded parallelism.
type Processor struct {
	workers  int
	failFast bool
	logger   *zap.Logger
}

// NewProcessor creates a Processor. A nil logger disables logging.
func NewProcessor(opts Options, logger *zap.Logger) *Processor {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		workers:  opts.Workers,
		failFast: opts.FailFast,
		logger:   logger,
	}
}

// Process converts every expression and returns the items in input order.
// Conversion failures are recorded on their item unless fail-fast is set, in
// which case the first failure stops the run and is returned as a *LineError.
func (p *Processor) Process(ctx context.Context, exprs []Expression) ([]Item, error) {
	items := make([]Item, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, expr := range exprs {
		if gctx.Err() != nil {
			break
		}
		i, expr := i, expr
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item, err := p.convert(expr)
			items[i] = item
			if err != nil && p.failFast {
				return &LineError{Line: expr.Line, Err: err}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		p.logger.Warn("batch aborted", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := Summarize(items)
	p.logger.Info("batch finished",
		zap.Int("total", summary.Total),
		zap.Int("converted", summary.Converted),
		zap.Int("failed", summary.Failed),
	)
	return items, nil
}

func (p *Processor) convert(expr Expression) (Item, error) {
	item := Item{Line: expr.Line, Infix: expr.Text}

	postfix, err := expression.InfixToPostfix(expr.Text)
	if err != nil {
		item.Error = err.Error()
		p.logger.Debug("conversion failed",
			zap.Int("line", expr.Line),
			zap.String("infix", expr.Text),
			zap.Error(err),
		)
		return item, err
	}

	item.Postfix = postfix
	return item, nil
}
