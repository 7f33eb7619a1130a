// Package tour contains the guided lessons: short sequences of
// CQL exercises that are executed against a live session, with
// query results rendered as ASCII tables and compared against
// the output the learner should see.
package tour

import (
	"context"
	"fmt"
	"strings"

	"github.com/cqltour/go-cqltour/cqltable"
	"github.com/cqltour/go-cqltour/texttable"
)

// FillIn marks the part of a statement that the learner
// has to complete before the step can run.
const FillIn = "__fill_in__"

// Querier executes CQL statements. It is implemented by
// cqltable.Client and by fakes in tests.
type Querier interface {
	// Exec runs a statement that produces no rows.
	Exec(ctx context.Context, stmt string, args ...any) error
	// Query runs a statement and returns its result set iterator.
	Query(ctx context.Context, stmt string, args ...any) cqltable.Rows
}

var _ Querier = new(cqltable.Client)

// Step is one exercise within a lesson.
type Step struct {
	// Title names what the step demonstrates.
	Title string
	// Stmt is the CQL statement to run. A statement containing
	// the FillIn marker has to be completed by the learner and
	// is reported as pending instead of being executed.
	Stmt string
	// Args are bound to the statement's placeholders.
	Args []any
	// Render marks statements whose result set should be
	// rendered as a table.
	Render bool
	// Expect is the exact rendered table the learner should see.
	// Empty means the output is only printed, not asserted.
	Expect string
}

// Incomplete reports whether the step still contains
// the FillIn marker.
func (s Step) Incomplete() bool {
	return strings.Contains(s.Stmt, FillIn)
}

// Lesson is an ordered sequence of steps on one topic.
type Lesson struct {
	Number  int
	Title   string
	Summary string
	Steps   []Step
}

// Status of one executed step.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusPending:
		return "pending"
	default:
		return "invalid"
	}
}

// Result of one executed step.
type Result struct {
	Step    Step
	Status  Status
	Output  string // rendered table for Render steps
	Message string // explanation for failed and pending steps
}

// Runner executes lessons against a Querier and renders
// result sets with a texttable.Writer.
type Runner struct {
	db     Querier
	writer *texttable.Writer
}

// NewRunner returns a Runner rendering with the default writer.
func NewRunner(db Querier) *Runner {
	return &Runner{db: db, writer: texttable.NewWriter()}
}

// WithWriter returns a Runner using the passed writer for rendering.
func (r *Runner) WithWriter(writer *texttable.Writer) *Runner {
	return &Runner{db: r.db, writer: writer}
}

// RunLesson executes every step of the lesson in order and
// returns one Result per step. Execution continues past failed
// steps so the learner sees all outcomes at once; it stops only
// when ctx is canceled.
func (r *Runner) RunLesson(ctx context.Context, lesson Lesson) ([]Result, error) {
	results := make([]Result, 0, len(lesson.Steps))
	for _, step := range lesson.Steps {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		results = append(results, r.runStep(ctx, step))
	}
	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) Result {
	if step.Incomplete() {
		return Result{
			Step:    step,
			Status:  StatusPending,
			Message: fmt.Sprintf("replace %s in the statement and run again", FillIn),
		}
	}

	if !step.Render {
		if err := r.db.Exec(ctx, step.Stmt, step.Args...); err != nil {
			return Result{Step: step, Status: StatusFailed, Message: err.Error()}
		}
		return Result{Step: step, Status: StatusPassed}
	}

	view, err := cqltable.ScanRowsAsView(ctx, r.db.Query(ctx, step.Stmt, step.Args...))
	if err != nil {
		return Result{Step: step, Status: StatusFailed, Message: err.Error()}
	}
	table, err := r.writer.RenderView(ctx, view)
	if err != nil {
		return Result{Step: step, Status: StatusFailed, Message: err.Error()}
	}
	if step.Expect != "" && table != step.Expect {
		return Result{
			Step:    step,
			Status:  StatusFailed,
			Output:  table,
			Message: fmt.Sprintf("rendered table does not match the expected output:\n%s\nexpected:\n%s", table, step.Expect),
		}
	}
	return Result{Step: step, Status: StatusPassed, Output: table}
}
