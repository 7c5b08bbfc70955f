// Package eval walks a finished expression tree and produces a number.
//
// The first child of every group names the operator; the remaining
// children are its operands. Both supported operators (+, *) are binary.
// Evaluation is pure: it never logs, never retries, and carries no state
// between invocations.
package eval

import (
	"fmt"
	"strconv"

	"sx/internal/ast"
	"sx/internal/diag"
	"sx/internal/source"
)

// Options configures evaluation.
type Options struct {
	// Reporter receives the failure as a diagnostic in addition to the
	// returned error. May be nil.
	Reporter diag.Reporter
}

// Evaluate computes the numeric value of the tree.
func Evaluate(node *ast.Node, opts Options) (float64, error) {
	ev := &evaluator{opts: opts}
	return ev.eval(node)
}

type evaluator struct {
	opts Options
}

func (ev *evaluator) eval(node *ast.Node) (float64, error) {
	switch node.Kind {
	case ast.NodeLiteral:
		return ev.evalLiteral(node)
	case ast.NodeGroup:
		return ev.evalGroup(node)
	}
	return 0, ev.fail(diag.UnknownCode, node.Span, "unhandled node kind %d", node.Kind)
}

func (ev *evaluator) evalLiteral(node *ast.Node) (float64, error) {
	value, err := strconv.ParseFloat(node.Text, 64)
	if err != nil {
		return 0, ev.fail(diag.EvalBadNumeral, node.Span,
			"%q is not a valid number", node.Text)
	}
	return value, nil
}

func (ev *evaluator) evalGroup(node *ast.Node) (float64, error) {
	if len(node.Children) == 0 {
		return 0, ev.fail(diag.EvalEmptyGroup, node.Span, "group has no children")
	}

	op := node.Children[0]
	if op.Kind != ast.NodeLiteral {
		return 0, ev.fail(diag.EvalOpNotLiteral, op.Span,
			"operator position holds a group, expected an operator name")
	}

	switch op.Text {
	case "+":
		lhs, rhs, err := ev.binaryOperands(node, op.Text)
		if err != nil {
			return 0, err
		}
		return lhs + rhs, nil
	case "*":
		lhs, rhs, err := ev.binaryOperands(node, op.Text)
		if err != nil {
			return 0, err
		}
		return lhs * rhs, nil
	default:
		return 0, ev.fail(diag.EvalUnknownOp, op.Span, "unknown operator %q", op.Text)
	}
}

// binaryOperands checks arity and evaluates both operands left to right.
// Each operand is fully evaluated (or failed) before the operator
// combines them; the operand values never short-circuit each other.
func (ev *evaluator) binaryOperands(node *ast.Node, opName string) (lhs, rhs float64, err error) {
	if len(node.Children) != 3 {
		return 0, 0, ev.fail(diag.EvalBadArity, node.Span,
			"operator %q takes exactly 2 operands, got %d", opName, len(node.Children)-1)
	}
	lhs, err = ev.eval(node.Children[1])
	if err != nil {
		return 0, 0, err
	}
	rhs, err = ev.eval(node.Children[2])
	if err != nil {
		return 0, 0, err
	}
	return lhs, rhs, nil
}

func (ev *evaluator) fail(code diag.Code, span source.Span, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	diag.ReportError(ev.opts.Reporter, code, span, msg).Emit()
	return &Error{Code: code, Span: span, Msg: msg}
}
