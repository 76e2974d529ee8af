/*
Copyright © 2026 the unitexpr authors.
This file is part of unitexpr.

unitexpr is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

unitexpr is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with unitexpr.  If not, see <http://www.gnu.org/licenses/>.
*/

package unitexpr

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSymbol is returned when a unit symbol is not a bare
	// identifier.
	ErrInvalidSymbol = errors.New("unitexpr: invalid unit symbol")

	// ErrDuplicateSymbol is returned when a unit system is declared with
	// two base units sharing a symbol.
	ErrDuplicateSymbol = errors.New("unitexpr: duplicate base unit symbol")

	// ErrImmutable is returned by the mutating methods of a frozen TermMap.
	ErrImmutable = errors.New("unitexpr: operation not supported for immutable container")

	// ErrDivisionByZero is returned when dividing by a zero-magnitude
	// operand or when raising a zero-magnitude operand to a negative power.
	ErrDivisionByZero = errors.New("unitexpr: division by zero")
)

// InvalidTermError is returned when a term of an expression is not a unit
// of the expected unit system.
type InvalidTermError struct {
	Term   interface{}
	Reason string
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("unitexpr: invalid term '%v' of type %T: %s", e.Term, e.Term, e.Reason)
}

// OperationNotSupportedError is returned when an operator is applied to
// operands that are dimensionally incompatible, that belong to different
// unit systems, or that the operator does not accept at all.
type OperationNotSupportedError struct {
	Left, Right Operand
	Operator    string

	// Detail optionally explains why the operation failed.
	Detail string
}

func (e *OperationNotSupportedError) Error() string {
	msg := fmt.Sprintf("unitexpr: could not evaluate: %s %s %s.",
		operandString(e.Left), e.Operator, operandString(e.Right))
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return msg
}

// Invert returns a copy of e with the operands swapped.
func (e *OperationNotSupportedError) Invert() *OperationNotSupportedError {
	o := *e
	o.Left, o.Right = e.Right, e.Left
	return &o
}

func notSupported(left, right Operand, operator, detail string) error {
	return &OperationNotSupportedError{Left: left, Right: right, Operator: operator, Detail: detail}
}

// operandString renders an operand for error messages. It tolerates nil
// and zero values.
func operandString(o Operand) string {
	switch v := o.(type) {
	case nil:
		return "<nil>"
	case *Unit:
		if v == nil {
			return "<nil>"
		}
		return v.String()
	case Expr:
		if v.sys == nil {
			return "<invalid expression>"
		}
		return v.String()
	case Number:
		return formatFactor(float64(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
