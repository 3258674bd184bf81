package hrtools

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2"
)

/*
This is a parser for plain arithmetic expressions with the following grammar:

Expr   := Term ( ("+" | "-") Term )*
Term   := Factor ( ("*" | "/") Factor )*
Factor := <number> | "-" Factor | "(" Expr ")"
*/

var exprParser = participle.MustBuild[Expr]()

var (
	ErrEmptyExpression   = errors.New("empty expression")
	ErrInvalidCharacters = errors.New("expression contains invalid characters")
	ErrUnsafeExpression  = errors.New("expression rejected for safety reasons")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidExpression = errors.New("invalid expression")
)

type Expr struct {
	Left  *Term     `@@`
	Right []*OpTerm `@@*`
}

type OpTerm struct {
	Op   string `@("+" | "-")`
	Term *Term  `@@`
}

type Term struct {
	Left  *Factor     `@@`
	Right []*OpFactor `@@*`
}

type OpFactor struct {
	Op     string  `@("*" | "/")`
	Factor *Factor `@@`
}

type Factor struct {
	Number *float64 `@(Float | Int)`
	Neg    *Factor  `| "-" @@`
	Group  *Expr    `| "(" @@ ")"`
}

func (e *Expr) eval() (float64, error) {
	value, err := e.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range e.Right {
		right, err := op.Term.eval()
		if err != nil {
			return 0, err
		}
		switch op.Op {
		case "+":
			value += right
		case "-":
			value -= right
		}
	}
	return value, nil
}

func (t *Term) eval() (float64, error) {
	value, err := t.Left.eval()
	if err != nil {
		return 0, err
	}
	for _, op := range t.Right {
		right, err := op.Factor.eval()
		if err != nil {
			return 0, err
		}
		switch op.Op {
		case "*":
			value *= right
		case "/":
			if right == 0 {
				return 0, ErrDivisionByZero
			}
			value /= right
		}
	}
	return value, nil
}

func (f *Factor) eval() (float64, error) {
	switch {
	case f.Number != nil:
		return *f.Number, nil
	case f.Neg != nil:
		value, err := f.Neg.eval()
		if err != nil {
			return 0, err
		}
		return -value, nil
	default:
		return f.Group.eval()
	}
}

const allowedExprChars = "0123456789+-*/.() "

// unsafeSubstrings is retained from earlier revisions of the calculator where
// expressions were handed to a general evaluator. The character whitelist
// already excludes letters, but rejecting these inputs keeps the error message
// distinct for callers that log it.
var unsafeSubstrings = []string{"import", "exec", "eval", "__", "open", "file"}

// Evaluate parses and evaluates an arithmetic expression. Only numbers,
// the four basic operators, and parentheses are accepted.
func Evaluate(expression string) (float64, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return 0, ErrEmptyExpression
	}

	for _, c := range expression {
		if !strings.ContainsRune(allowedExprChars, c) {
			return 0, ErrInvalidCharacters
		}
	}

	lower := strings.ToLower(expression)
	for _, pattern := range unsafeSubstrings {
		if strings.Contains(lower, pattern) {
			return 0, ErrUnsafeExpression
		}
	}

	parsed, err := exprParser.ParseString("", expression)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	return parsed.eval()
}

// Calculate evaluates an expression and renders a user-facing result string.
// Errors are reported as messages rather than returned, since the output is
// spliced directly into a chat response.
func Calculate(expression string) string {
	expression = strings.TrimSpace(expression)

	result, err := Evaluate(expression)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyExpression):
			return "Please provide a mathematical expression to calculate. Example: '50000 * 0.3125'"
		case errors.Is(err, ErrInvalidCharacters):
			return "Error: Only basic arithmetic operations (+, -, *, /, .) and numbers are allowed."
		case errors.Is(err, ErrUnsafeExpression):
			return "Error: Invalid expression for security reasons."
		case errors.Is(err, ErrDivisionByZero):
			return "Error: Cannot divide by zero."
		default:
			return "Error: Invalid mathematical expression. Please check your input."
		}
	}

	return fmt.Sprintf("Calculation: %s = %s", expression, FormatNumber(result))
}

// FormatNumber renders a result with thousands separators, dropping the
// decimal part for whole numbers and rounding to 2 places otherwise.
func FormatNumber(value float64) string {
	rounded := math.Round(value*100) / 100
	if rounded == math.Trunc(rounded) {
		return groupDigits(fmt.Sprintf("%.0f", rounded))
	}

	s := fmt.Sprintf("%.2f", rounded)
	dot := strings.Index(s, ".")
	return groupDigits(s[:dot]) + s[dot:]
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
