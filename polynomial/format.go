package polynomial

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrParse is returned when a string is not a polynomial in the format of String.
var ErrParse = errors.New("invalid polynomial expression")

// MaxParseDegree is the largest power of x accepted by Parse.
const MaxParseDegree = 1 << 16

// String renders the polynomial in increasing powers of x, for example
// "1 + 2*x - 0.5*x^3". Zero coefficients are skipped and the zero polynomial
// renders as "0".
func (p Polynomial[K]) String() string {

	var sb strings.Builder

	for i, c := range p.Coeffs {

		if c == 0 {
			continue
		}

		switch {
		case sb.Len() == 0:
			sb.WriteString(formatCoefficient(c))
		case c < 0:
			sb.WriteString(" - ")
			sb.WriteString(formatCoefficient(-c))
		default:
			sb.WriteString(" + ")
			sb.WriteString(formatCoefficient(c))
		}

		switch i {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

// formatCoefficient prints c without the explicit sign %v gives to +Inf.
func formatCoefficient[K constraints.Float](c K) string {
	return strings.TrimPrefix(fmt.Sprintf("%v", c), "+")
}

// Parse reads a polynomial written as a sum of terms "c", "c*x", "c*x^n", "x" or "x^n",
// with n at most MaxParseDegree.
// Terms with the same power are summed, so Parse accepts any order and repetitions;
// it reads back the output of String.
func Parse[K constraints.Float](s string) (p Polynomial[K], err error) {

	s = strings.Join(strings.Fields(s), "")

	if s == "" {
		return p, fmt.Errorf("cannot Parse: %w: empty expression", ErrParse)
	}

	// Splits on the signs that start a term: a sign following an exponent
	// marker belongs to the current number.
	var terms []string
	start := 0
	for i := 1; i < len(s); i++ {
		if (s[i] == '+' || s[i] == '-') && !strings.ContainsRune("eE^*+-", rune(s[i-1])) {
			terms = append(terms, s[start:i])
			start = i
		}
	}
	terms = append(terms, s[start:])

	p = NewZero[K](0)

	for _, term := range terms {

		var c K
		var n int
		if c, n, err = parseTerm[K](term); err != nil {
			return Polynomial[K]{}, fmt.Errorf("cannot Parse: %w", err)
		}

		p.grow(n + 1)
		p.Coeffs[n] += c
	}

	return
}

func parseTerm[K constraints.Float](term string) (c K, n int, err error) {

	idx := strings.IndexByte(term, 'x')

	if idx < 0 {
		var v float64
		if v, err = strconv.ParseFloat(strings.TrimPrefix(term, "+"), 64); err != nil {
			return 0, 0, fmt.Errorf("%w: term %q", ErrParse, term)
		}
		return K(v), 0, nil
	}

	coeff := strings.TrimSuffix(term[:idx], "*")

	switch coeff {
	case "", "+":
		c = 1
	case "-":
		c = -1
	default:
		var v float64
		if v, err = strconv.ParseFloat(strings.TrimPrefix(coeff, "+"), 64); err != nil {
			return 0, 0, fmt.Errorf("%w: coefficient of term %q", ErrParse, term)
		}
		c = K(v)
	}

	switch power := term[idx+1:]; {
	case power == "":
		n = 1
	case strings.HasPrefix(power, "^"):
		if n, err = strconv.Atoi(power[1:]); err != nil || n < 0 || n > MaxParseDegree {
			return 0, 0, fmt.Errorf("%w: power of term %q", ErrParse, term)
		}
	default:
		return 0, 0, fmt.Errorf("%w: term %q", ErrParse, term)
	}

	return
}
