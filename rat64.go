// Package rat64 provides exact rational numbers with 64-bit components.
// See the N type and New function for details.
package rat64

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrInvalidRational is returned or panicked by functions in this package
// when a construction attempt would produce a zero denominator. Dividing by
// a zero-valued rational fails the same way, since the derived denominator
// of the quotient is zero.
var ErrInvalidRational = errors.New("invalid rational: zero denominator")

// N is a rational number with 64-bit numerator and denominator.
//
// One bit of the numerator is used for the sign and the denominator is kept
// positive, so only 63 bits of precision are actually available in each.
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Every value is canonical: the fraction is in lowest terms, the denominator
// is positive, and any negative sign lives in the numerator. Construction
// enforces this, so two values represent the same rational number exactly
// when they are structurally identical.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type N
//   - returned by the Try, New, and FromInt functions
//   - returned by arithmetic on any valid values
//   - copied from a valid value
//
// N has proper value semantics and its values can be freely copied.
// Two valid values of N can be compared using the == and != operators.
//
// Arithmetic is carried out entirely in int64: the operators do not widen
// their intermediate products and sums, so operands with large components
// can wrap around silently. Cmp is the exception: it forms its scaled
// magnitudes with 128-bit precision and stays correct on operands whose sum
// or difference would wrap. Callers that need overflow detection should
// bound their inputs; this package does not detect the wraparound.
type N struct {
	m int64
	n int64
}

// Try creates a new rational number with the given numerator and
// denominator, reduced to lowest terms. Try returns an error if the
// denominator is zero. A negative denominator is legal: the sign moves to
// the numerator, so Try(1, -2) and Try(-1, 2) produce the same value.
// Neither num nor den may be math.MinInt64.
func Try(num, den int64) (N, error) {
	if den == 0 {
		return N{}, ErrInvalidRational
	}
	if den < 0 {
		num, den = -num, -den
	}
	return N{num, den - 1}.reduce(), nil
}

// New is like Try but panics if the denominator is zero.
func New(num, den int64) N {
	n, err := Try(num, den)
	if err != nil {
		panic(err)
	}
	return n
}

// FromInt returns the rational number v/1.
func FromInt(v int64) N {
	return N{v, 0}
}

// Num returns the numerator of x.
func (x N) Num() int64 {
	return x.m
}

// Den returns the denominator of x. It is always positive.
func (x N) Den() int64 {
	return x.n + 1
}

// IsValid returns true if x is a valid rational number.
// Invalid numbers do not arise under normal circumstances, but may occur if
// a value is constructed or manipulated using unsafe operations.
func (x N) IsValid() bool {
	return x.n >= 0 && x.n != math.MaxInt64 && x.reduce() == x
}

// IsZero returns true if x is equal to 0.
func (x N) IsZero() bool {
	return x.m == 0
}

// Sign returns the sign of x: -1 if x < 0, 0 if x == 0, and 1 if x > 0.
func (x N) Sign() int {
	if x.m == 0 {
		return 0
	}
	if x.m < 0 {
		return -1
	}
	return 1
}

// Neg returns the negation of x, -x.
func (x N) Neg() N {
	return N{-x.m, x.n}
}

// Abs returns the absolute value of x, |x|.
func (x N) Abs() N {
	return N{abs64(x.m), x.n}
}

// Inv returns the inverse of x, 1/x.
// Inv panics with ErrInvalidRational if x is zero.
func (x N) Inv() N {
	if x.m == 0 {
		panic(ErrInvalidRational)
	}
	sgn := int64(x.Sign())
	return New(sgn*x.Den(), abs64(x.Num()))
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y.
// It is the single source of truth for the total order on N; the relational
// methods are all derived from its sign.
//
// Unlike the arithmetic methods, Cmp computes its scaled magnitudes with
// 128-bit precision, so it ranks correctly even operands whose sum or
// difference would wrap in int64.
func (x N) Cmp(y N) int {
	if x == y {
		return 0
	}
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		if sx < sy {
			return -1
		}
		return 1
	}
	// Same nonzero sign. Bring both onto the least common denominator of the
	// two values and compare the scaled magnitudes, multiplied with 128-bit
	// precision. h is for "high bits" and l is for "low bits".
	l := LCM(x.Den(), y.Den())
	xh, xl := bits.Mul64(uint64(l/x.Den()), uint64(abs64(x.Num())))
	yh, yl := bits.Mul64(uint64(l/y.Den()), uint64(abs64(y.Num())))
	// Equal magnitudes cannot occur here: canonical values with the same
	// scaled numerator over l are structurally equal, which was ruled out
	// above.
	c := 1
	if xh < yh || (xh == yh && xl < yl) {
		c = -1
	}
	if sx < 0 {
		c = -c
	}
	return c
}

// Less reports whether x < y.
func (x N) Less(y N) bool {
	return x.Cmp(y) < 0
}

// LessOrEqual reports whether x <= y.
func (x N) LessOrEqual(y N) bool {
	return x.Cmp(y) <= 0
}

// Greater reports whether x > y.
func (x N) Greater(y N) bool {
	return x.Cmp(y) > 0
}

// GreaterOrEqual reports whether x >= y.
func (x N) GreaterOrEqual(y N) bool {
	return x.Cmp(y) >= 0
}

// Eq reports whether x and y represent the same rational number.
// It is equivalent to x.Cmp(y) == 0 and, on valid values, to x == y.
func (x N) Eq(y N) bool {
	return x.Cmp(y) == 0
}

// Equals reports whether v is an N equal to x. A value of any other dynamic
// type, including the integer types, is never equal; Equals does not panic
// on mismatched input.
func (x N) Equals(v any) bool {
	y, ok := v.(N)
	return ok && x.Cmp(y) == 0
}

// Add adds x and y and returns the result in lowest terms.
func (x N) Add(y N) N {
	l := LCM(x.Den(), y.Den())
	a := l / x.Den() * x.Num()
	b := l / y.Den() * y.Num()
	return New(a+b, l)
}

// Sub subtracts y from x and returns the result.
// The following are equivalent in outcome and behavior:
//
//	x.Sub(y) == x.Add(y.Neg())
func (x N) Sub(y N) N {
	return x.Add(y.Neg())
}

// Mul multiplies x and y and returns the result in lowest terms.
func (x N) Mul(y N) N {
	return New(x.Num()*y.Num(), x.Den()*y.Den())
}

// TryDiv divides x by y and returns the result in lowest terms.
// TryDiv returns 0 and ErrInvalidRational if y is zero: the denominator of
// the quotient is the numerator of y, so a zero divisor fails construction
// rather than being special-cased.
func (x N) TryDiv(y N) (N, error) {
	return Try(x.Num()*y.Den(), x.Den()*y.Num())
}

// Div divides x by y and returns the result.
// Div panics with ErrInvalidRational if y is zero.
func (x N) Div(y N) N {
	z, err := x.TryDiv(y)
	if err != nil {
		panic(err)
	}
	return z
}

// AddInt returns x + i.
func (x N) AddInt(i int64) N {
	return x.Add(FromInt(i))
}

// SubInt returns x - i.
func (x N) SubInt(i int64) N {
	return x.Sub(FromInt(i))
}

// MulInt returns x * i.
func (x N) MulInt(i int64) N {
	return x.Mul(FromInt(i))
}

// TryDivInt returns x / i, or ErrInvalidRational if i is zero.
func (x N) TryDivInt(i int64) (N, error) {
	return x.TryDiv(FromInt(i))
}

// DivInt returns x / i.
// DivInt panics with ErrInvalidRational if i is zero.
func (x N) DivInt(i int64) N {
	return x.Div(FromInt(i))
}

// AddInt returns i + x. Addition is commutative, so this delegates to
// x.AddInt(i) rather than duplicating it.
func AddInt(i int64, x N) N {
	return x.AddInt(i)
}

// MulInt returns i * x. Multiplication is commutative, so this delegates to
// x.MulInt(i). There are no such forms for subtraction or division, which
// do not commute.
func MulInt(i int64, x N) N {
	return x.MulInt(i)
}

// String returns a string representation of x, as m/n. The denominator is
// always positive, so a negative value renders as -3/4, never 3/-4.
func (x N) String() string {
	return fmt.Sprintf("%d/%d", x.Num(), x.Den())
}

// reduce returns x in lowest terms.
func (x N) reduce() N {
	if x.m == 0 {
		return N{}
	}
	sgn := int64(x.Sign())
	m, n := abs64(x.Num()), x.Den()
	d := GCD(m, n)
	return N{sgn * (m / d), (n / d) - 1}
}

// abs64 returns the absolute value of x.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
