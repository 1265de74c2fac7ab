package quadrature

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidPanels is returned when the composite integrator is given less than one panel.
var ErrInvalidPanels = errors.New("invalid panel count")

// DefaultPanels is the number of equal-width panels used by Integrate.
// The composite scheme is not adaptive: a larger value is the only way to
// increase its accuracy.
const DefaultPanels = 100000

// Integrate approximates int_a^b f(x) dx by splitting [a, b] into DefaultPanels
// equal panels and summing the Gauss-Legendre rule of the given order over each of them.
func Integrate[K constraints.Float](a, b K, f func(x K) (y K), order int) (K, error) {
	return IntegratePanels(a, b, f, order, DefaultPanels)
}

// IntegratePanels is as Integrate but with a custom number of panels.
// The order and panel count are checked before f is evaluated, so that an
// invalid request does no work.
func IntegratePanels[K constraints.Float](a, b K, f func(x K) (y K), order, panels int) (val K, err error) {

	if order < 1 || order > MaxOrder {
		return 0, fmt.Errorf("cannot Integrate: %w: no quadrature for order %d, supported orders are 1 to %d", ErrUnsupportedOrder, order, MaxOrder)
	}

	if panels < 1 {
		return 0, fmt.Errorf("cannot Integrate: %w: %d", ErrInvalidPanels, panels)
	}

	r := &rules[order]

	h := (b - a) / K(panels)

	for i := 0; i < panels; i++ {
		val += apply(r, a+K(i)*h, a+K(i+1)*h, f)
	}

	return
}
