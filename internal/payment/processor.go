// Package payment routes a payment method name to the adapter of the
// matching external gateway.
package payment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Processor charges an amount in major currency units through one gateway.
type Processor interface {
	Name() string
	Process(ctx context.Context, amount decimal.Decimal) error
}

// UnknownProcessorError is returned when no processor is registered under Name.
type UnknownProcessorError struct {
	Name      string
	Available []string
}

func (e *UnknownProcessorError) Error() string {
	return fmt.Sprintf(`Payment processor "%s" not found. Available: %s`, e.Name, strings.Join(e.Available, ", "))
}

// PaymentFailedError is returned when a gateway declines or faults.
type PaymentFailedError struct {
	Processor string
	Reason    string
	Err       error
}

func (e *PaymentFailedError) Error() string {
	return "Payment failed: " + e.Reason
}

func (e *PaymentFailedError) Unwrap() error {
	return e.Err
}

// Dispatcher is a fixed registry of processors keyed by their self-reported name.
type Dispatcher struct {
	processors map[string]Processor
	names      []string
}

// NewDispatcher registers processors in order. A later processor with the
// same name replaces an earlier one.
func NewDispatcher(processors ...Processor) *Dispatcher {
	d := &Dispatcher{processors: make(map[string]Processor, len(processors))}
	for _, p := range processors {
		if p == nil {
			continue
		}
		d.processors[p.Name()] = p
	}

	d.names = make([]string, 0, len(d.processors))
	for name := range d.processors {
		d.names = append(d.names, name)
	}
	sort.Strings(d.names)
	return d
}

// Get returns the processor registered under name.
func (d *Dispatcher) Get(name string) (Processor, error) {
	p, ok := d.processors[name]
	if !ok {
		return nil, &UnknownProcessorError{Name: name, Available: d.Names()}
	}
	return p, nil
}

// Names lists the registered processor names in sorted order.
func (d *Dispatcher) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}
