// Package application exposes the Bitbucket client as a uniform, validated,
// named-method surface: a fixed operation catalog plus the dispatcher that
// routes incoming requests through it.
package application

import (
	"context"
	"sort"

	logger "github.com/sirupsen/logrus"
)

// Dispatcher routes a named request with an untyped parameter payload to
// the matching catalog entry. The catalog is immutable after construction,
// so a single dispatcher is safe for concurrent use; each dispatch is an
// independent unit of work with no ordering relation to any other.
type Dispatcher struct {
	catalog Catalog
}

// NewDispatcher creates a dispatcher over the given catalog.
func NewDispatcher(catalog Catalog) *Dispatcher {
	return &Dispatcher{catalog: catalog}
}

// Dispatch looks up the method, validates the payload against its schema,
// and invokes the bound client call. A nil params payload is treated as an
// empty one. Failures are never retried or swallowed: unknown names yield
// *UnknownMethodError, schema violations yield *InvalidParamsError, and
// client errors propagate unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, method string, params map[string]any) (any, error) {
	descriptor, found := d.catalog[method]
	if !found {
		return nil, &UnknownMethodError{Method: method}
	}

	if params == nil {
		params = map[string]any{}
	}

	if violations := descriptor.Schema.Validate(params); len(violations) > 0 {
		logger.Debugf("rejecting %q: %d parameter violation(s)", method, len(violations))
		return nil, &InvalidParamsError{Method: method, Violations: violations}
	}

	logger.Debugf("invoking %q", method)
	return descriptor.Invoke(ctx, params)
}

// Methods returns the sorted capability set: every method name the catalog
// can dispatch.
func (d *Dispatcher) Methods() []string {
	names := make([]string, 0, len(d.catalog))
	for name := range d.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the descriptor registered under the given method name.
func (d *Dispatcher) Describe(method string) (Descriptor, bool) {
	descriptor, found := d.catalog[method]
	return descriptor, found
}
