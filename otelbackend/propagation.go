package otelbackend

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/luxas/deklarative/activity"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/multierr"
)

// Propagator is the default propagator of a Backend. It carries the W3C
// trace context and baggage.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{})
}

// Inject writes the span context and baggage of ctx into carrier.
func (b *Backend) Inject(ctx context.Context, carrier propagation.TextMapCarrier) {
	b.propagator.Inject(ctx, carrier)
}

// Extract returns a copy of ctx carrying the span context and baggage read
// from carrier. Root activities opened in the returned context inherit the
// baggage members as baggage properties.
func (b *Backend) Extract(ctx context.Context, carrier propagation.TextMapCarrier) context.Context {
	return b.propagator.Extract(ctx, carrier)
}

// withBaggage adds the baggage properties of props to the baggage of ctx.
func withBaggage(ctx context.Context, props *activity.PropertyBag) (context.Context, error) {
	bag := baggage.FromContext(ctx)
	changed := false
	var errs error
	props.Each(func(p activity.Property) {
		if !p.Options.Baggage {
			return
		}
		m, err := baggage.NewMember(p.Name, escapeBaggageValue(encodeValue(p.Value)))
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "baggage property %q", p.Name))
			return
		}
		next, err := bag.SetMember(m)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "baggage property %q", p.Name))
			return
		}
		bag, changed = next, true
	})
	if changed {
		ctx = baggage.ContextWithBaggage(ctx, bag)
	}
	return ctx, errs
}

// propertiesFromBaggage lists the baggage members of ctx as baggage
// properties sorted by key, or returns nil if there are none.
func propertiesFromBaggage(ctx context.Context) *activity.PropertyBag {
	members := baggage.FromContext(ctx).Members()
	if len(members) == 0 {
		return nil
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Key() < members[j].Key() })
	b := &activity.PropertyBag{}
	for _, m := range members {
		b.Add(m.Key(), m.Value(), activity.BaggageProperty())
	}
	return b
}

// escapeBaggageValue percent-encodes every byte that is not unreserved.
func escapeBaggageValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
