// Package demo resolves and invokes handles to every kind of symbol of model.Country,
// printing one line per step.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/anoideaopen/methodhandles/core/logger"
	"github.com/anoideaopen/methodhandles/core/reflectx"
	"github.com/anoideaopen/methodhandles/core/telemetry"
	"github.com/anoideaopen/methodhandles/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

// Symbols of model.Country resolved by the steps.
const (
	fieldName       = "Name"
	fieldPopulation = "population"
	methodGetName   = "GetName"
	methodSetName   = "SetName"
	staticDetails   = "Details"
)

var ErrNoCountry = errors.New("country has not been created")

var (
	countryType = reflectx.TypeFor[model.Country]()
	stringType  = reflectx.TypeFor[string]()
	intType     = reflectx.TypeFor[int]()
)

// EscalateFunc obtains private access to a type for a caller lookup.
type EscalateFunc func(t reflect.Type, caller *reflectx.Lookup) (*reflectx.PrivateLookup, error)

// Option configures a Runner.
type Option func(*Runner)

// WithEscalation replaces reflectx.PrivateLookupIn as the escalation step.
func WithEscalation(fn EscalateFunc) Option {
	return func(r *Runner) {
		r.escalate = fn
	}
}

// Runner runs the demonstration steps in order.
type Runner struct {
	out      io.Writer
	escalate EscalateFunc

	runID   string
	log     *logrus.Entry
	country *model.Country
}

// New returns a runner printing to out.
func New(out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		out:      out,
		escalate: reflectx.PrivateLookupIn,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type step struct {
	name   string
	kind   reflectx.Kind
	access reflectx.Access
	run    func() (string, error)
}

// Run executes every step, even after a failure. A failed step prints nothing;
// its error is logged and returned, combined with the others, once all steps ran.
func (r *Runner) Run(ctx context.Context) error {
	r.runID = uuid.NewString()
	r.log = logger.Logger().WithField("run_id", r.runID)
	r.country = nil

	var (
		public = reflectx.Public()
		lookup = reflectx.MethodLookup()
	)

	private, escalateErr := r.escalate(countryType, lookup)
	if escalateErr == nil && private == nil {
		escalateErr = reflectx.ErrNotPrivileged
	}
	if escalateErr != nil {
		r.log.WithError(escalateErr).Error("private access to country is not available")
	}

	steps := []step{
		{"create country", reflectx.KindConstructor, reflectx.AccessPublic, func() (string, error) {
			return r.createCountry(lookup)
		}},
		{"invoke getter method", reflectx.KindVirtual, reflectx.AccessPublic, func() (string, error) {
			return r.invokeGetName(public)
		}},
		{"invoke setter method", reflectx.KindVirtual, reflectx.AccessPublic, func() (string, error) {
			return r.invokeSetName(public)
		}},
		{"read public field", reflectx.KindGetter, reflectx.AccessPublic, func() (string, error) {
			return r.readName(lookup)
		}},
		{"write public field", reflectx.KindSetter, reflectx.AccessPublic, func() (string, error) {
			return r.writeName(lookup)
		}},
		{"read private field", reflectx.KindGetter, reflectx.AccessPrivate, func() (string, error) {
			if escalateErr != nil {
				return "", escalateErr
			}
			return r.readPopulation(private)
		}},
		{"write private field", reflectx.KindSetter, reflectx.AccessPrivate, func() (string, error) {
			if escalateErr != nil {
				return "", escalateErr
			}
			return r.writePopulation(private)
		}},
		{"invoke parametrized constructor", reflectx.KindConstructor, reflectx.AccessPublic, func() (string, error) {
			return r.construct(lookup)
		}},
		{"invoke no-args constructor", reflectx.KindConstructor, reflectx.AccessPublic, func() (string, error) {
			return r.constructEmpty(lookup)
		}},
		{"invoke static method", reflectx.KindStatic, reflectx.AccessPublic, func() (string, error) {
			return r.invokeDetails(public)
		}},
	}

	var err error
	for _, s := range steps {
		err = multierr.Append(err, r.do(ctx, s))
	}

	return err
}

func (r *Runner) do(ctx context.Context, s step) error {
	_, span := telemetry.StartSpan(ctx, s.name, trace.WithAttributes(
		telemetry.RunID(r.runID),
		telemetry.Step(s.name),
		telemetry.HandleKind(s.kind.String()),
		telemetry.HandleAccess(s.access.String()),
	))

	line, err := s.run()
	telemetry.EndSpan(span, err)

	log := r.log.WithField("step", s.name)
	if err != nil {
		log.WithError(err).Error("step failed")
		return fmt.Errorf("%s: %w", s.name, err)
	}

	if _, err = fmt.Fprintln(r.out, line); err != nil {
		return fmt.Errorf("%s: writing output: %w", s.name, err)
	}
	log.Debug("step completed")

	return nil
}

func (r *Runner) createCountry(lookup reflectx.Resolver) (string, error) {
	h, err := lookup.FindConstructor(countryType, stringType, intType)
	if err != nil {
		return "", err
	}

	res, err := h.Invoke("India", 1352600000)
	if err != nil {
		return "", err
	}

	country, ok := res.(*model.Country)
	if !ok {
		return "", fmt.Errorf("%w: constructor returned %T", reflectx.ErrTypeMismatch, res)
	}
	r.country = country

	return fmt.Sprintf("Country Object Created - %s", country), nil
}

func (r *Runner) invokeGetName(public reflectx.Resolver) (string, error) {
	if r.country == nil {
		return "", ErrNoCountry
	}

	h, err := public.FindVirtual(countryType, methodGetName, reflectx.MethodType(stringType))
	if err != nil {
		return "", err
	}

	name, err := h.Invoke(r.country)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoke method %s %v", methodGetName, name), nil
}

func (r *Runner) invokeSetName(public reflectx.Resolver) (string, error) {
	if r.country == nil {
		return "", ErrNoCountry
	}

	h, err := public.FindVirtual(countryType, methodSetName, reflectx.MethodType(nil, stringType))
	if err != nil {
		return "", err
	}

	if _, err = h.Invoke(r.country, "Greece"); err != nil {
		return "", err
	}

	return fmt.Sprintf("Country after update %s", r.country), nil
}

func (r *Runner) readName(lookup reflectx.Resolver) (string, error) {
	if r.country == nil {
		return "", ErrNoCountry
	}

	h, err := lookup.FindGetter(countryType, fieldName, stringType)
	if err != nil {
		return "", err
	}

	name, err := h.Invoke(r.country)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoked getter %s %v", fieldName, name), nil
}

func (r *Runner) writeName(lookup reflectx.Resolver) (string, error) {
	if r.country == nil {
		return "", ErrNoCountry
	}

	h, err := lookup.FindSetter(countryType, fieldName, stringType)
	if err != nil {
		return "", err
	}

	const name = "United Kingdom"
	if _, err = h.Invoke(r.country, name); err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoked setter %s %s", fieldName, name), nil
}

func (r *Runner) readPopulation(private reflectx.Resolver) (string, error) {
	if r.country == nil {
		return "", ErrNoCountry
	}

	h, err := private.FindGetter(countryType, fieldPopulation, intType)
	if err != nil {
		return "", err
	}

	population, err := h.Invoke(r.country)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoke get private Field %s %v", fieldPopulation, population), nil
}

func (r *Runner) writePopulation(private reflectx.Resolver) (string, error) {
	if r.country == nil {
		return "", ErrNoCountry
	}

	h, err := private.FindSetter(countryType, fieldPopulation, intType)
	if err != nil {
		return "", err
	}

	if _, err = h.Invoke(r.country, 1070000000); err != nil {
		return "", err
	}

	return fmt.Sprintf("Country after update %s", r.country), nil
}

func (r *Runner) construct(lookup reflectx.Resolver) (string, error) {
	h, err := lookup.FindConstructor(countryType, stringType, intType)
	if err != nil {
		return "", err
	}

	country, err := h.InvokeWithArguments([]any{"China", 1392700000})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoke Parametrized constructor %s", country), nil
}

func (r *Runner) constructEmpty(lookup reflectx.Resolver) (string, error) {
	h, err := lookup.FindConstructor(countryType)
	if err != nil {
		return "", err
	}

	country, err := h.Invoke()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoke No-args constructor %s", country), nil
}

func (r *Runner) invokeDetails(public reflectx.Resolver) (string, error) {
	h, err := public.FindStatic(countryType, staticDetails, reflectx.MethodType(reflectx.TypeFor[[]string]()))
	if err != nil {
		return "", err
	}

	details, err := h.Invoke()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Invoke static method %s %v", staticDetails, details), nil
}
