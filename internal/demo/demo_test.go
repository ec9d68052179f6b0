package demo

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/anoideaopen/methodhandles/core/reflectx"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var expectedLines = []string{
	"Country Object Created - Country [name=India, population=1352600000]",
	"Invoke method GetName India",
	"Country after update Country [name=Greece, population=1352600000]",
	"Invoked getter Name Greece",
	"Invoked setter Name United Kingdom",
	"Invoke get private Field population 1352600000",
	"Country after update Country [name=United Kingdom, population=1070000000]",
	"Invoke Parametrized constructor Country [name=China, population=1392700000]",
	"Invoke No-args constructor Country [name=, population=0]",
	"Invoke static method Details [package : github.com/anoideaopen/methodhandles/model class : COUNTRY]",
}

func lines(out *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestRun(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, New(&out).Run(context.Background()))
	require.Equal(t, expectedLines, lines(&out))
}

func TestRunIsRepeatable(t *testing.T) {
	var out bytes.Buffer
	r := New(&out)

	require.NoError(t, r.Run(context.Background()))
	first := r.runID
	out.Reset()

	require.NoError(t, r.Run(context.Background()))
	require.Equal(t, expectedLines, lines(&out))
	require.NotEqual(t, first, r.runID)
}

func TestRunWithoutEscalation(t *testing.T) {
	var out bytes.Buffer

	denied := func(reflect.Type, *reflectx.Lookup) (*reflectx.PrivateLookup, error) {
		return nil, reflectx.ErrNotPrivileged
	}

	err := New(&out, WithEscalation(denied)).Run(context.Background())
	require.ErrorIs(t, err, reflectx.ErrNotPrivileged)
	require.Len(t, multierr.Errors(err), 2)

	want := make([]string, 0, len(expectedLines))
	want = append(want, expectedLines[:5]...)
	want = append(want, expectedLines[7:]...)
	require.Equal(t, want, lines(&out))
}

func TestRunWithNilEscalation(t *testing.T) {
	var out bytes.Buffer

	none := func(reflect.Type, *reflectx.Lookup) (*reflectx.PrivateLookup, error) {
		return nil, nil
	}

	err := New(&out, WithEscalation(none)).Run(context.Background())
	require.ErrorIs(t, err, reflectx.ErrNotPrivileged)
	require.Len(t, multierr.Errors(err), 2)
}

func TestStepsWithoutCountry(t *testing.T) {
	r := New(&bytes.Buffer{})

	_, err := r.invokeGetName(reflectx.Public())
	require.ErrorIs(t, err, ErrNoCountry)

	_, err = r.writeName(reflectx.Public())
	require.ErrorIs(t, err, ErrNoCountry)
}

func TestPopulationNeedsEscalation(t *testing.T) {
	lookup := reflectx.MethodLookup()

	_, err := lookup.FindGetter(countryType, fieldPopulation, intType)
	require.ErrorIs(t, err, reflectx.ErrAccess)

	_, err = lookup.FindSetter(countryType, fieldPopulation, intType)
	require.ErrorIs(t, err, reflectx.ErrAccess)

	private, err := reflectx.PrivateLookupIn(countryType, lookup)
	require.NoError(t, err)

	_, err = private.FindGetter(countryType, fieldPopulation, intType)
	require.NoError(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRunReportsWriteErrors(t *testing.T) {
	err := New(failingWriter{}).Run(context.Background())
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), len(expectedLines))
}
