package model_test

import (
	"testing"

	"github.com/anoideaopen/methodhandles/core/reflectx"
	"github.com/anoideaopen/methodhandles/model"
	"github.com/stretchr/testify/require"
)

var (
	countryType = reflectx.TypeFor[model.Country]()
	stringType  = reflectx.TypeFor[string]()
	intType     = reflectx.TypeFor[int]()
)

func TestCountryRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		country    string
		population int
	}{
		{name: "regular", country: "India", population: 1352600000},
		{name: "empty name", country: "", population: 1},
		{name: "negative population", country: "Atlantis", population: -5},
		{name: "zero values", country: "", population: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := model.NewCountry(tt.country, tt.population)
			require.Equal(t, tt.country, c.GetName())
			require.Equal(t, tt.country, c.Name)
			require.Equal(t, tt.population, c.Population())
		})
	}
}

func TestCountryAccessors(t *testing.T) {
	c := model.NewEmptyCountry()
	require.Equal(t, "", c.GetName())
	require.Equal(t, 0, c.Population())

	c.SetName("Greece")
	c.SetPopulation(10400000)
	require.Equal(t, "Greece", c.GetName())
	require.Equal(t, 10400000, c.Population())
	require.Equal(t, "Country [name=Greece, population=10400000]", c.String())
}

func TestDetails(t *testing.T) {
	want := []string{"package : github.com/anoideaopen/methodhandles/model", "class : COUNTRY"}
	require.Equal(t, want, model.Details())

	h, err := reflectx.Public().FindStatic(countryType, "Details", reflectx.MethodType(reflectx.TypeFor[[]string]()))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		res, err := h.Invoke()
		require.NoError(t, err)
		require.Equal(t, want, res)
	}
}

func TestConstructorHandles(t *testing.T) {
	lookup := reflectx.Public()

	full, err := lookup.FindConstructor(countryType, stringType, intType)
	require.NoError(t, err)
	empty, err := lookup.FindConstructor(countryType)
	require.NoError(t, err)

	res, err := full.Invoke("China", 1392700000)
	require.NoError(t, err)
	require.Equal(t, model.NewCountry("China", 1392700000), res)

	res, err = empty.Invoke()
	require.NoError(t, err)
	require.Equal(t, model.NewEmptyCountry(), res)
	require.Equal(t, "Country [name=, population=0]", res.(*model.Country).String())

	getter, err := lookup.FindGetter(countryType, "Name", stringType)
	require.NoError(t, err)
	name, err := getter.Invoke(res)
	require.NoError(t, err)
	require.Equal(t, "", name)
}

func TestPublicFieldHandles(t *testing.T) {
	c := model.NewCountry("India", 1352600000)
	lookup := reflectx.Public()

	getter, err := lookup.FindGetter(countryType, "Name", stringType)
	require.NoError(t, err)
	setter, err := lookup.FindSetter(countryType, "Name", stringType)
	require.NoError(t, err)

	name, err := getter.Invoke(c)
	require.NoError(t, err)
	require.Equal(t, "India", name)

	_, err = setter.Invoke(c, "United Kingdom")
	require.NoError(t, err)

	name, err = getter.Invoke(c)
	require.NoError(t, err)
	require.Equal(t, "United Kingdom", name)
}

func TestPopulationIsNotPublic(t *testing.T) {
	lookup := reflectx.Public()

	_, err := lookup.FindGetter(countryType, "population", intType)
	require.ErrorIs(t, err, reflectx.ErrAccess)

	_, err = lookup.FindSetter(countryType, "population", intType)
	require.ErrorIs(t, err, reflectx.ErrAccess)

	// external test package is a different package
	caller := reflectx.MethodLookup()
	require.Equal(t, "github.com/anoideaopen/methodhandles/model_test", caller.Package())

	_, err = caller.FindGetter(countryType, "population", intType)
	require.ErrorIs(t, err, reflectx.ErrAccess)
}

func TestEscalatedPopulation(t *testing.T) {
	c := model.NewCountry("India", 1352600000)

	private, err := reflectx.PrivateLookupIn(countryType, reflectx.MethodLookup())
	require.NoError(t, err)

	getter, err := private.FindGetter(countryType, "population", intType)
	require.NoError(t, err)
	require.Equal(t, reflectx.AccessPrivate, getter.Access())
	setter, err := private.FindSetter(countryType, "population", intType)
	require.NoError(t, err)

	population, err := getter.Invoke(c)
	require.NoError(t, err)
	require.Equal(t, 1352600000, population)

	_, err = setter.Invoke(c, 1070000000)
	require.NoError(t, err)

	population, err = getter.Invoke(c)
	require.NoError(t, err)
	require.Equal(t, 1070000000, population)
	require.Equal(t, 1070000000, c.Population())
}

func TestAccessorMethodHandles(t *testing.T) {
	c := model.NewCountry("India", 1352600000)
	lookup := reflectx.Public()

	getName, err := lookup.FindVirtual(countryType, "GetName", reflectx.MethodType(stringType))
	require.NoError(t, err)
	setName, err := lookup.FindVirtual(countryType, "SetName", reflectx.MethodType(nil, stringType))
	require.NoError(t, err)
	setPopulation, err := lookup.FindVirtual(countryType, "SetPopulation", reflectx.MethodType(nil, intType))
	require.NoError(t, err)

	_, err = setName.Invoke(c, "Greece")
	require.NoError(t, err)
	_, err = setPopulation.Invoke(c, 10400000)
	require.NoError(t, err)

	name, err := getName.Invoke(c)
	require.NoError(t, err)
	require.Equal(t, "Greece", name)
	require.Equal(t, "Country [name=Greece, population=10400000]", c.String())

	str, err := lookup.FindVirtual(countryType, "String", reflectx.MethodType(stringType))
	require.NoError(t, err)
	res, err := str.Invoke(*c)
	require.NoError(t, err)
	require.Equal(t, c.String(), res)
}
