package model

import (
	"fmt"

	"github.com/anoideaopen/methodhandles/core/reflectx"
)

// modulePath is the trust boundary of Country: packages under it may obtain
// private access to the type.
const modulePath = "github.com/anoideaopen/methodhandles"

func init() {
	reflectx.MustRegister(Country{},
		reflectx.Constructor(NewCountry),
		reflectx.Constructor(NewEmptyCountry),
		reflectx.Static("Details", Details),
		reflectx.Opens(modulePath),
	)
}

// Country is a plain record with one exported and one unexported field.
// Neither field is validated.
type Country struct {
	Name       string
	population int
}

// NewCountry returns a country with the given name and population.
func NewCountry(name string, population int) *Country {
	return &Country{
		Name:       name,
		population: population,
	}
}

// NewEmptyCountry returns a zero-valued country.
func NewEmptyCountry() *Country {
	return &Country{}
}

// GetName returns the country name.
func (c *Country) GetName() string {
	return c.Name
}

// SetName replaces the country name.
func (c *Country) SetName(name string) {
	c.Name = name
}

// Population returns the number of inhabitants.
func (c *Country) Population() int {
	return c.population
}

// SetPopulation replaces the number of inhabitants.
func (c *Country) SetPopulation(population int) {
	c.population = population
}

// Details describes the type. It does not depend on any instance.
func Details() []string {
	return []string{"package : " + modulePath + "/model", "class : COUNTRY"}
}

func (c Country) String() string {
	return fmt.Sprintf("Country [name=%s, population=%d]", c.Name, c.population)
}
