package builder

import (
	"fmt"
	"strings"

	"github.com/GoCodeAlone/demokit"
)

// House is an immutable product of HouseBuilder.
type House struct {
	foundation string
	walls      string
	roof       string
	floors     int
	rooms      int
	garage     bool
	garden     bool
}

func (h House) Foundation() string { return h.foundation }
func (h House) Walls() string      { return h.walls }
func (h House) Roof() string       { return h.roof }
func (h House) Floors() int        { return h.floors }
func (h House) Rooms() int         { return h.rooms }
func (h House) HasGarage() bool    { return h.garage }
func (h House) HasGarden() bool    { return h.garden }

func (h House) String() string {
	extras := []string{}
	if h.garage {
		extras = append(extras, "garage")
	}
	if h.garden {
		extras = append(extras, "garden")
	}
	if len(extras) == 0 {
		extras = append(extras, "no extras")
	}
	return fmt.Sprintf("%d-floor house, %d rooms, %s foundation, %s walls, %s roof, %s",
		h.floors, h.rooms, h.foundation, h.walls, h.roof, strings.Join(extras, " and "))
}

// HouseBuilder requires foundation, walls and roof. Floors default to 1.
type HouseBuilder struct {
	seal
	house House
}

// NewHouseBuilder starts an empty house.
func NewHouseBuilder() *HouseBuilder {
	return &HouseBuilder{house: House{floors: 1}}
}

func (b *HouseBuilder) Foundation(kind string) *HouseBuilder {
	if b.configurable() {
		b.house.foundation = kind
	}
	return b
}

func (b *HouseBuilder) Walls(material string) *HouseBuilder {
	if b.configurable() {
		b.house.walls = material
	}
	return b
}

func (b *HouseBuilder) Roof(kind string) *HouseBuilder {
	if b.configurable() {
		b.house.roof = kind
	}
	return b
}

// Floors must be at least 1.
func (b *HouseBuilder) Floors(n int) *HouseBuilder {
	if !b.configurable() {
		return b
	}
	if n < 1 {
		b.fail(demokit.NewValidationError("floors", n, "must be at least 1"))
		return b
	}
	b.house.floors = n
	return b
}

func (b *HouseBuilder) Rooms(n int) *HouseBuilder {
	if b.configurable() {
		b.house.rooms = n
	}
	return b
}

func (b *HouseBuilder) Garage() *HouseBuilder {
	if b.configurable() {
		b.house.garage = true
	}
	return b
}

func (b *HouseBuilder) Garden() *HouseBuilder {
	if b.configurable() {
		b.house.garden = true
	}
	return b
}

// Build returns the house or a construction error naming every unset
// required field.
func (b *HouseBuilder) Build() (House, error) {
	if err := b.check(); err != nil {
		return House{}, err
	}
	if m := missing(
		field{"foundation", b.house.foundation != ""},
		field{"walls", b.house.walls != ""},
		field{"roof", b.house.roof != ""},
	); len(m) > 0 {
		return House{}, demokit.NewConstructionError("house", m...)
	}
	b.done()
	return b.house, nil
}
