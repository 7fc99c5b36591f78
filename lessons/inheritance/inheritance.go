// Package inheritance shows how Go replaces class hierarchies: a base struct
// embedded in variants, promoted methods, overriding by shadowing, and
// interfaces for polymorphic slices.
package inheritance

import (
	"fmt"
	"math"
)

// Speaker is the polymorphic surface of every animal.
type Speaker interface {
	Speak() string
	Describe() string
}

// Animal is the shared base embedded by every concrete animal.
type Animal struct {
	Name string
	Age  int
}

// Speak is the generic sound, shadowed by variants that have their own.
func (a Animal) Speak() string { return a.Name + " makes a sound" }

// Describe is promoted unchanged to every variant.
func (a Animal) Describe() string {
	return fmt.Sprintf("%s is %d year(s) old", a.Name, a.Age)
}

// Dog adds a breed and its own Speak.
type Dog struct {
	Animal
	Breed string
}

func NewDog(name string, age int, breed string) Dog {
	return Dog{Animal: Animal{Name: name, Age: age}, Breed: breed}
}

func (d Dog) Speak() string { return d.Name + " says Woof!" }

// Fetch exists only on Dog.
func (d Dog) Fetch() string { return d.Name + " fetches the ball" }

// Describe extends the base description, like calling super.
func (d Dog) Describe() string {
	return d.Animal.Describe() + ", breed " + d.Breed
}

// Cat overrides Speak but keeps the base Describe.
type Cat struct {
	Animal
	Indoor bool
}

func NewCat(name string, age int, indoor bool) Cat {
	return Cat{Animal: Animal{Name: name, Age: age}, Indoor: indoor}
}

func (c Cat) Speak() string { return c.Name + " says Meow!" }

// Fish keeps the base Speak.
type Fish struct {
	Animal
}

// Shape is implemented by every geometric variant.
type Shape interface {
	Name() string
	Area() float64
	Perimeter() float64
}

// Circle is a Shape.
type Circle struct {
	Radius float64
}

func (Circle) Name() string         { return "Circle" }
func (c Circle) Area() float64      { return math.Pi * c.Radius * c.Radius }
func (c Circle) Perimeter() float64 { return 2 * math.Pi * c.Radius }

// Rectangle is a Shape.
type Rectangle struct {
	Width, Height float64
}

func (Rectangle) Name() string         { return "Rectangle" }
func (r Rectangle) Area() float64      { return r.Width * r.Height }
func (r Rectangle) Perimeter() float64 { return 2 * (r.Width + r.Height) }

// Square is a Rectangle with equal sides that renames itself.
type Square struct {
	Rectangle
}

func NewSquare(side float64) Square {
	return Square{Rectangle{Width: side, Height: side}}
}

func (Square) Name() string { return "Square" }

// TriangleShape is a Shape given by base and height.
type TriangleShape struct {
	Base, Height float64
}

func (TriangleShape) Name() string    { return "Triangle" }
func (t TriangleShape) Area() float64 { return t.Base * t.Height / 2 }

// Perimeter treats the triangle as isosceles over its base:
// base + 2·sqrt((base/2)² + height²). This is kept as is even for
// triangles that are not isosceles.
func (t TriangleShape) Perimeter() float64 {
	half := t.Base / 2
	return t.Base + 2*math.Sqrt(half*half+t.Height*t.Height)
}

// Describe renders any Shape uniformly.
func Describe(s Shape) string {
	return fmt.Sprintf("%s: area %.2f, perimeter %.2f", s.Name(), s.Area(), s.Perimeter())
}

// TotalArea sums the areas of shapes.
func TotalArea(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// Vehicle is the base embedded by every vehicle.
type Vehicle struct {
	Make   string
	Wheels int
	speed  int
}

// Accelerate raises the speed by delta, capped by limit.
func (v *Vehicle) Accelerate(delta, limit int) int {
	v.speed = min(v.speed+delta, limit)
	return v.speed
}

func (v *Vehicle) Speed() int { return v.speed }

func (v *Vehicle) Info() string {
	return fmt.Sprintf("%s with %d wheels", v.Make, v.Wheels)
}

// Mover is what every vehicle variant implements.
type Mover interface {
	Move() string
	Info() string
}

// Car caps its speed at 180.
type Car struct {
	Vehicle
	Doors int
}

func NewCar(brand string, doors int) *Car {
	return &Car{Vehicle: Vehicle{Make: brand, Wheels: 4}, Doors: doors}
}

func (c *Car) Move() string {
	return fmt.Sprintf("%s drives at %d km/h", c.Make, c.Accelerate(60, 180))
}

// Bicycle caps its speed at 25.
type Bicycle struct {
	Vehicle
}

func NewBicycle(brand string) *Bicycle {
	return &Bicycle{Vehicle: Vehicle{Make: brand, Wheels: 2}}
}

func (b *Bicycle) Move() string {
	return fmt.Sprintf("%s pedals at %d km/h", b.Make, b.Accelerate(60, 25))
}

// Info overrides the base to mention pedalling.
func (b *Bicycle) Info() string {
	return b.Vehicle.Info() + ", pedal powered"
}
