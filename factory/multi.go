package factory

import "github.com/go-leo/computer-factory/computer"

// MultiFactory has one method per computer. The zero value is ready to use.
type MultiFactory struct{}

// NewMultiLaptop returns a new laptop.
func (MultiFactory) NewMultiLaptop() computer.Computer {
	return computer.Laptop{}
}

// NewMultiDesktop returns a new desktop.
func (MultiFactory) NewMultiDesktop() computer.Computer {
	return computer.Desktop{}
}
