package factory

import "github.com/go-leo/computer-factory/computer"

// NewStaticLaptop returns a new laptop.
func NewStaticLaptop() computer.Computer {
	return computer.Laptop{}
}

// NewStaticDesktop returns a new desktop.
func NewStaticDesktop() computer.Computer {
	return computer.Desktop{}
}
