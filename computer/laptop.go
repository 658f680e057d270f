package computer

import "fmt"

const (
	laptopPrice       = "4000$"
	laptopDescription = "Laptops are mobile, portable and multimedia"
)

var _ Computer = Laptop{}

// Laptop This is the laptop.
type Laptop struct{}

func (Laptop) Price() {
	fmt.Println(laptopPrice)
}

func (Laptop) Description() {
	fmt.Println(laptopDescription)
}
