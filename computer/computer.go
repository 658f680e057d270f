package computer

// Computer is the capability set shared by every product.
type Computer interface {
	// Price prints the price of the computer.
	Price()

	// Description prints what kind of computer it is.
	Description()
}

// Kind names a product variant.
type Kind string

const (
	// KindLaptop is the key of Laptop.
	KindLaptop Kind = "laptop"
	// KindDesktop is the key of Desktop.
	KindDesktop Kind = "desktop"
)

func (k Kind) String() string {
	return string(k)
}

// KindOf reports the Kind of c. ok is false if c is not a Laptop or a Desktop.
func KindOf(c Computer) (kind Kind, ok bool) {
	switch c.(type) {
	case Laptop:
		return KindLaptop, true
	case Desktop:
		return KindDesktop, true
	default:
		return "", false
	}
}
