package computer

import "fmt"

const (
	desktopPrice       = "5000$"
	desktopDescription = "Desktops are fixed"
)

var _ Computer = Desktop{}

// Desktop This is the desktop.
type Desktop struct{}

func (Desktop) Price() {
	fmt.Println(desktopPrice)
}

func (Desktop) Description() {
	fmt.Println(desktopDescription)
}
