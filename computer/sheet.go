package computer

import (
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/slices"
)

// Sheet holds what a Computer prints, as data.
type Sheet struct {
	Kind        Kind   `json:"kind"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// JSON encodes the sheet.
func (s Sheet) JSON() ([]byte, error) {
	return jsoniter.Marshal(s)
}

// SheetOf returns the sheet of c. ok is false if c is not a Laptop or a Desktop.
func SheetOf(c Computer) (sheet Sheet, ok bool) {
	switch c.(type) {
	case Laptop:
		return Sheet{Kind: KindLaptop, Price: laptopPrice, Description: laptopDescription}, true
	case Desktop:
		return Sheet{Kind: KindDesktop, Price: desktopPrice, Description: desktopDescription}, true
	default:
		return Sheet{}, false
	}
}

// Sheets returns the sheet of every variant, ordered by kind.
func Sheets() []Sheet {
	sheets := []Sheet{
		{Kind: KindLaptop, Price: laptopPrice, Description: laptopDescription},
		{Kind: KindDesktop, Price: desktopPrice, Description: desktopDescription},
	}
	slices.SortFunc(sheets, func(a, b Sheet) bool {
		return a.Kind < b.Kind
	})
	return sheets
}
