package computer

import (
	"strings"
	"testing"

	"github.com/go-leo/computer-factory/internal/capture"
	"github.com/go-leo/gox/errorx"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
)

func TestSheetOf(t *testing.T) {
	for _, c := range []Computer{Laptop{}, Desktop{}} {
		sheet, ok := SheetOf(c)
		assert.True(t, ok)

		price, err := capture.Stdout(c.Price)
		assert.Nil(t, err)
		assert.Equal(t, sheet.Price, strings.TrimSuffix(price, "\n"))

		description, err := capture.Stdout(c.Description)
		assert.Nil(t, err)
		assert.Equal(t, sheet.Description, strings.TrimSuffix(description, "\n"))
	}

	_, ok := SheetOf(tablet{})
	assert.False(t, ok)
}

func TestSheetJSON(t *testing.T) {
	sheet, _ := SheetOf(Laptop{})
	ja := jsonassert.New(t)
	ja.Assertf(string(errorx.Ignore(sheet.JSON())),
		`{"kind":"laptop","price":"4000$","description":"Laptops are mobile, portable and multimedia"}`)

	sheet, _ = SheetOf(Desktop{})
	ja.Assertf(string(errorx.Ignore(sheet.JSON())),
		`{"kind":"desktop","price":"5000$","description":"Desktops are fixed"}`)
}

func TestSheets(t *testing.T) {
	sheets := Sheets()
	assert.Len(t, sheets, 2)
	assert.Equal(t, KindDesktop, sheets[0].Kind)
	assert.Equal(t, KindLaptop, sheets[1].Kind)
}
