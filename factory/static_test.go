package factory

import (
	"testing"

	"github.com/go-leo/computer-factory/computer"
	"github.com/stretchr/testify/assert"
)

func TestNewStaticLaptop(t *testing.T) {
	c := NewStaticLaptop()
	_, ok := c.(computer.Laptop)
	assert.True(t, ok)
}

func TestNewStaticDesktop(t *testing.T) {
	c := NewStaticDesktop()
	_, ok := c.(computer.Desktop)
	assert.True(t, ok)
}
