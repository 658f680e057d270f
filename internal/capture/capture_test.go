package capture

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdout(t *testing.T) {
	stdout := os.Stdout
	out, err := Stdout(func() {
		fmt.Println("hello")
		fmt.Print("world")
	})
	assert.Nil(t, err)
	assert.Equal(t, "hello\nworld", out)
	assert.Equal(t, stdout, os.Stdout)
}

func TestStdoutNothingWritten(t *testing.T) {
	out, err := Stdout(func() {})
	assert.Nil(t, err)
	assert.Empty(t, out)
}

func TestStdoutPanic(t *testing.T) {
	stdout := os.Stdout
	assert.Panics(t, func() {
		_, _ = Stdout(func() {
			fmt.Println("before panic")
			panic("boom")
		})
	})
	assert.Equal(t, stdout, os.Stdout)

	out, err := Stdout(func() {
		fmt.Println("after panic")
	})
	assert.Nil(t, err)
	assert.Equal(t, "after panic\n", out)
}
