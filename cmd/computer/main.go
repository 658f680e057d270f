package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-leo/computer-factory/computer"
	"github.com/go-leo/computer-factory/factory"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// The factory pattern moves the construction of a product away from the call site.
// This example builds a laptop and a desktop three ways: by key with NewComputer,
// through the methods of a MultiFactory, and with the NewStatic functions.
// Every computer prints its price and description, then the catalog is printed as JSON.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	fmt.Println("simple factory:")
	var simple factory.Factory[computer.Computer, string] = factory.NewSimpleFactory(factory.Logger(logger))
	for _, kind := range []string{"laptop", "desktop", "tablet"} {
		c, err := simple.Create(context.Background(), kind)
		if err != nil {
			continue
		}
		show(c)
	}

	fmt.Println("multi factory:")
	multi := factory.MultiFactory{}
	show(multi.NewMultiLaptop())
	show(multi.NewMultiDesktop())

	fmt.Println("static factory:")
	show(factory.NewStaticLaptop())
	show(factory.NewStaticDesktop())

	catalog, err := jsoniter.MarshalIndent(computer.Sheets(), "", "  ")
	if err != nil {
		logger.Fatal("failed to encode catalog", zap.Error(err))
	}
	fmt.Println(string(catalog))
}

func show(c computer.Computer) {
	c.Price()
	c.Description()
}
