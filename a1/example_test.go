package a1_test

import (
	"fmt"

	"go.alis.build/sheets/a1"
)

func ExampleParseRange() {
	r, err := a1.ParseRange("A3:B4", 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	// Output: sheet 7 rows [2, 4) columns [0, 2)
}

func ExampleCellAddress() {
	address, _ := a1.CellAddress(12, 27)
	fmt.Println(address)
	// Output: AA12
}
