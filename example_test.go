package layerlist_test

import (
	"errors"
	"fmt"

	"github.com/andrewpillar/layerlist"
)

func ExampleParse() {
	l, err := layerlist.Parse("metal1 (1/0) via1, (99/42)")

	if err != nil {
		panic(err)
	}

	for _, it := range l {
		fmt.Println(it.Kind(), "-", it)
	}
	// Output:
	// named pair - metal1 (1/0)
	// named - via1
	// pair - 99/42
}

func ExampleParse_errors() {
	_, err := layerlist.Parse("met1 (1/")

	var errs layerlist.ErrorList

	if errors.As(err, &errs) {
		for _, e := range errs {
			fmt.Println(e.Pos.Col, e.Msg)
		}
	}
	// Output:
	// 5 unexpected token
	// 6 unexpected token
	// 7 unexpected token
}

func ExampleFormat() {
	l, _ := layerlist.Parse("metal1(1/0),,via1 ( 2 / 0 ) 3/0")

	fmt.Println(layerlist.Format(l))
	// Output:
	// metal1 (1/0) via1 (2/0) 3/0
}
