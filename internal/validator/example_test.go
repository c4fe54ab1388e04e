package validator_test

import (
	"errors"
	"fmt"

	"github.com/MikhailRaia/shortener-client/internal/validator"
)

func ExampleValidate() {
	for _, input := range []string{
		"https://example.com/very/long/path",
		"example.com",
		"ftp://example.com",
		"http://a:99999",
	} {
		fmt.Printf("%s: %v\n", input, validator.Validate(input))
	}

	// Output:
	// https://example.com/very/long/path: true
	// example.com: false
	// ftp://example.com: false
	// http://a:99999: false
}

func ExampleCheck() {
	err := validator.Check("   ")
	fmt.Println(errors.Is(err, validator.ErrEmpty))

	err = validator.Check("http//nope")
	fmt.Println(errors.Is(err, validator.ErrMalformed))

	// Output:
	// true
	// true
}
