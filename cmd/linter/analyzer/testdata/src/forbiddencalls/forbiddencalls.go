package forbiddencalls

import (
	"fmt"
	"io"
	"log"
	"os"
)

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden") // want "log.Fatal is forbidden outside main function"
	log.Fatalf("%s", "formatted")  // want "log.Fatal is forbidden outside main function"
}

func SomeOsExitFunction() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func PrintToStdout() {
	fmt.Println("drawn over the view") // want "fmt.Print is forbidden outside main function"
	fmt.Printf("%d\n", 1)              // want "fmt.Print is forbidden outside main function"
}

func PrintToWriter(w io.Writer) {
	fmt.Fprintln(w, "allowed")
	_ = fmt.Sprintf("%d", 1)
}

// main outside package main is an ordinary function.
func main() {
	os.Exit(0) // want "os.Exit is forbidden outside main function"
}
