// Binary passgen prints a random password of configurable length and
// character composition.
//
// The password is drawn from a general-purpose pseudo-random generator and is
// not cryptographically secure.
package main

import (
	"context"
	"log"

	"github.com/gokrazy/passgen/passgen"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("passgen: ")
	if err := (passgen.Context{}).Execute(context.Background()); err != nil {
		log.Fatal(err)
	}
}
