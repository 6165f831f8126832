// Package passgen allows running the passgen CLI from Go code
// programmatically.
package passgen

import (
	"context"
	"io"

	"github.com/gokrazy/passgen/internal/passgen"
	"github.com/gokrazy/passgen/internal/pwgen"
)

type Context struct {
	Stdout io.Writer
	Args   []string

	// Index picks a uniformly distributed index in [0, n). If nil, the
	// non-cryptographic math/rand/v2 generator is used.
	Index func(n int) int
}

func (c Context) Execute(ctx context.Context) error {
	root := passgen.RootCmd(pwgen.IndexFunc(c.Index))
	if w := c.Stdout; w != nil {
		root.SetOut(w)
	}
	if args := c.Args; args != nil {
		root.SetArgs(args)
	}
	root.SetContext(ctx)
	return root.Execute()
}
