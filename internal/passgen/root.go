package passgen

import (
	"errors"
	"fmt"
	"io"

	"github.com/gokrazy/passgen/internal/passflag"
	"github.com/gokrazy/passgen/internal/pwgen"
	"github.com/gokrazy/passgen/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootCmd returns the passgen command. idx picks character indices; nil
// means pwgen.DefaultIndex.
func RootCmd(idx pwgen.IndexFunc) *cobra.Command {
	impl := &rootImplConfig{idx: idx}
	rootCmd := &cobra.Command{
		Use:   "passgen",
		Short: "generate a random password",
		Long: `The passgen tool prints a random password of configurable length, built
from the character types selected with --customize.

passgen uses a general-purpose pseudo-random generator. The passwords it
prints are NOT suitable for protecting anything of value.
`,
		Example: `  passgen --length 12 --customize acn
  passgen --length 10`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		// Flags are scanned left to right by passflag.Parse so that --help
		// and validation errors take effect in the order they appear.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return impl.run(args, cmd.OutOrStdout())
		},
	}
	// Only registered so that they appear in --help.
	passflag.RegisterPflags(rootCmd.Flags())
	return rootCmd
}

type rootImplConfig struct {
	idx pwgen.IndexFunc
}

func (r *rootImplConfig) run(args []string, stdout io.Writer) error {
	opts, err := passflag.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return pflag.ErrHelp
		}
		return err
	}
	if opts.Version {
		fmt.Fprintf(stdout, "%s\n", version.Read())
		return nil
	}

	charset, err := pwgen.Charset(opts.Customize)
	if err != nil {
		return err
	}
	pw, err := pwgen.Generate(opts.Length, charset, r.idx)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Character set being used: %s\n", charset)
	fmt.Fprintf(stdout, "Password: %s\n", pw)
	return nil
}
