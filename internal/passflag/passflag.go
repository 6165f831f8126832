package passflag

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/pflag"
)

const DefaultLength = 8

// ErrInvalidLength is returned for --length values that do not start with a
// positive base-10 integer.
var ErrInvalidLength = errors.New("invalid length, please provide a positive number")

// Options is the result of one command line scan.
type Options struct {
	Length    int
	Customize string
	Version   bool
}

// ParseLength parses s leniently: leading whitespace and one sign are
// skipped, the leading run of digits is used and anything after it is
// ignored. "12abc" and "3.7" parse as 12 and 3.
func ParseLength(s string) (int, error) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, ErrInvalidLength
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, ErrInvalidLength
	}
	return n, nil
}

type lengthValue struct {
	n   int
	raw string
	err error
}

func (l *lengthValue) String() string { return strconv.Itoa(l.n) }

func (l *lengthValue) Type() string { return "int" }

func (l *lengthValue) Set(s string) error {
	n, err := ParseLength(s)
	if err != nil {
		l.raw, l.err = s, err
		return err
	}
	l.n = n
	return nil
}

// envLength returns the length from $PASSGEN_LENGTH, or 0 when unset.
func envLength() (int, error) {
	env := os.Getenv("PASSGEN_LENGTH")
	if env == "" {
		return 0, nil
	}
	n, err := ParseLength(env)
	if err != nil {
		return 0, fmt.Errorf("PASSGEN_LENGTH=%q: %w", env, err)
	}
	return n, nil
}

// Values holds the destinations of the flags added by RegisterPflags.
type Values struct {
	length    lengthValue
	customize string
	version   bool
}

func (v *Values) Options() Options {
	return Options{
		Length:    v.length.n,
		Customize: v.customize,
		Version:   v.version,
	}
}

// RegisterPflags adds --length, --customize and --version to fs. Defaults
// are taken from $PASSGEN_LENGTH and $PASSGEN_CUSTOMIZE when set.
func RegisterPflags(fs *pflag.FlagSet) *Values {
	v := &Values{length: lengthValue{n: DefaultLength}}
	if n, err := envLength(); err == nil && n > 0 {
		v.length.n = n
	}
	fs.Var(&v.length,
		"length",
		`how long the password should be`)
	fs.StringVar(&v.customize,
		"customize",
		os.Getenv("PASSGEN_CUSTOMIZE"),
		`character types to include:
a - all characters (lowercase, uppercase, numbers, symbols)
c - uppercase letters
n - numbers
s - symbols
l - lowercase letters (default if none specified)`)
	fs.BoolVar(&v.version, "version", false, "print passgen version")
	return v
}

// Parse scans args left to right. Unknown flags, single-dash tokens other
// than -h, a bare -- and positional arguments are ignored. --help and -h
// stop the scan with pflag.ErrHelp.
func Parse(args []string) (Options, error) {
	fs := pflag.NewFlagSet("passgen", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if _, err := envLength(); err != nil {
		log.Printf("ignoring %v", err)
	}
	v := RegisterPflags(fs)
	if err := fs.Parse(recognized(fs, args)); err != nil {
		if v.length.err != nil {
			return Options{}, fmt.Errorf("--length %q: %w", v.length.raw, v.length.err)
		}
		return Options{}, err
	}
	return v.Options(), nil
}

// recognized returns the tokens of args that pflag should see: long flags,
// the values following defined non-boolean flags, and the exact -h.
// Single-dash runs like -ch, malformed long flags like ---x, --help=... and
// a bare -- are dropped so that pflag can neither report them nor treat
// them as help or as the end of flags.
func recognized(fs *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-h":
			out = append(out, a)
		case strings.HasPrefix(a, "--"):
			name, _, hasValue := strings.Cut(a[2:], "=")
			if name == "" || name[0] == '-' || (name == "help" && hasValue) {
				continue
			}
			out = append(out, a)
			f := fs.Lookup(name)
			if f != nil && !hasValue && f.NoOptDefVal == "" && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case strings.HasPrefix(a, "-"):
			continue
		default:
			out = append(out, a)
		}
	}
	return out
}
