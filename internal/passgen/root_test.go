package passgen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gokrazy/passgen/internal/passflag"
	"github.com/gokrazy/passgen/internal/pwgen"
	"github.com/google/go-cmp/cmp"
)

func execute(t *testing.T, idx pwgen.IndexFunc, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	root := RootCmd(idx)
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func first(n int) int { return 0 }

func TestRootDefaults(t *testing.T) {
	stdout, _, err := execute(t, first)
	if err != nil {
		t.Fatal(err)
	}
	want := "Character set being used: " + pwgen.Lowercase + "\n" +
		"Password: aaaaaaaa\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("unexpected stdout (-want +got):\n%s", diff)
	}
}

func TestRootLengthAndCustomize(t *testing.T) {
	last := func(n int) int { return n - 1 }
	stdout, _, err := execute(t, last, "--length", "12", "--customize", "cn")
	if err != nil {
		t.Fatal(err)
	}
	want := "Character set being used: " + pwgen.Uppercase + pwgen.Numbers + "\n" +
		"Password: 000000000000\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("unexpected stdout (-want +got):\n%s", diff)
	}
}

func TestRootRandomOutput(t *testing.T) {
	stdout, _, err := execute(t, nil, "--length", "40", "--customize", "acns", "--unknown", "positional")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if got, want := len(lines), 2; got != want {
		t.Fatalf("got %d output lines, want %d: %q", got, want, stdout)
	}
	if got, want := lines[0], "Character set being used: "+pwgen.All; got != want {
		t.Errorf("charset line: got %q, want %q", got, want)
	}
	pw, ok := strings.CutPrefix(lines[1], "Password: ")
	if !ok {
		t.Fatalf("password line %q lacks prefix", lines[1])
	}
	if got, want := len(pw), 40; got != want {
		t.Errorf("password length: got %d, want %d", got, want)
	}
	for _, r := range pw {
		if !strings.ContainsRune(pwgen.All, r) {
			t.Errorf("password character %q not in charset", r)
		}
	}
}

func TestRootIgnoresUnknownTokens(t *testing.T) {
	for _, args := range [][]string{
		{"-ch", "--length", "4"},
		{"-with", "--length", "4"},
		{"--", "--length", "4"},
		{"--bogus", "stray", "--length=4", "-h-not-help"},
	} {
		stdout, _, err := execute(t, first, args...)
		if err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		want := "Character set being used: " + pwgen.Lowercase + "\n" +
			"Password: aaaa\n"
		if diff := cmp.Diff(want, stdout); diff != "" {
			t.Errorf("%q: unexpected stdout (-want +got):\n%s", args, diff)
		}
	}
}

func TestRootHelp(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"--help", "--length", "0"},
		{"--customize", "xyz", "--help"},
		{"-h"},
		{"--", "--help"},
	} {
		stdout, _, err := execute(t, first, args...)
		if err != nil {
			t.Fatalf("%q: %v", args, err)
		}
		for _, want := range []string{
			"Usage:",
			"--length",
			"--customize",
			"passgen --length 12 --customize acn",
			"passgen --length 10",
		} {
			if !strings.Contains(stdout, want) {
				t.Errorf("%q: help output does not contain %q:\n%s", args, want, stdout)
			}
		}
		if strings.Contains(stdout, "Password:") {
			t.Errorf("%q: help output unexpectedly contains a password", args)
		}
	}
}

func TestRootVersion(t *testing.T) {
	stdout, _, err := execute(t, first, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "passgen ") {
		t.Errorf("version output: got %q, want prefix %q", stdout, "passgen ")
	}
}

func TestRootErrors(t *testing.T) {
	for _, tt := range []struct {
		args    []string
		wantErr string
		is      error
	}{
		{args: []string{"--customize", "xyz"}, wantErr: "no valid character types", is: pwgen.ErrNoCharset},
		{args: []string{"--length", "0"}, wantErr: "invalid length", is: passflag.ErrInvalidLength},
		{args: []string{"--length", "-5"}, wantErr: "invalid length", is: passflag.ErrInvalidLength},
		{args: []string{"--length", "abc"}, wantErr: "invalid length", is: passflag.ErrInvalidLength},
		{args: []string{"-ah", "--length", "0"}, wantErr: "invalid length", is: passflag.ErrInvalidLength},
		{args: []string{"--", "--length", "0"}, wantErr: "invalid length", is: passflag.ErrInvalidLength},
		{args: []string{"--length"}, wantErr: "flag needs an argument: --length"},
		{args: []string{"--length", "5", "--customize"}, wantErr: "flag needs an argument: --customize"},
	} {
		stdout, _, err := execute(t, first, tt.args...)
		if err == nil {
			t.Errorf("%q: expected error", tt.args)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("%q: got err %q, want it to contain %q", tt.args, err, tt.wantErr)
		}
		if tt.is != nil && !errors.Is(err, tt.is) {
			t.Errorf("%q: got err %v, want %v", tt.args, err, tt.is)
		}
		if stdout != "" {
			t.Errorf("%q: unexpected stdout on error: %q", tt.args, stdout)
		}
	}
}
