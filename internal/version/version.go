package version

import "runtime/debug"

// Read returns the version line printed by passgen --version.
func Read() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "passgen unknown"
	}
	return format(info)
}

// format renders "passgen <version> (<revision>)". Installed binaries carry
// a module version, local builds only the VCS revision; "+" marks a
// modified checkout.
func format(info *debug.BuildInfo) string {
	var rev string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev != "" && modified {
		rev += "+"
	}

	v := info.Main.Version
	if v == "(devel)" {
		v = ""
	}
	switch {
	case v != "" && rev != "":
		return "passgen " + v + " (" + rev + ")"
	case v != "":
		return "passgen " + v
	case rev != "":
		return "passgen " + rev
	}
	return "passgen unknown"
}
