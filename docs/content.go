package docs

const (
	VgrlUse   string = `vgrl --vgrl <library> --executable <path> [--parameter <text>] [--directory <dir>]`
	VgrlShort string = `Create a detached process through an external library`
	VgrlLong  string = `Load the external library, resolve its export at ordinal 1337 and let that
routine create the executable as a detached process (no console).

The routine must be binary compatible with CreateProcessW. This cannot be
checked: an export with a different signature is undefined behaviour.

The library path may also be set with the config key "launcher.library" or
the VGRL_LAUNCHER_LIBRARY environment variable.`

	ProbeUse   string = `probe --vgrl <library>`
	ProbeShort string = `Load the library and resolve the entry point without calling it`
	ProbeLong  string = ``
)
