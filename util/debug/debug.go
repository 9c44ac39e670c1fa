package debug

import (
	"fmt"
	"os"

	"github.com/alecthomas/hcl"
)

// Flags set from the HCL formatted SYSIDENT_DEBUG envar.
var Flags struct {
	ErrorTrace bool `hcl:"errortrace,optional" help:"Include source locations in error messages."`
	NoProbe    bool `hcl:"noprobe,optional" help:"Never spawn ldd to detect the libc flavor."`
}

func init() {
	envar := os.Getenv("SYSIDENT_DEBUG")
	err := hcl.Unmarshal([]byte(envar), &Flags, hcl.BareBooleanAttributes(true))
	if err != nil {
		baseErr := err
		schema, err := hcl.Schema(&Flags)
		if err != nil {
			panic(err)
		}
		schemaBytes, err := hcl.MarshalAST(schema)
		if err != nil {
			panic(err)
		}
		fmt.Fprintf(os.Stderr, "Invalid SYSIDENT_DEBUG=%q: %s\n\nSchema:\n\n%s\n", envar, baseErr, string(schemaBytes))
		os.Exit(1)
	}
}
