// Command urock runs the diagnostic urban wind-field solver from a
// TOML configuration file.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/urock/cmd/urock/internal/urockcli"
)

func main() {
	if err := urockcli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
