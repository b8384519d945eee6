// Package cli implements shinnctl, the admin command line for the catalog
// service.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ShinnPerfume/internal/storefront"
	"ShinnPerfume/pkg/kit"
)

const defaultURL = "http://localhost:8082"

var errFailed = errors.New("catalog operation failed (see log above)")

type options struct {
	url     string
	token   string
	verbose bool
}

// NewRootCmd builds a fresh command tree. main calls Execute on it; tests
// build their own.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "shinnctl",
		Short:         "Admin tool for the SHINN catalog service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.url, "url", envOr("CATALOG_URL", defaultURL), "catalog service base URL ($CATALOG_URL)")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("CATALOG_TOKEN"), "bearer token sent to the catalog service ($CATALOG_TOKEN)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every request outcome")

	root.AddCommand(
		newListCmd(opts),
		newAddCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newInitCmd(opts),
		newResetCmd(opts),
		newDumpCmd(opts),
		newClearCmd(opts),
		newMemoryCmd(opts),
		newHashPasswordCmd(),
		newTokenCmd(),
	)
	return root
}

// Execute runs shinnctl with os.Args and reports errors on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func (o *options) client() *storefront.Client {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return storefront.NewClient(o.url, o.token, kit.NewLogger("shinnctl", level))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
