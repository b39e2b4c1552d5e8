package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	siteerrors "github.com/verdana-ai/verdana-web/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "verdana-web",
		Short: "The Verdana marketing and information site",
		Long: `verdana-web serves the public site for Verdana, the EU Green Deal
compliance assistant.

Pages are rendered server-side; interactivity (the accessibility
font menu and toast notifications) runs over a live WebSocket
session with a thin JavaScript client.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var siteErr *siteerrors.SiteError
		if errors.As(err, &siteErr) {
			fmt.Fprint(os.Stderr, siteErr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}
