package main

import (
	"cfpurge/internal/config"
	"cfpurge/internal/purge"
	"cfpurge/pkg/cdn/cloudflare"
	"cfpurge/pkg/domain"
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// purgeCommand constructs the 'purge' subcommand that resolves a zone by name
// and submits a cache purge request for it.
func purgeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge cached content for a zone",
		Long: `Purge cached content for a single Cloudflare zone.

The zone is referenced by name and resolved to its zone ID through the API.
The purge strategy is chosen with --purge-type:

  everything  drop the zone's entire cache (default, no targets)
  hostname    drop everything cached under the given hostnames
  url, files  drop the given URLs (http:// or https:// required)
  prefix      drop everything under the given URL prefixes
  tags        drop objects carrying the given cache tags

Credentials come from the environment: CF_API_TOKEN, or CF_API_KEY together
with CF_EMAIL.

Examples:
  cfpurge purge -z example.com
  cfpurge purge -z example.com -t hostname --targets "www.example.com, api.example.com"
  cfpurge purge -z example.com -t url --targets https://example.com/a.css
  cfpurge purge -z example.com -t tags --targets "build-123,assets" -v`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := cmd.Flags().GetString("zone")
			purgeType, _ := cmd.Flags().GetString("purge-type")
			targets, _ := cmd.Flags().GetString("targets")

			// configuration errors surface before any network call
			creds, err := cfg.Credentials()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := cloudflare.New(&http.Client{Timeout: cfg.API.Timeout}, cfg.API.BaseURL, creds)
			p := purge.New(client, purge.NewOptions(cfg))

			receipt, err := p.Run(ctx, zone, purgeType, targets)
			if err != nil {
				return err
			}

			out := fmt.Sprintf("Purged zone %s (purge type: %s)", zone, purgeType)
			if receipt.ID != "" {
				out += fmt.Sprintf(", operation %s", receipt.ID)
			}
			if receipt.FilesPurged != nil {
				out += fmt.Sprintf(", %d files purged", *receipt.FilesPurged)
			}
			fmt.Println(out) //nolint: forbidigo

			return nil
		},
	}

	cmd.Flags().StringP("zone", "z", "", "Zone name, e.g. example.com")
	cmd.Flags().StringP("purge-type", "t", string(domain.PurgeEverything),
		"Purge strategy: everything, hostname, url, files, prefix or tags")
	cmd.Flags().String("targets", "", "Comma-separated purge targets (required unless purge type is everything)")
	// accept --target as an alias for --targets
	cmd.Flags().SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "target" {
			name = "targets"
		}

		return pflag.NormalizedName(name)
	})
	_ = cmd.MarkFlagRequired("zone")

	return cmd
}
