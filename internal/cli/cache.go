package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/standings/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the standings cache",
	}

	cmd.AddCommand(c.cacheListCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// openStore opens the configured cache file for maintenance.
func (c *CLI) openStore(cmd *cobra.Command) (*cache.Store, error) {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return cache.NewStore(cfg.CachePath, cache.WithLogger(c.Logger), cache.WithVerbose(cfg.Verbose)), nil
}

// cacheListCommand creates the "cache list" subcommand.
func (c *CLI) cacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached entries and when they expire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}

			entries := store.Entries()
			if len(entries) == 0 {
				printInfo("Cache is empty")
				printDetail("File: %s", store.Path())
				return nil
			}

			now := time.Now()
			for _, e := range entries {
				printKeyValue(e.Key, describeEntry(e, now))
			}
			printDetail("File: %s", store.Path())
			return nil
		},
	}
}

// describeEntry renders e as "14 kB · expires 3 hours from now".
func describeEntry(e cache.EntryInfo, now time.Time) string {
	when := "expires " + humanize.RelTime(e.Expires, now, "ago", "from now")
	if !e.Expires.After(now) {
		when = StyleWarning.Render("expired " + humanize.RelTime(e.Expires, now, "ago", "from now"))
	}
	return fmt.Sprintf("%s · %s", humanize.Bytes(uint64(e.Size)), when)
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openStore(cmd)
			if err != nil {
				return err
			}

			n, err := store.Clear()
			if err != nil {
				return err
			}
			if n == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", n)
			printDetail("File: %s", store.Path())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cfg.CachePath)
			return nil
		},
	}
}
