package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinytelemetry/widgetdeck/internal/store"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

func newKeysCmd(configPath *string) *cobra.Command {
	var showValues bool
	cmd := &cobra.Command{
		Use:   "keys [key]",
		Short: "List stored keys, or print the value of one key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			svc, err := openServices(cfg)
			if err != nil {
				return err
			}
			defer svc.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				v, err := store.Lookup(ctx, svc.store, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
				return nil
			}

			keys, err := svc.store.Keys(ctx)
			if err != nil {
				return err
			}
			owners := storeKeyOwners(widget.Default())
			for _, k := range keys {
				line := k
				if owner, ok := owners[k]; ok {
					line = fmt.Sprintf("%-12s %s", k, owner)
				}
				if showValues {
					v, _, err := svc.store.Get(ctx, k)
					if err != nil {
						return err
					}
					line += "\n  " + v
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showValues, "values", false, "print each key's raw JSON value")
	return cmd
}

// storeKeyOwners maps each store key to the title of the widget owning it.
func storeKeyOwners(reg *widget.Registry) map[string]string {
	owners := make(map[string]string)
	for _, s := range reg.All() {
		if s.StoreKey != "" {
			owners[s.StoreKey] = s.Title
		}
	}
	return owners
}
