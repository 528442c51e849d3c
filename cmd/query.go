package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printJSON renders a query result on stdout.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

// basesCmd represents the bases command
var basesCmd = &cobra.Command{
	Use:   "bases [nickname]",
	Short: "List mission bases, or show one by nickname",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		svc, err := newService(cfg, logg)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			base, ok, err := svc.Base(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("unknown base: %s", args[0])
			}
			return printJSON(cmd, base)
		}

		bases, err := svc.Bases()
		if err != nil {
			return err
		}
		logg.Info("mission bases folded", zap.Int("count", len(bases)))
		return printJSON(cmd, bases)
	},
}

// factionsCmd represents the factions command
var factionsCmd = &cobra.Command{
	Use:   "factions [affiliation]",
	Short: "List faction behavior profiles, or show one by affiliation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		svc, err := newService(cfg, logg)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			prop, ok, err := svc.FactionProp(args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("unknown faction: %s", args[0])
			}
			return printJSON(cmd, prop)
		}

		props, err := svc.FactionProps()
		if err != nil {
			return err
		}
		logg.Info("faction props folded", zap.Int("count", len(props)))
		return printJSON(cmd, props)
	},
}

// newsCmd represents the news command
var newsCmd = &cobra.Command{
	Use:   "news <base>",
	Short: "Show the news broadcast at a base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		svc, err := newService(cfg, logg)
		if err != nil {
			return err
		}

		items, err := svc.NewsFor(args[0])
		if err != nil {
			return err
		}
		logg.Info("news folded", zap.String("base", args[0]), zap.Int("count", len(items)))
		return printJSON(cmd, items)
	},
}

func init() {
	RootCmd.AddCommand(basesCmd, factionsCmd, newsCmd)
}
