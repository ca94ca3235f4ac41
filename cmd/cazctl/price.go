package main

import (
	"context"
	"fmt"
	"strconv"

	"cazpay/utils"

	"github.com/spf13/cobra"
)

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Show or change the charge per day",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the current price-per-day setting",
		Args:  cobra.NoArgs,
		RunE:  runPriceGet,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set [pence]",
		Short: "Set the price per day in pence",
		Args:  cobra.ExactArgs(1),
		RunE:  runPriceSet,
	})
	return cmd
}

func runPriceGet(cmd *cobra.Command, args []string) error {
	e, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	setting, err := e.pricing.GetPrice(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Current Price Setting: %d pence (%s %s per day)\n",
		setting.Amount, utils.FormatGBP(setting.Amount), setting.Currency)
	if !setting.UpdatedAt.IsZero() {
		fmt.Printf("Updated: %s\n", setting.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func runPriceSet(cmd *cobra.Command, args []string) error {
	amount, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("price must be a whole number of pence: %w", err)
	}

	e, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	setting, err := e.pricing.SetPrice(context.Background(), amount)
	if err != nil {
		return err
	}
	fmt.Printf("Price per day set to %s\n", utils.FormatGBP(setting.Amount))
	return nil
}
