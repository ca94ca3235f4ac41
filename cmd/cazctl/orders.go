package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"cazpay/models"
	"cazpay/services/admin"

	"github.com/spf13/cobra"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect submitted orders",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List orders with the dashboard's search, filter and sort",
		Args:  cobra.NoArgs,
		RunE:  runOrdersList,
	}
	list.Flags().StringP("query", "q", "", "Search registration number, email or zone")
	list.Flags().StringP("status", "s", "", "Only orders with this status (pending, paid, failed)")
	list.Flags().String("sort", models.OrderSortCreatedAt, "Sort column")
	list.Flags().Bool("asc", false, "Sort ascending")

	cmd.AddCommand(list)
	return cmd
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	q, _ := cmd.Flags().GetString("query")
	status, _ := cmd.Flags().GetString("status")
	sortBy, _ := cmd.Flags().GetString("sort")
	asc, _ := cmd.Flags().GetBool("asc")

	e, cleanup, err := connect()
	if err != nil {
		return err
	}
	defer cleanup()

	payments, err := e.payments.GetAll(context.Background())
	if err != nil {
		return err
	}
	listing := admin.BuildListing(payments, models.OrderQuery{
		Search: q,
		Status: status,
		SortBy: sortBy,
		Desc:   !asc,
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREG\tZONE\tEMAIL\tDAYS\tTOTAL\tSTATUS\tCREATED")
	for _, o := range listing.Orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t£%s\t%s\t%s\n",
			o.ID, o.RegistrationNumber, o.CleanAirZone, o.Email, o.DateCount,
			o.Total, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d orders, revenue %s\n", listing.Count, listing.RevenueDisplay)
	return nil
}
