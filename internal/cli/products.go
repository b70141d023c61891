package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sheshape/shapecli/internal/api"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the shop",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(configPath(cmd), false)
		if err != nil {
			return err
		}
		defer a.Close()

		filters := api.ProductFilters{}
		filters.Page, _ = cmd.Flags().GetInt("page")
		filters.Size, _ = cmd.Flags().GetInt("size")
		filters.Category, _ = cmd.Flags().GetString("category")
		filters.Search, _ = cmd.Flags().GetString("search")
		filters.SortBy, _ = cmd.Flags().GetString("sort")
		filters.SortDirection, _ = cmd.Flags().GetString("direction")

		page, err := a.client.ListProducts(cmd.Context(), filters)
		if err != nil {
			return err
		}

		if len(page.Products) == 0 {
			fmt.Println("No products found")
			return nil
		}
		for _, product := range page.Products {
			price := product.Price
			if product.DiscountPrice != nil {
				price = *product.DiscountPrice
			}
			fmt.Printf("%4d  %-30s  %8.2f  stock %d\n",
				product.ID, product.Name, price, product.InventoryCount)
		}
		fmt.Printf("\nPage %d of %d (%d products)\n",
			page.CurrentPage, page.TotalPages, page.TotalElements)
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		a, err := newApp(configPath(cmd), false)
		if err != nil {
			return err
		}
		defer a.Close()

		product, err := a.client.GetProduct(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", product.Name)
		if product.Description != "" {
			fmt.Printf("%s\n", product.Description)
		}
		fmt.Printf("Price: %.2f", product.Price)
		if product.DiscountPrice != nil {
			fmt.Printf(" (now %.2f)", *product.DiscountPrice)
		}
		fmt.Printf("\nIn stock: %d\n", product.InventoryCount)
		for _, img := range product.Images {
			marker := " "
			if img.IsMain {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, img.URL)
		}
		return nil
	},
}

func init() {
	productsListCmd.Flags().Int("page", 1, "Page number (1-based)")
	productsListCmd.Flags().Int("size", 20, "Page size")
	productsListCmd.Flags().String("category", "", "Filter by category")
	productsListCmd.Flags().String("search", "", "Search by name")
	productsListCmd.Flags().String("sort", "", "Sort field (e.g. price)")
	productsListCmd.Flags().String("direction", "", "Sort direction: asc or desc")
	productsCmd.AddCommand(productsListCmd, productsGetCmd)
	rootCmd.AddCommand(productsCmd)
}
