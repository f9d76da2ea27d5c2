package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newPropertiesCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Search and add properties",
	}
	cmd.AddCommand(newPropertiesSearchCmd(r), newPropertiesAddCmd(r))
	return cmd
}

type searchFlags struct {
	city      string
	ownerID   int64
	minPrice  string
	maxPrice  string
	minRating float64
	limit     int
}

func newPropertiesSearchCmd(r *runner) *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties, cheapest first",
		Example: `  lightbnb properties search --city Vancouver --max-price 150
  lightbnb properties search --owner-id 7 --min-rating 4 --limit 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria, err := f.criteria(cmd)
			if err != nil {
				return err
			}

			fields := map[string]any{"filtered": !criteria.IsEmpty(), "limit": f.limit}
			return r.run(cmd, "properties search", fields, func(ctx context.Context, repos *repository.Repositories) (any, error) {
				return repos.Properties.Search(ctx, criteria, f.limit)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.city, "city", "", "substring of the city name")
	flags.Int64Var(&f.ownerID, "owner-id", 0, "owner user id")
	flags.StringVar(&f.minPrice, "min-price", "", "minimum price per night, in dollars")
	flags.StringVar(&f.maxPrice, "max-price", "", "maximum price per night, in dollars")
	flags.Float64Var(&f.minRating, "min-rating", 0, "minimum review rating (0-5)")
	flags.IntVar(&f.limit, "limit", 0, "maximum number of results (default 10)")

	return cmd
}

// criteria only sets the filters whose flags were given, so
// "--min-rating 0" is a filter and an absent flag is not.
func (f searchFlags) criteria(cmd *cobra.Command) (model.PropertySearchCriteria, error) {
	var c model.PropertySearchCriteria
	var fieldErrs []errs.FieldError

	changed := cmd.Flags().Changed

	if changed("city") {
		city := f.city
		c.City = &city
	}
	if changed("owner-id") {
		ownerID := f.ownerID
		c.OwnerID = &ownerID
	}
	if changed("min-price") {
		price, err := decimal.NewFromString(f.minPrice)
		if err != nil {
			fieldErrs = append(fieldErrs, errs.FieldError{Field: "minimum_price_per_night", Error: "must be a decimal number"})
		} else {
			c.MinimumPricePerNight = &price
		}
	}
	if changed("max-price") {
		price, err := decimal.NewFromString(f.maxPrice)
		if err != nil {
			fieldErrs = append(fieldErrs, errs.FieldError{Field: "maximum_price_per_night", Error: "must be a decimal number"})
		} else {
			c.MaximumPricePerNight = &price
		}
	}
	if changed("min-rating") {
		rating := f.minRating
		c.MinimumRating = &rating
	}

	if len(fieldErrs) > 0 {
		return c, errs.ValidationError(fieldErrs)
	}
	return c, nil
}

func newPropertiesAddCmd(r *runner) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property from a JSON file",
		Long: `Add a property from a JSON file ("-" reads stdin).

cost_per_night is in cents.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			property, err := readNewProperty(cmd, file)
			if err != nil {
				return err
			}

			return r.run(cmd, "properties add", nil, func(ctx context.Context, repos *repository.Repositories) (any, error) {
				return repos.Properties.Add(ctx, property)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "path to the property JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readNewProperty(cmd *cobra.Command, file string) (model.NewProperty, error) {
	var property model.NewProperty

	in := cmd.InOrStdin()
	if file != "-" {
		fh, err := os.Open(file)
		if err != nil {
			return property, fmt.Errorf("failed to open property file: %w", err)
		}
		defer fh.Close()
		in = fh
	}

	dec := json.NewDecoder(in)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&property); err != nil {
		return property, errs.NewInvalidInputError("Property file is not valid JSON", nil, nil, err)
	}
	return property, nil
}
