package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/benchtrust/budgetplanung-api/infrastructure/repository"
	"github.com/benchtrust/budgetplanung-api/internal/catalog"
	"github.com/benchtrust/budgetplanung-api/internal/domain"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/planning"
	"github.com/benchtrust/budgetplanung-api/internal/usecases/revenue"
	"github.com/benchtrust/budgetplanung-api/pkg/utils"
	"github.com/spf13/cobra"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Imprime o plano de receita do ano",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		priceCatalog, err := catalog.Load(cfg.App.CatalogFile)
		if err != nil {
			return err
		}

		service := planning.NewService(
			repository.NewCustomerRepository(conn),
			repository.NewProspectRepository(conn),
			revenue.NewCalculator(priceCatalog),
			cfg.Planning,
		)

		plan, err := service.GetYearPlan(cmd.Context())
		if err != nil {
			return err
		}

		return renderYearPlan(cmd.OutOrStdout(), plan)
	},
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func renderYearPlan(out io.Writer, plan *domain.YearPlan) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "%d\tSigned\tProspect\tTotal\t\n", plan.Year)
	for _, month := range plan.Months {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			utils.MonthName(month.Month),
			utils.RoundCurrency(month.Signed).StringFixed(2),
			utils.RoundCurrency(month.Prospect).StringFixed(2),
			utils.RoundCurrency(month.Total).StringFixed(2),
		)
	}
	fmt.Fprintf(tw, "Total\t%s\t%s\t%s\t\n",
		utils.RoundCurrency(plan.SignedTotal).StringFixed(2),
		utils.RoundCurrency(plan.ProspectTotal).StringFixed(2),
		utils.RoundCurrency(plan.Total).StringFixed(2),
	)

	return tw.Flush()
}
