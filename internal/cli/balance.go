package cli

import (
	"fmt"

	"github.com/cacheforge-ai/cacheforge-skills/internal/api"
	"github.com/cacheforge-ai/cacheforge-skills/internal/render"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewBalanceCmd creates the balance command.
func NewBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Check CacheForge balance and billing status",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := api.NewClient()
			if err != nil {
				return err
			}

			billing, err := client.Balance(cmd.Context())
			if err != nil {
				return err
			}

			balance := billing.BalanceUSD()
			var balanceStr string
			switch {
			case balance > 5:
				balanceStr = render.Bold(render.Green(render.USD(balance)))
			case balance > 1:
				balanceStr = render.Bold(render.Yellow(render.USD(balance)))
			default:
				balanceStr = render.Bold(render.Red(render.USD(balance)))
			}

			w := render.Width()
			fmt.Println()
			fmt.Println(render.BoxTop(w))
			fmt.Println(render.BoxRow(render.Title(" CacheForge Balance"), w))
			fmt.Println(render.BoxSep(w))
			fmt.Println(render.BoxRow("  Balance:  "+balanceStr, w))
			fmt.Println(render.BoxRow("  "+render.Bar(balance, 50, max(w-10, 20)), w))
			fmt.Println(render.BoxEmpty(w))
			if billing.AutoTopupEnabled {
				fmt.Println(render.BoxRow(fmt.Sprintf("  Auto top-up:  %s  (+$%d when < $%d)",
					render.Bold(render.Green("ON")),
					billing.AutoTopupAmountCents/100,
					billing.AutoTopupThresholdCents/100), w))
			} else {
				fmt.Println(render.BoxRow("  Auto top-up:  "+render.Dim("OFF"), w))
			}
			if billing.DefaultPaymentMethodSet {
				fmt.Println(render.BoxRow("  Payment:      "+render.White("Card on file"), w))
			} else {
				fmt.Println(render.BoxRow("  Payment:      "+render.Dim("No card on file"), w))
			}
			fmt.Println(render.BoxBottom(w))
			fmt.Println()

			return nil
		},
	}
}

// NewTenantCmd creates the tenant command.
func NewTenantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tenant",
		Short: "Show CacheForge tenant info",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := api.NewClient()
			if err != nil {
				return err
			}

			tenant, err := client.TenantInfo(cmd.Context())
			if err != nil {
				return err
			}

			status := cases.Title(language.English).String(tenant.Status)
			switch tenant.Status {
			case "active", "enabled":
				status = render.Bold(render.Green(status))
			case "suspended", "disabled":
				status = render.Bold(render.Red(status))
			default:
				status = render.Bold(render.Yellow(status))
			}

			upstream := render.Red("not set")
			if tenant.UpstreamConfigured {
				upstream = render.Green("configured")
			}

			w := render.Width()
			fmt.Println()
			fmt.Println(render.BoxTop(w))
			fmt.Println(render.BoxRow(render.Title(" CacheForge Tenant"), w))
			fmt.Println(render.BoxSep(w))
			fmt.Println(render.BoxRow("  Tenant:    "+render.Bold(tenant.Name), w))
			if tenant.ID != "" {
				fmt.Println(render.BoxRow("  ID:        "+render.Dim(tenant.ID), w))
			}
			fmt.Println(render.BoxRow("  Status:    "+status, w))
			fmt.Println(render.BoxRow("  Upstream:  "+upstream, w))
			fmt.Println(render.BoxRow(fmt.Sprintf("  API Keys:  %d", tenant.ActiveKeys), w))
			fmt.Println(render.BoxBottom(w))
			fmt.Println()

			return nil
		},
	}
}
