// Package cmd contém os comandos da CLI seller-calc
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/seller-calc-api/pkg/log"
	"github.com/vfg2006/seller-calc-api/pkg/utils"
)

// NewRootCmd monta a árvore de comandos. Cada chamada devolve flags novas.
func NewRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "seller-calc",
		Short: "Calculadoras para vendedores da Amazon",
		Long: `seller-calc reúne as calculadoras de lucro FBA, conversão de unidades,
cotações de moedas e verificação de limites de conteúdo de anúncios.

Exemplos:
  seller-calc fba --cost 10 --price 30 --category electronics
  seller-calc units length --value 12 --unit in
  seller-calc convert 100 CNY USD`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log (debug, info, warn, error)")

	rootCmd.AddCommand(
		newUnitsCmd(),
		newFBACmd(),
		newAmazonCmd(),
		newRatesCmd(),
		newConvertCmd(),
		newContentCmd(),
	)

	return rootCmd
}

// Execute executa a CLI
func Execute() error {
	return NewRootCmd().Execute()
}

func printJSON(cmd *cobra.Command, payload any) {
	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(payload))
}
