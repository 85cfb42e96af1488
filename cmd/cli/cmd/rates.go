package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/seller-calc-api/internal/app"
	"github.com/vfg2006/seller-calc-api/internal/config"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/calculating"
	"github.com/vfg2006/seller-calc-api/internal/usecases/exchanging"
)

// buildDependencies carrega a configuração do ambiente e monta o cache de cotações
func buildDependencies(cmd *cobra.Command) (*app.Dependencies, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração")
	}

	return app.Build(cmd.Context(), cfg), nil
}

func newRatesCmd() *cobra.Command {
	var refresh, status bool

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Mostra as cotações atuais",
		Long: `Mostra o snapshot de cotações em uso. Com o Redis configurado o snapshot
é compartilhado com a API.

Exemplos:
  seller-calc rates
  seller-calc rates --refresh
  seller-calc rates --status`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDependencies(cmd)
			if err != nil {
				return err
			}
			defer deps.Close()

			if status {
				printJSON(cmd, deps.Cache.Status(cmd.Context()))
				return nil
			}

			get := deps.Cache.Get
			if refresh {
				get = deps.Cache.Refresh
			}

			printJSON(cmd, domain.ExchangeRatesResponse{
				Snapshot:   get(cmd.Context()),
				Currencies: deps.Cache.Currencies(),
			})
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "descarta o snapshot atual e busca novas cotações")
	cmd.Flags().BoolVar(&status, "status", false, "mostra o estado do cache em vez das cotações")
	cmd.MarkFlagsMutuallyExclusive("refresh", "status")

	return cmd
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Converte um valor entre moedas",
		Long: `Converte usando o snapshot de cotações atual, com as cotações de reserva
quando o provedor não responde.

Exemplo:
  seller-calc convert 100 CNY USD`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, ok := calculating.ParseNumeric(args[0])
			if !ok {
				return errors.Errorf("valor inválido: %s", args[0])
			}
			from := strings.ToUpper(strings.TrimSpace(args[1]))
			to := strings.ToUpper(strings.TrimSpace(args[2]))

			deps, err := buildDependencies(cmd)
			if err != nil {
				return err
			}
			defer deps.Close()

			quote, err := exchanging.Quote(amount, from, to, deps.Cache.Get(cmd.Context()))
			if err != nil {
				return err
			}

			printJSON(cmd, quote)
			return nil
		},
	}

	return cmd
}
