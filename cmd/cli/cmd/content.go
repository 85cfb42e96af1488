package cmd

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/analyzing"
)

func newContentCmd() *cobra.Command {
	var listing domain.Listing

	cmd := &cobra.Command{
		Use:   "content",
		Short: "Verifica os limites de caracteres do anúncio",
		Long: `Conta os caracteres do título, de cada bullet point e de cada linha de termos
de busca e compara com os limites da Amazon.

Exemplo:
  seller-calc content --title "Garrafa térmica 1L" --bullet "Mantém gelado por 24h" --bullet "Aço inox"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printJSON(cmd, analyzing.Analyze(listing))
			return nil
		},
	}

	cmd.Flags().StringVarP(&listing.Title, "title", "t", "", "título do anúncio")
	cmd.Flags().StringArrayVarP(&listing.BulletPoints, "bullet", "b", nil, "bullet point (repita para vários)")
	cmd.Flags().StringArrayVarP(&listing.SearchTerms, "search-terms", "s", nil, "linha de termos de busca (repita para várias)")

	return cmd
}
