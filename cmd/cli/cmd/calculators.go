package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/calculating"
)

// Os valores chegam como texto e seguem a mesma política de leitura da API
type productFlags struct {
	cost, price, shipping          string
	weight, length, width, height string
	category                       string
}

func (f *productFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.cost, "cost", "", "custo do produto")
	flags.StringVar(&f.price, "price", "", "preço de venda")
	flags.StringVar(&f.shipping, "shipping", "", "frete até a Amazon")
	flags.StringVar(&f.weight, "weight", "", "peso em libras")
	flags.StringVar(&f.length, "length", "", "comprimento em polegadas")
	flags.StringVar(&f.width, "width", "", "largura em polegadas")
	flags.StringVar(&f.height, "height", "", "altura em polegadas")
	flags.StringVarP(&f.category, "category", "c", "", "categoria do produto")
}

func (f *productFlags) raw() calculating.RawCalculationInput {
	return calculating.RawCalculationInput{
		ProductCost:      f.cost,
		SellingPrice:     f.price,
		ShippingToAmazon: f.shipping,
		Weight:           f.weight,
		Length:           f.length,
		Width:            f.width,
		Height:           f.height,
		Category:         f.category,
	}
}

type expenseFlags struct {
	advertising, returnRate, returnFee, misc string
	longTermStorage, removal, placement      string
}

func (f *expenseFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.advertising, "advertising", "", "custo de publicidade por unidade")
	flags.StringVar(&f.returnRate, "return-rate", "", "taxa de devolução em porcentagem")
	flags.StringVar(&f.returnFee, "return-fee", "", "taxa de processamento por devolução")
	flags.StringVar(&f.misc, "misc", "", "outras despesas")
	flags.StringVar(&f.longTermStorage, "long-term-storage", "", "armazenagem de longo prazo")
	flags.StringVar(&f.removal, "removal", "", "taxa de remoção")
	flags.StringVar(&f.placement, "placement", "", "taxa de posicionamento de estoque")
}

func newFBACmd() *cobra.Command {
	var product productFlags

	cmd := &cobra.Command{
		Use:   "fba",
		Short: "Calcula lucro, margem e preço recomendado no FBA",
		Long: `Calcula as taxas da Amazon e a margem considerando apenas custo, frete e taxas.
Sem custo e preço positivos o resultado é nulo.

Exemplo:
  seller-calc fba --cost 10 --price 30 --category electronics --weight 1.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := calculating.ComputeFBA(product.raw().ToInput())
			printJSON(cmd, domain.FBACalculationResponse{Calculation: calculating.RoundedFBA(result)})
			return nil
		},
	}

	product.register(cmd.Flags())

	return cmd
}

func newAmazonCmd() *cobra.Command {
	var (
		product  productFlags
		expenses expenseFlags
	)

	cmd := &cobra.Command{
		Use:   "amazon",
		Short: "Calcula lucro líquido, pontuação e risco com despesas adicionais",
		Long: `Calculadora completa: inclui publicidade, devoluções e taxas extras.

Exemplo:
  seller-calc amazon --cost 10 --price 30 --advertising 3 --return-rate 10 --return-fee 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := product.raw()
			raw.AdvertisingCosts = expenses.advertising
			raw.ReturnRate = expenses.returnRate
			raw.ReturnProcessingFee = expenses.returnFee
			raw.MiscellaneousExpenses = expenses.misc
			raw.LongTermStorageFee = expenses.longTermStorage
			raw.RemovalFee = expenses.removal
			raw.InventoryPlacementFee = expenses.placement

			result := calculating.Compute(raw.ToInput())
			printJSON(cmd, domain.CalculationResponse{Calculation: calculating.Rounded(result)})
			return nil
		},
	}

	product.register(cmd.Flags())
	expenses.register(cmd.Flags())

	return cmd
}
