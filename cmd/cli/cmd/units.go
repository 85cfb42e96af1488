package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/seller-calc-api/internal/domain"
	"github.com/vfg2006/seller-calc-api/internal/usecases/calculating"
	"github.com/vfg2006/seller-calc-api/internal/usecases/converting"
)

func newUnitsCmd() *cobra.Command {
	var value, unit string

	cmd := &cobra.Command{
		Use:   "units <length|weight>",
		Short: "Lista ou converte unidades de uma família",
		Long: `Sem --value lista as unidades da família. Com --value converte o valor
para todas as unidades da família.

Exemplos:
  seller-calc units weight
  seller-calc units length --value 12 --unit in`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(domain.UnitFamilyLength), string(domain.UnitFamilyWeight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			family := domain.UnitFamily(args[0])
			if _, ok := converting.Table(family); !ok {
				return fmt.Errorf("família de unidades desconhecida: %s", family)
			}

			if !cmd.Flags().Changed("value") {
				printJSON(cmd, domain.UnitFamilyResponse{
					Family:      family,
					Units:       converting.Units(family),
					DefaultUnit: converting.DefaultUnit(family),
				})
				return nil
			}

			if unit == "" {
				unit = converting.DefaultUnit(family)
			}

			parsed, numeric := calculating.ParseNumeric(value)
			response, err := converting.ConvertInFamily(family, parsed, unit)
			if err != nil {
				return err
			}
			if !numeric {
				response.Conversions = map[string]float64{}
			}

			printJSON(cmd, response)
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "valor a converter")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "unidade de origem (padrão da família quando vazio)")

	return cmd
}
