// Prints every jurisdiction's bracket table with the cumulative tax
// owed at each bound. Useful when editing jurisdictions.yaml to check
// that bracket boundaries line up with the published tables.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/hirepath/earnings-engine/internal/calculation"
	"github.com/hirepath/earnings-engine/internal/domain"
	"github.com/hirepath/earnings-engine/internal/refdata"
)

func main() {
	var (
		ref *refdata.ReferenceData
		err error
	)
	if len(os.Args) > 1 {
		ref, err = refdata.Load(os.Args[1])
	} else {
		ref, err = refdata.LoadDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load reference data: %v\n", err)
		os.Exit(1)
	}

	ids := []string{domain.JurisdictionFederal}
	seen := map[string]bool{domain.JurisdictionFederal: true}
	for _, city := range ref.Cities() {
		if !seen[city.State] {
			seen[city.State] = true
			ids = append(ids, city.State)
		}
	}

	for _, id := range ids {
		j, err := ref.Jurisdiction(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "jurisdiction %s: %v\n", id, err)
			os.Exit(1)
		}
		printJurisdiction(j)
	}
}

func printJurisdiction(j domain.TaxJurisdiction) {
	fmt.Printf("%s (%s)\n", j.Label, j.ID)

	if !j.HasIncomeTax() {
		fmt.Println("  no income tax")
		fmt.Println()
		return
	}

	prev := decimal.Zero
	for _, b := range j.Brackets {
		if b.Unbounded() {
			fmt.Printf("  over %12s           at %s%%\n",
				prev.StringFixed(0), b.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2))
			continue
		}
		owed := calculation.BracketTax(b.UpperBound, j.Brackets)
		fmt.Printf("  up to %12s  at %s%%  (tax at bound %s)\n",
			b.UpperBound.StringFixed(0),
			b.Rate.Mul(decimal.NewFromInt(100)).StringFixed(2),
			owed.StringFixed(2))
		prev = b.UpperBound
	}

	if j.FlatRates != nil {
		fmt.Printf("  flat: social security %s%%, medicare %s%%\n",
			j.FlatRates.SocialSecurity.Mul(decimal.NewFromInt(100)).StringFixed(2),
			j.FlatRates.Medicare.Mul(decimal.NewFromInt(100)).StringFixed(2))
	}
	fmt.Println()
}
