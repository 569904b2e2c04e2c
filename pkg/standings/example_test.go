package standings_test

import (
	"fmt"

	"github.com/matzehuels/standings/pkg/standings"
)

func ExampleFormatGamesBack() {
	for _, gb := range []float64{0, 2, 2.5} {
		whole, half := standings.FormatGamesBack(gb)
		fmt.Printf("%q %q\n", whole, half)
	}
	// Output:
	// "-" ""
	// "2" ""
	// "2" "½"
}
