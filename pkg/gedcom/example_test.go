package gedcom_test

import (
	"fmt"

	"github.com/matzehuels/gedgraph/pkg/gedcom"
)

func ExampleParse() {
	res := gedcom.Parse(`0 @I1@ INDI
1 NAME Pierre /Delpech/
1 BIRT
2 DATE 10 MAY 1760
2 PLAC Provence, France
1 FAMS @F1@
0 @F1@ FAM
1 HUSB @I1@
`)
	p := res.Individuals["I1"]
	fmt.Println(p.Name.Given, p.Name.Family)
	fmt.Println(gedcom.DateToISO(p.BirthDate), gedcom.FormatPlace(p.BirthPlace))
	fmt.Println("Husband of F1:", res.Families["F1"].Husband)
	// Output:
	// Pierre Delpech
	// 1760-05-10 Provence, France
	// Husband of F1: I1
}

func ExampleParseDate() {
	d := gedcom.ParseDate("ABT MAR 1801")
	fmt.Println(d.Year, d.Month, d.Day, d.Estimated)
	// Output:
	// 1801 3 0 true
}
