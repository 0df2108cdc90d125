// Package fcform classifies raw inference records into billing-template
// scenarios and maps them to render-ready cost-estimate reports.
package fcform

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	amountPrinter = message.NewPrinter(language.English)

	bigHundred = big.NewInt(100)
	bigOne     = big.NewInt(1)
)

// Round2 rounds v to 2 decimal places, half to even, evaluated against the
// exact binary value of v rather than its shortest decimal form. The
// distinction matters near ties: 100.555 is stored as 100.555000000000006...
// and rounds up to 100.56, while 5.555 is stored as 5.5549999999999997...
// and rounds down to 5.55. Reference figures on the estimate forms were
// produced under these semantics, so a decimal-string shortcut here would
// drift off by a cent on real inputs.
func Round2(v float64) float64 {
	r := new(big.Rat).SetFloat64(v)
	if r == nil {
		return v
	}
	num := new(big.Int).Mul(r.Num(), bigHundred)
	q, rem := new(big.Int), new(big.Int)
	q.QuoRem(num, r.Denom(), rem)
	if rem.Sign() != 0 {
		doubled := new(big.Int).Abs(rem)
		doubled.Lsh(doubled, 1)
		if c := doubled.Cmp(r.Denom()); c > 0 || (c == 0 && q.Bit(0) == 1) {
			if rem.Sign() > 0 {
				q.Add(q, bigOne)
			} else {
				q.Sub(q, bigOne)
			}
		}
	}
	f, _ := new(big.Rat).SetFrac(q, bigHundred).Float64()
	return f
}

// FormatAmount renders a monetary value with exactly 2 decimal places and
// thousands separators: 5952.28 becomes "5,952.28". Callers round first;
// FormatAmount only renders.
func FormatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

// FormatQuantity renders a quantity without trailing zeros: 4.0 becomes "4"
// and 2.5 stays "2.5".
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// JobIDFromKey derives the inference job id from an object key by taking the
// part after the last "/" and stripping a trailing ".out". An empty key
// yields an empty id.
func JobIDFromKey(key string) string {
	if key == "" {
		return ""
	}
	base := key[strings.LastIndex(key, "/")+1:]
	return strings.TrimSuffix(base, ".out")
}
