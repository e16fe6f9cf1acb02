package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// inrPerUSD is a fixed conversion constant, not a live exchange rate.
var inrPerUSD = decimal.NewFromInt(70)

// Normalize folds one or more currency-tagged amount tokens into a
// single USD-equivalent value. Recognized notations: "$" dollars,
// "INR" rupees (divided by the fixed rate), "{...}" bracketed commodity
// prices (normalized recursively), and a bare "0". Thousands-separator
// commas are stripped first.
//
// In lenient mode (strict=false) unrecognized tokens contribute zero
// and are returned in skipped so the caller can log them. In strict
// mode the first unrecognized token fails the whole normalization with
// an *AmountError.
func Normalize(tokens []string, strict bool) (value float64, skipped []string, err error) {
	sum, skipped, err := normalize(tokens, strict)
	if err != nil {
		return 0, nil, err
	}
	value, _ = sum.Float64()
	return value, skipped, nil
}

func normalize(tokens []string, strict bool) (decimal.Decimal, []string, error) {
	sum := decimal.Zero
	var skipped []string

	for _, raw := range tokens {
		tok := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
		switch {
		case tok == "":
			// blank line inside a multi-line field
		case strings.Contains(tok, "{"):
			// Commodity price, e.g. "5 {$2.00}". Only the bracketed
			// price is used; the outer quantity is ignored to keep the
			// engine's historical output (see DESIGN.md).
			open := strings.Index(tok, "{")
			end := strings.LastIndex(tok, "}")
			if end < open {
				if strict {
					return decimal.Zero, nil, &AmountError{Token: raw}
				}
				skipped = append(skipped, raw)
				continue
			}
			inner, innerSkipped, err := normalize([]string{tok[open+1 : end]}, strict)
			if err != nil {
				return decimal.Zero, nil, err
			}
			skipped = append(skipped, innerSkipped...)
			sum = sum.Add(inner)
		case strings.Contains(tok, "$"):
			v, err := decimal.NewFromString(strings.Trim(tok, "$ "))
			if err != nil {
				if strict {
					return decimal.Zero, nil, &AmountError{Token: raw}
				}
				skipped = append(skipped, raw)
				continue
			}
			sum = sum.Add(v)
		case strings.Contains(tok, "INR"):
			v, err := decimal.NewFromString(strings.Trim(tok, "INR "))
			if err != nil {
				if strict {
					return decimal.Zero, nil, &AmountError{Token: raw}
				}
				skipped = append(skipped, raw)
				continue
			}
			sum = sum.Add(v.Div(inrPerUSD))
		case tok == "0":
			// zero contribution
		default:
			if strict {
				return decimal.Zero, nil, &AmountError{Token: raw}
			}
			skipped = append(skipped, raw)
		}
	}

	return sum, skipped, nil
}
