package homesim

import "github.com/shopspring/decimal"

// Stamp duty and related purchase fees for Western Australia.
//
// The schedules are held as ordered tables rather than control flow so that
// jurisdiction variants only require new data.
//
// Transfer duty:
//
//	$0 – $80,000            1.90%
//	$80,001 – $100,000      $1,520  + 2.85% above $80,000
//	$100,001 – $250,000     $2,090  + 3.80% above $100,000
//	$250,001 – $500,000     $7,790  + 4.75% above $250,000
//	$500,001 and upwards    $19,665 + 5.15% above $500,000
//
// Plus a fixed mortgage registration fee, plus the land transfer fee: flat
// tiers up to $200,000, then $20 + $100 per $100,000 of the excess.

// dutyBracket charges base plus rate on the price's excess over floor. It
// applies to the highest bracket whose floor is strictly below the price.
type dutyBracket struct {
	floor decimal.Decimal
	base  decimal.Decimal
	rate  decimal.Decimal
}

// transferDutyWA is ordered by ascending floor.
var transferDutyWA = []dutyBracket{
	{floor: dec(0), base: dec(0), rate: dec(0.019)},
	{floor: dec(80_000), base: dec(1_520), rate: dec(0.0285)},
	{floor: dec(100_000), base: dec(2_090), rate: dec(0.038)},
	{floor: dec(250_000), base: dec(7_790), rate: dec(0.0475)},
	{floor: dec(500_000), base: dec(19_665), rate: dec(0.0515)},
}

var mortgageRegistrationFeeWA = dec(174.70)

// landFeeTier is a flat fee for prices up to ceiling, ordered ascending.
type landFeeTier struct {
	ceiling decimal.Decimal
	fee     decimal.Decimal
}

var landTransferFeesWA = []landFeeTier{
	{ceiling: dec(85_000), fee: dec(174.70)},
	{ceiling: dec(120_000), fee: dec(184.70)},
	{ceiling: dec(200_000), fee: dec(204.70)},
}

// Above the last tier: base fee plus $100 per $100,000 of excess, pro rata.
var (
	landFeeExcessBase = dec(20)
	landFeeExcessStep = dec(100_000)
	landFeeExcessRate = dec(100)
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// StampDuty returns the total duty and fees owed on a property purchase at
// the given price: transfer duty, mortgage registration fee, and land
// transfer fee.
//
// firstHomeGrant and newConstruction are part of the contract but do not
// currently alter the amount; the WA concession rules are not modelled.
func StampDuty(price decimal.Decimal, firstHomeGrant, newConstruction bool) decimal.Decimal {
	_ = firstHomeGrant
	_ = newConstruction

	duty := transferDuty(price)
	duty = duty.Add(mortgageRegistrationFeeWA)
	duty = duty.Add(landTransferFee(price))
	return duty
}

func transferDuty(price decimal.Decimal) decimal.Decimal {
	bracket := transferDutyWA[0]
	for _, b := range transferDutyWA[1:] {
		if b.floor.LessThan(price) {
			bracket = b
		}
	}
	return bracket.base.Add(price.Sub(bracket.floor).Mul(bracket.rate))
}

func landTransferFee(price decimal.Decimal) decimal.Decimal {
	for _, tier := range landTransferFeesWA {
		if price.LessThanOrEqual(tier.ceiling) {
			return tier.fee
		}
	}
	top := landTransferFeesWA[len(landTransferFeesWA)-1].ceiling
	excess := price.Sub(top)
	return landFeeExcessBase.Add(excess.Div(landFeeExcessStep).Mul(landFeeExcessRate))
}
