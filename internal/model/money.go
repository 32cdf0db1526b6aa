package model

import "github.com/shopspring/decimal"

// MoneyPlaces - количество знаков после запятой у денежных сумм
const MoneyPlaces = 2

const (
	// maxMoneyExponent - порядок, выше которого сумма не влезает в NUMERIC(14,2)
	maxMoneyExponent = 12
	// minMoneyExponent - нижняя граница порядка
	minMoneyExponent = -20
	// maxMoneyBits - ограничение на длину мантиссы до сравнения с MaxMoney
	maxMoneyBits = 128
)

// MaxMoney - наибольшая сумма, которую хранит колонка NUMERIC(14,2)
var MaxMoney = decimal.RequireFromString("999999999999.99")

// IsMoney проверяет, что |d| <= MaxMoney и в сумме не больше MoneyPlaces знаков после запятой.
// Порядок и длина мантиссы проверяются до Round и Cmp: оба масштабируют число.
func IsMoney(d decimal.Decimal) bool {
	if exp := d.Exponent(); exp > maxMoneyExponent || exp < minMoneyExponent {
		return false
	}
	if d.Coefficient().BitLen() > maxMoneyBits {
		return false
	}
	if d.Abs().GreaterThan(MaxMoney) {
		return false
	}
	return d.Equal(d.Round(MoneyPlaces))
}
