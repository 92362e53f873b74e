// README: Common money value object used across modules.
package types

import "fmt"

const DefaultCurrency = "USD"

// Money carries an amount in the currency's minor unit (cents).
type Money struct {
    Amount   int64
    Currency string
}

func USD(cents int64) Money {
    return Money{Amount: cents, Currency: DefaultCurrency}
}

func (m Money) Add(other Money) Money {
    if m.Currency == "" {
        m.Currency = other.Currency
    }
    return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}
}

func (m Money) String() string {
    cur := m.Currency
    if cur == "" {
        cur = DefaultCurrency
    }
    return fmt.Sprintf("%d.%02d %s", m.Amount/100, m.Amount%100, cur)
}
