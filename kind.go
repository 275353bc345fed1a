package gagyebu

import "fmt"

// TransactionKind is the tag distinguishing household transactions.
type TransactionKind string

const (
	Spending TransactionKind = "SPENDING"
	Income   TransactionKind = "INCOME"
	Transfer TransactionKind = "TRANSFER"
)

// TransactionKinds lists every valid transaction kind.
func TransactionKinds() []TransactionKind {
	return []TransactionKind{Spending, Income, Transfer}
}

func (k TransactionKind) String() string { return string(k) }

// ParseTransactionKind parses a string into a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(s) {
	case Spending:
		return Spending, nil
	case Income:
		return Income, nil
	case Transfer:
		return Transfer, nil
	default:
		return "", fmt.Errorf("%w: transaction kind %q", ErrUnknownKind, s)
	}
}

// TradeKind is the tag distinguishing stock trades.
type TradeKind string

const (
	TradeBuy  TradeKind = "BUY"
	TradeSell TradeKind = "SELL"
)

func (k TradeKind) String() string { return string(k) }

// ParseTradeKind parses a string into a TradeKind.
func ParseTradeKind(s string) (TradeKind, error) {
	switch TradeKind(s) {
	case TradeBuy:
		return TradeBuy, nil
	case TradeSell:
		return TradeSell, nil
	default:
		return "", fmt.Errorf("%w: trade kind %q", ErrUnknownKind, s)
	}
}

// ExchangeKind tells whether an exchange bought or sold the base currency.
// The balance effects are fully determined by the sold and bought amounts;
// the kind is a presentation tag carried over from the entry form.
type ExchangeKind string

const (
	ExchangeBuy  ExchangeKind = "BUY"
	ExchangeSell ExchangeKind = "SELL"
)

func (k ExchangeKind) String() string { return string(k) }

// ParseExchangeKind parses a string into an ExchangeKind.
func ParseExchangeKind(s string) (ExchangeKind, error) {
	switch ExchangeKind(s) {
	case ExchangeBuy:
		return ExchangeBuy, nil
	case ExchangeSell:
		return ExchangeSell, nil
	default:
		return "", fmt.Errorf("%w: exchange kind %q", ErrUnknownKind, s)
	}
}
