package gagyebu

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// EntryType is a typed string identifying the family of a ledger entry.
type EntryType string

// Entry types used to identify records in the ledger file.
const (
	EntryTransaction EntryType = "transaction"
	EntryTrade       EntryType = "trade"
	EntryExchange    EntryType = "exchange"
	EntryAccount     EntryType = "account"
	EntryCategory    EntryType = "category"
)

// Event defines the common interface for all monetary events recorded in the
// ledger. The set of implementations is closed: every family carries its own
// balance-effect policy, and the codec dispatches exhaustively on the entry
// type.
type Event interface {
	ID() int64   // ID returns the event's identity, 0 before it is stored.
	When() Date  // When returns the date on which the event occurred.
	Note() string
	Equal(Event) bool
	// Validate checks the event's fields against the ledger configuration.
	Validate(c Config) error
	// Effects returns the ordered list of signed balance adjustments this
	// event implies. An out-of-range kind is an ErrUnknownKind.
	Effects(c Config) ([]Effect, error)

	withSeq(seq int64) Event
}

type baseEvent struct {
	Seq  int64  `json:"id,omitempty"`   // Seq is the event identity, assigned by the store.
	Date Date   `json:"date"`           // Date is the day the event occurred.
	Memo string `json:"note,omitempty"` // Memo is the free-text note attached to the event.
}

func (e baseEvent) ID() int64    { return e.Seq }
func (e baseEvent) When() Date   { return e.Date }
func (e baseEvent) Note() string { return e.Memo }

// MarshalJSON implements the json.Marshaler interface for baseEvent.
func (e baseEvent) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", e.Seq)
	w.Append("date", e.Date)
	w.Optional("note", e.Memo)
	return w.MarshalJSON()
}

// --- Transaction ---

// Transaction represents a household money movement: a spending, an income or
// a transfer between two accounts.
type Transaction struct {
	baseEvent
	Kind           TransactionKind
	Category       int64 // Category references the spending/income category.
	Amount         Money // Amount is the base amount; it carries the currency.
	Fee            decimal.Decimal
	PayAccount     int64 // PayAccount is the account debited (Spending, Transfer).
	ReceiveAccount int64 // ReceiveAccount is the account credited (Income, Transfer).
}

// NewTransaction creates a new Transaction event.
func NewTransaction(day Date, note string, kind TransactionKind, category int64, amount Money, fee decimal.Decimal, payAccount, receiveAccount int64) Transaction {
	return Transaction{
		baseEvent:      baseEvent{Date: day, Memo: note},
		Kind:           kind,
		Category:       category,
		Amount:         amount,
		Fee:            fee,
		PayAccount:     payAccount,
		ReceiveAccount: receiveAccount,
	}
}

func (t Transaction) Currency() string { return t.Amount.Currency() }

func (t Transaction) withSeq(seq int64) Event { t.Seq = seq; return t }

func (t Transaction) Equal(other Event) bool {
	o, ok := other.(Transaction)
	return ok && t.baseEvent == o.baseEvent && t.Kind == o.Kind && t.Category == o.Category &&
		t.Amount.Equal(o.Amount) && t.Fee.Equal(o.Fee) &&
		t.PayAccount == o.PayAccount && t.ReceiveAccount == o.ReceiveAccount
}

// Effects implements the balance-effect policy for household transactions:
//
//	Spending:  pay account       -(amount + fee)
//	Income:    receive account   +(amount - fee)
//	Transfer:  pay account       -(amount + fee), receive account +amount
func (t Transaction) Effects(c Config) ([]Effect, error) {
	amount, fee, currency := t.Amount.Amount(), t.Fee, t.Amount.Currency()
	switch t.Kind {
	case Spending:
		return []Effect{
			{Account: t.PayAccount, Currency: currency, Delta: amount.Add(fee).Neg()},
		}, nil
	case Income:
		return []Effect{
			{Account: t.ReceiveAccount, Currency: currency, Delta: amount.Sub(fee)},
		}, nil
	case Transfer:
		return []Effect{
			{Account: t.PayAccount, Currency: currency, Delta: amount.Add(fee).Neg()},
			{Account: t.ReceiveAccount, Currency: currency, Delta: amount},
		}, nil
	default:
		return nil, fmt.Errorf("%w: transaction kind %q", ErrUnknownKind, t.Kind)
	}
}

// Validate checks the Transaction's fields. It ensures the kind is known, the
// currency is valid, the amount is positive and the accounts required by the
// kind are set.
func (t Transaction) Validate(c Config) error {
	if _, err := ParseTransactionKind(string(t.Kind)); err != nil {
		return err
	}
	if err := ValidateCurrency(t.Currency()); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %v", t.Amount)
	}
	if t.Fee.IsNegative() {
		return fmt.Errorf("transaction fee cannot be negative, got %v", t.Fee)
	}
	switch t.Kind {
	case Spending:
		if t.PayAccount == 0 {
			return errors.New("spending transaction pay account is missing")
		}
	case Income:
		if t.ReceiveAccount == 0 {
			return errors.New("income transaction receive account is missing")
		}
	case Transfer:
		if t.PayAccount == 0 || t.ReceiveAccount == 0 {
			return errors.New("transfer transaction needs both pay and receive accounts")
		}
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entry", EntryTransaction)
	w.EmbedFrom(t.baseEvent)
	w.Append("kind", t.Kind)
	w.Optional("category", t.Category)
	w.EmbedFrom(t.Amount)
	w.Append("fee", t.Fee)
	w.Optional("payAccount", t.PayAccount)
	w.Optional("receiveAccount", t.ReceiveAccount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the custom structure where amount, fee and currency are separate
// fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseEvent
		amountRec
		Kind           TransactionKind `json:"kind"`
		Category       int64           `json:"category"`
		PayAccount     int64           `json:"payAccount"`
		ReceiveAccount int64           `json:"receiveAccount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseEvent = temp.baseEvent
	t.Kind = temp.Kind
	t.Category = temp.Category
	t.Amount = temp.Money()
	t.Fee = temp.Fee
	t.PayAccount = temp.PayAccount
	t.ReceiveAccount = temp.ReceiveAccount
	return nil
}

// --- Trade ---

// Trade represents a stock trade settled against a trading account.
type Trade struct {
	baseEvent
	Kind     TradeKind
	Account  int64  // Account is the trading account the trade settles against.
	Security string // Security is the name or ticker of the traded stock.
	Quantity Quantity
	Price    Money // Price is the per-unit price; it carries the currency.
	Tax      decimal.Decimal
	Fee      decimal.Decimal
}

// NewTrade creates a new Trade event.
func NewTrade(day Date, note string, kind TradeKind, account int64, security string, quantity Quantity, price Money, tax, fee decimal.Decimal) Trade {
	return Trade{
		baseEvent: baseEvent{Date: day, Memo: note},
		Kind:      kind,
		Account:   account,
		Security:  security,
		Quantity:  quantity,
		Price:     price,
		Tax:       tax,
		Fee:       fee,
	}
}

func (t Trade) Currency() string { return t.Price.Currency() }

func (t Trade) withSeq(seq int64) Event { t.Seq = seq; return t }

func (t Trade) Equal(other Event) bool {
	o, ok := other.(Trade)
	return ok && t.baseEvent == o.baseEvent && t.Kind == o.Kind && t.Account == o.Account &&
		t.Security == o.Security && t.Quantity.Equal(o.Quantity) && t.Price.Equal(o.Price) &&
		t.Tax.Equal(o.Tax) && t.Fee.Equal(o.Fee)
}

// Effects implements the balance-effect policy for stock trades:
//
//	Buy:   account  -(quantity*price + tax + fee)
//	Sell:  account  +(quantity*price - tax - fee)
func (t Trade) Effects(c Config) ([]Effect, error) {
	gross := t.Price.Mul(t.Quantity).Amount()
	costs := t.Tax.Add(t.Fee)
	var delta decimal.Decimal
	switch t.Kind {
	case TradeBuy:
		delta = gross.Add(costs).Neg()
	case TradeSell:
		delta = gross.Sub(costs)
	default:
		return nil, fmt.Errorf("%w: trade kind %q", ErrUnknownKind, t.Kind)
	}
	return []Effect{{Account: t.Account, Currency: t.Currency(), Delta: delta}}, nil
}

// Validate checks the Trade's fields.
func (t Trade) Validate(c Config) error {
	if _, err := ParseTradeKind(string(t.Kind)); err != nil {
		return err
	}
	if err := ValidateCurrency(t.Currency()); err != nil {
		return err
	}
	if t.Account == 0 {
		return errors.New("trade account is missing")
	}
	if t.Security == "" {
		return errors.New("trade security is missing")
	}
	if !t.Quantity.IsPositive() {
		return fmt.Errorf("trade quantity must be positive, got %s", t.Quantity)
	}
	if !t.Price.IsPositive() {
		return fmt.Errorf("trade price must be positive, got %v", t.Price)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Trade.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entry", EntryTrade)
	w.EmbedFrom(t.baseEvent)
	w.Append("kind", t.Kind)
	w.Append("account", t.Account)
	w.Append("security", t.Security)
	w.Append("quantity", t.Quantity)
	w.Append("currency", t.Price.Currency())
	w.Append("price", t.Price.Amount())
	w.Append("tax", t.Tax)
	w.Append("fee", t.Fee)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Trade.
func (t *Trade) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseEvent
		Kind     TradeKind       `json:"kind"`
		Account  int64           `json:"account"`
		Security string          `json:"security"`
		Quantity Quantity        `json:"quantity"`
		Currency string          `json:"currency"`
		Price    decimal.Decimal `json:"price"`
		Tax      decimal.Decimal `json:"tax"`
		Fee      decimal.Decimal `json:"fee"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseEvent = temp.baseEvent
	t.Kind = temp.Kind
	t.Account = temp.Account
	t.Security = temp.Security
	t.Quantity = temp.Quantity
	t.Price = M(temp.Price, temp.Currency)
	t.Tax = temp.Tax
	t.Fee = temp.Fee
	return nil
}

// --- Exchange ---

// Exchange represents a currency exchange within one account: an amount in
// one currency is sold and an amount in another currency is bought. The fee
// is charged in the ledger's base currency.
type Exchange struct {
	baseEvent
	Kind    ExchangeKind
	Account int64
	Sell    Money // Sell is the amount given away, in the sold currency.
	Buy     Money // Buy is the amount received, in the bought currency.
	Fee     decimal.Decimal
}

// NewExchange creates a new Exchange event.
func NewExchange(day Date, note string, kind ExchangeKind, account int64, sell, buy Money, fee decimal.Decimal) Exchange {
	return Exchange{
		baseEvent: baseEvent{Date: day, Memo: note},
		Kind:      kind,
		Account:   account,
		Sell:      sell,
		Buy:       buy,
		Fee:       fee,
	}
}

func (x Exchange) withSeq(seq int64) Event { x.Seq = seq; return x }

func (x Exchange) Equal(other Event) bool {
	o, ok := other.(Exchange)
	return ok && x.baseEvent == o.baseEvent && x.Kind == o.Kind && x.Account == o.Account &&
		x.Sell.Equal(o.Sell) && x.Buy.Equal(o.Buy) && x.Fee.Equal(o.Fee)
}

// Effects implements the balance-effect policy for currency exchanges: the
// sold amount leaves the account in its currency, the bought amount enters
// the account in its currency, and a non-zero fee leaves the account in the
// base currency.
func (x Exchange) Effects(c Config) ([]Effect, error) {
	switch x.Kind {
	case ExchangeBuy, ExchangeSell:
	default:
		return nil, fmt.Errorf("%w: exchange kind %q", ErrUnknownKind, x.Kind)
	}
	effects := []Effect{
		{Account: x.Account, Currency: x.Sell.Currency(), Delta: x.Sell.Amount().Neg()},
		{Account: x.Account, Currency: x.Buy.Currency(), Delta: x.Buy.Amount()},
	}
	if !x.Fee.IsZero() {
		effects = append(effects, Effect{Account: x.Account, Currency: c.BaseCurrency, Delta: x.Fee.Neg()})
	}
	return effects, nil
}

// Validate checks the Exchange's fields.
func (x Exchange) Validate(c Config) error {
	if _, err := ParseExchangeKind(string(x.Kind)); err != nil {
		return err
	}
	if err := ValidateCurrency(x.Sell.Currency()); err != nil {
		return fmt.Errorf("invalid 'sell' currency: %w", err)
	}
	if err := ValidateCurrency(x.Buy.Currency()); err != nil {
		return fmt.Errorf("invalid 'buy' currency: %w", err)
	}
	if x.Sell.Currency() == x.Buy.Currency() {
		return fmt.Errorf("cannot exchange to the same currency: %s", x.Sell.Currency())
	}
	if x.Account == 0 {
		return errors.New("exchange account is missing")
	}
	if !x.Sell.IsPositive() || !x.Buy.IsPositive() {
		return fmt.Errorf("exchange amounts must be positive, got %v and %v", x.Sell, x.Buy)
	}
	if x.Fee.IsNegative() {
		return fmt.Errorf("exchange fee cannot be negative, got %v", x.Fee)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Exchange.
func (x Exchange) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("entry", EntryExchange)
	w.EmbedFrom(x.baseEvent)
	w.Append("kind", x.Kind)
	w.Append("account", x.Account)
	w.Append("sellCurrency", x.Sell.Currency())
	w.Append("sellAmount", x.Sell.Amount())
	w.Append("buyCurrency", x.Buy.Currency())
	w.Append("buyAmount", x.Buy.Amount())
	w.Append("fee", x.Fee)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Exchange.
func (x *Exchange) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseEvent
		Kind         ExchangeKind    `json:"kind"`
		Account      int64           `json:"account"`
		SellCurrency string          `json:"sellCurrency"`
		SellAmount   decimal.Decimal `json:"sellAmount"`
		BuyCurrency  string          `json:"buyCurrency"`
		BuyAmount    decimal.Decimal `json:"buyAmount"`
		Fee          decimal.Decimal `json:"fee"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	x.baseEvent = temp.baseEvent
	x.Kind = temp.Kind
	x.Account = temp.Account
	x.Sell = M(temp.SellAmount, temp.SellCurrency)
	x.Buy = M(temp.BuyAmount, temp.BuyCurrency)
	x.Fee = temp.Fee
	return nil
}
