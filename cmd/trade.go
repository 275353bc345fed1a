package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sjhan/gagyebu"
)

// --- Trade Command ---

type tradeCmd struct {
	kind     string
	date     string
	account  int64
	security string
	quantity float64
	price    float64
	currency string
	tax      float64
	fee      float64
	memo     string
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "record a stock buy or sell" }
func (*tradeCmd) Usage() string {
	return `gagye trade -k <buy|sell> -s <security> -q <quantity> -p <price> -acc <account> [-d <date>] [-c <currency>] [-tax <tax>] [-fee <fee>] [-m <memo>]

  Records a stock trade settled against a trading account. A buy debits
  quantity*price plus tax and fee; a sell credits quantity*price minus them.
`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Trade kind: buy or sell")
	f.StringVar(&c.date, "d", gagyebu.Today().String(), "Entry date (YYYY-MM-DD)")
	f.Int64Var(&c.account, "acc", 0, "Trading account")
	f.StringVar(&c.security, "s", "", "Security name or ticker")
	f.Float64Var(&c.quantity, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.StringVar(&c.currency, "c", *baseCurrency, "Currency of the price")
	f.Float64Var(&c.tax, "tax", 0, "Transaction tax")
	f.Float64Var(&c.fee, "fee", 0, "Brokerage fee")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.security == "" || c.quantity <= 0 || c.price <= 0 || c.account == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind, err := gagyebu.ParseTradeKind(normalizeKind(c.kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := gagyebu.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(gagyebu.NewTrade(day, c.memo, kind, c.account, c.security,
		gagyebu.Q(c.quantity), gagyebu.M(c.price, c.currency),
		decimal.NewFromFloat(c.tax), decimal.NewFromFloat(c.fee)))
}

// --- Exchange Command ---

type exchangeCmd struct {
	kind         string
	date         string
	account      int64
	sellAmount   float64
	sellCurrency string
	buyAmount    float64
	buyCurrency  string
	fee          float64
	memo         string
}

func (*exchangeCmd) Name() string     { return "exchange" }
func (*exchangeCmd) Synopsis() string { return "record a currency exchange" }
func (*exchangeCmd) Usage() string {
	return `gagye exchange -k <buy|sell> -acc <account> -sell <amount> -sc <currency> -buy <amount> -bc <currency> [-d <date>] [-fee <fee>] [-m <memo>]

  Exchanges one currency for another within the same account. The fee is
  charged in the base currency.
`
}

func (c *exchangeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "buy", "Exchange kind: buy or sell (of the foreign currency)")
	f.StringVar(&c.date, "d", gagyebu.Today().String(), "Entry date (YYYY-MM-DD)")
	f.Int64Var(&c.account, "acc", 0, "Account holding both currencies")
	f.Float64Var(&c.sellAmount, "sell", 0, "Amount given away")
	f.StringVar(&c.sellCurrency, "sc", "", "Currency given away")
	f.Float64Var(&c.buyAmount, "buy", 0, "Amount received")
	f.StringVar(&c.buyCurrency, "bc", "", "Currency received")
	f.Float64Var(&c.fee, "fee", 0, "Exchange fee, charged in the base currency")
	f.StringVar(&c.memo, "m", "", "An optional note for the entry")
}

func (c *exchangeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == 0 || c.sellAmount <= 0 || c.buyAmount <= 0 || c.sellCurrency == "" || c.buyCurrency == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	kind, err := gagyebu.ParseExchangeKind(normalizeKind(c.kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	day, err := gagyebu.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return record(gagyebu.NewExchange(day, c.memo, kind, c.account,
		gagyebu.M(c.sellAmount, c.sellCurrency), gagyebu.M(c.buyAmount, c.buyCurrency),
		decimal.NewFromFloat(c.fee)))
}
