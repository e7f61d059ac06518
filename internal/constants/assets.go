package constants

// Asset tickers tracked by the bot wallet
const (
	AssetETH     = "ETH"
	AssetUSDC    = "USDC"
	AssetUSDCETH = "USDC_ETH"
)

// NativeGasAsset is what BUY orders are paid with.
const NativeGasAsset = AssetETH

// Fiat currency codes
const (
	FiatUSD = "USD"
	FiatMXN = "MXN"
	FiatEUR = "EUR"
	FiatCOP = "COP"
	FiatBRL = "BRL"
	FiatARS = "ARS"
)

// FiatCurrencies is the set of codes treated as a fiat leg.
var FiatCurrencies = map[string]bool{
	FiatUSD: true,
	FiatMXN: true,
	FiatEUR: true,
	FiatCOP: true,
	FiatBRL: true,
	FiatARS: true,
}

// StablecoinPegs maps a stablecoin to the fiat currency it is redeemable 1:1 for.
var StablecoinPegs = map[string]string{
	AssetUSDC:    FiatUSD,
	AssetUSDCETH: FiatUSD,
}

// IsFiatCurrency reports whether code is a known fiat currency. code must be upper-case.
func IsFiatCurrency(code string) bool {
	return FiatCurrencies[code]
}

// Swap provider network codes in resolution priority order
const (
	NetworkERC20   = "ERC20"
	NetworkETH     = "ETH"
	NetworkTRC20   = "TRC20"
	NetworkBSC     = "BSC"
	NetworkBEP20   = "BEP20"
	NetworkPolygon = "POLYGON"
	NetworkMatic   = "MATIC"
	NetworkSolana  = "SOL"
)

// Country codes produced by country normalization
const (
	CountryMX = "MX"
	CountryUS = "US"
	CountryCO = "CO"
	CountryBR = "BR"
	CountryAR = "AR"
)

// LiquidityBufferPercent is added on top of a quoted cost to cover network fees.
const LiquidityBufferPercent = 5
