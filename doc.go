// Package depot is a personal investment tracking engine: portfolio
// valuation and position metrics, a month-by-month savings-plan simulation
// with contribution-time rebalancing, annualized returns, and the German
// capital-gains tax rules (see the tax subpackage).
//
// The package is a pure computation core. It performs no I/O beyond
// decoding and encoding its JSONL portfolio format, and all money
// arithmetic happens in decimal space through the Money and Quantity types.
package depot
