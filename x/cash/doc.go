/*
Package cash keeps account balances and moves currency between accounts.

Balances are stored as wallets, one per address. Every transfer preserves
the configured minimum balance: neither the sender nor the recipient may
end up holding less than the minimum of the transferred currency.
*/
package cash
