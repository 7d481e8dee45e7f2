// Package model defines the wallet's domain records shared by the sync engine and its stores.
package model

// Network names the chain a node follows.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)
