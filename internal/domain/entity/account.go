package entity

// AccountSource tells where an account's signing key lives.
type AccountSource string

const (
	// LocalAccount is derived from a credential held in the settings.
	LocalAccount AccountSource = "local"
	// RemoteAccount is managed by the node and reported through eth_accounts.
	RemoteAccount AccountSource = "remote"
)

// Account is a signing account available to a network profile.
type Account struct {
	Address string        `json:"address"`
	Source  AccountSource `json:"source"`
}
