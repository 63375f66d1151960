package types

// ContextKey keys values passed through the cobra command context.
type ContextKey string

// ClientAppKey carries the initialized *client.App from the root command
// down to subcommands.
const ClientAppKey ContextKey = "app"
