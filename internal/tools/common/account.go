package common

// GetAccountFromArgs extracts the account name from request arguments,
// defaulting to "default". Accounts let one server hold tokens for several
// Google identities side by side.
func GetAccountFromArgs(args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}
