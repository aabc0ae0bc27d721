package repository

import "os"

// tableName resolves a DynamoDB table name from the environment, falling back
// to the conventional default when the variable is unset or empty.
func tableName(envKey, def string) string {
	if v, ok := os.LookupEnv(envKey); ok && v != "" {
		return v
	}
	return def
}
