// Package envvar exposes helpers to read typed values from environment variables.
package envvar

import (
	"os"
	"strconv"
)

// GetInt returns the int value of the environmental variable varName  if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	env, ok := os.LookupEnv(varName)
	if !ok {
		return 0, false
	}

	val, err := strconv.Atoi(env)
	if err != nil {
		return 0, false
	}

	return val, true
}

// GetBool returns the boolean value of the environmental variable varName  if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return false, false
	}

	ret, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}

	return ret, true
}

// GetString returns the value of the environmental variable varName if it is set and not empty, otherwise it will
// return "", false.
func GetString(varName string) (string, bool) {
	val, ok := os.LookupEnv(varName)
	if !ok || val == "" {
		return "", false
	}

	return val, true
}
