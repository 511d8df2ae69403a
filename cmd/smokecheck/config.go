package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// baseURLEnv overrides the base URL from the environment.
const baseURLEnv = "SMOKECHECK_BASE_URL"

// envFileKeys are read from --env-file, first match wins. The last two are
// what backend and frontend dotenv files usually call it.
var envFileKeys = []string{baseURLEnv, "BACKEND_URL", "REACT_APP_BACKEND_URL"}

var lookupEnv = os.LookupEnv

// resolveBaseURL picks the base URL from the flag, then the environment,
// then the env file.
func resolveBaseURL(flagValue, envPath string, lookup func(string) (string, bool)) (string, error) {
	raw, err := findBaseURL(flagValue, envPath, lookup)
	if err != nil {
		return "", err
	}

	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q: want http(s)://host[:port]", raw)
	}
	return raw, nil
}

func findBaseURL(flagValue, envPath string, lookup func(string) (string, bool)) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v, ok := lookup(baseURLEnv); ok && v != "" {
		return v, nil
	}
	if envPath != "" {
		vars, err := godotenv.Read(envPath)
		if err != nil {
			return "", fmt.Errorf("failed to read env file: %w", err)
		}
		for _, key := range envFileKeys {
			if v := vars[key]; v != "" {
				return v, nil
			}
		}
		return "", fmt.Errorf("env file %s sets none of %s", envPath, strings.Join(envFileKeys, ", "))
	}
	return "", errors.New("base URL is required: use --base-url, set " + baseURLEnv + ", or pass --env-file")
}
