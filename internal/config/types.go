package config

type Config struct {
	APIEndpoint string
	Environment string
	LogFile     string
}

// State is what the client remembers between runs: the auth token and
// the selected theme. It lives in a JSON file under the user config
// directory.
type State struct {
	Token string `json:"token,omitempty"`
	Theme string `json:"theme,omitempty"`
}
