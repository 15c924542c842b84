package credentials

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const application = "zentui"

// Service names one token-protected API and where its token lives in
// the OS keyring.
type Service struct {
	Name       string // shown in prompts
	KeyringKey string
	Hint       string // printed before an interactive prompt
}

var (
	GitHub = Service{
		Name:       "Github",
		KeyringKey: "token@github",
		Hint: "Generate a Github personal access token: https://github.com/settings/tokens " +
			"(the token will be stored in your system's keyring)",
	}
	Zenhub = Service{
		Name:       "Zenhub",
		KeyringKey: "token@zenhub",
		Hint:       "Generate a Zenhub API token: https://app.zenhub.com/dashboard/tokens",
	}
)

// Resolve returns the API token for a service. Precedence: the value
// passed on the command line, then the OS keyring, then an interactive
// stdin prompt. Tokens obtained from the flag or the prompt are written
// back to the keyring; keyring failures are logged and never fatal.
func Resolve(service Service, flagValue string, logger *slog.Logger) (string, error) {
	if flagValue != "" {
		store(service, flagValue, logger)
		return flagValue, nil
	}

	token, err := keyring.Get(application, service.KeyringKey)
	switch {
	case err == nil && token != "":
		return token, nil
	case err != nil && err != keyring.ErrNotFound:
		logger.Warn("keyring lookup failed", "service", service.Name, "err", err)
	}

	token, err = promptStdin(service)
	if err != nil {
		return "", err
	}
	store(service, token, logger)
	return token, nil
}

func store(service Service, token string, logger *slog.Logger) {
	if err := keyring.Set(application, service.KeyringKey, token); err != nil {
		logger.Warn("could not store token in keyring", "service", service.Name, "err", err)
	}
}

func promptStdin(service Service) (string, error) {
	fmt.Fprintln(os.Stderr, service.Hint)
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Fprintf(os.Stderr, "%s API token: ", service.Name)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read %s token from stdin: %w", service.Name, err)
		}
		if token := strings.TrimSpace(line); token != "" {
			return token, nil
		}
	}
}
