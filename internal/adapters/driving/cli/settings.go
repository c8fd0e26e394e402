package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/topgunprogrammer/DocChat-AI/internal/adapters/driven/ai"
	"github.com/topgunprogrammer/DocChat-AI/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the model backend, storage, cache and server options.

Settings are stored in config.toml in the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Validate and store one setting.

When the value is omitted it is read from stdin, without echo on a terminal.
Use this for secrets such as llm.api_key so they stay out of shell history.

Examples:
  docchat settings set llm.provider openai
  docchat settings set llm.api_key
  docchat settings set storage.type s3
  docchat settings set cache.max_entries 100`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the model backend is reachable",
	RunE:  runSettingsCheck,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsCheckCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	if settings.LLM.StreamTimeout > 0 {
		cmd.Printf("  Stream timeout: %s\n", settings.LLM.StreamTimeout)
	}
	if settings.LLM.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", settings.LLM.RequestsPerSecond)
	}
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Type: %s\n", settings.Storage.Type)
	switch settings.Storage.Type {
	case domain.StorageTypeLocal:
		cmd.Printf("  Directory: %s\n", settings.Storage.Dir)
	case domain.StorageTypeS3:
		cmd.Printf("  Bucket: %s\n", valueOrUnset(settings.Storage.Bucket))
		cmd.Printf("  Region: %s\n", valueOrUnset(settings.Storage.Region))
		if settings.Storage.Endpoint != "" {
			cmd.Printf("  Endpoint: %s\n", settings.Storage.Endpoint)
		}
		if settings.Storage.Prefix != "" {
			cmd.Printf("  Prefix: %s\n", settings.Storage.Prefix)
		}
		if settings.Storage.AccessKeyID != "" {
			cmd.Printf("  Access key: %s\n", maskAPIKey(settings.Storage.AccessKeyID))
		}
	}
	cmd.Printf("  Link lifetime: %s\n", settings.Storage.SignedURLTTL)
	cmd.Println()

	cmd.Println("[Cache]")
	cmd.Printf("  Type: %s\n", settings.Cache.Type)
	switch settings.Cache.Type {
	case domain.CacheTypeLRU:
		size := settings.Cache.MaxEntries
		if size <= 0 {
			size = domain.DefaultLRUEntries
		}
		cmd.Printf("  Max entries: %d\n", size)
	case domain.CacheTypeSQLite:
		cmd.Printf("  Directory: %s\n", valueOrDefault(settings.Cache.Dir, "~/.docchat/data"))
	default:
		cmd.Printf("  Max entries: unbounded\n")
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value, ok := settingValue(settings, args[0])
	if !ok {
		return fmt.Errorf("unknown setting %q (known: %s)", args[0], strings.Join(settingsService.Keys(), ", "))
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		cmd.Printf("%s: ", args[0])
		value = readSecret(cmd.InOrStdin())
		cmd.Println()
	}

	if err := settingsService.Set(args[0], value); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("%s updated\n", args[0])
	return nil
}

func runSettingsCheck(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	backend, err := ai.CreateAndValidateModelBackend(&settings.LLM)
	if err != nil {
		return userError(err)
	}
	defer backend.Close()

	cmd.Printf("%s is reachable (model %s)\n", settings.LLM.Provider.Description(), backend.ModelName())
	return nil
}

// settingValue renders one setting for display. Secrets are masked.
func settingValue(settings *domain.AppSettings, key string) (string, bool) {
	switch key {
	case "server.addr":
		return settings.Server.Addr, true
	case "llm.provider":
		return string(settings.LLM.Provider), true
	case "llm.model":
		return settings.LLM.Model, true
	case "llm.base_url":
		return settings.LLM.BaseURL, true
	case "llm.api_key":
		return maskSecret(settings.LLM.APIKey), true
	case "llm.stream_timeout_seconds":
		return fmt.Sprint(int(settings.LLM.StreamTimeout.Seconds())), true
	case "llm.requests_per_second":
		return fmt.Sprint(settings.LLM.RequestsPerSecond), true
	case "storage.type":
		return string(settings.Storage.Type), true
	case "storage.dir":
		return settings.Storage.Dir, true
	case "storage.bucket":
		return settings.Storage.Bucket, true
	case "storage.region":
		return settings.Storage.Region, true
	case "storage.endpoint":
		return settings.Storage.Endpoint, true
	case "storage.prefix":
		return settings.Storage.Prefix, true
	case "storage.access_key_id":
		return maskSecret(settings.Storage.AccessKeyID), true
	case "storage.secret_access_key":
		return maskSecret(settings.Storage.SecretAccessKey), true
	case "storage.signed_url_ttl_seconds":
		return fmt.Sprint(int(settings.Storage.SignedURLTTL.Seconds())), true
	case "cache.type":
		return string(settings.Cache.Type), true
	case "cache.max_entries":
		return fmt.Sprint(settings.Cache.MaxEntries), true
	case "cache.dir":
		return settings.Cache.Dir, true
	default:
		return "", false
	}
}

// readSecret reads one line without echo when in is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(in io.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}

func valueOrUnset(v string) string {
	return valueOrDefault(v, "(not set)")
}

func valueOrDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func maskSecret(v string) string {
	if v == "" {
		return "(not set)"
	}
	return maskAPIKey(v)
}

// maskAPIKey masks an API key for display.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
