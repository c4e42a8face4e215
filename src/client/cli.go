package client

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Execute is the main entry point for the CLI
func Execute() error {
	// Global flags
	flagSet := flag.NewFlagSet("nightscout-cli", flag.ContinueOnError)
	flagSet.Usage = func() {
		printUsage()
	}

	hostFlag := flagSet.String("host", "", "Nightscout host (overrides NIGHTSCOUT_HOST)")
	portFlag := flagSet.String("port", "", "Nightscout port (overrides NIGHTSCOUT_PORT)")
	secretFlag := flagSet.String("api-secret", "", "API secret (overrides NIGHTSCOUT_API_SECRET)")
	timeoutFlag := flagSet.Int("timeout", 0, "Request timeout in seconds (overrides config)")
	configFlag := flagSet.String("config", "", "Config file path (default: ~/.config/nightscout/cli.yml)")
	versionFlag := flagSet.Bool("version", false, "Show version information")
	helpFlag := flagSet.Bool("help", false, "Show help")

	// Parse flags
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		return NewUsageError(err.Error())
	}

	// Show version
	if *versionFlag {
		return printVersion()
	}

	// Show help
	if *helpFlag {
		printUsage()
		return nil
	}

	// Load config (file, .env, environment)
	configPath := *configFlag
	if configPath == "" {
		configPath = ConfigFile()
	}
	config, err := LoadConfigFromFile(configPath)
	if err != nil {
		return err
	}

	// Explicit flags win over environment and config file
	if *hostFlag != "" {
		config.Host = *hostFlag
	}
	if *portFlag != "" {
		config.Port = *portFlag
	}
	if *secretFlag != "" {
		config.APISecret = *secretFlag
	}
	if *timeoutFlag > 0 {
		config.Timeout = *timeoutFlag
	}

	// Get command
	args := flagSet.Args()
	if len(args) == 0 {
		printUsage()
		return NewExitError("", ExitGeneralError)
	}

	command := args[0]
	commandArgs := args[1:]

	// Route to appropriate command handler
	switch command {
	case "get":
		return handleGetCommand(config, commandArgs)
	case "history":
		return handleHistoryCommand(config, commandArgs)
	case "config":
		return handleConfigCommand(commandArgs)
	case "version":
		return printVersion()
	default:
		return NewUsageError(fmt.Sprintf("unknown command: %s", command))
	}
}

// printUsage prints the usage information
func printUsage() {
	fmt.Println("Nightscout CLI - Command-line interface for the Nightscout API")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  nightscout-cli [flags] <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  get          Get the latest blood glucose reading")
	fmt.Println("  history      Get historical glucose data")
	fmt.Println("  config       Manage configuration (init, show, get, set)")
	fmt.Println("  version      Show version information")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --host <host>        Nightscout host (default: 127.0.0.1)")
	fmt.Println("  --port <port>        Nightscout port (default: 80)")
	fmt.Println("  --api-secret <s>     API secret")
	fmt.Println("  --timeout <seconds>  Request timeout (default: 30)")
	fmt.Println("  --config <path>      Config file path")
	fmt.Println("  --version            Show version information")
	fmt.Println("  --help               Show this help message")
	fmt.Println()
	fmt.Println("History Flags:")
	fmt.Println("  --days-ago <n>       Days ago the window ends (default: 0 = now)")
	fmt.Println("  --period <minutes>   Window length in minutes (default: 1440 = 24 hours)")
	fmt.Println("  --jsonl              Output as JSONL (one JSON object per line)")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  nightscout-cli get")
	fmt.Println("  nightscout-cli --host nightscout.example.com --port 1337 get")
	fmt.Println("  nightscout-cli history --days-ago 1 --period 720")
	fmt.Println("  nightscout-cli history --jsonl")
	fmt.Println("  nightscout-cli config set api_secret YOUR_SECRET")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  NIGHTSCOUT_HOST, NIGHTSCOUT_PORT, NIGHTSCOUT_API_SECRET")
	fmt.Println("  Explicit flags take precedence over environment variables.")
	fmt.Println()
}

// printVersion prints version information
func printVersion() error {
	fmt.Printf("nightscout-cli version %s\n", Version)
	fmt.Printf("Git commit: %s\n", GitCommit)
	fmt.Printf("Build date: %s\n", BuildDate)
	return nil
}

// handleConfigCommand handles config subcommands
func handleConfigCommand(args []string) error {
	if len(args) == 0 {
		return NewUsageError("config command requires a subcommand (init, show, get, set)")
	}

	subcommand := args[0]

	switch subcommand {
	case "init":
		return InitConfig()

	case "show":
		config, err := LoadConfig()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(ConfigFile())
		if err == nil {
			fmt.Println(string(data))
		} else {
			// If file doesn't exist, show the effective config
			fmt.Printf("host: %s\n", config.Host)
			fmt.Printf("port: %s\n", config.Port)
			fmt.Printf("api_secret: %s\n", config.APISecret)
			fmt.Printf("timeout: %d\n", config.Timeout)
		}
		return nil

	case "get":
		if len(args) < 2 {
			return NewUsageError("config get requires a key")
		}
		value, err := GetConfigValue(args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil

	case "set":
		if len(args) < 3 {
			return NewUsageError("config set requires a key and value")
		}
		if err := SetConfigValue(args[1], strings.Join(args[2:], " ")); err != nil {
			return err
		}
		fmt.Printf("Configuration updated: %s = %s\n", args[1], strings.Join(args[2:], " "))
		return nil

	default:
		return NewUsageError(fmt.Sprintf("unknown config subcommand: %s", subcommand))
	}
}
