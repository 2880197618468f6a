package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/daniacca/antwar/internal/antwar"
)

// ServerConfig holds the server configuration
type ServerConfig struct {
	Addr           string
	ConfigFile     string
	TickIntervalMs int
	LogLevel       string
}

// configResolver defines how to resolve a single configuration value
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*ServerConfig, string)
}

// loadServerConfig loads server configuration from CLI flags and environment variables.
// Uses a resolver pattern to make it easy to add new configuration options.
func loadServerConfig() ServerConfig {
	cfg := ServerConfig{}

	// Define all configuration resolvers
	// To add a new option, just add a new resolver here
	resolvers := []configResolver{
		{
			flagName:    "addr",
			envVarName:  "ANTWAR_ADDR",
			defaultVal:  ":8080",
			description: "HTTP listen address (e.g. :8080, 0.0.0.0:8080)",
			setter:      func(c *ServerConfig, v string) { c.Addr = v },
		},
		{
			flagName:    "config-file",
			envVarName:  "ANTWAR_CONFIG_FILE",
			defaultVal:  "",
			description: "optional path to a JSON world config file to load at startup",
			setter:      func(c *ServerConfig, v string) { c.ConfigFile = v },
		},
		{
			flagName:    "tick-interval-ms",
			envVarName:  "ANTWAR_TICK_INTERVAL_MS",
			defaultVal:  "200",
			description: "How often the world advances on its own (milliseconds); 0 disables the driver, ticks then only happen via POST /tick",
			setter: func(c *ServerConfig, v string) {
				if val, err := strconv.Atoi(v); err == nil {
					c.TickIntervalMs = val
				} else {
					log.Printf("Invalid value for tick-interval-ms: %s, using default 200", v)
					c.TickIntervalMs = 200
				}
			},
		},
		{
			flagName:    "log-level",
			envVarName:  "ANTWAR_LOG_LEVEL",
			defaultVal:  "info",
			description: "Log level: debug, info, warn, error",
			setter:      func(c *ServerConfig, v string) { c.LogLevel = v },
		},
	}

	// Register string flags first
	flagVars := make(map[string]*string)
	for _, resolver := range resolvers {
		flagVars[resolver.flagName] = flag.String(resolver.flagName, "", resolver.description)
	}

	// Parse flags once
	flag.Parse()

	// Resolve values for each resolver
	for _, resolver := range resolvers {
		var value string
		if *flagVars[resolver.flagName] != "" {
			value = *flagVars[resolver.flagName]
		} else if envValue := os.Getenv(resolver.envVarName); envValue != "" {
			value = envValue
		} else {
			value = resolver.defaultVal
		}
		resolver.setter(&cfg, value)
	}

	return cfg
}

// loadWorldConfigFromFile loads a world configuration from a JSON file,
// layered over the defaults, and validates it.
func loadWorldConfigFromFile(path string) (antwar.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return antwar.Config{}, err
	}

	cfg := antwar.DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return antwar.Config{}, err
	}

	if err := antwar.ValidateConfig(cfg); err != nil {
		return antwar.Config{}, err
	}

	return cfg, nil
}
