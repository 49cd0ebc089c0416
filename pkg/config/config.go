// linkedin-mcp - LinkedIn profile lookup and search over the Model Context Protocol.
// Copyright (C) 2026 Jorineg
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads server configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultListen = ":3000"

type Config struct {
	// Listen is the HTTP listen address for the MCP endpoint.
	Listen string `yaml:"listen"`
	// ScrapingdogAPIKey authorizes calls to the Google results proxy. May
	// be empty; search tools then fail per call instead of at startup.
	ScrapingdogAPIKey string `yaml:"scrapingdog_api_key"`
	// UserAgent overrides the user agent presented to LinkedIn.
	UserAgent string `yaml:"user_agent"`
}

// Load reads the YAML file named by LINKEDIN_MCP_CONFIG (if set and present)
// and then applies environment overrides: LINKEDIN_MCP_LISTEN,
// SCRAPINGDOG_API_KEY (alias SCRAPING_DOG_API_KEY), LINKEDIN_USER_AGENT.
func Load() (*Config, error) {
	cfg := &Config{Listen: defaultListen}

	if path := os.Getenv("LINKEDIN_MCP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// optional file
		case err != nil:
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("LINKEDIN_MCP_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("SCRAPINGDOG_API_KEY"); v != "" {
		cfg.ScrapingdogAPIKey = v
	} else if v := os.Getenv("SCRAPING_DOG_API_KEY"); v != "" {
		cfg.ScrapingdogAPIKey = v
	}
	if v := os.Getenv("LINKEDIN_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}
	return cfg, nil
}
