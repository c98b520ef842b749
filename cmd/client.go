/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/liftops/liftray/internal/api"
	"github.com/liftops/liftray/internal/config"
)

// newTransport builds the HTTP transport from configuration. Can be changed for testing.
var newTransport = func() (api.Transport, error) {
	serverURL := config.Get("server_url", "")
	if serverURL == "" {
		return nil, fmt.Errorf("server_url is not configured; set it in the config file or LIFTRAY_SERVER_URL")
	}
	token := config.Get("token", "")
	if token == "" {
		return nil, fmt.Errorf("token is not configured; set it in the config file or LIFTRAY_TOKEN")
	}
	return api.NewClient(serverURL, token), nil
}
