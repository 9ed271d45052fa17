package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/firewatch/wildfire-uav/pkg/client"
	"github.com/firewatch/wildfire-uav/pkg/config"
	"github.com/firewatch/wildfire-uav/pkg/logger"
	"github.com/firewatch/wildfire-uav/pkg/simulation"
	"github.com/firewatch/wildfire-uav/pkg/utils"

	// Import simulations to register them
	_ "github.com/firewatch/wildfire-uav/cmd/wildfire/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	Long:  `Run a simulation interactively or with specified parameters`,
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringP("simulation", "s", "", "simulation name to run")
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	envConfig, err := selectEnvironment()
	if err != nil {
		return fmt.Errorf("failed to select environment: %w", err)
	}

	fwClient, err := client.NewFirewatchClient(envConfig.URL)
	if err != nil {
		return fmt.Errorf("failed to create Firewatch client: %w", err)
	}

	logger.Progress("Testing connection to Firewatch exemplar...")
	if err := fwClient.ValidateConnection(context.Background()); err != nil {
		return fmt.Errorf("failed to connect to Firewatch exemplar: %w", err)
	}
	logger.Success("Successfully connected to Firewatch exemplar")

	simName, err := selectSimulation(cmd)
	if err != nil {
		return fmt.Errorf("failed to select simulation: %w", err)
	}

	sim, err := simulation.DefaultRegistry.Get(simName)
	if err != nil {
		return fmt.Errorf("failed to get simulation: %w", err)
	}

	simInfos, err := utils.DiscoverSimulations()
	if err != nil {
		return fmt.Errorf("failed to discover simulations: %w", err)
	}

	var simConfig *simulation.SimulationConfig
	for _, info := range simInfos {
		if info.Config.Name == simName {
			simConfig = &info.Config
			break
		}
	}

	if simConfig == nil {
		return fmt.Errorf("simulation configuration not found for %s", simName)
	}

	params, err := utils.PromptForParameters(simConfig.Parameters)
	if err != nil {
		return fmt.Errorf("failed to get parameters: %w", err)
	}

	if err := sim.Configure(params); err != nil {
		return fmt.Errorf("failed to configure simulation: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Warn("\nReceived interrupt signal, stopping simulation...")
		err := sim.Stop()
		if err != nil {
			logger.Errorf("Failed to stop simulation: %v", err)
			return
		}
		cancel()
	}()

	logger.LogSection(fmt.Sprintf("Starting %s", sim.Name()))
	if err := sim.Run(ctx, fwClient); err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	logger.Success("Simulation completed successfully")
	return nil
}

func selectEnvironment() (*config.Environment, error) {
	// Check if URL is provided via flag or environment variable
	if envURL != "" {
		return &config.Environment{
			Name: "Custom",
			URL:  envURL,
		}, nil
	}

	if firewatchURL := os.Getenv("FIREWATCH_URL"); firewatchURL != "" {
		return &config.Environment{
			Name: "Environment",
			URL:  firewatchURL,
		}, nil
	}

	// Load environment configurations
	envConfig, err := config.LoadEnvironments()
	if err != nil {
		return nil, err
	}

	// Check if environment is specified via flag
	if envName != "" {
		for _, env := range envConfig.Environments {
			if env.Name == envName {
				return &env, nil
			}
		}
		return nil, fmt.Errorf("environment %s not found", envName)
	}

	// Interactive selection
	options := make([]string, len(envConfig.Environments)+1)
	for i, env := range envConfig.Environments {
		options[i] = env.Name
	}
	options[len(options)-1] = "Custom URL"

	var selected string
	prompt := &survey.Select{
		Message: "Select environment:",
		Options: options,
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}

	// Handle custom URL
	if selected == "Custom URL" {
		var customURL string
		urlPrompt := &survey.Input{
			Message: "Enter Firewatch exemplar URL:",
			Default: "http://localhost:3000",
		}
		if err := survey.AskOne(urlPrompt, &customURL); err != nil {
			return nil, err
		}

		return &config.Environment{
			Name: "Custom",
			URL:  customURL,
		}, nil
	}

	// Find selected environment
	for _, env := range envConfig.Environments {
		if env.Name == selected {
			return &env, nil
		}
	}

	return nil, fmt.Errorf("environment not found")
}

func selectSimulation(cmd *cobra.Command) (string, error) {
	// Check if simulation is specified via flag
	simName, _ := cmd.Flags().GetString("simulation")
	if simName != "" {
		return simName, nil
	}

	// Discover available simulations
	simInfos, err := utils.DiscoverSimulations()
	if err != nil {
		return "", err
	}

	if len(simInfos) == 0 {
		return "", fmt.Errorf("no simulations found")
	}

	// Build options for selection
	options := make([]string, len(simInfos))
	descriptions := make(map[string]string)

	for i, info := range simInfos {
		options[i] = info.Config.Name
		descriptions[info.Config.Name] = info.Config.Description
	}

	// Interactive selection
	var selected string
	prompt := &survey.Select{
		Message: "Select simulation:",
		Options: options,
		Description: func(value string, index int) string {
			return descriptions[value]
		},
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return selected, nil
}
