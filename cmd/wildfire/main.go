package main

import (
	"fmt"
	"os"

	// Import to register the simulation
	_ "github.com/firewatch/wildfire-uav/cmd/wildfire/simulation"
)

func main() {
	fmt.Println("Wildfire UAV Tracking simulation registered. Use 'firewatch-sim run' to execute.")
	os.Exit(0)
}
